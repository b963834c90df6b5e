package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"streaming-service.backend/internal/domain/entities"
	domainerrors "streaming-service.backend/internal/domain/errors"
	"streaming-service.backend/internal/infrastructure/models"
)

// Statements are written against cinema.<table>; the prefix is rewritten to the
// configured schema so the same SQL runs against a bare SQLite database in tests.
const (
	avgReleaseYearSQL = `
SELECT CAST(AVG(release_year) AS DOUBLE PRECISION) AS avg_release_year
FROM cinema.movies`

	userStatisticsSQL = `
SELECT DISTINCT
	u.user_id,
	u.full_name,
	u.email,
	u.subscription_type,
	u.registration_date,
	COUNT(vh.view_id) OVER (PARTITION BY u.user_id) AS total_views,
	AVG(vh.viewed_percentage) OVER (PARTITION BY u.user_id) AS avg_percentage_views,
	COALESCE(d.device_count, 0) AS device_count,
	COALESCE(pm.payment_method_count, 0) AS payment_method_count
FROM cinema.users u
LEFT JOIN cinema.viewing_history vh ON vh.user_id = u.user_id
LEFT JOIN (
	SELECT user_id, COUNT(*) AS device_count
	FROM cinema.devices
	WHERE is_active = TRUE
	GROUP BY user_id
) d ON d.user_id = u.user_id
LEFT JOIN (
	SELECT user_id, COUNT(*) AS payment_method_count
	FROM cinema.payment_methods
	GROUP BY user_id
) pm ON pm.user_id = u.user_id
ORDER BY u.user_id`

	genreRatingsSQL = `
WITH movie_ratings AS (
	SELECT
		m.movie_id,
		m.genres,
		m.imdb_rating,
		COUNT(vh.view_id) AS total_views,
		AVG(vh.viewed_percentage) AS avg_completion_rate
	FROM cinema.movies m
	LEFT JOIN cinema.viewing_history vh ON m.movie_id = vh.movie_id
	GROUP BY m.movie_id, m.genres, m.imdb_rating
),
genre_analysis AS (
	SELECT
		TRIM(g.genre) AS genre,
		COUNT(*) AS movie_count,
		ROUND(AVG(mr.imdb_rating), 2)::float8 AS avg_imdb_rating,
		ROUND(AVG(mr.avg_completion_rate), 2)::float8 AS avg_completion_rate,
		SUM(mr.total_views) AS total_views
	FROM movie_ratings mr,
	LATERAL unnest(string_to_array(mr.genres, ',')) AS g(genre)
	GROUP BY TRIM(g.genre)
)
SELECT * FROM genre_analysis
WHERE genre IS NOT NULL AND genre <> ''
ORDER BY total_views DESC, genre`

	tableColumnsSQL = `
SELECT
	table_name,
	column_name,
	data_type,
	is_nullable,
	column_default,
	character_maximum_length,
	numeric_precision,
	numeric_scale
FROM information_schema.columns
WHERE table_schema = ?
ORDER BY table_name, ordinal_position`

	directorAvgRatingFunctionSQL = `
CREATE OR REPLACE FUNCTION cinema.get_director_avg_rating(director_name text)
RETURNS decimal AS $$
DECLARE
	avg_rating decimal;
BEGIN
	SELECT AVG(imdb_rating) INTO avg_rating
	FROM cinema.movies
	WHERE director = director_name;

	RETURN COALESCE(avg_rating, 0);
END;
$$ LANGUAGE plpgsql`

	directorRatingsSQL = `
SELECT director, cinema.get_director_avg_rating(director)::float8 AS avg_rating
FROM cinema.movies
GROUP BY director
ORDER BY avg_rating DESC, director`

	usersBySubscriptionFunctionSQL = `
CREATE OR REPLACE FUNCTION cinema.get_users_by_subscription(sub_type text)
RETURNS TABLE (
	user_id int,
	email text,
	full_name text,
	registration_date date
) AS $$
BEGIN
	RETURN QUERY
	SELECT u.user_id, u.email::text, u.full_name::text, u.registration_date
	FROM cinema.users u
	WHERE u.subscription_type = sub_type
	ORDER BY u.registration_date DESC;
END;
$$ LANGUAGE plpgsql`

	updateSubscriptionProcedureSQL = `
CREATE OR REPLACE PROCEDURE cinema.update_user_subscription(
	p_user_id int,
	p_new_subscription text
) AS $$
BEGIN
	IF p_new_subscription NOT IN ('basic', 'standard', 'premium') THEN
		RAISE EXCEPTION 'invalid subscription type: %', p_new_subscription;
	END IF;

	UPDATE cinema.users
	SET subscription_type = p_new_subscription
	WHERE user_id = p_user_id;
END;
$$ LANGUAGE plpgsql`

	createReviewsTableSQL = `
CREATE TABLE cinema.user_reviews (
	review_id serial PRIMARY KEY,
	user_id integer NOT NULL,
	movie_id integer NOT NULL,
	rating integer NOT NULL CHECK (rating BETWEEN 1 AND 10),
	review_text text,
	created_at timestamp DEFAULT current_timestamp,

	CONSTRAINT fk_user_review_user FOREIGN KEY (user_id) REFERENCES cinema.users(user_id) ON DELETE CASCADE,
	CONSTRAINT fk_user_review_movie FOREIGN KEY (movie_id) REFERENCES cinema.movies(movie_id) ON DELETE CASCADE,
	CONSTRAINT unique_user_movie_review UNIQUE (user_id, movie_id)
)`

	insertRandomReviewsSQL = `
INSERT INTO cinema.user_reviews (user_id, movie_id, rating, review_text)
SELECT
	u.user_id,
	m.movie_id,
	(random() * 9 + 1)::integer AS rating,
	CASE
		WHEN random() > 0.3 THEN
			CASE (random() * 4)::integer
				WHEN 0 THEN 'Отличный фильм!'
				WHEN 1 THEN 'Очень понравилось'
				WHEN 2 THEN 'Неплохо, но есть недостатки'
				WHEN 3 THEN 'Разочарован'
				ELSE 'Шедевр!'
			END
		ELSE NULL
	END AS review_text
FROM cinema.users u
CROSS JOIN cinema.movies m
WHERE random() < 0.1
LIMIT ?
ON CONFLICT (user_id, movie_id) DO NOTHING`
)

// AnalyticsRepository runs the reporting and lab maintenance statements
type AnalyticsRepository struct {
	db     *gorm.DB
	schema string
	prefix string
}

// NewAnalyticsRepository creates an analytics repository over schema.
// An empty schema leaves table names unqualified.
func NewAnalyticsRepository(db *gorm.DB, schema string) *AnalyticsRepository {
	prefix := ""
	if schema != "" {
		prefix = pq.QuoteIdentifier(schema) + "."
	}
	return &AnalyticsRepository{db: db, schema: schema, prefix: prefix}
}

func (r *AnalyticsRepository) sql(query string) string {
	return strings.ReplaceAll(query, "cinema.", r.prefix)
}

// AvgReleaseYear returns the average release year, or nil when no movie has one
func (r *AnalyticsRepository) AvgReleaseYear(ctx context.Context) (*float64, error) {
	var row struct {
		AvgReleaseYear *float64 `gorm:"column:avg_release_year"`
	}
	if err := GetDB(ctx, r.db).Raw(r.sql(avgReleaseYearSQL)).Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("avg release year: %w", err)
	}
	return row.AvgReleaseYear, nil
}

// UserStatistics returns per-user activity with view, device and payment method counts
func (r *AnalyticsRepository) UserStatistics(ctx context.Context) ([]entities.UserStatistic, error) {
	var rows []entities.UserStatistic
	if err := GetDB(ctx, r.db).Raw(r.sql(userStatisticsSQL)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("user statistics: %w", err)
	}
	return rows, nil
}

// GenreRatings aggregates ratings and completion per genre
func (r *AnalyticsRepository) GenreRatings(ctx context.Context) ([]entities.GenreRating, error) {
	var rows []entities.GenreRating
	if err := GetDB(ctx, r.db).Raw(r.sql(genreRatingsSQL)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("genre ratings: %w", err)
	}
	return rows, nil
}

// TableColumns lists column metadata of the schema's tables
func (r *AnalyticsRepository) TableColumns(ctx context.Context) ([]entities.TableColumn, error) {
	var rows []entities.TableColumn
	if err := GetDB(ctx, r.db).Raw(tableColumnsSQL, r.schema).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("table columns: %w", err)
	}
	return rows, nil
}

// DirectorRatings installs get_director_avg_rating and evaluates it per director
func (r *AnalyticsRepository) DirectorRatings(ctx context.Context) ([]entities.DirectorRating, error) {
	db := GetDB(ctx, r.db)
	if err := db.Exec(r.sql(directorAvgRatingFunctionSQL)).Error; err != nil {
		return nil, fmt.Errorf("create get_director_avg_rating: %w", err)
	}
	var rows []entities.DirectorRating
	if err := db.Raw(r.sql(directorRatingsSQL)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("director ratings: %w", err)
	}
	return rows, nil
}

// UsersBySubscription installs get_users_by_subscription and pages through its result.
// A non-positive limit returns every row.
func (r *AnalyticsRepository) UsersBySubscription(ctx context.Context, subscription entities.SubscriptionType, limit, offset int) ([]entities.SubscriberRow, int64, error) {
	db := GetDB(ctx, r.db)
	if err := db.Exec(r.sql(usersBySubscriptionFunctionSQL)).Error; err != nil {
		return nil, 0, fmt.Errorf("create get_users_by_subscription: %w", err)
	}

	var total int64
	if err := db.Raw(r.sql(`SELECT COUNT(*) FROM cinema.get_users_by_subscription(?)`), string(subscription)).Scan(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users by subscription: %w", err)
	}

	query := r.sql(`SELECT * FROM cinema.get_users_by_subscription(?)`)
	args := []interface{}{string(subscription)}
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	var rows []entities.SubscriberRow
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("users by subscription: %w", err)
	}
	return rows, total, nil
}

// UpdateUserSubscription installs update_user_subscription, calls it and reads the row back
func (r *AnalyticsRepository) UpdateUserSubscription(ctx context.Context, userID int64, subscription entities.SubscriptionType) (*entities.SubscriptionUpdate, error) {
	db := GetDB(ctx, r.db)
	if err := db.Exec(r.sql(updateSubscriptionProcedureSQL)).Error; err != nil {
		return nil, fmt.Errorf("create update_user_subscription: %w", err)
	}
	if err := db.Exec(r.sql(`CALL cinema.update_user_subscription(?::int, ?::text)`), userID, string(subscription)).Error; err != nil {
		return nil, fmt.Errorf("call update_user_subscription: %w", err)
	}

	var rows []entities.SubscriptionUpdate
	if err := db.Raw(r.sql(`SELECT user_id, subscription_type FROM cinema.users WHERE user_id = ?`), userID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("read subscription: %w", err)
	}
	if len(rows) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return &rows[0], nil
}

// DatabaseSize returns the pretty-printed size of the connected database
func (r *AnalyticsRepository) DatabaseSize(ctx context.Context) (string, error) {
	var size string
	if err := GetDB(ctx, r.db).Raw(`SELECT pg_size_pretty(pg_database_size(current_database())) AS db_size`).Scan(&size).Error; err != nil {
		return "", fmt.Errorf("database size: %w", err)
	}
	return size, nil
}

// CreateReviewsTable drops and recreates user_reviews
func (r *AnalyticsRepository) CreateReviewsTable(ctx context.Context) error {
	db := GetDB(ctx, r.db)
	if err := db.Exec(r.sql(`DROP TABLE IF EXISTS cinema.user_reviews`)).Error; err != nil {
		return fmt.Errorf("drop user_reviews: %w", err)
	}
	if err := db.Exec(r.sql(createReviewsTableSQL)).Error; err != nil {
		return fmt.Errorf("create user_reviews: %w", err)
	}
	return nil
}

// InsertRandomReviews inserts up to count random reviews and returns the table contents
func (r *AnalyticsRepository) InsertRandomReviews(ctx context.Context, count int) ([]entities.Review, error) {
	db := GetDB(ctx, r.db)
	if err := db.Exec(r.sql(insertRandomReviewsSQL), count).Error; err != nil {
		return nil, fmt.Errorf("insert reviews: %w", err)
	}

	var rows []models.UserReview
	if err := db.Raw(r.sql(`SELECT * FROM cinema.user_reviews ORDER BY review_id`)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	reviews := make([]entities.Review, len(rows))
	for i, m := range rows {
		reviews[i] = toReviewEntity(m)
	}
	return reviews, nil
}
