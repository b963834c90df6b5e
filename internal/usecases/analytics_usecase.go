package usecases

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"streaming-service.backend/internal/domain/entities"
	domainerrors "streaming-service.backend/internal/domain/errors"
	"streaming-service.backend/internal/domain/repositories"
	"streaming-service.backend/pkg/logger"
	"streaming-service.backend/pkg/metrics"
	"streaming-service.backend/pkg/utils"
)

// Report names, also used as cache keys
const (
	ReportAvgReleaseYear     = "avg-release-year"
	ReportUserStatistics     = "user-statistics"
	ReportGenreRatings       = "genre-ratings"
	ReportTableColumns       = "table-columns"
	ReportDirectorRatings    = "director-ratings"
	ReportDatabaseSize       = "database-size"
	ReportUsersBySubscription = "users-by-subscription"
)

const (
	DefaultReviewCount = 50
	MaxReviewCount     = 1000
)

// StaticReports lists the reports that take no parameters
var StaticReports = []string{
	ReportAvgReleaseYear,
	ReportUserStatistics,
	ReportGenreRatings,
	ReportTableColumns,
	ReportDirectorRatings,
	ReportDatabaseSize,
}

// AvgReleaseYearReport wraps the scalar so an empty movies table renders as null
type AvgReleaseYearReport struct {
	AvgReleaseYear *float64 `json:"avgReleaseYear"`
}

// DatabaseSizeReport is the pretty-printed size of the current database
type DatabaseSizeReport struct {
	Size string `json:"size"`
}

// SubscribersPage is one page of the users-by-subscription report
type SubscribersPage struct {
	Items []entities.SubscriberRow `json:"items"`
	Meta  utils.PaginationMeta     `json:"meta"`
}

// AnalyticsUsecase runs the reporting menu against the cinema schema
type AnalyticsUsecase struct {
	repo  repositories.AnalyticsRepository
	admin repositories.DatabaseAdmin
	cache ReportCache
}

// NewAnalyticsUsecase creates a new analytics usecase. admin may be nil when
// no maintenance connection is configured.
func NewAnalyticsUsecase(
	repo repositories.AnalyticsRepository,
	admin repositories.DatabaseAdmin,
	cache ReportCache,
) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		repo:  repo,
		admin: admin,
		cache: cache,
	}
}

func cached[T any](ctx context.Context, cache ReportCache, key string, load func(context.Context) (T, error)) (T, error) {
	var out T
	if cache != nil {
		hit, err := cache.Get(ctx, key, &out)
		if err != nil {
			logger.Warn(ctx, "Report cache read failed", zap.String("report", key), zap.Error(err))
		}
		metrics.CacheHit(hit)
		if hit {
			return out, nil
		}
	}

	out, err := load(ctx)
	if err != nil {
		return out, err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, out); err != nil {
			logger.Warn(ctx, "Report cache write failed", zap.String("report", key), zap.Error(err))
		}
	}
	return out, nil
}

// AvgReleaseYear returns the average release year over all movies
func (u *AnalyticsUsecase) AvgReleaseYear(ctx context.Context) (*AvgReleaseYearReport, error) {
	return cached(ctx, u.cache, ReportAvgReleaseYear, u.loadAvgReleaseYear)
}

func (u *AnalyticsUsecase) loadAvgReleaseYear(ctx context.Context) (*AvgReleaseYearReport, error) {
	avg, err := u.repo.AvgReleaseYear(ctx)
	if err != nil {
		return nil, err
	}
	return &AvgReleaseYearReport{AvgReleaseYear: avg}, nil
}

// UserStatistics returns per-user activity
func (u *AnalyticsUsecase) UserStatistics(ctx context.Context) ([]entities.UserStatistic, error) {
	return cached(ctx, u.cache, ReportUserStatistics, u.repo.UserStatistics)
}

// GenreRatings returns per-genre ratings and completion
func (u *AnalyticsUsecase) GenreRatings(ctx context.Context) ([]entities.GenreRating, error) {
	return cached(ctx, u.cache, ReportGenreRatings, u.repo.GenreRatings)
}

// TableColumns returns column metadata of the cinema tables
func (u *AnalyticsUsecase) TableColumns(ctx context.Context) ([]entities.TableColumn, error) {
	return cached(ctx, u.cache, ReportTableColumns, u.repo.TableColumns)
}

// DirectorRatings returns each director's average IMDb rating
func (u *AnalyticsUsecase) DirectorRatings(ctx context.Context) ([]entities.DirectorRating, error) {
	return cached(ctx, u.cache, ReportDirectorRatings, u.repo.DirectorRatings)
}

// DatabaseSize returns the size of the current database
func (u *AnalyticsUsecase) DatabaseSize(ctx context.Context) (*DatabaseSizeReport, error) {
	return cached(ctx, u.cache, ReportDatabaseSize, u.loadDatabaseSize)
}

func (u *AnalyticsUsecase) loadDatabaseSize(ctx context.Context) (*DatabaseSizeReport, error) {
	size, err := u.repo.DatabaseSize(ctx)
	if err != nil {
		return nil, err
	}
	return &DatabaseSizeReport{Size: size}, nil
}

// UsersBySubscription returns one page of users on the given tier
func (u *AnalyticsUsecase) UsersBySubscription(ctx context.Context, subscription string, page, limit int) (*SubscribersPage, error) {
	sub := entities.SubscriptionType(subscription)
	if !sub.Valid() {
		return nil, domainerrors.ErrInvalidSubscription
	}

	p := utils.GetBoundedPaginationParams(page, limit)
	key := ReportUsersBySubscription + ":" + string(sub) + ":" + strconv.Itoa(p.Page) + ":" + strconv.Itoa(p.Limit)

	return cached(ctx, u.cache, key, func(ctx context.Context) (*SubscribersPage, error) {
		rows, total, err := u.repo.UsersBySubscription(ctx, sub, p.Limit, p.CalculateOffset())
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []entities.SubscriberRow{}
		}
		return &SubscribersPage{
			Items: rows,
			Meta:  utils.CalculateMeta(total, p.Page, p.Limit),
		}, nil
	})
}

// Report runs a parameterless report by name
func (u *AnalyticsUsecase) Report(ctx context.Context, name string) (interface{}, error) {
	switch name {
	case ReportAvgReleaseYear:
		return u.AvgReleaseYear(ctx)
	case ReportUserStatistics:
		return u.UserStatistics(ctx)
	case ReportGenreRatings:
		return u.GenreRatings(ctx)
	case ReportTableColumns:
		return u.TableColumns(ctx)
	case ReportDirectorRatings:
		return u.DirectorRatings(ctx)
	case ReportDatabaseSize:
		return u.DatabaseSize(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown report %q", domainerrors.ErrNotFound, name)
	}
}

// WarmUp drops the cache and recomputes every parameterless report.
// It keeps going past a failing report and returns the first error.
func (u *AnalyticsUsecase) WarmUp(ctx context.Context) error {
	invalidateReports(ctx, u.cache)

	var firstErr error
	for _, name := range StaticReports {
		if _, err := u.Report(ctx, name); err != nil {
			logger.Warn(ctx, "Report warm-up failed", zap.String("report", name), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("warm up %s: %w", name, err)
			}
		}
	}
	return firstErr
}

// UpdateUserSubscription moves a user to another tier through the stored procedure
func (u *AnalyticsUsecase) UpdateUserSubscription(ctx context.Context, userID int64, subscription string) (*entities.SubscriptionUpdate, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", domainerrors.ErrInvalidInput)
	}
	sub := entities.SubscriptionType(subscription)
	if !sub.Valid() {
		return nil, domainerrors.ErrInvalidSubscription
	}

	updated, err := u.repo.UpdateUserSubscription(ctx, userID, sub)
	if err != nil {
		return nil, err
	}
	invalidateReports(ctx, u.cache)

	logger.Info(ctx, "User subscription updated",
		zap.Int64("user_id", userID),
		zap.String("subscription", string(sub)),
	)
	return updated, nil
}

// CreateReviewsTable recreates cinema.user_reviews
func (u *AnalyticsUsecase) CreateReviewsTable(ctx context.Context) error {
	if err := u.repo.CreateReviewsTable(ctx); err != nil {
		return err
	}
	invalidateReports(ctx, u.cache)
	return nil
}

// InsertRandomReviews adds reviews for random viewed movies and returns the table contents.
// A count of 0 uses DefaultReviewCount.
func (u *AnalyticsUsecase) InsertRandomReviews(ctx context.Context, count int) ([]entities.Review, error) {
	if count == 0 {
		count = DefaultReviewCount
	}
	if count < 0 || count > MaxReviewCount {
		return nil, fmt.Errorf("%w: review count must be between 1 and %d", domainerrors.ErrInvalidInput, MaxReviewCount)
	}

	reviews, err := u.repo.InsertRandomReviews(ctx, count)
	if err != nil {
		return nil, err
	}
	invalidateReports(ctx, u.cache)
	return reviews, nil
}

// DropDatabase terminates connections to name and drops it
func (u *AnalyticsUsecase) DropDatabase(ctx context.Context, name string) error {
	if u.admin == nil {
		return fmt.Errorf("drop database: no maintenance connection configured")
	}
	if err := u.admin.DropDatabase(ctx, name); err != nil {
		return err
	}
	invalidateReports(ctx, u.cache)
	logger.Warn(ctx, "Database dropped", zap.String("database", name))
	return nil
}
