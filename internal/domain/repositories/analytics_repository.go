package repositories

import (
	"context"

	"streaming-service.backend/internal/domain/entities"
)

// AnalyticsRepository runs the reporting and maintenance statements against the cinema schema
type AnalyticsRepository interface {
	AvgReleaseYear(ctx context.Context) (*float64, error)
	UserStatistics(ctx context.Context) ([]entities.UserStatistic, error)
	GenreRatings(ctx context.Context) ([]entities.GenreRating, error)
	TableColumns(ctx context.Context) ([]entities.TableColumn, error)
	DirectorRatings(ctx context.Context) ([]entities.DirectorRating, error)
	UsersBySubscription(ctx context.Context, subscription entities.SubscriptionType, limit, offset int) ([]entities.SubscriberRow, int64, error)
	UpdateUserSubscription(ctx context.Context, userID int64, subscription entities.SubscriptionType) (*entities.SubscriptionUpdate, error)
	DatabaseSize(ctx context.Context) (string, error)
	CreateReviewsTable(ctx context.Context) error
	InsertRandomReviews(ctx context.Context, count int) ([]entities.Review, error)
}

// DatabaseAdmin performs operations that need a maintenance connection
type DatabaseAdmin interface {
	DropDatabase(ctx context.Context, name string) error
}
