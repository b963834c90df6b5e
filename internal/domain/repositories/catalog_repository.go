package repositories

import (
	"context"

	"streaming-service.backend/internal/domain/entities"
)

// MovieRepository defines movie data operations
type MovieRepository interface {
	// BulkCreate inserts movies and maps provisional movie IDs to persisted ones
	BulkCreate(ctx context.Context, movies []entities.Movie) (map[int64]int64, error)
}

// DeviceRepository defines device data operations
type DeviceRepository interface {
	// BulkCreate inserts devices and maps provisional device IDs to persisted ones
	BulkCreate(ctx context.Context, devices []entities.Device) (map[int64]int64, error)
}

// ViewingHistoryRepository defines viewing history data operations
type ViewingHistoryRepository interface {
	// BulkCreate inserts records whose IDs are already persisted ones
	BulkCreate(ctx context.Context, records []entities.ViewingRecord) error
}
