package repositories

import (
	"context"

	"gorm.io/gorm"
	"streaming-service.backend/internal/domain/entities"
	"streaming-service.backend/internal/infrastructure/models"
)

// MovieRepository implements movie data operations
type MovieRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB, batchSize int) *MovieRepository {
	return &MovieRepository{db: db, batchSize: batchOrDefault(batchSize)}
}

// BulkCreate inserts movies and returns provisional movie_id -> persisted movie_id.
// Rows the database did not return a key for are left out of the mapping.
func (r *MovieRepository) BulkCreate(ctx context.Context, movies []entities.Movie) (map[int64]int64, error) {
	mapping := make(map[int64]int64, len(movies))
	if len(movies) == 0 {
		return mapping, nil
	}
	rows := make([]models.Movie, len(movies))
	for i, m := range movies {
		rows[i] = toMovieModel(m)
	}
	if err := GetDB(ctx, r.db).CreateInBatches(rows, r.batchSize).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].MovieID != 0 {
			mapping[movies[i].ID] = rows[i].MovieID
		}
	}
	return mapping, nil
}

// DeviceRepository implements device data operations
type DeviceRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewDeviceRepository creates a new device repository
func NewDeviceRepository(db *gorm.DB, batchSize int) *DeviceRepository {
	return &DeviceRepository{db: db, batchSize: batchOrDefault(batchSize)}
}

// BulkCreate inserts devices and returns provisional device_id -> persisted device_id
func (r *DeviceRepository) BulkCreate(ctx context.Context, devices []entities.Device) (map[int64]int64, error) {
	mapping := make(map[int64]int64, len(devices))
	if len(devices) == 0 {
		return mapping, nil
	}
	rows := make([]models.Device, len(devices))
	for i, d := range devices {
		rows[i] = toDeviceModel(d)
	}
	if err := GetDB(ctx, r.db).CreateInBatches(rows, r.batchSize).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].DeviceID != 0 {
			mapping[devices[i].ID] = rows[i].DeviceID
		}
	}
	return mapping, nil
}

// ViewingHistoryRepository implements viewing history data operations
type ViewingHistoryRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewViewingHistoryRepository creates a new viewing history repository
func NewViewingHistoryRepository(db *gorm.DB, batchSize int) *ViewingHistoryRepository {
	return &ViewingHistoryRepository{db: db, batchSize: batchOrDefault(batchSize)}
}

// BulkCreate inserts viewing records that already carry persisted movie and device IDs
func (r *ViewingHistoryRepository) BulkCreate(ctx context.Context, records []entities.ViewingRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]models.ViewingHistory, len(records))
	for i, rec := range records {
		rows[i] = toViewingModel(rec)
	}
	return GetDB(ctx, r.db).CreateInBatches(rows, r.batchSize).Error
}
