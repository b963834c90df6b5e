package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"streaming-service.backend/internal/domain/entities"
	"streaming-service.backend/internal/infrastructure/models"
)

// SeedRunRepository stores generation run audit rows
type SeedRunRepository struct {
	db *gorm.DB
}

// NewSeedRunRepository creates a new seed run repository
func NewSeedRunRepository(db *gorm.DB) *SeedRunRepository {
	return &SeedRunRepository{db: db}
}

// EnsureTable creates the seed_runs audit table when it is missing
func (r *SeedRunRepository) EnsureTable(ctx context.Context) error {
	if r.db.WithContext(ctx).Migrator().HasTable(&models.SeedRun{}) {
		return nil
	}
	return r.db.WithContext(ctx).Migrator().CreateTable(&models.SeedRun{})
}

// Create inserts a seed run
func (r *SeedRunRepository) Create(ctx context.Context, run *entities.SeedRun) error {
	warnings, err := json.Marshal(run.Warnings)
	if err != nil {
		return fmt.Errorf("marshal warnings: %w", err)
	}
	m := &models.SeedRun{
		ID:             run.ID,
		Seed:           run.Seed,
		Status:         string(run.Status),
		Users:          run.Users,
		PaymentMethods: run.PaymentMethods,
		Movies:         run.Movies,
		Devices:        run.Devices,
		ViewingHistory: run.ViewingHistory,
		SkippedRows:    run.SkippedRows,
		MappingGaps:    run.MappingGaps,
		Warnings:       datatypes.JSON(warnings),
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// ListRecent returns the latest runs first
func (r *SeedRunRepository) ListRecent(ctx context.Context, limit int) ([]*entities.SeedRun, error) {
	var rows []models.SeedRun
	query := GetDB(ctx, r.db).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	runs := make([]*entities.SeedRun, 0, len(rows))
	for i := range rows {
		run, err := toSeedRunEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func toSeedRunEntity(m *models.SeedRun) (*entities.SeedRun, error) {
	var warnings []string
	if len(m.Warnings) > 0 {
		if err := json.Unmarshal(m.Warnings, &warnings); err != nil {
			return nil, fmt.Errorf("decode seed run %s warnings: %w", m.ID, err)
		}
	}
	return &entities.SeedRun{
		ID:             m.ID,
		Seed:           m.Seed,
		Status:         entities.SeedRunStatus(m.Status),
		Users:          m.Users,
		PaymentMethods: m.PaymentMethods,
		Movies:         m.Movies,
		Devices:        m.Devices,
		ViewingHistory: m.ViewingHistory,
		SkippedRows:    m.SkippedRows,
		MappingGaps:    m.MappingGaps,
		Warnings:       warnings,
		StartedAt:      m.StartedAt,
		FinishedAt:     m.FinishedAt,
	}, nil
}
