package repositories

import (
	"context"

	"streaming-service.backend/internal/domain/entities"
)

// SeedRunRepository stores the audit trail of generation runs
type SeedRunRepository interface {
	Create(ctx context.Context, run *entities.SeedRun) error
	ListRecent(ctx context.Context, limit int) ([]*entities.SeedRun, error)
}

// SchemaRepository defines whole-schema maintenance operations
type SchemaRepository interface {
	// Truncate empties every seeded table
	Truncate(ctx context.Context) error
}
