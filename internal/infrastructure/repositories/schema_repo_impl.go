package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// seeded tables, children first
var seededTables = []string{"viewing_history", "devices", "payment_methods", "movies", "users"}

// SchemaRepository implements whole-schema maintenance
type SchemaRepository struct {
	db *gorm.DB
}

// NewSchemaRepository creates a new schema repository
func NewSchemaRepository(db *gorm.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// Truncate empties the seeded tables and restarts their identity sequences
func (r *SchemaRepository) Truncate(ctx context.Context) error {
	db := GetDB(ctx, r.db)
	if db.Dialector.Name() == "postgres" {
		stmt := "TRUNCATE TABLE " + strings.Join(seededTables, ", ") + " RESTART IDENTITY CASCADE"
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("truncate tables: %w", err)
		}
		return nil
	}

	for _, table := range seededTables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}
