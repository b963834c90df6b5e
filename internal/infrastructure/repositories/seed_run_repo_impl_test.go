package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"streaming-service.backend/internal/domain/entities"
)

func TestSeedRunRepository_CreateAndListRecent(t *testing.T) {
	db := newTestDB(t)
	createSeedRunTable(t, db)
	repo := NewSeedRunRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	older := &entities.SeedRun{ID: uuid.New(), Seed: 1, Status: entities.SeedRunCompleted, Users: 10, StartedAt: base, FinishedAt: base.Add(time.Second)}
	newer := &entities.SeedRun{
		ID: uuid.New(), Seed: 2, Status: entities.SeedRunFailed, Users: 20, MappingGaps: 1,
		Warnings:  []string{"requested 10 movies, but only 3 available"},
		StartedAt: base.Add(time.Hour), FinishedAt: base.Add(time.Hour + time.Second),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	runs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, newer.ID, runs[0].ID)
	require.Equal(t, entities.SeedRunFailed, runs[0].Status)
	require.Equal(t, newer.Warnings, runs[0].Warnings)
	require.Equal(t, 1, runs[0].MappingGaps)
	require.Empty(t, runs[1].Warnings)

	limited, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestSeedRunRepository_EnsureTable(t *testing.T) {
	db := newTestDB(t)
	repo := NewSeedRunRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.EnsureTable(ctx))
	require.NoError(t, repo.EnsureTable(ctx))
	require.True(t, db.Migrator().HasTable("seed_runs"))
}

func TestSeedRunRepository_ListBadWarnings(t *testing.T) {
	db := newTestDB(t)
	createSeedRunTable(t, db)
	mustExec(t, db, `INSERT INTO seed_runs VALUES (?, 1, 'COMPLETED', 0, 0, 0, 0, 0, 0, 0, '{bad', ?, ?)`,
		uuid.New().String(), time.Now(), time.Now())

	_, err := NewSeedRunRepository(db).ListRecent(context.Background(), 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "warnings")
}
