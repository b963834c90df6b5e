package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streaming-service.backend/internal/catalog"
	"streaming-service.backend/internal/config"
	"streaming-service.backend/internal/domain/entities"
)

func TestSeedUsecase_GenerateUsesInjectedCatalogAndClock(t *testing.T) {
	orig := loadCatalog
	t.Cleanup(func() { loadCatalog = orig })

	var gotPath, gotToken string
	loadCatalog = func(path, nullToken string) (*catalog.Catalog, error) {
		gotPath, gotToken = path, nullToken
		return catalog.Read(strings.NewReader("title,duration_minutes\nA,90\nB,NULL\n"), nullToken)
	}

	uc := NewSeedUsecase(nil, SeedRepositories{}, nil, config.SeedConfig{
		Users:       1,
		Movies:      2,
		RandomSeed:  9,
		CatalogPath: "fixtures/movies.csv",
		NullToken:   "NULL",
	})
	fixed := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	ds, err := uc.Generate(context.Background(), &entities.SeedInput{DevicesPerUser: 1})
	require.NoError(t, err)
	assert.Equal(t, "fixtures/movies.csv", gotPath)
	assert.Equal(t, "NULL", gotToken)
	assert.Equal(t, fixed, ds.GeneratedAt)
	assert.Len(t, ds.Movies, 2)
	for _, rec := range ds.ViewingHistory {
		assert.False(t, rec.EndTime.After(fixed))
	}
}

func TestSeedUsecase_GenerateCatalogError(t *testing.T) {
	orig := loadCatalog
	t.Cleanup(func() { loadCatalog = orig })
	loadCatalog = func(string, string) (*catalog.Catalog, error) {
		return nil, errors.New("permission denied")
	}

	uc := NewSeedUsecase(nil, SeedRepositories{}, nil, config.SeedConfig{Users: 1, Movies: 1})
	_, err := uc.Generate(context.Background(), nil)
	assert.EqualError(t, err, "permission denied")
}

func TestSeedUsecase_Options(t *testing.T) {
	uc := NewSeedUsecase(nil, SeedRepositories{}, nil, config.SeedConfig{Users: 10, Movies: 20, RandomSeed: 5})

	opts, seed := uc.options(nil)
	assert.Equal(t, 10, opts.Users)
	assert.Equal(t, 20, opts.Movies)
	assert.Equal(t, int64(5), seed)

	opts, seed = uc.options(&entities.SeedInput{Users: 3, PaymentsPerUser: 2, DevicesPerUser: 4})
	assert.Equal(t, 3, opts.Users)
	assert.Equal(t, 20, opts.Movies)
	assert.Equal(t, 2, opts.PaymentsPerUser)
	assert.Equal(t, 4, opts.DevicesPerUser)
	assert.Equal(t, int64(5), seed)
}

func TestInvalidateReports_NilCache(t *testing.T) {
	assert.NotPanics(t, func() { invalidateReports(context.Background(), nil) })
}
