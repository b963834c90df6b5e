package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"streaming-service.backend/internal/config"
	"streaming-service.backend/internal/domain/entities"
	"streaming-service.backend/internal/infrastructure/repositories"
	"streaming-service.backend/internal/usecases"
	"streaming-service.backend/pkg/logger"
	"streaming-service.backend/pkg/redis"
)

// app holds what a database-backed command needs
type app struct {
	cfg       *config.Config
	db        *gorm.DB
	seed      *usecases.SeedUsecase
	analytics *usecases.AnalyticsUsecase
}

// loadConfig reads the environment and applies the persistent flags on top
func loadConfig() *config.Config {
	_ = loadDotenv()
	cfg := loadCfg()
	if rootOpts.catalog != "" {
		cfg.Seed.CatalogPath = rootOpts.catalog
	}
	initLog(cfg.Server.Env)
	return cfg
}

func seedInput(truncate bool) *entities.SeedInput {
	return &entities.SeedInput{
		Users:    rootOpts.users,
		Movies:   rootOpts.movies,
		Seed:     rootOpts.seed,
		Truncate: truncate,
	}
}

// newApp connects to the target database. Redis is optional for the CLI:
// without it cache invalidation is skipped.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var cache usecases.ReportCache
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Warn(ctx, "Redis unavailable, report cache will not be invalidated", zap.Error(err))
		redis.SetClient(nil)
	} else {
		cache = redis.NewReportCache(cfg.Reports.CacheTTL)
	}

	seedRunRepo := repositories.NewSeedRunRepository(db)
	if err := seedRunRepo.EnsureTable(ctx); err != nil {
		logger.Warn(ctx, "Could not ensure seed_runs table", zap.Error(err))
	}

	repos := usecases.SeedRepositories{
		Users:          repositories.NewUserRepository(db, cfg.Seed.BatchSize),
		PaymentMethods: repositories.NewPaymentMethodRepository(db, cfg.Seed.BatchSize),
		Movies:         repositories.NewMovieRepository(db, cfg.Seed.BatchSize),
		Devices:        repositories.NewDeviceRepository(db, cfg.Seed.BatchSize),
		ViewingHistory: repositories.NewViewingHistoryRepository(db, cfg.Seed.BatchSize),
		SeedRuns:       seedRunRepo,
		Schema:         repositories.NewSchemaRepository(db),
	}
	uow := repositories.NewUnitOfWork(db)

	return &app{
		cfg:       cfg,
		db:        db,
		seed:      usecases.NewSeedUsecase(uow, repos, cache, cfg.Seed),
		analytics: usecases.NewAnalyticsUsecase(repositories.NewAnalyticsRepository(db, cfg.Database.Schema), nil, cache),
	}, nil
}

func (a *app) Close() {
	if sqlDB, err := getStdDB(a.db); err == nil {
		_ = sqlDB.Close()
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
