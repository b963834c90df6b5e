package usecases

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"streaming-service.backend/internal/catalog"
	"streaming-service.backend/internal/config"
	"streaming-service.backend/internal/domain/entities"
	domainerrors "streaming-service.backend/internal/domain/errors"
	"streaming-service.backend/internal/domain/repositories"
	"streaming-service.backend/internal/generator"
	"streaming-service.backend/pkg/logger"
	"streaming-service.backend/pkg/metrics"
	"streaming-service.backend/pkg/utils"
)

var loadCatalog = catalog.Load

// SeedRepositories groups the stores a seed run writes to
type SeedRepositories struct {
	Users          repositories.UserRepository
	PaymentMethods repositories.PaymentMethodRepository
	Movies         repositories.MovieRepository
	Devices        repositories.DeviceRepository
	ViewingHistory repositories.ViewingHistoryRepository
	SeedRuns       repositories.SeedRunRepository
	Schema         repositories.SchemaRepository
}

// PersistResult reports what a persist step actually wrote
type PersistResult struct {
	Users          int
	PaymentMethods int
	Movies         int
	Devices        int
	ViewingHistory int
	MappingGaps    []*domainerrors.MappingGapError
}

// SeedUsecase generates synthetic datasets and loads them into the cinema schema
type SeedUsecase struct {
	uow   repositories.UnitOfWork
	repos SeedRepositories
	cache ReportCache
	cfg   config.SeedConfig
	now   func() time.Time
}

// NewSeedUsecase creates a new seed usecase
func NewSeedUsecase(
	uow repositories.UnitOfWork,
	repos SeedRepositories,
	cache ReportCache,
	cfg config.SeedConfig,
) *SeedUsecase {
	return &SeedUsecase{
		uow:   uow,
		repos: repos,
		cache: cache,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Generate builds a dataset in memory without touching the database
func (u *SeedUsecase) Generate(ctx context.Context, input *entities.SeedInput) (*entities.Dataset, error) {
	opts, seed := u.options(input)

	cat, err := loadCatalog(u.cfg.CatalogPath, u.cfg.NullToken)
	if err != nil {
		return nil, err
	}

	gen := generator.New(seed, u.now().UTC())
	ds, report, err := gen.Dataset(cat, opts)
	if err != nil {
		return nil, err
	}

	if report.Shortfall() {
		logger.Warn(ctx, "Catalog shortfall",
			zap.Int("requested", report.Requested),
			zap.Int("available", report.Available),
		)
	}
	for _, skipped := range report.Skipped {
		logger.Warn(ctx, "Skipping catalog row", zap.Error(skipped))
	}

	metrics.AddGenerated("users", len(ds.Users))
	metrics.AddGenerated("payment_methods", len(ds.PaymentMethods))
	metrics.AddGenerated("movies", len(ds.Movies))
	metrics.AddGenerated("devices", len(ds.Devices))
	metrics.AddGenerated("viewing_history", len(ds.ViewingHistory))
	metrics.AddSkipped(metrics.ReasonParse, len(report.Skipped))

	logger.Info(ctx, "Dataset generated",
		zap.Int64("seed", ds.Seed),
		zap.Int("users", len(ds.Users)),
		zap.Int("movies", len(ds.Movies)),
		zap.Int("devices", len(ds.Devices)),
		zap.Int("viewing_history", len(ds.ViewingHistory)),
	)
	return ds, nil
}

// Persist writes a dataset in one transaction
func (u *SeedUsecase) Persist(ctx context.Context, ds *entities.Dataset) (*PersistResult, error) {
	var result *PersistResult
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		result, err = u.persist(txCtx, ds)
		return err
	})
	if err != nil {
		return nil, err
	}
	invalidateReports(ctx, u.cache)
	return result, nil
}

// Run generates a dataset, persists it and records the run in the audit table.
// A failed run is still recorded.
func (u *SeedUsecase) Run(ctx context.Context, input *entities.SeedInput) (*entities.SeedRun, error) {
	run := &entities.SeedRun{
		ID:        utils.GenerateUUIDv7(),
		Status:    entities.SeedRunFailed,
		StartedAt: u.now().UTC(),
	}
	ctx = logger.WithSeedRun(ctx, run.ID.String())

	runErr := u.run(ctx, input, run)

	run.FinishedAt = u.now().UTC()
	if runErr == nil {
		run.Status = entities.SeedRunCompleted
		metrics.ObserveSeedRun(metrics.OutcomeCompleted, run.FinishedAt.Sub(run.StartedAt))
	} else {
		run.Warnings = append(run.Warnings, runErr.Error())
		metrics.ObserveSeedRun(metrics.OutcomeFailed, run.FinishedAt.Sub(run.StartedAt))
		logger.Error(ctx, "Seed run failed", zap.Error(runErr))
	}

	if u.repos.SeedRuns != nil {
		if err := u.repos.SeedRuns.Create(ctx, run); err != nil {
			logger.Warn(ctx, "Failed to record seed run", zap.Error(err))
		}
	}

	if runErr != nil {
		return run, runErr
	}

	logger.Info(ctx, "Seed run completed",
		zap.Int("mapping_gaps", run.MappingGaps),
		zap.Int("skipped_rows", run.SkippedRows),
		zap.Duration("elapsed", run.FinishedAt.Sub(run.StartedAt)),
	)
	return run, nil
}

func (u *SeedUsecase) run(ctx context.Context, input *entities.SeedInput, run *entities.SeedRun) error {
	ds, err := u.Generate(ctx, input)
	if err != nil {
		return err
	}
	run.Seed = ds.Seed
	run.SkippedRows = ds.SkippedRows
	run.Warnings = append(run.Warnings, ds.Warnings...)

	truncate := input != nil && input.Truncate
	var result *PersistResult
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if truncate {
			if err := u.repos.Schema.Truncate(txCtx); err != nil {
				return err
			}
		}
		result, err = u.persist(txCtx, ds)
		return err
	})
	if err != nil {
		return err
	}

	run.Users = result.Users
	run.PaymentMethods = result.PaymentMethods
	run.Movies = result.Movies
	run.Devices = result.Devices
	run.ViewingHistory = result.ViewingHistory
	run.MappingGaps = len(result.MappingGaps)
	for _, gap := range result.MappingGaps {
		run.Warnings = append(run.Warnings, gap.Error())
	}

	invalidateReports(ctx, u.cache)
	return nil
}

// Truncate empties every seeded table
func (u *SeedUsecase) Truncate(ctx context.Context) error {
	if err := u.uow.Do(ctx, u.repos.Schema.Truncate); err != nil {
		return err
	}
	invalidateReports(ctx, u.cache)
	logger.Info(ctx, "Seeded tables truncated")
	return nil
}

// ListRuns returns the most recent seed runs first
func (u *SeedUsecase) ListRuns(ctx context.Context, limit int) ([]*entities.SeedRun, error) {
	return u.repos.SeedRuns.ListRecent(ctx, limit)
}

// persist must run inside a unit of work. Movies and devices go in before viewing
// history so their persisted ids are known.
func (u *SeedUsecase) persist(ctx context.Context, ds *entities.Dataset) (*PersistResult, error) {
	if ds == nil {
		return nil, fmt.Errorf("persist dataset: %w", domainerrors.ErrInvalidInput)
	}

	if err := u.repos.Users.BulkCreate(ctx, ds.Users); err != nil {
		return nil, fmt.Errorf("insert users: %w", err)
	}
	if err := u.repos.PaymentMethods.BulkCreate(ctx, ds.PaymentMethods); err != nil {
		return nil, fmt.Errorf("insert payment methods: %w", err)
	}

	movieIDs, err := u.repos.Movies.BulkCreate(ctx, ds.Movies)
	if err != nil {
		return nil, fmt.Errorf("insert movies: %w", err)
	}
	deviceIDs, err := u.repos.Devices.BulkCreate(ctx, ds.Devices)
	if err != nil {
		return nil, fmt.Errorf("insert devices: %w", err)
	}

	history, gaps := TranslateViewingHistory(ds.ViewingHistory, movieIDs, deviceIDs)
	for _, gap := range gaps {
		logger.Warn(ctx, "Dropping viewing record", zap.Error(gap))
	}
	metrics.AddSkipped(metrics.ReasonMappingGap, len(gaps))

	if err := u.repos.ViewingHistory.BulkCreate(ctx, history); err != nil {
		return nil, fmt.Errorf("insert viewing history: %w", err)
	}

	return &PersistResult{
		Users:          len(ds.Users),
		PaymentMethods: len(ds.PaymentMethods),
		Movies:         len(movieIDs),
		Devices:        len(deviceIDs),
		ViewingHistory: len(history),
		MappingGaps:    gaps,
	}, nil
}

func (u *SeedUsecase) options(input *entities.SeedInput) (generator.DatasetOptions, int64) {
	opts := generator.DatasetOptions{
		Users:  u.cfg.Users,
		Movies: u.cfg.Movies,
	}
	seed := u.cfg.RandomSeed
	if input == nil {
		return opts, seed
	}
	if input.Users > 0 {
		opts.Users = input.Users
	}
	if input.Movies > 0 {
		opts.Movies = input.Movies
	}
	if input.Seed != 0 {
		seed = input.Seed
	}
	opts.PaymentsPerUser = input.PaymentsPerUser
	opts.DevicesPerUser = input.DevicesPerUser
	return opts, seed
}

// TranslateViewingHistory rewrites provisional movie and device ids to persisted ones.
// Records referencing an id missing from either map are dropped and reported.
func TranslateViewingHistory(
	records []entities.ViewingRecord,
	movieIDs, deviceIDs map[int64]int64,
) ([]entities.ViewingRecord, []*domainerrors.MappingGapError) {
	out := make([]entities.ViewingRecord, 0, len(records))
	var gaps []*domainerrors.MappingGapError

	for _, rec := range records {
		movieID, ok := movieIDs[rec.MovieID]
		if !ok {
			gaps = append(gaps, &domainerrors.MappingGapError{Kind: "movie", ProvisionalID: rec.MovieID})
			continue
		}
		deviceID, ok := deviceIDs[rec.DeviceID]
		if !ok {
			gaps = append(gaps, &domainerrors.MappingGapError{Kind: "device", ProvisionalID: rec.DeviceID})
			continue
		}
		rec.MovieID = movieID
		rec.DeviceID = deviceID
		out = append(out, rec)
	}
	return out, gaps
}
