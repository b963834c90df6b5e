package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"streaming-service.backend/internal/config"
	"streaming-service.backend/internal/infrastructure/jobs"
	"streaming-service.backend/internal/infrastructure/repositories"
	"streaming-service.backend/internal/interfaces/http/handlers"
	"streaming-service.backend/internal/interfaces/http/middleware"
	"streaming-service.backend/internal/usecases"
	"streaming-service.backend/pkg/jwt"
	"streaming-service.backend/pkg/logger"
	"streaming-service.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(ctx, "Database not available, endpoints will return errors", zap.Error(err))
	} else {
		logger.Info(ctx, "Connected to PostgreSQL via GORM", zap.String("schema", cfg.Database.Schema))
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Repositories
	seedRunRepo := repositories.NewSeedRunRepository(db)
	if err := seedRunRepo.EnsureTable(ctx); err != nil {
		logger.Warn(ctx, "Could not ensure seed_runs table", zap.Error(err))
	}
	seedRepos := usecases.SeedRepositories{
		Users:          repositories.NewUserRepository(db, cfg.Seed.BatchSize),
		PaymentMethods: repositories.NewPaymentMethodRepository(db, cfg.Seed.BatchSize),
		Movies:         repositories.NewMovieRepository(db, cfg.Seed.BatchSize),
		Devices:        repositories.NewDeviceRepository(db, cfg.Seed.BatchSize),
		ViewingHistory: repositories.NewViewingHistoryRepository(db, cfg.Seed.BatchSize),
		SeedRuns:       seedRunRepo,
		Schema:         repositories.NewSchemaRepository(db),
	}
	analyticsRepo := repositories.NewAnalyticsRepository(db, cfg.Database.Schema)
	uow := repositories.NewUnitOfWork(db)
	reportCache := redis.NewReportCache(cfg.Reports.CacheTTL)

	// Usecases. DROP DATABASE is CLI only, so no maintenance connection here.
	seedUsecase := usecases.NewSeedUsecase(uow, seedRepos, reportCache, cfg.Seed)
	analyticsUsecase := usecases.NewAnalyticsUsecase(analyticsRepo, nil, reportCache)

	// Handlers
	reportHandler := handlers.NewReportHandler(analyticsUsecase)
	adminHandler := handlers.NewAdminHandler(analyticsUsecase, seedUsecase)

	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var warmupJob *jobs.ReportWarmupJob
	if cfg.Reports.WarmupInterval > 0 {
		warmupJob = jobs.NewReportWarmupJob(analyticsUsecase, cfg.Reports.WarmupInterval)
		go warmupJob.Start(jobCtx)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		reportHandler:  reportHandler,
		adminHandler:   adminHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
	})

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(ctx, "Shutting down server")
		if warmupJob != nil {
			warmupJob.Stop()
		}
		cancel()
	}()

	logger.Info(ctx, "Streaming service backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("api", "http://localhost:"+cfg.Server.Port+"/api/v1"),
	)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
