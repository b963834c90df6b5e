package main

import (
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"streaming-service.backend/internal/config"
	pgconn "streaming-service.backend/internal/infrastructure/datasources/postgres"
	"streaming-service.backend/pkg/logger"
	"streaming-service.backend/pkg/redis"
)

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	openMaintenance = pgconn.NewConnection
	openDB          = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	getStdDB = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
	exit     = os.Exit
)

type rootOptions struct {
	users   int
	movies  int
	seed    int64
	catalog string
}

var rootOpts rootOptions

var rootCmd = &cobra.Command{
	Use:   "cinema [command]",
	Short: "Synthetic cinema dataset generator and analytics client",
	Long: `Generate a synthetic streaming-service dataset from a reference movie catalog,
load it into PostgreSQL and run the analytics reports against it.
Connection settings come from the same environment as the HTTP server.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&rootOpts.users, "users", 0, "Number of users to generate (default SEED_USERS)")
	pf.IntVar(&rootOpts.movies, "movies", 0, "Number of movies to sample (default SEED_MOVIES)")
	pf.Int64Var(&rootOpts.seed, "seed", 0, "Random seed, 0 uses SEED_RANDOM_SEED or the clock")
	pf.StringVar(&rootOpts.catalog, "catalog", "", "Reference catalog CSV (default SEED_CATALOG_PATH)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exit(1)
	}
}
