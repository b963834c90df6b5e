package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Seed     SeedConfig
	Reports  ReportsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Schema          string
	MaintenanceName string
}

// URL returns the database connection URL. The schema is put on the search_path
// so unqualified table names resolve to the cinema tables.
func (c DatabaseConfig) URL() string {
	return c.urlFor(c.DBName) + "&search_path=" + c.Schema
}

// MaintenanceURL returns the URL of the maintenance database used for DROP DATABASE
func (c DatabaseConfig) MaintenanceURL() string {
	return c.urlFor(c.MaintenanceName)
}

func (c DatabaseConfig) urlFor(dbName string) string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + dbName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds JWT configuration for admin endpoints
type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// SeedConfig holds synthetic dataset generation defaults
type SeedConfig struct {
	Users       int
	Movies      int
	RandomSeed  int64
	CatalogPath string
	NullToken   string
	BatchSize   int
}

// ReportsConfig holds analytics report caching settings
type ReportsConfig struct {
	CacheTTL       time.Duration
	WarmupInterval time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "streaming_service"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			Schema:          getEnv("DB_SCHEMA", "cinema"),
			MaintenanceName: getEnv("DB_MAINTENANCE_NAME", "postgres"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:       getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRY", 12*time.Hour),
		},
		Seed: SeedConfig{
			Users:       getEnvAsInt("SEED_USERS", 1000),
			Movies:      getEnvAsInt("SEED_MOVIES", 1000),
			RandomSeed:  getEnvAsInt64("SEED_RANDOM_SEED", 0),
			CatalogPath: getEnv("SEED_CATALOG_PATH", "data/movies.csv"),
			NullToken:   getEnv("SEED_NULL_TOKEN", `\N`),
			BatchSize:   getEnvAsInt("SEED_BATCH_SIZE", 500),
		},
		Reports: ReportsConfig{
			CacheTTL:       getEnvAsDuration("REPORT_CACHE_TTL", 5*time.Minute),
			WarmupInterval: getEnvAsDuration("REPORT_WARMUP_INTERVAL", 10*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
