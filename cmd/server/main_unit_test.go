package main

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"streaming-service.backend/internal/config"
	plog "streaming-service.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origRunServer := runServer
	origGetStdDB := getStdDB

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		runServer = origRunServer
		getStdDB = origGetStdDB
	})
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18080",
			Env:  "development",
		},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			DBName:          "streaming_service",
			SSLMode:         "disable",
			Schema:          "",
			MaintenanceName: "postgres",
		},
		Redis: config.RedisConfig{
			URL: "redis://localhost:6379",
		},
		JWT: config.JWTConfig{
			Secret:       "secret",
			AccessExpiry: 15 * time.Minute,
		},
		Seed: config.SeedConfig{
			Users:       10,
			Movies:      10,
			CatalogPath: "data/movies.csv",
			NullToken:   `\N`,
			BatchSize:   100,
		},
		Reports: config.ReportsConfig{
			CacheTTL: time.Minute,
		},
	}
}

func sqliteOpener(name string) func(string) (*gorm.DB, error) {
	return func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	}
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return errors.New("redis down") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected redis init error")
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = func(string) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_GetStdDBError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = sqliteOpener("main_stddb_err")
	getStdDB = func(*gorm.DB) (*sql.DB, error) { return nil, errors.New("no pool") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected generic db error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return errors.New("no .env") }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = sqliteOpener("main_server_err")
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected server run error")
	}
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Reports.WarmupInterval = time.Hour
		return cfg
	}
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = sqliteOpener("main_success")

	var routes gin.RoutesInfo
	runServer = func(r *gin.Engine, port string) error {
		if port != "18080" {
			t.Errorf("unexpected port %s", port)
		}
		routes = r.Routes()
		return nil
	}

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) == 0 {
		t.Fatal("expected routes to be registered")
	}
}
