package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		user_id INTEGER PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL,
		registration_date DATE NOT NULL,
		subscription_type TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE payment_methods (
		payment_method_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		method_type TEXT NOT NULL,
		card_last_digits TEXT,
		is_default BOOLEAN NOT NULL DEFAULT 0,
		added_date DATE NOT NULL,
		expiry_date DATE
	);`)
}

func createMovieTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE movies (
		movie_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		director TEXT,
		release_year INTEGER,
		genres TEXT,
		duration_minutes INTEGER,
		imdb_rating REAL
	);`)
}

func createDeviceTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE devices (
		device_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		device_type TEXT NOT NULL,
		device_name TEXT,
		last_login_date DATE,
		app_version TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1
	);`)
	mustExec(t, db, `CREATE TABLE viewing_history (
		view_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		movie_id INTEGER NOT NULL,
		device_id INTEGER NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		viewed_percentage INTEGER NOT NULL
	);`)
}

func createSeedRunTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE seed_runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		status TEXT NOT NULL,
		users INTEGER NOT NULL,
		payment_methods INTEGER NOT NULL,
		movies INTEGER NOT NULL,
		devices INTEGER NOT NULL,
		viewing_history INTEGER NOT NULL,
		skipped_rows INTEGER NOT NULL,
		mapping_gaps INTEGER NOT NULL,
		warnings TEXT,
		started_at DATETIME NOT NULL,
		finished_at DATETIME NOT NULL
	);`)
}

func createCinemaTables(t *testing.T, db *gorm.DB) {
	createUserTables(t, db)
	createMovieTable(t, db)
	createDeviceTables(t, db)
}
