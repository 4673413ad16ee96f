package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_busy_timeout=5000", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME,
		last_login DATETIME
	);`)
}

func createAccessKeyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE access_keys (
		id TEXT PRIMARY KEY,
		key_value TEXT NOT NULL UNIQUE,
		credits INTEGER NOT NULL DEFAULT 0,
		used_credits INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_by TEXT,
		created_at DATETIME,
		expires_at DATETIME,
		webhook_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		webhook_url TEXT,
		webhook_secret TEXT
	);`)
}

func createUsageLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE usage_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		key_id TEXT,
		action TEXT NOT NULL,
		details TEXT,
		timestamp DATETIME NOT NULL
	);`)
}

func createLiveCardTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE live_cards (
		id TEXT PRIMARY KEY,
		card_number TEXT NOT NULL,
		exp_month TEXT,
		exp_year TEXT,
		bin TEXT,
		brand TEXT,
		type TEXT,
		level TEXT,
		bank TEXT,
		country TEXT,
		gate_used TEXT,
		full_card TEXT,
		cvv TEXT,
		created_at DATETIME
	);`)
}
