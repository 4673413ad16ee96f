package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"card-admin.backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "0", Env: "development"},
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: fmt.Sprintf("file:main_test_%d?mode=memory&cache=shared", time.Now().UnixNano()),
		},
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
		},
		Bootstrap: config.BootstrapConfig{AdminUsername: "admin", AdminPassword: "BootPass1!"},
		Webhook:   config.WebhookConfig{Timeout: time.Second},
	}
}

func withProcessHooks(t *testing.T, cfg *config.Config) {
	t.Helper()
	origDotenv, origCfg, origRun := loadDotenv, loadCfg, runServer
	t.Cleanup(func() {
		loadDotenv, loadCfg, runServer = origDotenv, origCfg, origRun
	})

	loadDotenv = func(...string) error { return errors.New("no .env") }
	loadCfg = func() *config.Config { return cfg }
	runServer = func(r *gin.Engine, port string) error { return nil }
}

func TestRunMainProcess_BootsWithSQLite(t *testing.T) {
	withProcessHooks(t, testConfig())
	require.NoError(t, runMainProcess())
}

func TestRunMainProcess_DatabaseOpenFailure(t *testing.T) {
	cfg := testConfig()
	withProcessHooks(t, cfg)

	origOpen := openDB
	t.Cleanup(func() { openDB = origOpen })
	openDB = func(config.DatabaseConfig) (*gorm.DB, error) {
		return nil, errors.New("db down")
	}

	err := runMainProcess()
	assert.ErrorContains(t, err, "failed to connect to database")
}

func TestRunMainProcess_RedisFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.URL = "redis://localhost:1"
	withProcessHooks(t, cfg)

	origInit := initRedis
	t.Cleanup(func() { initRedis = origInit })
	initRedis = func(url, password string) error { return errors.New("redis down") }

	err := runMainProcess()
	assert.ErrorContains(t, err, "failed to initialize redis")
}

func TestRunMainProcess_ServerFailureSurfaced(t *testing.T) {
	withProcessHooks(t, testConfig())

	runServer = func(r *gin.Engine, port string) error { return errors.New("port busy") }
	err := runMainProcess()
	assert.ErrorContains(t, err, "failed to start server")
}

func TestOpenDB_SQLiteDefault(t *testing.T) {
	db, err := openDB(config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: fmt.Sprintf("file:open_db_%d?mode=memory&cache=shared", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}
