package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_AuditConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("AUDIT_HISTORY_LIMIT", "12")
	os.Setenv("AUDIT_CACHE_TTL_SECONDS", "300")
	defer func() {
		os.Unsetenv("AUDIT_HISTORY_LIMIT")
		os.Unsetenv("AUDIT_CACHE_TTL_SECONDS")
	}()

	// Load config
	cfg, err := Load()
	assert.NoError(t, err)

	// Verify audit config
	assert.Equal(t, 12, cfg.Audit.HistoryLimit)
	assert.Equal(t, 300, cfg.Audit.CacheTTLSeconds)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("AUDIT_HISTORY_LIMIT")
	os.Unsetenv("AUDIT_CACHE_TTL_SECONDS")
	os.Unsetenv("DB_NAME")

	cfg, err := Load()
	assert.NoError(t, err)

	// Verify defaults
	assert.Equal(t, 30, cfg.Audit.HistoryLimit)
	assert.Equal(t, 60, cfg.Audit.CacheTTLSeconds)
	assert.Equal(t, "vindlokaal", cfg.Database.Database)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Database: "vindlokaal",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=vindlokaal sslmode=disable", cfg.DatabaseDSN())
}
