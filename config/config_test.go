package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "MONGODB_DATABASE", "JWT_EXPIRES_IN", "ISSUE_CREATE_LIMIT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, "civictrack", cfg.MongoDatabase)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 50, cfg.IssueCreateLimit)
	assert.Equal(t, "issue-limit", cfg.IssueLimitPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", StoreMemory)
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("ISSUE_CREATE_LIMIT", "5")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 5, cfg.IssueCreateLimit)
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "7d")
	t.Setenv("ISSUE_CREATE_LIMIT", "lots")

	cfg := Load()

	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 50, cfg.IssueCreateLimit)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CIVICTRACK_TEST_VALUE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CIVICTRACK_TEST_VALUE") })

	LoadEnvFile(path)
	assert.Equal(t, "from-file", os.Getenv("CIVICTRACK_TEST_VALUE"))

	LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { SetupLogging("info", "text") })

	SetupLogging("debug", "json")
	assert.Equal(t, log.DebugLevel, log.Log.(*log.Logger).Level)

	SetupLogging("chatty", "text")
	assert.Equal(t, log.InfoLevel, log.Log.(*log.Logger).Level)
}

func TestConnectDBRequiresURI(t *testing.T) {
	_, err := ConnectDB(t.Context(), "", "civictrack")
	assert.Error(t, err)
}
