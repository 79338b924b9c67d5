package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{"PORT", "APP_ENV", "NODE_ENV", "STATIC_DIR", "JOURNAL_DSN", "JOURNAL_LIMIT", "CORS_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "public", cfg.StaticDirectory)
	assert.Equal(t, ":memory:", cfg.JournalDSN)
	assert.Equal(t, 1000, cfg.JournalLimit)
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("JOURNAL_LIMIT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 1000, cfg.JournalLimit)
}

func TestLoad_DotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=4242\nSERVER_NAME=Test API\n"), 0644))

	t.Setenv("ENV_FILE", envFile)
	t.Setenv("PORT", "")
	t.Setenv("SERVER_NAME", "")
	// godotenv does not override variables that are already set, so unset them for the load.
	os.Unsetenv("PORT")
	os.Unsetenv("SERVER_NAME")

	cfg := Load()

	assert.Equal(t, 4242, cfg.Port)
	assert.Equal(t, "Test API", cfg.ServerName)
}
