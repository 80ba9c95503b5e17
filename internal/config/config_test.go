package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoadConfig_Defaults(t *testing.T) {
	noEnvFile(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, StoreDriverFile, cfg.Store.Driver)
	assert.Equal(t, "./data", cfg.Store.DataDir)
	assert.Equal(t, "08:00", cfg.Planning.DefaultDailyHour)
	assert.Equal(t, "tr", cfg.Planning.DefaultLocale)
	assert.Equal(t, "email_queue", cfg.RabbitMQ.Queue)
	assert.Empty(t, cfg.RabbitMQ.DSN)
}

func TestLoadConfig_SQLDriverNeedsDSN(t *testing.T) {
	noEnvFile(t)
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DATABASE_DSN")

	t.Setenv("DATABASE_DSN", "postgres://planner@localhost/planner")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	noEnvFile(t)
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "mongo")
}

func TestLoadConfig_BadInteger(t *testing.T) {
	noEnvFile(t)
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PLANNING_DEFAULT_LOCALE=en\nSERVER_PORT=4100\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	// godotenv never overrides variables that are already set
	t.Setenv("SERVER_PORT", "4200")
	t.Cleanup(func() { os.Unsetenv("PLANNING_DEFAULT_LOCALE") })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Planning.DefaultLocale)
	assert.Equal(t, "4200", cfg.Server.Port)
}
