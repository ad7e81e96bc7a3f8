package config_test

import (
	"testing"

	"github.com/SscSPs/personal_os/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_CURRENCY", "usd ")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
}

func TestLoadConfig_PostgresNeedsURL(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "sqlite")
}
