package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, "./data", cfg.DataDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("DATA_DIR", "/var/lib/laundry")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file", cfg.StorageDriver)
	assert.Equal(t, "/var/lib/laundry", cfg.DataDir)
}
