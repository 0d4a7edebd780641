package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.App.IsDev())
	assert.Equal(t, StoreDriverBadger, cfg.Store.NormalizedDriver())
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "UGX", cfg.Flutterwave.Currency)
	assert.Equal(t, "test", cfg.Flutterwave.Environment())
}

func TestLoadRejectsUnknownStoreDriver(t *testing.T) {
	t.Setenv("ENSIGO_STORE_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store driver")
}

func TestRedisEnabled(t *testing.T) {
	t.Setenv("ENSIGO_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled())
}

func TestFlutterwaveEnvironmentNormalization(t *testing.T) {
	cfg := FlutterwaveConfig{Env: " LIVE "}
	assert.Equal(t, "live", cfg.Environment())

	cfg = FlutterwaveConfig{}
	assert.Equal(t, "test", cfg.Environment())
}
