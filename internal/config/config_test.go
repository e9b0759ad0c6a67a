package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, 10, cfg.App.ShutdownTimeoutSeconds)
	assert.Equal(t, "your-secret-api-key-12345", cfg.Auth.APIKey)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("API_KEY", "override-key")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.HTTPPort)
	assert.Equal(t, "override-key", cfg.Auth.APIKey)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:  AppConfig{HTTPPort: "8080", ShutdownTimeoutSeconds: 10},
			Auth: AuthConfig{APIKey: "some-key"},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("empty port rejected", func(t *testing.T) {
		cfg := valid()
		cfg.App.HTTPPort = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty api key rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.APIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rate limiting without redis rejected", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.RequestsPerSecond = 10
		assert.Error(t, cfg.Validate())
	})

	t.Run("rate limiting with redis accepted", func(t *testing.T) {
		cfg := valid()
		cfg.Redis.Enabled = true
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.RequestsPerSecond = 10
		assert.NoError(t, cfg.Validate())
	})
}
