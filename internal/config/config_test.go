package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinetrackr/caffeinetrackr/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 168*time.Hour, cfg.SessionMaxAge)
	assert.Empty(t, cfg.DatabaseURL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SESSION_MAX_AGE", "2h")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://localhost/caffeine")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2*time.Hour, cfg.SessionMaxAge)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "postgres://localhost/caffeine", cfg.DatabaseURL)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 64 characters")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("BASE_URL", "localhost:8080")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BASE_URL")
}

func TestSecureCookies(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		baseURL     string
		want        bool
	}{
		{"local http", "development", "http://localhost:8080", false},
		{"https staging", "staging", "https://staging.caffeinetrackr.app", true},
		{"production", "production", "http://internal:8080", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Environment: tt.environment, BaseURL: tt.baseURL}
			assert.Equal(t, tt.want, cfg.SecureCookies())
		})
	}
}
