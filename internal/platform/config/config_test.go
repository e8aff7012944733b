package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/finance_engine/internal/platform/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, 100, cfg.ConversionHistoryLimit)
	assert.Equal(t, 5*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, time.Hour, cfg.RateRefreshInterval)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_CURRENCY", "eur")
	t.Setenv("CONVERSION_HISTORY_LIMIT", "25")
	t.Setenv("PROVIDER_TIMEOUT", "250ms")
	t.Setenv("AUTHORITATIVE_CONCURRENCY", "8")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_PROVIDER_URL", "https://rates.example/latest")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "EUR", cfg.BaseCurrency)
	assert.Equal(t, 25, cfg.ConversionHistoryLimit)
	assert.Equal(t, 250*time.Millisecond, cfg.ProviderTimeout)
	assert.Equal(t, 8, cfg.AuthoritativeConcurrency)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://rates.example/latest", cfg.RateProviderURL)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("BASE_CURRENCY", "DOLLAR")
	t.Setenv("CONVERSION_HISTORY_LIMIT", "-3")
	t.Setenv("RATE_REFRESH_INTERVAL", "soon")
	t.Setenv("AUTHORITATIVE_CONCURRENCY", "0")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, 100, cfg.ConversionHistoryLimit)
	assert.Equal(t, time.Hour, cfg.RateRefreshInterval)
	assert.Equal(t, 1, cfg.AuthoritativeConcurrency)
}
