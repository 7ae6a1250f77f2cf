package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Search.RequestTimeout)
	assert.Equal(t, 3, cfg.Search.FailureThreshold)
	assert.Equal(t, 60*time.Second, cfg.Search.CircuitCooldown)
	assert.Equal(t, time.Second, cfg.Search.MinProviderDelay)
	assert.Equal(t, 20, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	assert.Equal(t, "https://api.adzuna.com/v1/api/jobs", cfg.Providers.Adzuna.BaseURL)
	assert.Equal(t, "us", cfg.Providers.Adzuna.Country)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SEARCH_FAILURE_THRESHOLD", "5")
	t.Setenv("SEARCH_CIRCUIT_COOLDOWN", "30s")
	t.Setenv("ADZUNA_APP_ID", "env-app-id")
	t.Setenv("JOOBLE_API_KEY", "env-jooble-key")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Search.FailureThreshold)
	assert.Equal(t, 30*time.Second, cfg.Search.CircuitCooldown)
	assert.Equal(t, "env-app-id", cfg.Providers.Adzuna.AppID)
	assert.Equal(t, "env-jooble-key", cfg.Providers.Jooble.APIKey)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadConfigYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9090
search:
  request_timeout: 10s
  default_limit: 25
providers:
  adzuna:
    country: gb
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Search.RequestTimeout)
	assert.Equal(t, 25, cfg.Search.DefaultLimit)
	assert.Equal(t, "gb", cfg.Providers.Adzuna.Country)
	// Untouched sections keep their defaults
	assert.Equal(t, 100, cfg.Search.MaxLimit)
}

func TestLoadConfigExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_ADZUNA_KEY", "expanded-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
providers:
  adzuna:
    app_key: ${TEST_ADZUNA_KEY}
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-secret", cfg.Providers.Adzuna.AppKey)
}

func TestExpandEnvVarsLeavesUnsetPlaceholders(t *testing.T) {
	assert.Equal(t, "${DEFINITELY_NOT_SET_XYZ}", expandEnvVars("${DEFINITELY_NOT_SET_XYZ}"))
}
