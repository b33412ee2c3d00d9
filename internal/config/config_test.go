package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
log:
  level: debug
http:
  address: ":9090"
database:
  url: postgres://u:p@db:5432/restorun
stan:
  url: nats://nats:4222
  subject: pos-orders
catalog:
  store: memory
auth:
  session_ttl: 30m
analytics:
  top_limit: 3
  default_timezone: Europe/Berlin
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInitConfig_File(t *testing.T) {
	cfg, err := InitConfig(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "postgres://u:p@db:5432/restorun", cfg.DatabaseURL)
	assert.Equal(t, "pos-orders", cfg.Stan.Subject)
	assert.Equal(t, "memory", cfg.CatalogStore)
	assert.Equal(t, 30*time.Minute, cfg.Auth.SessionTTL)
	assert.Equal(t, 3, cfg.Analytics.TopLimit)
	assert.Equal(t, "Europe/Berlin", cfg.Analytics.DefaultTimezone)
	// defaults
	assert.Equal(t, "backoffice_events", cfg.Rabbit.Exchange)
	assert.Equal(t, int64(10<<20), cfg.Uploads.MaxBytes)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env@localhost/env")
	t.Setenv("STAN_SUBJECT", "from-env")

	cfg, err := InitConfig(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env@localhost/env", cfg.DatabaseURL)
	assert.Equal(t, "from-env", cfg.Stan.Subject)
}

func TestInitConfig_Invalid(t *testing.T) {
	_, err := InitConfig(writeConfig(t, "catalog:\n  store: mongo\n"))
	assert.Error(t, err)

	_, err = InitConfig(writeConfig(t, "analytics:\n  default_timezone: Nowhere/City\n"))
	assert.Error(t, err)

	_, err = InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAnalyticsLocation(t *testing.T) {
	loc, err := AnalyticsConfig{DefaultTimezone: "Europe/Moscow"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())

	_, err = AnalyticsConfig{DefaultTimezone: "Nowhere/City"}.Location()
	assert.ErrorContains(t, err, "Nowhere/City")
}
