package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MemoryCatalog(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
log:
  level: debug
catalog:
  source: memory
  tools:
    - code: LADW
      type: Ladder
      brand: Werner
      daily_charge: "1.99"
      weekday_charge: true
      weekend_charge: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddress())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	tools, err := cfg.Catalog.SeedTools()
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "1.99", tools[0].Policy.DailyCharge.StringFixed(2))
	assert.True(t, tools[0].Policy.WeekendBillable)
	assert.False(t, tools[0].Policy.HolidayBillable)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "billing")
	t.Setenv("DB_NAME", "catalog")

	cfg, err := Load(writeConfig(t, "server:\n  port: 8080\n"))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.Equal(t, "postgres://billing:@db.internal:5432/catalog?sslmode=disable", cfg.GetDatabaseConnectionString())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("Bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [\n"))
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("Postgres without host", func(t *testing.T) {
		_, err := Load(writeConfig(t, "catalog:\n  source: postgres\n"))
		assert.ErrorContains(t, err, "database host is required")
	})

	t.Run("Unknown source", func(t *testing.T) {
		_, err := Load(writeConfig(t, "catalog:\n  source: redis\n"))
		assert.ErrorContains(t, err, "unsupported catalog source")
	})

	t.Run("Non-positive daily charge", func(t *testing.T) {
		_, err := Load(writeConfig(t, "catalog:\n  tools:\n    - code: FREE\n      daily_charge: \"0\"\n"))
		assert.ErrorContains(t, err, "must be greater than 0")
	})

	t.Run("Duplicate code", func(t *testing.T) {
		_, err := Load(writeConfig(t, "catalog:\n  tools:\n    - code: A\n      daily_charge: \"1\"\n    - code: A\n      daily_charge: \"2\"\n"))
		assert.ErrorContains(t, err, "duplicate catalog tool code")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, CatalogSourceMemory, cfg.Catalog.Source)
	assert.NoError(t, cfg.Validate())
}
