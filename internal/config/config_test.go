package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/waypoint/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadDefaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 8080, cfg.MonitoringPort)
	assert.Equal(t, "skip", cfg.MissingCoords)
	assert.Equal(t, "sheetdb", cfg.Source.Type)
	assert.Equal(t, "https://sheetdb.io/api/v1/y7b56e2q4vutg", cfg.Source.URL)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "service_units", cfg.Database.Table)
	assert.Empty(t, cfg.Geocoder.Type)
	assert.Equal(t, 10, cfg.Geocoder.RateLimit)
}

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("LOCATOR_ENV", "local")
	t.Setenv("LOCATOR_PORT", "9000")
	t.Setenv("LOCATOR_SOURCE_TYPE", "postgres")
	t.Setenv("LOCATOR_SOURCE_TIMEOUT", "3s")
	t.Setenv("LOCATOR_MISSING_COORDS", "zero")
	t.Setenv("LOCATOR_GEOCODER_TYPE", "google")
	t.Setenv("LOCATOR_GEOCODER_API_KEY", "testAPIKey")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres", cfg.Source.Type)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "zero", cfg.MissingCoords)
	assert.Equal(t, "google", cfg.Geocoder.Type)
	assert.Equal(t, "testAPIKey", cfg.Geocoder.APIKey)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
}

func Test_MustLoadFromFile(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", `
env: development
monitoring_port: 9100
source:
  url: https://sheets.example.com/units
  timeout: 5s
postgres:
  table: branch_offices
`)
	t.Setenv("LOCATOR_CONFIG_FILE", file.Name())
	t.Setenv("LOCATOR_MONITORING_PORT", "9200")

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 9200, cfg.MonitoringPort, "environment wins over the file")
	assert.Equal(t, "https://sheets.example.com/units", cfg.Source.URL)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "branch_offices", cfg.Database.Table)
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("LOCATOR_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for API server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_MonitoringPortError(t *testing.T) {
	t.Setenv("LOCATOR_MONITORING_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for monitoring server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_TimeoutError(t *testing.T) {
	t.Setenv("LOCATOR_SOURCE_TIMEOUT", "error_value")

	assert.PanicsWithValue(t, "failed to parse source timeout from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_RateLimitError(t *testing.T) {
	t.Setenv("LOCATOR_GEOCODER_RATE_LIMIT", "error_value")

	assert.PanicsWithValue(t, "failed to parse geocoder rate limit from configuration, must be an integer", func() {
		config.MustLoad()
	})
}

func TestMustLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("LOCATOR_CONFIG_FILE", "/nonexistent/locator.yaml")

	assert.Panics(t, func() {
		config.MustLoad()
	})
}
