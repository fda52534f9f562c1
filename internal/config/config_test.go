package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // без .env файла

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 2500*time.Millisecond, cfg.AnalysisDelay)
	assert.Equal(t, uint64(0), cfg.RandomSeed)
	assert.True(t, cfg.LocationJitter)
	assert.True(t, cfg.WeatherTagging)
	assert.Equal(t, "123 Main Street, Downtown", cfg.DefaultAddress)
	assert.Equal(t, 40.7128, cfg.DefaultLat)
	assert.Equal(t, -74.0060, cfg.DefaultLng)
	assert.Empty(t, cfg.FixturesPath)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes())
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ANALYSIS_DELAY", "0s")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("LOCATION_JITTER", "false")
	t.Setenv("WEATHER_TAGGING", "0")
	t.Setenv("DEFAULT_LAT", "51.5")
	t.Setenv("MAX_UPLOAD_MB", "25")
	t.Setenv("FIXTURES_PATH", "/data/reports.yaml")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Zero(t, cfg.AnalysisDelay)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
	assert.False(t, cfg.LocationJitter)
	assert.False(t, cfg.WeatherTagging)
	assert.Equal(t, 51.5, cfg.DefaultLat)
	assert.Equal(t, 25, cfg.MaxUploadMB)
	assert.Equal(t, "/data/reports.yaml", cfg.FixturesPath)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ANALYSIS_DELAY", "soon")
	t.Setenv("LOCATION_JITTER", "maybe")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, cfg.AnalysisDelay)
	assert.True(t, cfg.LocationJitter)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{MaxUploadMB: 10, DefaultLat: 40.7128, DefaultLng: -74.006}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.AnalysisDelay = -time.Second
	assert.ErrorContains(t, cfg.Validate(), "ANALYSIS_DELAY")

	cfg = valid()
	cfg.MaxUploadMB = 0
	assert.ErrorContains(t, cfg.Validate(), "MAX_UPLOAD_MB")

	cfg = valid()
	cfg.DefaultLat = 95
	assert.ErrorContains(t, cfg.Validate(), "out of range")
}

// chdir меняет рабочую директорию на время теста (аналог t.Chdir для Go < 1.24)
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
