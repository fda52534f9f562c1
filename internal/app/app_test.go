package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shenikar/pothole_reporting_system/internal/config"
	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultAddress: "1 Test Plaza",
		DefaultLat:     10,
		DefaultLng:     20,
		RandomSeed:     7,
		MaxUploadMB:    1,
	}
}

func TestGeneratorOptions(t *testing.T) {
	cfg := testConfig()
	cfg.LocationJitter = true

	opts := GeneratorOptions(cfg)

	assert.Equal(t, "1 Test Plaza", opts.DefaultAddress)
	assert.Equal(t, 10.0, opts.DefaultLat)
	assert.Equal(t, 20.0, opts.DefaultLng)
	assert.True(t, opts.Jitter)
	assert.False(t, opts.Tagging)
}

func TestNewReportService_EmbeddedDataset(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	svc, err := NewReportService(testConfig(), testLogger(), now)
	require.NoError(t, err)

	reports, err := svc.ListReports(context.Background(), models.ReportFilter{})
	require.NoError(t, err)
	assert.Len(t, reports, 8)

	report, err := svc.AnalyzeMedia(context.Background(), &models.MediaRef{Name: "hole.jpg"}, models.Location{})
	require.NoError(t, err)
	assert.Equal(t, "1 Test Plaza", report.Location.Address)
	assert.Equal(t, 10.0, report.Location.Lat)
	assert.Empty(t, report.Weather)

	// сгенерированный отчет не попадает в набор
	reports, err = svc.ListReports(context.Background(), models.ReportFilter{})
	require.NoError(t, err)
	assert.Len(t, reports, 8)
}

func TestNewReportService_MissingFile(t *testing.T) {
	cfg := testConfig()
	cfg.FixturesPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewReportService(cfg, testLogger(), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
