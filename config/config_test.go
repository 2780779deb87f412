package config

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 12.0, cfg.AnnualInterestRate)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.DossiersFile)
	assert.Equal(t, "E3W", cfg.ReportBrand)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ANNUAL_INTEREST_RATE", "9.5")
	t.Setenv("MAX_UPLOAD_SIZE", "2048")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DOSSIERS_FILE", "/tmp/dossiers.json")
	t.Setenv("REPORT_BRAND", "Cabinet Koné")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 9.5, cfg.AnnualInterestRate)
	assert.Equal(t, int64(2048), cfg.MaxUploadSize)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/dossiers.json", cfg.DossiersFile)
	assert.Equal(t, "Cabinet Koné", cfg.ReportBrand)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unparsable rate", "ANNUAL_INTEREST_RATE", "twelve"},
		{"negative rate", "ANNUAL_INTEREST_RATE", "-1"},
		{"zero upload size", "MAX_UPLOAD_SIZE", "0"},
		{"unknown format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestInitLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)
	defer log.SetFormatter(&log.TextFormatter{})

	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	cfg.InitLogging()
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	cfg = &Config{LogLevel: "loud", LogFormat: "text"}
	cfg.InitLogging()
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
}
