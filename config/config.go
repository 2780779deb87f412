package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort         string  `env:"SERVER_PORT" envDefault:"8080"`
	AnnualInterestRate float64 `env:"ANNUAL_INTEREST_RATE" envDefault:"12"`
	MaxUploadSize      int64   `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10 MB
	LogLevel           string  `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string  `env:"LOG_FORMAT" envDefault:"text"`
	DossiersFile       string  `env:"DOSSIERS_FILE"`
	ReportBrand        string  `env:"REPORT_BRAND" envDefault:"E3W"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.AnnualInterestRate < 0 {
		return nil, fmt.Errorf("ANNUAL_INTEREST_RATE must not be negative, got %v", cfg.AnnualInterestRate)
	}
	if cfg.MaxUploadSize <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE must be positive, got %d", cfg.MaxUploadSize)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// InitLogging configures the global logrus logger. An unknown level falls
// back to info.
func (c *Config) InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetReportCaller(false)

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("unknown LOG_LEVEL %q, using info", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
}
