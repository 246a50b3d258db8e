package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Data directory for the state snapshot. Defaults to
	// <user-config-dir>/finanzas when unset.
	DataDir string `env:"FINANZAS_DATA_DIR" envDefault:""`

	// Legacy snapshot directory checked when the primary snapshot is
	// missing. Defaults to the current working directory.
	LegacyDataDir string `env:"FINANZAS_LEGACY_DATA_DIR" envDefault:"."`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		cfg.DataDir = filepath.Join(base, "finanzas")
	}

	return cfg, nil
}
