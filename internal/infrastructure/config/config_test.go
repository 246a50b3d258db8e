package config_test

import (
	"testing"
	"time"

	"github.com/codezxmax/finanzas/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FINANZAS_DATA_DIR", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DataDir == "" {
		t.Fatalf("expected default data dir to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FINANZAS_DATA_DIR", "/tmp/finanzas-test")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_READ_TIMEOUT", "45s")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DataDir != "/tmp/finanzas-test" {
		t.Fatalf("expected custom data dir, got %s", cfg.DataDir)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.HTTPReadTimeout != 45*time.Second {
		t.Fatalf("expected read timeout override, got %s", cfg.HTTPReadTimeout)
	}

	if cfg.LogFormat != "console" {
		t.Fatalf("expected log format override, got %s", cfg.LogFormat)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
