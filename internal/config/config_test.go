package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Unexpected addr %q", cfg.Server.Addr())
	}
	if cfg.Upload.MaxFileSize != 20<<20 {
		t.Errorf("Expected 20MB upload cap, got %d", cfg.Upload.MaxFileSize)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Upload.SessionTTL != 30*time.Minute {
		t.Errorf("Expected session TTL 30m, got %s", cfg.Upload.SessionTTL)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json format, got %q", cfg.Logging.Format)
	}
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("SERVER_PORT", "70000")
	if _, err := Load(); err == nil {
		t.Error("Expected validation error for out-of-range port")
	}
}

func TestLoadBadFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	if _, err := Load(); err == nil {
		t.Error("Expected validation error for unknown log format")
	}
}
