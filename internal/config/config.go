// Package config loads server configuration from environment variables
// with defaults, validating on startup so misconfiguration fails fast.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all server configuration.
type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (SERVER_HOST, default 0.0.0.0).
	Host string
	// Port is the port to listen on (SERVER_PORT, default 8080).
	Port int
	// ReadTimeout bounds request body reads (SERVER_READ_TIMEOUT, default 15s).
	ReadTimeout time.Duration
	// WriteTimeout bounds response writes (SERVER_WRITE_TIMEOUT, default 30s).
	WriteTimeout time.Duration
	// IdleTimeout is the keep-alive timeout (SERVER_IDLE_TIMEOUT, default 60s).
	IdleTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown (SERVER_SHUTDOWN_TIMEOUT, default 30s).
	ShutdownTimeout time.Duration
	// RequestTimeout is the per-request middleware timeout (SERVER_REQUEST_TIMEOUT, default 60s).
	RequestTimeout time.Duration
}

// UploadConfig holds spreadsheet upload settings.
type UploadConfig struct {
	// MaxFileSize is the upload size cap in bytes (UPLOAD_MAX_FILE_SIZE, default 20MB).
	MaxFileSize int64
	// SessionTTL is how long an idle edit session is kept (SESSION_TTL, default 2h).
	SessionTTL time.Duration
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (LOG_LEVEL, default info).
	Level string
	// Format is "text" or "json" (LOG_FORMAT, default text).
	Format string
}

// Load reads configuration from the environment, applying defaults and
// validating the result.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            envString("SERVER_HOST", "0.0.0.0"),
			Port:            envInt("SERVER_PORT", 8080),
			ReadTimeout:     envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    envDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     envDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: envDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			RequestTimeout:  envDuration("SERVER_REQUEST_TIMEOUT", 60*time.Second),
		},
		Upload: UploadConfig{
			MaxFileSize: envInt64("UPLOAD_MAX_FILE_SIZE", 20<<20),
			SessionTTL:  envDuration("SESSION_TTL", 2*time.Hour),
		},
		Logging: LoggingConfig{
			Level:  envString("LOG_LEVEL", "info"),
			Format: envString("LOG_FORMAT", "text"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("upload max file size must be positive, got %d", c.Upload.MaxFileSize)
	}
	if c.Upload.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %s", c.Upload.SessionTTL)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// Addr returns the server listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
