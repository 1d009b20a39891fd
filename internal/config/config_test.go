package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		Port:            "8082",
		DataBackend:     "sqlite",
		SQLiteDBPath:    filepath.Join(t.TempDir(), "smartspend.db"),
		LogLevel:        "info",
		ShutdownTimeout: 30 * time.Second,
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8082" {
		t.Errorf("Port = %s, want 8082", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Errorf("DataBackend = %s, want sqlite", cfg.DataBackend)
	}
	if cfg.CurrencySymbol != "₹" {
		t.Errorf("CurrencySymbol = %s", cfg.CurrencySymbol)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %s", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Errorf("DataBackend = %s, want memory", cfg.DataBackend)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 5s", cfg.ShutdownTimeout)
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig(t).Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	t.Run("bad port", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Port = "notaport"
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "invalid port") {
			t.Errorf("expected port error, got %v", err)
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Port = "70000"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for out-of-range port")
		}
	})

	t.Run("bad backend", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.DataBackend = "postgres"
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "invalid data backend") {
			t.Errorf("expected backend error, got %v", err)
		}
	})

	t.Run("bad amqp scheme", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.AMQPURL = "http://localhost:5672"
		cfg.AMQPExchange = "smartspend"
		cfg.AMQPQueue = "entity_changes"
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "AMQP URL scheme") {
			t.Errorf("expected scheme error, got %v", err)
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.LogLevel = "verbose"
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "invalid log level") {
			t.Errorf("expected log level error, got %v", err)
		}
	})

	t.Run("collects multiple errors", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Port = "bad"
		cfg.LogLevel = "bad"
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), ";") {
			t.Errorf("expected combined errors, got %v", err)
		}
	})
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
