package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("EVENTS_BACKEND", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Fatalf("expected default port 3000, got %s", cfg.Server.Port)
	}
	if cfg.Events.Backend != EventsBackendNone {
		t.Fatalf("expected events backend none, got %s", cfg.Events.Backend)
	}
	if cfg.Ledger.StrictCategories {
		t.Fatalf("strict categories must be off by default")
	}
	if cfg.RateLimit.Enabled() {
		t.Fatalf("rate limiting must be off by default, got %d requests", cfg.RateLimit.Requests)
	}
	if !strings.Contains(cfg.Database.DSN, "dbname=caixa") {
		t.Fatalf("expected DSN built from parts, got %q", cfg.Database.DSN)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/ledger")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LEDGER_STRICT_CATEGORIES", "true")
	t.Setenv("EVENTS_BACKEND", "NATS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.DSN != "postgres://u:p@db:5432/ledger" {
		t.Fatalf("DATABASE_URL must win over parts, got %q", cfg.Database.DSN)
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Fatalf("expected 30s window, got %s", cfg.RateLimit.Window)
	}
	if !cfg.Ledger.StrictCategories {
		t.Fatalf("expected strict categories enabled")
	}
	if cfg.Events.Backend != EventsBackendNATS {
		t.Fatalf("expected nats backend, got %s", cfg.Events.Backend)
	}
}

func TestValidateCollectsProblems(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: "abc"},
		Database:  DatabaseConfig{MaxOpenConns: 0, MaxIdleConns: 2},
		RateLimit: RateLimitConfig{Requests: -1, Window: 0},
		Events:    EventsConfig{Backend: "kafka"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"PORT", "DB_MAX_OPEN_CONNS", "RATE_LIMIT_REQUESTS", "EVENTS_BACKEND"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err.Error())
		}
	}
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Port != 5432 {
		t.Fatalf("expected fallback port 5432, got %d", cfg.Database.Port)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("EVENTS_BACKEND", "kafka")

	cfg, err := Load()
	if err == nil {
		t.Fatalf("expected Load to validate, got %+v", cfg)
	}
	if !strings.Contains(err.Error(), "EVENTS_BACKEND") {
		t.Fatalf("expected EVENTS_BACKEND problem, got %v", err)
	}
}

func TestRateLimitWindowOnlyCheckedWhenEnabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "0")
	t.Setenv("RATE_LIMIT_WINDOW", "0s")
	if _, err := Load(); err != nil {
		t.Fatalf("disabled limiter must ignore the window: %v", err)
	}

	t.Setenv("RATE_LIMIT_REQUESTS", "50")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "RATE_LIMIT_WINDOW") {
		t.Fatalf("expected RATE_LIMIT_WINDOW problem, got %v", err)
	}
}
