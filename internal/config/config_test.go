package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_PATH", "DATABASE_URL", "JWT_SECRET", "TOKEN_TTL", "CACHE_TTL", "CURRENCY_SYMBOL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBDriver != DriverSQLite || cfg.DBPath != "./data/splitlite.db" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 720*time.Hour || cfg.CacheTTL != 5*time.Second {
		t.Errorf("unexpected durations: token %s, cache %s", cfg.TokenTTL, cfg.CacheTTL)
	}
	if cfg.CurrencySymbol != "₹" || !cfg.UsesDevSecret() {
		t.Errorf("unexpected symbol or secret: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{"DB_DRIVER": "postgres", "DATABASE_URL": ""}},
		{"unknown driver", map[string]string{"DB_DRIVER": "mongo"}},
		{"bad cache ttl", map[string]string{"CACHE_TTL": "soon"}},
		{"negative token ttl", map[string]string{"TOKEN_TTL": "-1h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DB_DRIVER", "DATABASE_URL", "CACHE_TTL", "TOKEN_TTL"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/splitlite?sslmode=disable")
	t.Setenv("CACHE_TTL", "0s")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBDriver != DriverPostgres || cfg.CacheTTL != 0 || cfg.UsesDevSecret() {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
