package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func clearEnv() {
	for _, k := range []string{"DB_DRIVER", "DB_DSN", "GRPC_ADDRESS", "HTTP_ADDRESS", "HTTP_REQUIRE_AUTH", "JWT_SECRET", "JWT_TTL_HOURS", "DEFAULT_HOURLY_RATE"} {
		os.Unsetenv(k)
	}
}

func TestLoadWithDefaults_Succeeds(t *testing.T) {
	clearEnv()
	cfg, err := LoadWithDefaults()
	if err != nil {
		t.Fatalf("LoadWithDefaults: %v", err)
	}
	if cfg.GRPC.Address == "" || cfg.HTTP.Address == "" || cfg.Database.DSN == "" || cfg.Auth.JWTSecret == "" {
		t.Fatalf("unexpected empty defaults: %+v", cfg)
	}
	if cfg.Database.Driver != "sqlite3" || !cfg.HTTP.RequireAuth || cfg.Auth.TokenTTL != 12*time.Hour {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Shifts.DefaultHourlyRate.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("default rate = %s", cfg.Shifts.DefaultHourlyRate)
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	clearEnv()
	t.Setenv("DB_DSN", "test.db")
	t.Setenv("GRPC_ADDRESS", ":1234")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET is not set")
	}
	t.Setenv("JWT_SECRET", "x")
	if _, err := Load(); err != nil {
		t.Fatalf("Load with secret set: %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv()
	t.Setenv("JWT_SECRET", "x")

	t.Setenv("DB_DRIVER", "postgres")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
	t.Setenv("DB_DRIVER", "mysql")

	t.Setenv("HTTP_REQUIRE_AUTH", "maybe")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bad bool")
	}
	t.Setenv("HTTP_REQUIRE_AUTH", "false")

	t.Setenv("DEFAULT_HOURLY_RATE", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative rate")
	}
	t.Setenv("DEFAULT_HOURLY_RATE", "250,5")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Shifts.DefaultHourlyRate.Equal(decimal.RequireFromString("250.5")) || cfg.HTTP.RequireAuth {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}
