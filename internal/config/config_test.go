package config

import (
	"testing"
	"time"
)

func TestLoadConfigReadsEnvOnlyKeys(t *testing.T) {
	// no .env file in the temp dir; everything must come from the process
	// environment or the defaults
	t.Setenv("JWT_SECRET", "env-only-secret")
	t.Setenv("DB_DSN", "host=db.internal user=app dbname=dental")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.JWTSecret != "env-only-secret" {
		t.Errorf("JWTSecret = %q, want value from environment", cfg.JWTSecret)
	}
	if cfg.DBDSN != "host=db.internal user=app dbname=dental" {
		t.Errorf("DBDSN = %q, want value from environment", cfg.DBDSN)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want default 8080", cfg.ServerPort)
	}
}

func TestLoadConfigEnvOverridesDefault(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("JWT_EXPIRY", "2h")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.ServerPort != "9999" {
		t.Errorf("ServerPort = %q, want 9999", cfg.ServerPort)
	}
	if cfg.JWTExpiry != 2*time.Hour {
		t.Errorf("JWTExpiry = %v, want 2h", cfg.JWTExpiry)
	}
}

func TestDSNPrefersExplicitValue(t *testing.T) {
	cfg := Config{
		DBDSN:  "host=explicit dbname=x",
		DBHost: "ignored",
	}
	if got := cfg.DSN(); got != "host=explicit dbname=x" {
		t.Errorf("DSN() = %q, want the explicit DSN", got)
	}

	cfg.DBDSN = ""
	if got := cfg.DSN(); got == "" || got == "host=explicit dbname=x" {
		t.Errorf("DSN() = %q, want a composed DSN", got)
	}
}
