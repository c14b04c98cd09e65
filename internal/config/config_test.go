package config

import (
	"os"
	"testing"
)

func TestParseAppliesDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_URL", "APP_ENV", "CORS_ALLOW_ORIGINS", "SEED_DEMO_DATA"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Port != "8080" || cfg.CORSAllowOrigins != "*" || !cfg.SeedDemoData {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.AppEnv != "production" {
		t.Fatalf("expected production, got %q", cfg.AppEnv)
	}
	if cfg.UsesDatabase() {
		t.Fatalf("expected seed mode without DB_URL")
	}
}

func TestParseReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_URL", " postgres://localhost/revive ")
	t.Setenv("APP_ENV", "Dev")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg, err := parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Port != "9090" || cfg.AppEnv != "development" || cfg.SeedDemoData {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !cfg.UsesDatabase() || cfg.DBUrl != "postgres://localhost/revive" {
		t.Fatalf("expected database mode, got %q", cfg.DBUrl)
	}
}

func TestParseRejectsBadBool(t *testing.T) {
	t.Setenv("SEED_DEMO_DATA", "maybe")
	if _, err := parse(); err == nil {
		t.Fatalf("expected error for malformed bool")
	}
}

func TestNormalizeEnv(t *testing.T) {
	tests := map[string]string{
		"local":   "development",
		"PROD":    "production",
		"stage":   "staging",
		"testing": "test",
		" qa ":    "qa",
	}
	for in, want := range tests {
		if got := normalizeEnv(in); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}
