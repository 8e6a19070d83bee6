package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DB_DRIVER", "DATABASE_DSN", "JWT_SECRET", "JWT_EXPIRY", "CONTACT_RATE", "CONTACT_BURST", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" || cfg.DBDriver != "mysql" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v", cfg.JWTExpiry)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file:folio.db")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("CONTACT_RATE", "0.5")
	t.Setenv("CONTACT_BURST", "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.DBDriver != "sqlite" || cfg.DatabaseDSN != "file:folio.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.JWTExpiry != 90*time.Minute || cfg.ContactRate != 0.5 || cfg.ContactBurst != 7 {
		t.Fatalf("unexpected numeric settings: %+v", cfg)
	}
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "forever")
	t.Setenv("CONTACT_BURST", "many")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, key := range []string{"JWT_EXPIRY", "CONTACT_BURST"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	t.Setenv("PORT", "9090")
	path := filepath.Join(t.TempDir(), "folio.yaml")
	content := "port: \"7070\"\ndb_driver: sqlite\ndatabase_dsn: file:test.db\njwt_expiry: 2h\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7070" || cfg.DBDriver != "sqlite" || cfg.JWTExpiry != 2*time.Hour {
		t.Fatalf("overlay not applied: %+v", cfg)
	}
	if level, err := cfg.SlogLevel(); err != nil || level != slog.LevelDebug {
		t.Fatalf("SlogLevel = %v, %v", level, err)
	}
}

func TestLoadYAMLUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("prot: 1\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:         "8080",
		Env:          "production",
		LogLevel:     "info",
		DBDriver:     "sqlite",
		DatabaseDSN:  "file:folio.db",
		JWTSecret:    "real-secret",
		JWTExpiry:    time.Hour,
		ContactRate:  1,
		ContactBurst: 1,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"dev secret in production", func(c *Config) { c.JWTSecret = devJWTSecret }},
		{"unknown driver", func(c *Config) { c.DBDriver = "postgres" }},
		{"mysql without parseTime", func(c *Config) { c.DBDriver = "mysql"; c.DatabaseDSN = "root@tcp(db)/folio" }},
		{"zero expiry", func(c *Config) { c.JWTExpiry = 0 }},
		{"zero burst", func(c *Config) { c.ContactBurst = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"empty port", func(c *Config) { c.Port = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
