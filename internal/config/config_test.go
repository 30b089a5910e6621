package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAndValidate(t *testing.T) {
	content := `
server:
  addr: ":9090"
  static_dir: "./public"
  shutdown_timeout: 10s

rate_limit:
  rps: 2
  burst: 4

tables:
  dir: "./tables"

logging:
  level: "debug"
  format: "json"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Unexpected addr: %s", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Unexpected shutdown timeout: %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.RateLimit.Burst != 4 {
		t.Errorf("Unexpected burst: %d", cfg.RateLimit.Burst)
	}
	if cfg.Tables.Dir != "./tables" {
		t.Errorf("Unexpected tables dir: %s", cfg.Tables.Dir)
	}
	// Not in the file, so the default applies.
	if cfg.Server.CORSOrigin != "*" {
		t.Errorf("Unexpected CORS origin: %s", cfg.Server.CORSOrigin)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Logging.Level != "info" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BUILDCALC_SERVER_ADDR", ":7070")
	t.Setenv("BUILDCALC_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("Expected env addr, got %s", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected env level, got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateErrors(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Addr: ":8080", ShutdownTimeout: 5 * time.Second},
			RateLimit: RateLimitConfig{RPS: 5, Burst: 10},
			Logging:   LoggingConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"cert without key", func(c *Config) { c.Server.TLSCert = "server.crt" }, true},
		{"short shutdown", func(c *Config) { c.Server.ShutdownTimeout = 0 }, true},
		{"zero rps", func(c *Config) { c.RateLimit.RPS = 0 }, true},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
