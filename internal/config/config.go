package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var envReplacer = strings.NewReplacer(".", "_")

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tables    TablesConfig    `mapstructure:"tables"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig holds HTTP listener configuration
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	StaticDir       string        `mapstructure:"static_dir"`
	TLSCert         string        `mapstructure:"tls_cert"`
	TLSKey          string        `mapstructure:"tls_key"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigin      string        `mapstructure:"cors_origin"`
}

// RateLimitConfig holds the per-IP token bucket settings
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// TablesConfig points at capacity tables on disk; empty means the embedded set
type TablesConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TLS reports whether both certificate and key are configured.
func (s ServerConfig) TLS() bool {
	return s.TLSCert != "" && s.TLSKey != ""
}

// Load reads configuration from an optional file, a .env file and environment variables.
// Environment variables use the BUILDCALC_ prefix, e.g. BUILDCALC_SERVER_ADDR.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BUILDCALC")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.static_dir", "./static")
	v.SetDefault("server.tls_cert", "")
	v.SetDefault("server.tls_key", "")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("server.cors_origin", "*")

	v.SetDefault("rate_limit.rps", 5.0)
	v.SetDefault("rate_limit.burst", 10)

	v.SetDefault("tables.dir", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return fmt.Errorf("server.tls_cert and server.tls_key must be set together")
	}
	if c.Server.ShutdownTimeout < time.Second {
		return fmt.Errorf("server.shutdown_timeout must be at least 1 second")
	}

	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("rate_limit.rps must be greater than 0")
	}
	if c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate_limit.burst must be at least 1")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
