// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	MWS       MWSConfig       `yaml:"mws"`
	HTTP      HTTPConfig      `yaml:"http"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// MWSConfig defines the seller account credentials and identity.
type MWSConfig struct {
	SellerID      string `yaml:"seller_id"`
	MarketplaceID string `yaml:"marketplace_id"`
	AccessKeyID   string `yaml:"access_key_id"`
	SecretKey     string `yaml:"secret_key"`
	AuthToken     string `yaml:"auth_token"`
	AppName       string `yaml:"app_name"`
	AppVersion    string `yaml:"app_version"`
}

// HTTPConfig defines the outgoing HTTP transport settings.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// RateLimitConfig defines request throttling settings.
type RateLimitConfig struct {
	Enabled    bool    `yaml:"enabled"`
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyHTTPDefaults(&cfg.HTTP)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyLoggingDefaults(&cfg.Logging)
}

func applyHTTPDefaults(h *HTTPConfig) {
	if h.Timeout == 0 {
		h.Timeout = 30 * time.Second
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 1.0
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 10000
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.MWS.SellerID == "" {
		errs = append(errs, fmt.Errorf("mws.seller_id is required"))
	}
	if cfg.MWS.MarketplaceID == "" {
		errs = append(errs, fmt.Errorf("mws.marketplace_id is required"))
	}
	if cfg.MWS.AccessKeyID == "" {
		errs = append(errs, fmt.Errorf("mws.access_key_id is required"))
	}
	if cfg.MWS.SecretKey == "" {
		errs = append(errs, fmt.Errorf("mws.secret_key is required"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
