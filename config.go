package atoship

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey     = "ATOSHIP_API_KEY"
	EnvBaseURL    = "ATOSHIP_BASE_URL"
	EnvTimeout    = "ATOSHIP_TIMEOUT"
	EnvMaxRetries = "ATOSHIP_MAX_RETRIES"
	EnvDebug      = "ATOSHIP_DEBUG"
)

// Defaults applied when a Config field is left zero.
const (
	DefaultBaseURL    = "https://api.atoship.com"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// Config holds the client credentials and request policy. It is an
// immutable snapshot: a running Execute call keeps the Config it started
// with, and UpdateConfig installs a fresh validated copy for later calls.
// The API key may be empty for unauthenticated endpoints; authenticated
// operations fail fast at dispatch when no key is configured.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Debug      bool
}

// applyDefaults fills zero fields with the package defaults.
func (c Config) applyDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Validate checks the Config invariants, aggregating every violation into
// one error.
func (c Config) Validate() error {
	var problems []string

	if c.BaseURL == "" {
		problems = append(problems, "baseUrl must be non-empty")
	}
	if c.Timeout <= 0 {
		problems = append(problems, "timeout must be positive")
	}
	if c.MaxRetries < 0 {
		problems = append(problems, "maxRetries must be non-negative")
	}
	if c.MaxRetries > 100 {
		problems = append(problems, "maxRetries > 100 may cause excessive resource usage")
	}
	if c.Timeout > 10*time.Minute {
		problems = append(problems, "timeout > 10m may cause requests to hang for too long")
	}

	if len(problems) > 0 {
		return fmt.Errorf("atoship: invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Redacted returns the configuration as a map suitable for logging. The API
// key is excluded.
func (c Config) Redacted() map[string]any {
	return map[string]any{
		"baseUrl":    c.BaseURL,
		"timeout":    c.Timeout.String(),
		"maxRetries": c.MaxRetries,
		"debug":      c.Debug,
	}
}

// ConfigFromEnv builds a Config from environment variables, loading a .env
// file first when present. Missing variables fall back to defaults; the
// API key stays empty if unset, which blocks authenticated operations at
// dispatch time.
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIKey:     os.Getenv(EnvAPIKey),
		BaseURL:    os.Getenv(EnvBaseURL),
		MaxRetries: DefaultMaxRetries,
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv(EnvMaxRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv(EnvDebug); v != "" {
		cfg.Debug = v == "true" || v == "1"
	}
	return cfg.applyDefaults()
}
