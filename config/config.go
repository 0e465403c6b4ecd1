package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the sbasearch runtime configuration.
type Config struct {
	API      APIConfig     `yaml:"api"`
	Profiles ProfileConfig `yaml:"profiles"`
	Proxies  []string      `yaml:"proxies"`
	Logging  LoggingConfig `yaml:"logging"`
}

// APIConfig holds search service client settings.
type APIConfig struct {
	BaseURL           string  `yaml:"base_url"`
	RequestTimeoutSec float64 `yaml:"request_timeout_sec"`
	RetryDelayMS      int     `yaml:"retry_delay_ms"`
}

// ProfileConfig holds enrichment settings.
type ProfileConfig struct {
	Concurrency int `yaml:"concurrency"` // 1-10, 0 = default
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: info)
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		API: APIConfig{
			RequestTimeoutSec: 60,
			RetryDelayMS:      500,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML configuration file, filling unset fields from Default.
// An empty path returns Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks numeric ranges.
func (c *Config) Validate() error {
	if c.API.RequestTimeoutSec < 0 {
		return fmt.Errorf("api.request_timeout_sec cannot be negative: %v", c.API.RequestTimeoutSec)
	}
	if c.API.RetryDelayMS < 0 {
		return fmt.Errorf("api.retry_delay_ms cannot be negative: %d", c.API.RetryDelayMS)
	}
	if c.Profiles.Concurrency < 0 || c.Profiles.Concurrency > 10 {
		return fmt.Errorf("profiles.concurrency must be between 0 and 10: %d", c.Profiles.Concurrency)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error: %q", c.Logging.Level)
	}
	return nil
}

// RequestTimeout returns the per-request timeout as a duration.
// Zero means the client default.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.API.RequestTimeoutSec * float64(time.Second))
}

// RetryDelay returns the base backoff delay as a duration.
// Zero means the client default.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.API.RetryDelayMS) * time.Millisecond
}
