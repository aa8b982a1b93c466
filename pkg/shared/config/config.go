// Package config loads the application configuration from a YAML file and
// fills in defaults for anything not set. The tool works without a config
// file at all.
package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config is the root of the YAML configuration.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
}

// Logger configures the application logger.
type Logger struct {
	Level string `yaml:"level"`
}

// HTTPClient configures the client used to talk to issue servers.
type HTTPClient struct {
	Debug            bool          `yaml:"debug"`
	RetryCount       int           `yaml:"retry_count"`
	RetryWaitTime    time.Duration `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration `yaml:"retry_max_wait_time"`
	Timeout          time.Duration `yaml:"timeout"`
	Insecure         bool          `yaml:"insecure"`
	Proxy            string        `yaml:"proxy"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Logger: Logger{Level: "INFO"},
		HTTPClient: HTTPClient{
			RetryCount:       5,
			RetryWaitTime:    1 * time.Second,
			RetryMaxWaitTime: 2 * time.Second,
			Timeout:          10 * time.Second,
		},
	}
}

// LoadConfig reads the YAML config at path. A missing file is not an error;
// defaults are returned instead so the CLI runs unconfigured.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config %q: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults backfills zero values left by a partial config file.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = def.Logger.Level
	}
	if cfg.HTTPClient.RetryCount == 0 {
		cfg.HTTPClient.RetryCount = def.HTTPClient.RetryCount
	}
	if cfg.HTTPClient.RetryWaitTime == 0 {
		cfg.HTTPClient.RetryWaitTime = def.HTTPClient.RetryWaitTime
	}
	if cfg.HTTPClient.RetryMaxWaitTime == 0 {
		cfg.HTTPClient.RetryMaxWaitTime = def.HTTPClient.RetryMaxWaitTime
	}
	if cfg.HTTPClient.Timeout == 0 {
		cfg.HTTPClient.Timeout = def.HTTPClient.Timeout
	}
}

// ValidateConfig checks the configuration for values that cannot work.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration object is nil")
	}
	if cfg.HTTPClient.RetryCount < 0 || cfg.HTTPClient.RetryCount > 20 {
		return fmt.Errorf("http_client: retry_count must be between 0 and 20: %d", cfg.HTTPClient.RetryCount)
	}

	durations := map[string]time.Duration{
		"retry_wait_time":     cfg.HTTPClient.RetryWaitTime,
		"retry_max_wait_time": cfg.HTTPClient.RetryMaxWaitTime,
		"timeout":             cfg.HTTPClient.Timeout,
	}
	for name, d := range durations {
		if err := validateDuration(d, name, 100*time.Second); err != nil {
			return fmt.Errorf("http_client: %w", err)
		}
	}
	return nil
}

// validateDuration checks that a duration is non-negative and within max.
func validateDuration(d time.Duration, name string, max time.Duration) error {
	if d < 0 {
		return fmt.Errorf("invalid duration for %q: %v cannot be negative", name, d)
	}
	if d > max {
		return fmt.Errorf("invalid duration for %q: %v exceeds maximum %v", name, d, max)
	}
	return nil
}
