package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the bookshelf service
type Config struct {
	// Server configuration
	HTTPPort      int    `env:"BOOKSHELF_HTTP_PORT" envDefault:"5000"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	GinMode       string `env:"GIN_MODE" envDefault:"release"`
	AllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	MaxBodyBytes  int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// Timeouts
	Timeouts TimeoutConfig
}

// TimeoutConfig holds various timeout configurations
type TimeoutConfig struct {
	Read     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	Write    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	Idle     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	Shutdown time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid gin mode: %s (must be debug, release, or test)", c.GinMode)
	}

	if c.MaxBodyBytes < 1 {
		return fmt.Errorf("max body bytes must be at least 1")
	}

	if c.Timeouts.Shutdown <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
