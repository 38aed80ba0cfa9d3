package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ManuelReschke/pagesdemo/internal/pkg/env"
)

// Config holds the process-wide settings read at startup
type Config struct {
	Host string `validate:"required"`
	Port string `validate:"required,numeric"`
	Dev  bool

	CacheHost     string
	CachePort     string `validate:"omitempty,numeric"`
	CachePassword string
	PageCacheTTL  time.Duration `validate:"gte=0"`

	MetricsUser         string `validate:"required_with=MetricsPasswordHash"`
	MetricsPasswordHash string

	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load reads the configuration from the env layer and validates it
func Load() (*Config, error) {
	pageTTL, err := parseDuration("PAGE_CACHE_TTL", "30s")
	if err != nil {
		return nil, err
	}
	shutdown, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:                env.GetEnv("APP_HOST", "localhost"),
		Port:                env.GetEnv("APP_PORT", "4000"),
		Dev:                 env.IsDev(),
		CacheHost:           env.GetEnv("CACHE_HOST", ""),
		CachePort:           env.GetEnv("CACHE_PORT", "6379"),
		CachePassword:       env.GetEnv("CACHE_PASSWORD", ""),
		PageCacheTTL:        pageTTL,
		MetricsUser:         env.GetEnv("METRICS_USER", "admin"),
		MetricsPasswordHash: env.GetEnv("METRICS_PASSWORD_HASH", ""),
		ShutdownTimeout:     shutdown,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the config
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// CacheEnabled reports whether a redis cache server is configured
func (c *Config) CacheEnabled() bool {
	return c.CacheHost != ""
}

// MetricsEnabled reports whether /metrics should be mounted
func (c *Config) MetricsEnabled() bool {
	return c.MetricsPasswordHash != ""
}

func parseDuration(key, def string) (time.Duration, error) {
	raw := env.GetEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
