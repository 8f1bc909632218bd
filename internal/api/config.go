package api

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// Config holds server configuration read from the environment.
type Config struct {
	Port      string
	RedisAddr string
	LogLevel  string
	// RateLimit is the number of requests a client may make per RateWindow.
	RateLimit  int
	RateWindow time.Duration
	CacheTTL   time.Duration
	// CacheSweep is a cron spec for purging expired in-memory cache entries.
	CacheSweep string
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CacheSweep: getEnv("CACHE_SWEEP", "@every 10m"),
	}

	var err error
	if cfg.RateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT", "60")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT: %w", err)
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	if cfg.RateWindow, err = time.ParseDuration(getEnv("RATE_WINDOW", "1m")); err != nil {
		return nil, fmt.Errorf("RATE_WINDOW: %w", err)
	}
	if cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if _, err := cron.ParseStandard(cfg.CacheSweep); err != nil {
		return nil, fmt.Errorf("CACHE_SWEEP %q: %w", cfg.CacheSweep, err)
	}
	return cfg, nil
}

// Addr is the listen address.
func (c *Config) Addr() string { return ":" + c.Port }

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
