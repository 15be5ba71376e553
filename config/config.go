package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type LogConfig struct {
	Level  string
	Format string
}

type CacheConfig struct {
	RedisAddr string
	TTL       time.Duration
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

type Config struct {
	HTTPPort        int
	ServiceName     string
	CatalogPath     string
	DefaultLocale   string
	DefaultCurrency string
	Log             LogConfig
	Cache           CacheConfig
	RateLimit       RateLimitConfig
}

// Load reads the process settings from the environment.
func Load() Config {
	return Config{
		HTTPPort:        getEnvInt("HTTP_PORT", 8080),
		ServiceName:     "eligibility-engine",
		CatalogPath:     getEnv("CATALOG_PATH", ""),
		DefaultLocale:   getEnv("DEFAULT_LOCALE", "en-AE"),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", ""),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Cache: CacheConfig{
			RedisAddr: getEnv("REDIS_ADDR", ""),
			TTL:       getEnvDuration("CACHE_TTL", 10*time.Minute),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 10),
		},
	}
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
