// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Content store
	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityUseCDN     bool
	SanityToken      string
	SanityCDNHost    string
	SanityTimeout    time.Duration

	// Static export
	SiteURL   string
	OutputDir string

	// Valkey (Redis-compatible page cache). An empty host disables the cache.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	PageCacheTTL   time.Duration

	// Content webhook. An empty secret disables the endpoint.
	WebhookSecret    string
	WebhookRateLimit int // requests per minute per client

	LogLevel string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is read first when present; variables already set in the environment
// win over it. Returns an error if the project id is missing or a value
// cannot be parsed.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		SanityProjectID:  envOrDefault("SANITY_STUDIO_PROJECT_ID", os.Getenv("PUBLIC_SANITY_PROJECT_ID")),
		SanityDataset:    envOrDefault("SANITY_STUDIO_DATASET", envOrDefault("PUBLIC_SANITY_DATASET", "production")),
		SanityAPIVersion: envOrDefault("SANITY_API_VERSION", "2025-02-19"),
		SanityToken:      os.Getenv("SANITY_TOKEN"),
		SanityCDNHost:    envOrDefault("SANITY_CDN_HOST", "cdn.sanity.io"),

		SiteURL:   envOrDefault("SITE_URL", "https://yourdomain.com"),
		OutputDir: envOrDefault("OUTPUT_DIR", "dist"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),

		LogLevel: os.Getenv("LOG_LEVEL"),
	}

	var err error
	if cfg.SanityUseCDN, err = envBool("SANITY_USE_CDN", true); err != nil {
		return nil, err
	}
	if cfg.SanityTimeout, err = envDuration("SANITY_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.PageCacheTTL, err = envDuration("PAGE_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.WebhookRateLimit, err = envInt("WEBHOOK_RATE_LIMIT", 10); err != nil {
		return nil, err
	}

	if cfg.SanityProjectID == "" {
		return nil, fmt.Errorf("SANITY_STUDIO_PROJECT_ID must be set")
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
