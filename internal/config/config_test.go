// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
	"time"
)

// envVars lists every variable Load reads.
var envVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV",
	"SANITY_STUDIO_PROJECT_ID", "PUBLIC_SANITY_PROJECT_ID",
	"SANITY_STUDIO_DATASET", "PUBLIC_SANITY_DATASET",
	"SANITY_API_VERSION", "SANITY_USE_CDN", "SANITY_TOKEN", "SANITY_CDN_HOST", "SANITY_TIMEOUT",
	"SITE_URL", "OUTPUT_DIR",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD", "PAGE_CACHE_TTL",
	"WEBHOOK_SECRET", "WEBHOOK_RATE_LIMIT",
	"LOG_LEVEL",
}

// clearEnv sets every variable to "", which envOrDefault treats as unset,
// and then sets the required project id.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
	t.Setenv("SANITY_STUDIO_PROJECT_ID", "abc123")
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when only the project id is set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("SanityProjectID", cfg.SanityProjectID, "abc123")
	check("SanityDataset", cfg.SanityDataset, "production")
	check("SanityAPIVersion", cfg.SanityAPIVersion, "2025-02-19")
	check("SanityCDNHost", cfg.SanityCDNHost, "cdn.sanity.io")
	check("SiteURL", cfg.SiteURL, "https://yourdomain.com")
	check("OutputDir", cfg.OutputDir, "dist")
	check("ValkeyHost", cfg.ValkeyHost, "")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("WebhookSecret", cfg.WebhookSecret, "")

	if !cfg.SanityUseCDN {
		t.Error("SanityUseCDN should default to true")
	}
	if cfg.SanityTimeout != 10*time.Second {
		t.Errorf("SanityTimeout = %v, want 10s", cfg.SanityTimeout)
	}
	if cfg.PageCacheTTL != 5*time.Minute {
		t.Errorf("PageCacheTTL = %v, want 5m", cfg.PageCacheTTL)
	}
	if cfg.WebhookRateLimit != 10 {
		t.Errorf("WebhookRateLimit = %d, want 10", cfg.WebhookRateLimit)
	}
	if cfg.CacheEnabled() {
		t.Error("cache should be disabled without VALKEY_HOST")
	}
}

// TestLoad_EnvOverrides verifies that environment variables override the
// defaults.
func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	overrides := map[string]string{
		"APP_HOST":              "127.0.0.1",
		"APP_PORT":              "9090",
		"APP_ENV":               "production",
		"SANITY_STUDIO_DATASET": "staging",
		"SANITY_API_VERSION":    "2024-01-01",
		"SANITY_USE_CDN":        "false",
		"SANITY_TOKEN":          "sk-read",
		"SANITY_TIMEOUT":        "3s",
		"SITE_URL":              "https://vlah.sh",
		"OUTPUT_DIR":            "public",
		"VALKEY_HOST":           "cache.example.com",
		"VALKEY_PORT":           "6380",
		"VALKEY_PASSWORD":       "cachepass",
		"PAGE_CACHE_TTL":        "1m",
		"WEBHOOK_SECRET":        "hook",
		"WEBHOOK_RATE_LIMIT":    "3",
		"LOG_LEVEL":             "warn",
	}
	for k, v := range overrides {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.IsDev() {
		t.Error("IsDev() should be false in production")
	}
	if cfg.SanityDataset != "staging" || cfg.SanityAPIVersion != "2024-01-01" || cfg.SanityToken != "sk-read" {
		t.Errorf("sanity settings not applied: %+v", cfg)
	}
	if cfg.SanityUseCDN {
		t.Error("SanityUseCDN should be false")
	}
	if cfg.SanityTimeout != 3*time.Second || cfg.PageCacheTTL != time.Minute {
		t.Errorf("durations: timeout %v, ttl %v", cfg.SanityTimeout, cfg.PageCacheTTL)
	}
	if cfg.SiteURL != "https://vlah.sh" || cfg.OutputDir != "public" {
		t.Errorf("export settings: %q %q", cfg.SiteURL, cfg.OutputDir)
	}
	if !cfg.CacheEnabled() || cfg.ValkeyPort != "6380" || cfg.ValkeyPassword != "cachepass" {
		t.Errorf("valkey settings: %+v", cfg)
	}
	if cfg.WebhookSecret != "hook" || cfg.WebhookRateLimit != 3 || cfg.LogLevel != "warn" {
		t.Errorf("webhook/log settings: %+v", cfg)
	}
}

// TestLoad_PublicFallbacks verifies the PUBLIC_ variables used by the
// frontend build are accepted when the studio ones are unset.
func TestLoad_PublicFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("SANITY_STUDIO_PROJECT_ID", "")
	t.Setenv("PUBLIC_SANITY_PROJECT_ID", "pub123")
	t.Setenv("PUBLIC_SANITY_DATASET", "preview")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.SanityProjectID != "pub123" {
		t.Errorf("SanityProjectID = %q, want pub123", cfg.SanityProjectID)
	}
	if cfg.SanityDataset != "preview" {
		t.Errorf("SanityDataset = %q, want preview", cfg.SanityDataset)
	}
}

// TestLoad_Errors verifies missing and malformed values fail loading.
func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "missing project id", key: "SANITY_STUDIO_PROJECT_ID", value: "", wantErr: "SANITY_STUDIO_PROJECT_ID"},
		{name: "bad bool", key: "SANITY_USE_CDN", value: "sometimes", wantErr: "SANITY_USE_CDN"},
		{name: "bad timeout", key: "SANITY_TIMEOUT", value: "ten", wantErr: "SANITY_TIMEOUT"},
		{name: "bad ttl", key: "PAGE_CACHE_TTL", value: "5", wantErr: "PAGE_CACHE_TTL"},
		{name: "bad rate limit", key: "WEBHOOK_RATE_LIMIT", value: "many", wantErr: "WEBHOOK_RATE_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

// TestAddr verifies the server listen address format.
func TestAddr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     string
		expected string
	}{
		{
			name:     "default",
			host:     "0.0.0.0",
			port:     "8080",
			expected: "0.0.0.0:8080",
		},
		{
			name:     "localhost with custom port",
			host:     "127.0.0.1",
			port:     "3000",
			expected: "127.0.0.1:3000",
		},
		{
			name:     "empty host",
			host:     "",
			port:     "8080",
			expected: ":8080",
		},
		{
			name:     "ipv6 host",
			host:     "::1",
			port:     "443",
			expected: "::1:443",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: tt.host, Port: tt.port}
			got := cfg.Addr()
			if got != tt.expected {
				t.Errorf("Addr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestIsDev verifies the IsDev method for various environment modes.
func TestIsDev(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected bool
	}{
		{name: "development mode", env: "development", expected: true},
		{name: "production mode", env: "production", expected: false},
		{name: "testing mode", env: "testing", expected: false},
		{name: "empty string", env: "", expected: false},
		{name: "uppercase DEVELOPMENT", env: "DEVELOPMENT", expected: false},
		{name: "mixed case Development", env: "Development", expected: false},
		{name: "dev shorthand", env: "dev", expected: false},
		{name: "staging", env: "staging", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			got := cfg.IsDev()
			if got != tt.expected {
				t.Errorf("IsDev() = %v, want %v (env=%q)", got, tt.expected, tt.env)
			}
		})
	}
}

// TestEnvOrDefault confirms that an explicitly set env var wins over the
// default, and that an empty var falls through to the default.
func TestEnvOrDefault(t *testing.T) {
	t.Run("set value wins", func(t *testing.T) {
		t.Setenv("SITEFRONT_TEST_VAR", "3000")
		if got := envOrDefault("SITEFRONT_TEST_VAR", "8080"); got != "3000" {
			t.Errorf("got %q, want %q", got, "3000")
		}
	})

	t.Run("empty value uses default", func(t *testing.T) {
		t.Setenv("SITEFRONT_TEST_VAR", "")
		if got := envOrDefault("SITEFRONT_TEST_VAR", "8080"); got != "8080" {
			t.Errorf("got %q, want default %q", got, "8080")
		}
	})
}
