// Package main is the entry point for the sitefront binary. It serves the
// content-managed site over HTTP, exports it as static files, and checks
// content against the schema registry.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sitefront/internal/assets"
	"sitefront/internal/config"
	"sitefront/internal/content"
	"sitefront/internal/engine"
	"sitefront/internal/metrics"
	"sitefront/internal/sanity"
	"sitefront/internal/sections"
	"sitefront/internal/site"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sitefront",
		Short:         "Render the content-managed marketing site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newBuildCmd(), newSchemaCmd(), newValidateCmd())
	return root
}

// loadConfig reads the configuration and installs the process-wide logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	slog.SetDefault(newLogger(cfg))
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"project", cfg.SanityProjectID,
		"dataset", cfg.SanityDataset,
	)
	return cfg, nil
}

// newLogger outputs text in development and JSON otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel, cfg.IsDev())}
	if cfg.IsDev() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func parseLevel(s string, dev bool) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if dev {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// newSite wires the store client, fetch layer, resolver and engine.
func newSite(cfg *config.Config, m *metrics.Metrics) (*site.Site, error) {
	client, err := sanity.New(sanity.Config{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		UseCDN:     cfg.SanityUseCDN,
		Token:      cfg.SanityToken,
		Timeout:    cfg.SanityTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("content store client: %w", err)
	}
	slog.Info("content store configured", "endpoint", client.Endpoint())

	eng, err := engine.New(assets.NewBuilder(cfg.SanityCDNHost, cfg.SanityProjectID, cfg.SanityDataset))
	if err != nil {
		return nil, fmt.Errorf("template engine: %w", err)
	}

	return site.New(content.New(client, m), sections.NewResolver(nil), eng, m), nil
}
