package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"sitefront/internal/cache"
	"sitefront/internal/handlers"
	"sitefront/internal/metrics"
	"sitefront/internal/middleware"
	"sitefront/internal/router"
	"sitefront/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m := metrics.New()
	s, err := newSite(cfg, m)
	if err != nil {
		return err
	}

	// Page cache (full-page HTML in Valkey), optional.
	var pageCache *cache.PageCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return fmt.Errorf("connect to valkey: %w", err)
		}
		defer valkeyClient.Close()
		pageCache = cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)
		slog.Info("page cache enabled", "ttl", cfg.PageCacheTTL.String())
	} else {
		slog.Warn("valkey not configured, page cache disabled")
	}

	hooks := handlers.NewHooks(pageCache, cfg.WebhookSecret)
	if !hooks.Enabled() {
		slog.Warn("webhook secret not configured, content webhook disabled")
	}
	limiter := middleware.NewRateLimiter(cfg.WebhookRateLimit, time.Minute)
	defer limiter.Stop()

	r := router.New(router.Deps{
		Public:      handlers.NewPublic(s, pageCache, m),
		Hooks:       hooks,
		Metrics:     m,
		Static:      web.Static(),
		ImageHosts:  []string{cfg.SanityCDNHost},
		HookLimiter: limiter,
	})

	// Store queries are bounded by SANITY_TIMEOUT; a page needs a few of them.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
