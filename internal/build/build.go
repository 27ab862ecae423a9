// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package build exports the whole site as static files: one index.html per
// route, a 404 page, the static assets and a sitemap.
package build

import (
	"context"
	"encoding/xml"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"sitefront/internal/site"
)

// DefaultConcurrency bounds concurrent route renders.
const DefaultConcurrency = 4

// Renderer is the subset of *site.Site a build needs.
type Renderer interface {
	Routes(ctx context.Context) []site.Route
	Render(ctx context.Context, r site.Route) ([]byte, bool, error)
	NotFound(ctx context.Context, path string) ([]byte, error)
}

// Options configure a build.
type Options struct {
	OutputDir   string
	SiteURL     string
	Static      fs.FS // copied under <OutputDir>/static; may be nil
	Concurrency int
}

// Report summarises a finished build.
type Report struct {
	Pages    []string
	Skipped  []string
	Assets   int
	Duration time.Duration
}

// Build renders every route into opts.OutputDir, replacing its contents.
// Routes whose content disappeared between listing and rendering are skipped.
func Build(ctx context.Context, r Renderer, opts Options) (Report, error) {
	start := time.Now()
	var report Report

	if opts.OutputDir == "" {
		return report, fmt.Errorf("build: output directory is required")
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	slog.Info("cleaning output directory", "dir", opts.OutputDir)
	if err := os.RemoveAll(opts.OutputDir); err != nil {
		return report, fmt.Errorf("remove output directory %s: %w", opts.OutputDir, err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return report, fmt.Errorf("create output directory %s: %w", opts.OutputDir, err)
	}

	if opts.Static != nil {
		n, err := copyStatic(opts.Static, filepath.Join(opts.OutputDir, "static"))
		if err != nil {
			return report, fmt.Errorf("copy static assets: %w", err)
		}
		report.Assets = n
	}

	routes := r.Routes(ctx)
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for _, route := range routes {
		g.Go(func() error {
			html, found, err := r.Render(gctx, route)
			if err != nil {
				return fmt.Errorf("render %s: %w", route.Path, err)
			}
			mu.Lock()
			defer mu.Unlock()
			if !found {
				slog.Warn("route skipped, content not found", "path", route.Path)
				report.Skipped = append(report.Skipped, route.Path)
				return nil
			}
			if err := writeFile(opts.OutputDir, RouteFile(route.Path), html); err != nil {
				return err
			}
			report.Pages = append(report.Pages, route.Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	notFound, err := r.NotFound(ctx, "/404")
	if err != nil {
		return report, fmt.Errorf("render 404: %w", err)
	}
	if err := writeFile(opts.OutputDir, "404.html", notFound); err != nil {
		return report, err
	}

	// Keep route order stable for the sitemap regardless of render order.
	report.Pages = ordered(routes, report.Pages)

	if opts.SiteURL != "" {
		data, err := Sitemap(opts.SiteURL, report.Pages)
		if err != nil {
			return report, err
		}
		if err := writeFile(opts.OutputDir, "sitemap.xml", data); err != nil {
			return report, err
		}
	}

	report.Duration = time.Since(start)
	slog.Info("build complete",
		"pages", len(report.Pages),
		"skipped", len(report.Skipped),
		"assets", report.Assets,
		"duration", report.Duration,
	)
	return report, nil
}

// RouteFile maps a route path to its file under the output directory.
func RouteFile(route string) string {
	p := strings.Trim(route, "/")
	if p == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(p), "index.html")
}

func writeFile(root, name string, data []byte) error {
	dst := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

func copyStatic(src fs.FS, dst string) (int, error) {
	var n int
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

func ordered(routes []site.Route, pages []string) []string {
	done := make(map[string]bool, len(pages))
	for _, p := range pages {
		done[p] = true
	}
	out := make([]string, 0, len(pages))
	for _, r := range routes {
		if done[r.Path] {
			out = append(out, r.Path)
		}
	}
	return out
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []urlLoc `xml:"url"`
}

type urlLoc struct {
	Loc string `xml:"loc"`
}

// Sitemap renders a sitemap.xml listing each path under siteURL.
func Sitemap(siteURL string, paths []string) ([]byte, error) {
	base := strings.TrimRight(siteURL, "/")
	set := urlset{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range paths {
		loc := base + "/"
		if p = strings.Trim(p, "/"); p != "" {
			loc += p + "/"
		}
		set.URLs = append(set.URLs, urlLoc{Loc: loc})
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}
