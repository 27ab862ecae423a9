// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the public site over HTTP. Rendered pages are
// kept in the Valkey page cache and served from it on the next hit.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"sitefront/internal/cache"
	"sitefront/internal/metrics"
	"sitefront/internal/middleware"
	"sitefront/internal/site"
)

// Public groups the handlers of the public site.
type Public struct {
	site      *site.Site
	pageCache *cache.PageCache
	metrics   *metrics.Metrics
}

// NewPublic creates the public handler group. pageCache and m may be nil.
func NewPublic(s *site.Site, pageCache *cache.PageCache, m *metrics.Metrics) *Public {
	return &Public{site: s, pageCache: pageCache, metrics: m}
}

// renderFunc renders one route; found is false when the route has no content.
type renderFunc func(ctx context.Context) (html []byte, found bool, err error)

// Homepage renders the site root.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, func(ctx context.Context) ([]byte, bool, error) {
		html, err := p.site.Home(ctx)
		return html, true, err
	})
}

// Page renders a page by its slash-segmented slug.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "*")
	p.serve(w, r, func(ctx context.Context) ([]byte, bool, error) {
		return p.site.Page(ctx, slug)
	})
}

// CaseStudies renders the case-study index.
func (p *Public) CaseStudies(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, func(ctx context.Context) ([]byte, bool, error) {
		html, err := p.site.CaseStudies(ctx)
		return html, true, err
	})
}

// CaseStudy renders one case study. Slugs may contain '/', and a bare
// trailing slash falls back to the index.
func (p *Public) CaseStudy(w http.ResponseWriter, r *http.Request) {
	slug := strings.Trim(chi.URLParam(r, "*"), "/")
	if slug == "" {
		p.CaseStudies(w, r)
		return
	}
	p.serve(w, r, func(ctx context.Context) ([]byte, bool, error) {
		return p.site.CaseStudy(ctx, slug)
	})
}

// NotFound renders the 404 page with the site chrome.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	html, err := p.site.NotFound(r.Context(), r.URL.Path)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	writeHTML(w, http.StatusNotFound, html)
}

// serve answers from the page cache when possible and otherwise renders and
// caches the result. Misses and failures are never cached.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, render renderFunc) {
	ctx := r.Context()
	key := cache.PathKey(r.URL.Path)

	if cached, ok := p.pageCache.Get(ctx, key); ok {
		p.metrics.ObserveCache(true)
		writeHTML(w, http.StatusOK, cached)
		return
	}
	if p.pageCache != nil {
		p.metrics.ObserveCache(false)
	}

	html, found, err := render(ctx)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	if !found {
		p.NotFound(w, r)
		return
	}

	p.pageCache.Set(ctx, key, html)
	writeHTML(w, http.StatusOK, html)
}

func (p *Public) fail(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("render failed",
		"request_id", middleware.RequestIDFromCtx(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, status int, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(html)
}
