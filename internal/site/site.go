// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package site assembles public pages: it fetches the site chrome and the
// page body concurrently, resolves sections and renders through the engine.
package site

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"sitefront/internal/content"
	"sitefront/internal/engine"
	"sitefront/internal/metrics"
	"sitefront/internal/models"
	"sitefront/internal/sections"
)

// Route kinds.
const (
	KindHome           = "home"
	KindPage           = "page"
	KindCaseStudyIndex = "caseStudyIndex"
	KindCaseStudy      = "caseStudy"
	KindNotFound       = "notFound"
)

// CaseStudiesPath is the case-study index route.
const CaseStudiesPath = "/case-studies"

// Route is one statically renderable path.
type Route struct {
	Path string
	Kind string
	Slug string
}

// Site renders pages. It holds no mutable state.
type Site struct {
	content  *content.Fetcher
	resolver *sections.Resolver
	engine   *engine.Engine
	metrics  *metrics.Metrics
}

// New creates a Site. m may be nil.
func New(f *content.Fetcher, r *sections.Resolver, e *engine.Engine, m *metrics.Metrics) *Site {
	return &Site{content: f, resolver: r, engine: e, metrics: m}
}

// chrome fetches head and navigation alongside body, which runs in the same
// errgroup. body must not return an error for absent content.
func (s *Site) chrome(ctx context.Context, body func(ctx context.Context) error) (*models.SiteHead, []models.NavItem, error) {
	var (
		head *models.SiteHead
		nav  []models.NavItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		head = s.content.SiteHead(gctx)
		return nil
	})
	g.Go(func() error {
		nav = s.content.SiteNavigation(gctx)
		return nil
	})
	g.Go(func() error {
		return body(gctx)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return head, nav, nil
}

// Home renders the site root from the home fallback chain.
func (s *Site) Home(ctx context.Context) ([]byte, error) {
	var secs models.Sections
	head, nav, err := s.chrome(ctx, func(ctx context.Context) error {
		secs = s.content.HomeSections(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := engine.PageView{
		Layout:     s.engine.Layout(head, nav, "", "/"),
		Directives: s.resolver.ResolveAll(secs),
	}
	return s.render(KindHome, func(buf *bytes.Buffer) error { return s.engine.RenderPage(buf, view) })
}

// Page renders the page with slug. Home aliases render the home page. found
// is false when no such page exists.
func (s *Site) Page(ctx context.Context, slug string) (html []byte, found bool, err error) {
	slug = strings.Trim(slug, "/")
	if content.IsHomeSlug(slug) {
		html, err = s.Home(ctx)
		return html, err == nil, err
	}

	var (
		page *models.PageDetail
		ok   bool
	)
	head, nav, err := s.chrome(ctx, func(ctx context.Context) error {
		page, ok = s.content.PageBySlug(ctx, slug)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	view := engine.PageView{
		Layout:     s.engine.Layout(head, nav, page.Title, content.PageHref(slug)),
		Directives: s.resolver.ResolveAll(page.Sections),
		Content:    page.Content,
	}
	html, err = s.render(KindPage, func(buf *bytes.Buffer) error { return s.engine.RenderPage(buf, view) })
	return html, err == nil, err
}

// CaseStudies renders the case-study index.
func (s *Site) CaseStudies(ctx context.Context) ([]byte, error) {
	var list []models.CaseStudy
	head, nav, err := s.chrome(ctx, func(ctx context.Context) error {
		list = s.content.CaseStudies(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := engine.CaseStudyIndexView{
		Layout:      s.engine.Layout(head, nav, "Case Studies", CaseStudiesPath),
		CaseStudies: list,
	}
	return s.render(KindCaseStudyIndex, func(buf *bytes.Buffer) error { return s.engine.RenderCaseStudyIndex(buf, view) })
}

// CaseStudy renders one case study. found is false when none matches.
func (s *Site) CaseStudy(ctx context.Context, slug string) (html []byte, found bool, err error) {
	var (
		cs *models.CaseStudy
		ok bool
	)
	head, nav, err := s.chrome(ctx, func(ctx context.Context) error {
		cs, ok = s.content.CaseStudyBySlug(ctx, slug)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	view := engine.CaseStudyView{
		Layout:     s.engine.Layout(head, nav, cs.Title, cs.Path()),
		CaseStudy:  cs,
		Directives: s.resolver.ResolveAll(cs.Sections),
	}
	html, err = s.render(KindCaseStudy, func(buf *bytes.Buffer) error { return s.engine.RenderCaseStudy(buf, view) })
	return html, err == nil, err
}

// NotFound renders the 404 page with the regular site chrome.
func (s *Site) NotFound(ctx context.Context, path string) ([]byte, error) {
	head, nav, err := s.chrome(ctx, func(context.Context) error { return nil })
	if err != nil {
		return nil, err
	}
	l := s.engine.Layout(head, nav, "Page not found", path)
	return s.render(KindNotFound, func(buf *bytes.Buffer) error { return s.engine.RenderNotFound(buf, l) })
}

func (s *Site) render(kind string, fn func(*bytes.Buffer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}
	s.metrics.ObserveRender(kind)
	return buf.Bytes(), nil
}

// Routes enumerates every statically renderable path: the home page, each
// page that is not a home alias, the case-study index and each case study.
func (s *Site) Routes(ctx context.Context) []Route {
	var (
		pages []models.PageListItem
		slugs []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pages = s.content.AllPages(gctx)
		return nil
	})
	g.Go(func() error {
		slugs = s.content.CaseStudySlugs(gctx)
		return nil
	})
	_ = g.Wait()

	routes := []Route{{Path: "/", Kind: KindHome}}
	seen := map[string]bool{"/": true}
	for _, p := range pages {
		slug := strings.Trim(p.Slug, "/")
		if content.IsHomeSlug(slug) {
			continue
		}
		path := content.PageHref(slug)
		if path == CaseStudiesPath || strings.HasPrefix(path, CaseStudiesPath+"/") {
			slog.Warn("page shadowed by case-study routes", "path", path, "id", p.ID)
			continue
		}
		if seen[path] {
			slog.Warn("duplicate page route", "path", path, "id", p.ID)
			continue
		}
		seen[path] = true
		routes = append(routes, Route{Path: path, Kind: KindPage, Slug: slug})
	}

	routes = append(routes, Route{Path: CaseStudiesPath, Kind: KindCaseStudyIndex})
	for _, slug := range slugs {
		path := CaseStudiesPath + "/" + slug
		if seen[path] {
			continue
		}
		seen[path] = true
		routes = append(routes, Route{Path: path, Kind: KindCaseStudy, Slug: slug})
	}
	return routes
}

// Render renders any route produced by Routes.
func (s *Site) Render(ctx context.Context, r Route) ([]byte, bool, error) {
	switch r.Kind {
	case KindHome:
		html, err := s.Home(ctx)
		return html, err == nil, err
	case KindPage:
		return s.Page(ctx, r.Slug)
	case KindCaseStudyIndex:
		html, err := s.CaseStudies(ctx)
		return html, err == nil, err
	case KindCaseStudy:
		return s.CaseStudy(ctx, r.Slug)
	default:
		return nil, false, fmt.Errorf("unknown route kind %q", r.Kind)
	}
}
