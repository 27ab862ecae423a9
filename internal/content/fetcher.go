// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content executes catalog queries against the content store and
// applies the fallback policy. Every operation is total: store failures are
// logged and surface to callers only as absent or empty results.
package content

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sitefront/internal/groq"
	"sitefront/internal/metrics"
	"sitefront/internal/models"
)

// Querier runs one catalog query and decodes its result into out. A null
// result must leave out untouched.
type Querier interface {
	Fetch(ctx context.Context, q groq.Query, out any) error
}

// Fetcher is the read side used by the render layer.
type Fetcher struct {
	q       Querier
	metrics *metrics.Metrics
}

// New creates a Fetcher. m may be nil.
func New(q Querier, m *metrics.Metrics) *Fetcher {
	return &Fetcher{q: q, metrics: m}
}

// run executes q and records one of hit, empty or error. present is consulted
// after a successful fetch to tell a hit from an empty result.
func (f *Fetcher) run(ctx context.Context, q groq.Query, out any, present func() bool) (bool, error) {
	start := time.Now()
	err := f.q.Fetch(ctx, q, out)
	took := time.Since(start)
	if err != nil {
		f.metrics.ObserveQuery(q.Name, metrics.OutcomeError, took)
		return false, err
	}
	ok := present()
	outcome := metrics.OutcomeEmpty
	if ok {
		outcome = metrics.OutcomeHit
	}
	f.metrics.ObserveQuery(q.Name, outcome, took)
	return ok, nil
}

// temporary is implemented by store errors that may clear on a later request,
// such as *sanity.APIError.
type temporary interface {
	Temporary() bool
}

// fail logs a swallowed store error. Temporary failures log at warn level.
func (f *Fetcher) fail(op string, err error) {
	level := slog.LevelError
	var t temporary
	if errors.As(err, &t) && t.Temporary() {
		level = slog.LevelWarn
	}
	slog.Log(context.Background(), level, "content fetch failed", "op", op, "error", err)
}

// HomeSections returns the home page's sections. It prefers a page whose slug
// is one of HomeSlugs, then any page with sections, and finally gives up with
// an empty result.
func (f *Fetcher) HomeSections(ctx context.Context) models.Sections {
	chain := Chain[models.Sections]{
		Name: "homeSections",
		Attempts: []Attempt[models.Sections]{
			{Name: groq.NameHomePageWithSections, Run: f.pageSections(groq.HomePageWithSections(HomeSlugs))},
			{Name: groq.NameFirstPageWithSections, Run: f.pageSections(groq.FirstPageWithSections())},
		},
	}

	sections, step, err := chain.Run(ctx)
	if err != nil {
		f.metrics.ObserveFallback(chain.Name, metrics.OutcomeError)
		f.fail("fetchHomeSections", err)
		return models.Sections{}
	}
	f.metrics.ObserveFallback(chain.Name, step)
	if step == StepNone {
		f.logPagesForContext(ctx)
		return models.Sections{}
	}
	slog.Debug("home sections resolved", "step", step, "count", len(sections))
	return sections
}

func (f *Fetcher) pageSections(q groq.Query) func(context.Context) (models.Sections, bool, error) {
	return func(ctx context.Context) (models.Sections, bool, error) {
		var page *models.PageDetail
		ok, err := f.run(ctx, q, &page, func() bool {
			return page != nil && len(page.Sections) > 0
		})
		if err != nil || !ok {
			if err == nil {
				slog.Debug("home attempt yielded nothing", "query", q.Name)
			}
			return nil, false, err
		}
		return page.Sections, true, nil
	}
}

// logPagesForContext lists the pages present so an empty home page can be
// diagnosed from the logs. The outcome of the home lookup does not change.
func (f *Fetcher) logPagesForContext(ctx context.Context) {
	pages := f.AllPages(ctx)
	slugs := make([]string, 0, len(pages))
	for _, p := range pages {
		slugs = append(slugs, p.Slug)
	}
	slog.Debug("no page with sections found", "pages", len(pages), "slugs", slugs)
}

// PageBySlug returns the page with the given slug. The page is found only
// when it has a sections array, even an empty one.
func (f *Fetcher) PageBySlug(ctx context.Context, slug string) (*models.PageDetail, bool) {
	var page *models.PageDetail
	ok, err := f.run(ctx, groq.PageBySlug(slug), &page, func() bool {
		return page != nil && page.Sections != nil
	})
	if err != nil {
		f.fail("fetchPageBySlug", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return page, true
}

// AllPages returns every page's id, title and slug.
func (f *Fetcher) AllPages(ctx context.Context) []models.PageListItem {
	var pages []models.PageListItem
	_, err := f.run(ctx, groq.PageList(), &pages, func() bool { return len(pages) > 0 })
	if err != nil {
		f.fail("fetchAllPages", err)
		return []models.PageListItem{}
	}
	if pages == nil {
		return []models.PageListItem{}
	}
	return pages
}

// SiteHead returns the site title and favicon, or nil.
func (f *Fetcher) SiteHead(ctx context.Context) *models.SiteHead {
	var head *models.SiteHead
	_, err := f.run(ctx, groq.SiteSettingsHead(), &head, func() bool { return head != nil })
	if err != nil {
		f.fail("fetchSiteHead", err)
		return nil
	}
	return head
}

// SiteFavicon returns the favicon image, or nil.
func (f *Fetcher) SiteFavicon(ctx context.Context) *models.Favicon {
	var icon *models.Favicon
	_, err := f.run(ctx, groq.SiteSettingsFavicon(), &icon, func() bool { return icon != nil })
	if err != nil {
		f.fail("fetchSiteFavicon", err)
		return nil
	}
	return icon
}

// SiteNavigation returns the derived navigation items in stored order.
// Entries whose page reference did not resolve are dropped.
func (f *Fetcher) SiteNavigation(ctx context.Context) []models.NavItem {
	var entries []models.NavEntry
	_, err := f.run(ctx, groq.SiteSettingsNavigation(), &entries, func() bool { return len(entries) > 0 })
	if err != nil {
		f.fail("fetchSiteNavigation", err)
		return []models.NavItem{}
	}
	items := make([]models.NavItem, 0, len(entries))
	for _, e := range entries {
		item, ok := NavItemFrom(e)
		if !ok {
			slog.Debug("navigation entry dropped", "label", e.Label, "page", e.PageTitle)
			continue
		}
		items = append(items, item)
	}
	return items
}

// CaseStudyBySlug returns one case study, or false when none matches.
func (f *Fetcher) CaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, bool) {
	var cs *models.CaseStudy
	ok, err := f.run(ctx, groq.CaseStudyBySlug(slug), &cs, func() bool { return cs != nil })
	if err != nil {
		f.fail("fetchCaseStudyBySlug", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return cs, true
}

// CaseStudies returns every case study card, newest project first.
func (f *Fetcher) CaseStudies(ctx context.Context) []models.CaseStudy {
	var list []models.CaseStudy
	_, err := f.run(ctx, groq.CaseStudyList(), &list, func() bool { return len(list) > 0 })
	if err != nil {
		f.fail("fetchCaseStudies", err)
		return []models.CaseStudy{}
	}
	if list == nil {
		return []models.CaseStudy{}
	}
	return list
}

// CaseStudySlugs returns every case study slug.
func (f *Fetcher) CaseStudySlugs(ctx context.Context) []string {
	var slugs []string
	_, err := f.run(ctx, groq.CaseStudySlugs(), &slugs, func() bool { return len(slugs) > 0 })
	if err != nil {
		f.fail("fetchCaseStudySlugs", err)
		return []string{}
	}
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
