// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine renders public pages from resolved section directives using
// an embedded html/template set. Each page template is parsed together with
// the shared layout and section partials.
package engine

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"sitefront/internal/assets"
	"sitefront/internal/models"
	"sitefront/internal/sections"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	TemplatePage           = "page"
	TemplateCaseStudyIndex = "case_study_index"
	TemplateCaseStudy      = "case_study"
	TemplateNotFound       = "not_found"
)

var pageTemplates = []string{TemplatePage, TemplateCaseStudyIndex, TemplateCaseStudy, TemplateNotFound}

// shared files parsed into every page template.
var shared = []string{"templates/layout.html", "templates/sections.html"}

// DefaultSiteTitle is used when site settings are missing.
const DefaultSiteTitle = "Vlah Software House"

// Layout holds the chrome every page shares.
type Layout struct {
	Title       string
	SiteTitle   string
	FaviconURL  string
	FaviconType string
	Nav         []models.NavItem
	Path        string
	Year        int
}

// PageView is a section-built page.
type PageView struct {
	Layout
	Directives []sections.Directive
	Content    []models.Block
}

// CaseStudyIndexView lists case-study cards.
type CaseStudyIndexView struct {
	Layout
	CaseStudies []models.CaseStudy
}

// CaseStudyView is one case study with its resolved sub-sections.
type CaseStudyView struct {
	Layout
	CaseStudy  *models.CaseStudy
	Directives []sections.Directive
}

// Engine holds the parsed templates. It is safe for concurrent use.
type Engine struct {
	templates map[string]*template.Template
	images    assets.Builder
}

// New parses the embedded templates. images derives CDN URLs for raw asset
// references.
func New(images assets.Builder) (*Engine, error) {
	e := &Engine{
		templates: make(map[string]*template.Template, len(pageTemplates)),
		images:    images,
	}
	funcs := e.funcMap()

	for _, name := range pageTemplates {
		files := append([]string{}, shared...)
		files = append(files, "templates/"+name+".html")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		e.templates[name] = tmpl
	}
	return e, nil
}

// Layout builds the shared chrome from site settings and navigation. head may
// be nil. title is the page's own title and may be empty.
func (e *Engine) Layout(head *models.SiteHead, nav []models.NavItem, title, path string) Layout {
	l := Layout{
		SiteTitle: DefaultSiteTitle,
		Nav:       nav,
		Path:      path,
		Year:      time.Now().Year(),
	}
	if head != nil {
		if head.SiteTitle != "" {
			l.SiteTitle = head.SiteTitle
		}
		if head.Favicon != nil {
			l.FaviconURL = e.images.ImageURL(head.Favicon, 0, 0)
			l.FaviconType = head.Favicon.AssetMimeType
		}
	}
	l.Title = l.SiteTitle
	if title != "" && title != l.SiteTitle {
		l.Title = title + " | " + l.SiteTitle
	}
	return l
}

// RenderPage writes a section-built page.
func (e *Engine) RenderPage(w io.Writer, v PageView) error {
	return e.render(w, TemplatePage, v)
}

// RenderCaseStudyIndex writes the case-study listing page.
func (e *Engine) RenderCaseStudyIndex(w io.Writer, v CaseStudyIndexView) error {
	return e.render(w, TemplateCaseStudyIndex, v)
}

// RenderCaseStudy writes one case study page.
func (e *Engine) RenderCaseStudy(w io.Writer, v CaseStudyView) error {
	return e.render(w, TemplateCaseStudy, v)
}

// RenderNotFound writes the 404 page.
func (e *Engine) RenderNotFound(w io.Writer, l Layout) error {
	return e.render(w, TemplateNotFound, l)
}

// render executes into a buffer first so a failing template never leaves a
// half-written page on w.
func (e *Engine) render(w io.Writer, name string, data any) error {
	tmpl, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
