// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sections maps fetched sections to render directives. Resolution is
// a pure single pass; output order matches input order.
package sections

import (
	"log/slog"

	"sitefront/internal/components"
	"sitefront/internal/models"
)

// Kind selects the partial a directive renders with.
type Kind string

const (
	KindHero              Kind = "hero"
	KindFeature           Kind = "feature"
	KindTestimonial       Kind = "testimonial"
	KindContactForm       Kind = "contactForm"
	KindCaseStudyListings Kind = "caseStudyListings"
	KindComponent         Kind = "component"
	KindPlaceholder       Kind = "placeholder"
	KindText              Kind = "text"
	KindImage             Kind = "image"
)

// PlaceholderTitle is shown where a component key does not resolve.
const PlaceholderTitle = "Not Selected"

// Directive tells the renderer what to draw for one section.
type Directive struct {
	Kind     Kind
	Template string
	Section  models.Section

	// Component is set for component and placeholder directives. A
	// placeholder carries the unresolved key and PlaceholderTitle.
	Component *components.Component

	// CaseStudies holds the resolved listing entries in stored order.
	CaseStudies []models.CaseStudy
}

// Resolver resolves sections against a component catalog.
type Resolver struct {
	catalog *components.Catalog
}

// NewResolver returns a resolver. A nil catalog uses components.Default.
func NewResolver(catalog *components.Catalog) *Resolver {
	if catalog == nil {
		catalog = components.Default()
	}
	return &Resolver{catalog: catalog}
}

// embeds binds tag-only sections to their catalog entry.
var embeds = map[models.SectionType]string{
	models.SectionHomeHero:         components.HeroHome,
	models.SectionFruitLabelSkills: components.FruitLabelSkills,
}

// Resolve maps one section. It reports false for sections that render
// nothing: unknown tags and nil values.
func (r *Resolver) Resolve(sec models.Section) (Directive, bool) {
	switch s := sec.(type) {
	case *models.Hero:
		return directive(KindHero, s), true
	case *models.Feature:
		return directive(KindFeature, s), true
	case *models.Testimonial:
		return directive(KindTestimonial, s), true
	case *models.ContactForm:
		return directive(KindContactForm, s), true
	case *models.CaseStudyListings:
		d := directive(KindCaseStudyListings, s)
		d.CaseStudies = listed(s)
		return d, true
	case *models.Component:
		return r.component(s, s.ComponentType), true
	case *models.Embed:
		return r.component(s, embeds[s.Type]), true
	case *models.TextSection:
		return directive(KindText, s), true
	case *models.ImageSection:
		return directive(KindImage, s), true
	case *models.Unknown:
		slog.Debug("skipping unknown section", "type", s.Type)
		return Directive{}, false
	default:
		return Directive{}, false
	}
}

// ResolveAll maps sections in order, dropping those that render nothing.
func (r *Resolver) ResolveAll(secs models.Sections) []Directive {
	out := make([]Directive, 0, len(secs))
	for _, sec := range secs {
		if d, ok := r.Resolve(sec); ok {
			out = append(out, d)
		}
	}
	return out
}

func (r *Resolver) component(sec models.Section, key string) Directive {
	if c, ok := r.catalog.Lookup(key); ok {
		d := directive(KindComponent, sec)
		d.Component = &c
		return d
	}
	d := directive(KindPlaceholder, sec)
	d.Component = &components.Component{Key: key, Title: PlaceholderTitle}
	return d
}

func directive(kind Kind, sec models.Section) Directive {
	return Directive{Kind: kind, Template: "section-" + string(kind), Section: sec}
}

// listed returns the dereferenced case studies in stored order. Duplicates
// are kept; unresolved references are skipped.
func listed(s *models.CaseStudyListings) []models.CaseStudy {
	out := make([]models.CaseStudy, 0, len(s.SelectedCaseStudies))
	for _, item := range s.SelectedCaseStudies {
		if item.CaseStudy == nil {
			continue
		}
		out = append(out, *item.CaseStudy)
	}
	return out
}
