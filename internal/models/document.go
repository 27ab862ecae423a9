// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models holds the typed shapes of documents read from the content
// store and the values derived from them for rendering.
package models

// DocumentType is the discriminator tag of a top-level document.
type DocumentType string

const (
	DocumentPage         DocumentType = "page"
	DocumentCaseStudy    DocumentType = "caseStudy"
	DocumentSiteSettings DocumentType = "siteSettings"
)

// PageListItem is the summary row returned by the page list query.
type PageListItem struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// PageDetail is a page with its ordered sections and optional rich text body.
// Sections is nil when the stored document has no sections array.
type PageDetail struct {
	ID       string   `json:"_id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Sections Sections `json:"sections"`
	Content  []Block  `json:"content,omitempty"`
}

// Favicon is the site favicon with its asset dereferenced inline.
type Favicon = Image

// SiteHead holds the site-wide values rendered in <head>.
type SiteHead struct {
	SiteTitle string   `json:"siteTitle,omitempty"`
	Favicon   *Favicon `json:"favicon,omitempty"`
}

// NavStyle is the visual style of a navigation entry.
type NavStyle string

const (
	NavPrimary   NavStyle = "primary"
	NavSecondary NavStyle = "secondary"
)

// NavEntry is one raw navigation row with the referenced page pre-joined.
// Slug is nil when the page reference did not resolve.
type NavEntry struct {
	Label     string  `json:"label,omitempty"`
	Style     string  `json:"style,omitempty"`
	PageTitle string  `json:"pageTitle,omitempty"`
	Slug      *string `json:"slug"`
}

// NavItem is a navigation link ready for rendering.
type NavItem struct {
	Label string   `json:"label"`
	Href  string   `json:"href"`
	Style NavStyle `json:"style"`
}
