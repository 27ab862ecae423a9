// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"strings"

	"sitefront/internal/models"
)

// HomeSlugs are the page slugs that all address the site root.
var HomeSlugs = []string{"", "home", "index", "root"}

// IsHomeSlug reports whether slug is one of HomeSlugs.
func IsHomeSlug(slug string) bool {
	for _, h := range HomeSlugs {
		if slug == h {
			return true
		}
	}
	return false
}

// PageHref maps a page slug to its site path.
func PageHref(slug string) string {
	slug = strings.Trim(slug, "/")
	if IsHomeSlug(slug) {
		return "/"
	}
	return "/" + slug
}

// NavItemFrom derives a navigation item from a raw entry. It reports false
// when the page reference is broken and the entry has no href.
func NavItemFrom(e models.NavEntry) (models.NavItem, bool) {
	if e.Slug == nil {
		return models.NavItem{}, false
	}
	href := PageHref(*e.Slug)

	label := strings.TrimSpace(e.Label)
	if label == "" {
		label = e.PageTitle
	}
	style := models.NavSecondary
	if models.NavStyle(e.Style) == models.NavPrimary {
		style = models.NavPrimary
	}
	return models.NavItem{Label: label, Href: href, Style: style}, true
}
