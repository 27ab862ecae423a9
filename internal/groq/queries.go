// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package groq is the fixed catalog of read queries the site sends to the
// content store. Each constructor is a pure function of its parameters, and
// each projection inlines referenced documents so a page needs one round trip
// per query.
package groq

// Query is a named query text plus its parameters.
type Query struct {
	Name   string
	Text   string
	Params map[string]any
}

// Query names, used for logging and metrics labels.
const (
	NamePageBySlug             = "pageBySlug"
	NameHomePageWithSections   = "homePageWithSections"
	NameFirstPageWithSections  = "firstPageWithSections"
	NamePageList               = "pageList"
	NameSiteSettingsHead       = "siteSettingsHead"
	NameSiteSettingsFavicon    = "siteSettingsFavicon"
	NameSiteSettingsNavigation = "siteSettingsNavigation"
	NameCaseStudyBySlug        = "caseStudyBySlug"
	NameCaseStudyList          = "caseStudyList"
	NameCaseStudySlugs         = "caseStudySlugs"
)

// PageBySlug selects one page and its ordered sections.
func PageBySlug(slug string) Query {
	return Query{
		Name:   NamePageBySlug,
		Text:   `*[_type == "page" && slug.current == $slug][0]{` + pageDetailFields + `}`,
		Params: map[string]any{"slug": slug},
	}
}

// HomePageWithSections selects a page whose slug is any of candidates and
// which has at least one section. Which page wins when several match is left
// to the store.
func HomePageWithSections(candidates []string) Query {
	slugs := append([]string{}, candidates...)
	return Query{
		Name:   NameHomePageWithSections,
		Text:   `*[_type == "page" && slug.current in $slugs && count(sections) > 0][0]{` + pageDetailFields + `}`,
		Params: map[string]any{"slugs": slugs},
	}
}

// FirstPageWithSections selects any page with a defined, non-empty sections array.
func FirstPageWithSections() Query {
	return Query{
		Name: NameFirstPageWithSections,
		Text: `*[_type == "page" && defined(sections) && count(sections) > 0][0]{` + pageDetailFields + `}`,
	}
}

// PageList selects every page's id, title and slug ordered by title.
func PageList() Query {
	return Query{
		Name: NamePageList,
		Text: `*[_type == "page"] | order(title asc){_id, title, "slug": slug.current}`,
	}
}

// SiteSettingsHead selects the site title and favicon with its asset inlined.
func SiteSettingsHead() Query {
	return Query{
		Name: NameSiteSettingsHead,
		Text: `*[_type == "siteSettings"][0]{siteTitle, ` + faviconProjection + `}`,
	}
}

// SiteSettingsFavicon selects the favicon sub-object alone.
func SiteSettingsFavicon() Query {
	return Query{
		Name: NameSiteSettingsFavicon,
		Text: `*[_type == "siteSettings"][0].favicon{` + imageFields + `}`,
	}
}

// SiteSettingsNavigation selects navigation entries with the referenced
// page's title and slug joined in.
func SiteSettingsNavigation() Query {
	return Query{
		Name: NameSiteSettingsNavigation,
		Text: `*[_type == "siteSettings"][0].navigation[]{label, style, "pageTitle": page->title, "slug": page->slug.current}`,
	}
}

// CaseStudyBySlug selects one case study with its gallery and sub-sections.
func CaseStudyBySlug(slug string) Query {
	return Query{
		Name:   NameCaseStudyBySlug,
		Text:   `*[_type == "caseStudy" && slug.current == $slug][0]{` + caseStudyDetailFields + `}`,
		Params: map[string]any{"slug": slug},
	}
}

// CaseStudyList selects case-study cards, newest project first.
func CaseStudyList() Query {
	return Query{
		Name: NameCaseStudyList,
		Text: `*[_type == "caseStudy" && defined(slug.current)] | order(projectDate desc, title asc){` + caseStudyCardFields + `}`,
	}
}

// CaseStudySlugs selects every case-study slug.
func CaseStudySlugs() Query {
	return Query{
		Name: NameCaseStudySlugs,
		Text: `*[_type == "caseStudy" && defined(slug.current)].slug.current`,
	}
}

// All returns one instance of every query, for tooling and tests.
func All() []Query {
	return []Query{
		PageBySlug(""),
		HomePageWithSections(nil),
		FirstPageWithSections(),
		PageList(),
		SiteSettingsHead(),
		SiteSettingsFavicon(),
		SiteSettingsNavigation(),
		CaseStudyBySlug(""),
		CaseStudyList(),
		CaseStudySlugs(),
	}
}
