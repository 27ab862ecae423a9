// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"sitefront/internal/components"
	"sitefront/internal/slug"
)

// CaseStudyRoutePrefix is the path segment the site puts before case-study slugs.
const CaseStudyRoutePrefix = "case-studies"

// LinkSchemes are the schemes allowed in rich-text links.
var LinkSchemes = []string{"http", "https", "mailto", "tel"}

var (
	webSchemes  = []string{"http", "https"}
	linkTargets = []string{"", "_blank", "_self", "_parent", "_top"}
)

// pageSections lists the section types a page may contain, in editor order.
var pageSections = []string{
	"hero1", "hero2", "feature1", "testimonial1", "contactForm",
	"caseStudyListings", "svelteComponent", "homeHeroSvelte", "fruitLabelSkills",
}

// Default returns the site's registry. catalog supplies the selectable
// interactive components.
func Default(catalog *components.Catalog) *Registry {
	types := []Type{
		pageType(),
		caseStudyType(),
		siteSettingsType(),
		ctaType(),
		navItemType(),
		heroType("hero1", "Hero 1", false),
		heroType("hero2", "Hero 2", true),
		feature1Type(),
		testimonial1Type(),
		contactFormType(),
		caseStudyListingsType(),
		svelteComponentType(catalog),
		{Name: "homeHeroSvelte", Title: "Home Hero (Svelte)", Kind: KindObject},
		{Name: "fruitLabelSkills", Title: "Fruit Label Skills", Kind: KindObject},
		{Name: "textSection", Title: "Text Section", Kind: KindObject, Fields: []Field{
			{Name: "title", Title: "Title", Type: TypeString},
			{Name: "content", Title: "Content", Type: TypePortableText},
		}},
		{Name: "imageSection", Title: "Image Section", Kind: KindObject, Fields: []Field{
			{Name: "asset", Title: "Image", Type: TypeImage, Rules: []Rule{Required()}, Fields: []Field{
				{Name: "alt", Title: "Alt text", Type: TypeString},
			}},
		}},
	}
	r, err := New(types...)
	if err != nil {
		panic(err)
	}
	return r.WithLinkSchemes(LinkSchemes...)
}

func members(names ...string) []Field {
	out := make([]Field, len(names))
	for i, n := range names {
		out[i] = Field{Name: n, Type: n}
	}
	return out
}

func pageType() Type {
	return Type{Name: "page", Title: "Pages", Kind: KindDocument, Fields: []Field{
		{Name: "title", Title: "Title", Type: TypeString, Rules: []Rule{Required()}},
		{Name: "slug", Title: "Slug", Type: TypeSlug, Rules: []Rule{Required(), Slug("")}},
		{Name: "sections", Title: "Sections", Type: TypeArray, Of: members(pageSections...)},
		{Name: "content", Title: "Content", Type: TypePortableText,
			Description: "Rich text content rendered below the sections."},
	}}
}

func caseStudyType() Type {
	return Type{Name: "caseStudy", Title: "Case Studies", Kind: KindDocument, Fields: []Field{
		{Name: "title", Title: "Title", Type: TypeString, Rules: []Rule{Required()}},
		{Name: "slug", Title: "Slug", Type: TypeSlug,
			Description: "Plain segment(s) only. Do NOT include a leading '/' or the 'case-studies/' prefix. Use kebab-case.",
			Rules:       []Rule{Required().WithMessage(slug.ErrEmpty.Error()), Slug(CaseStudyRoutePrefix)}},
		{Name: "description", Title: "Description", Type: TypeText, Rules: []Rule{Max(300)}},
		{Name: "clientName", Title: "Client Name", Type: TypeString},
		{Name: "projectDate", Title: "Project Date", Type: TypeDate},
		{Name: "featuredImage", Title: "Featured Image", Type: TypeImage, Rules: []Rule{Required()}, Fields: []Field{
			{Name: "alt", Title: "Alt text", Type: TypeString, Rules: []Rule{Required()}},
		}},
		{Name: "galleryImages", Title: "Gallery Images", Type: TypeArray, Of: []Field{
			{Name: "image", Type: TypeImage, Fields: []Field{
				{Name: "alt", Title: "Alt text", Type: TypeString, Rules: []Rule{Required()}},
				{Name: "caption", Title: "Caption", Type: TypeString},
			}},
		}},
		{Name: "challenge", Title: "Challenge", Type: TypeText},
		{Name: "solution", Title: "Solution", Type: TypeText},
		{Name: "results", Title: "Results", Type: TypeText},
		{Name: "sections", Title: "Sections", Type: TypeArray, Of: members("textSection", "imageSection", "svelteComponent")},
		{Name: "technologies", Title: "Technologies", Type: TypeArray, Of: []Field{{Name: "string", Type: TypeString}}},
		{Name: "tags", Title: "Tags", Type: TypeArray, Of: []Field{{Name: "string", Type: TypeString}}},
		{Name: "websiteUrl", Title: "Website URL", Type: TypeURL, Rules: []Rule{URI(webSchemes...)}},
		{Name: "githubUrl", Title: "GitHub URL", Type: TypeURL, Rules: []Rule{URI(webSchemes...)}},
	}}
}

func siteSettingsType() Type {
	return Type{Name: "siteSettings", Title: "Site Settings", Kind: KindDocument, Fields: []Field{
		{Name: "title", Title: "Title", Type: TypeString, Initial: "Global Site Settings"},
		{Name: "siteTitle", Title: "Site Title", Type: TypeString, Rules: []Rule{Required()}},
		{Name: "favicon", Title: "Favicon", Type: TypeImage, Fields: []Field{
			{Name: "alt", Title: "Alt text", Type: TypeString},
		}},
		{Name: "navigation", Title: "Navigation", Type: TypeArray, Of: members("navItem")},
	}}
}

func ctaType() Type {
	return Type{Name: "cta", Title: "Call to Action", Kind: KindObject, Fields: []Field{
		{Name: "label", Title: "Label", Type: TypeString, Rules: []Rule{Required()}},
		{Name: "href", Title: "Href", Type: TypeString, Rules: []Rule{Required()}},
		{Name: "target", Title: "Target", Type: TypeString, Options: linkTargets, Initial: "",
			Rules: []Rule{OneOf(linkTargets...)}},
		{Name: "variant", Title: "Variant", Type: TypeString, Options: []string{"default", "muted"}, Initial: "default",
			Rules: []Rule{OneOf("default", "muted")}},
	}}
}

func navItemType() Type {
	return Type{Name: "navItem", Title: "Navigation Item", Kind: KindObject, Fields: []Field{
		{Name: "page", Title: "Page", Type: TypeReference, To: []string{"page"}, Rules: []Rule{Required()}},
		{Name: "label", Title: "Label", Type: TypeString, Description: "Defaults to the page title."},
		{Name: "style", Title: "Style", Type: TypeString, Options: []string{"primary", "secondary"}, Initial: "secondary",
			Rules: []Rule{Required(), OneOf("primary", "secondary")}},
	}}
}

func heroType(name, title string, targets bool) Type {
	fields := []Field{
		{Name: "header", Title: "Header", Type: TypeString, Rules: []Rule{Required()}},
		{Name: "subheading", Title: "Text", Type: TypeText},
		{Name: "primaryCtaLabel", Title: "Primary CTA Label", Type: TypeString},
		{Name: "primaryCtaHref", Title: "Primary CTA Href", Type: TypeString},
	}
	if targets {
		fields = append(fields, Field{Name: "primaryCtaTarget", Title: "Primary CTA Target", Type: TypeString,
			Options: linkTargets, Initial: "", Rules: []Rule{OneOf(linkTargets...)}})
	}
	fields = append(fields,
		Field{Name: "secondaryCtaLabel", Title: "Secondary CTA Label", Type: TypeString},
		Field{Name: "secondaryCtaHref", Title: "Secondary CTA Href", Type: TypeString},
	)
	if targets {
		fields = append(fields, Field{Name: "secondaryCtaTarget", Title: "Secondary CTA Target", Type: TypeString,
			Options: linkTargets, Initial: "", Rules: []Rule{OneOf(linkTargets...)}})
	} else {
		fields = append(fields,
			Field{Name: "gradientFromColor", Title: "Gradient From Color", Type: TypeString,
				Description: "Starting color for the background gradient (hex format, e.g., #7CFF6B)"},
			Field{Name: "gradientToColor", Title: "Gradient To Color", Type: TypeString,
				Description: "Ending color for the background gradient (hex format, e.g., #FFF042)"},
		)
	}
	return Type{Name: name, Title: title, Kind: KindObject, Fields: fields}
}

func feature1Type() Type {
	return Type{Name: "feature1", Title: "Feature 1", Kind: KindObject, Fields: []Field{
		{Name: "header", Title: "Header", Type: TypeString, Rules: []Rule{Required()}},
		{Name: "subheading", Title: "Text", Type: TypeText},
		{Name: "ctas", Title: "CTAs", Type: TypeArray, Of: members("cta")},
		{Name: "features", Title: "Features", Type: TypeArray, Of: []Field{
			{Name: "feature", Title: "Feature", Type: TypeObject, Fields: []Field{
				{Name: "icon", Title: "Icon (id/text)", Type: TypeString},
				{Name: "category", Title: "Category", Type: TypeString},
				{Name: "text", Title: "Text", Type: TypeText},
			}},
		}},
	}}
}

func testimonial1Type() Type {
	return Type{Name: "testimonial1", Title: "Testimonial 1", Kind: KindObject, Fields: []Field{
		{Name: "quote", Title: "Quote", Type: TypeText, Description: "The testimonial quote (max 500 characters)",
			Rules: []Rule{Required(), Max(500)}},
		{Name: "customerName", Title: "Customer Name", Type: TypeString, Rules: []Rule{Required(), Max(100)}},
		{Name: "companyName", Title: "Company Name", Type: TypeString, Rules: []Rule{Required(), Max(100)}},
		{Name: "alignment", Title: "Alignment", Type: TypeString, Options: []string{"center", "left"}, Initial: "center",
			Rules: []Rule{OneOf("center", "left")}},
		{Name: "showBorders", Title: "Show Borders", Type: TypeBoolean, Initial: false},
		{Name: "customerUrl", Title: "Customer URL", Type: TypeURL, Rules: []Rule{URI(webSchemes...)}},
		{Name: "companyUrl", Title: "Company URL", Type: TypeURL, Rules: []Rule{URI(webSchemes...)}},
	}}
}

func contactFormType() Type {
	return Type{Name: "contactForm", Title: "Contact Form", Kind: KindObject, Fields: []Field{
		{Name: "headline", Title: "Headline", Type: TypeString, Rules: []Rule{Required()}},
		{Name: "description", Title: "Description", Type: TypeText},
		{Name: "tagline", Title: "Tagline", Type: TypeString},
		{Name: "taglineIcon", Title: "Tagline Icon (Lucide name)", Type: TypeString,
			Description: "Enter the Lucide icon name (e.g., 'mail', 'brain')."},
		{Name: "supportLinks", Title: "Support Links", Type: TypeArray, Of: []Field{
			{Name: "link", Title: "Link", Type: TypeObject, Fields: []Field{
				{Name: "label", Title: "Label", Type: TypeString, Rules: []Rule{Required()}},
				{Name: "icon", Title: "Icon (Lucide name)", Type: TypeString, Rules: []Rule{Required()}},
				{Name: "href", Title: "URL", Type: TypeURL, Rules: []Rule{URI(webSchemes...)}},
			}},
		}},
	}}
}

func caseStudyListingsType() Type {
	return Type{Name: "caseStudyListings", Title: "Case Study Listings", Kind: KindObject, Fields: []Field{
		{Name: "header", Title: "Header", Type: TypeString},
		{Name: "subheading", Title: "Subheading", Type: TypeText},
		{Name: "selectedCaseStudies", Title: "Selected Case Studies", Type: TypeArray,
			Rules: []Rule{Min(1).WithMessage("At least one case study must be selected")},
			Of: []Field{
				{Name: "caseStudyItem", Title: "Case Study", Type: TypeObject, Fields: []Field{
					{Name: "caseStudy", Title: "Case Study", Type: TypeReference, To: []string{"caseStudy"},
						Rules: []Rule{Required()}},
				}},
			}},
		{Name: "showViewAllButton", Title: "Show View All Button", Type: TypeBoolean, Initial: false},
		{Name: "viewAllButtonText", Title: "View All Button Text", Type: TypeString, Initial: "View All Case Studies"},
		{Name: "viewAllButtonUrl", Title: "View All Button URL", Type: TypeString, Initial: "/case-studies"},
	}}
}

func svelteComponentType(catalog *components.Catalog) Type {
	keys := catalog.Keys()
	return Type{Name: "svelteComponent", Title: "Interactive Component", Kind: KindObject, Fields: []Field{
		{Name: "componentType", Title: "Component", Type: TypeString, Options: keys,
			Rules: []Rule{Required(), OneOf(keys...)}},
	}}
}
