// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package groq

import "strings"

// fields joins projection entries into a comma-separated list.
func fields(parts ...string) string {
	return strings.Join(parts, ",\n")
}

// imageFields inlines the asset bundle so no second round trip is needed.
const imageFields = `asset,
alt,
caption,
"assetUrl": asset->url,
"assetMimeType": asset->mimeType,
"assetExt": asset->extension`

var ctaFields = fields("_key", "label", "href", "target", "variant")

var heroFields = fields(
	"header",
	"subheading",
	"primaryCtaLabel",
	"primaryCtaHref",
	"primaryCtaTarget",
	"secondaryCtaLabel",
	"secondaryCtaHref",
	"secondaryCtaTarget",
	"gradientFromColor",
	"gradientToColor",
	"heroImages[]{"+imageFields+"}",
)

var featureFields = fields(
	"header",
	"subheading",
	"ctas[]{"+ctaFields+"}",
	"features[]{icon, category, text}",
)

var testimonialFields = fields(
	"quote",
	"customerName",
	"companyName",
	"alignment",
	"showBorders",
	"customerUrl",
	"companyUrl",
)

var contactFormFields = fields(
	"headline",
	"description",
	"tagline",
	"taglineIcon",
	"supportLinks[]{label, icon, href}",
)

// caseStudyCardFields are the denormalised case-study fields used by
// listings and the index page.
var caseStudyCardFields = fields(
	"_id",
	"title",
	`"slug": slug.current`,
	"description",
	"clientName",
	"projectDate",
	"featuredImage{"+imageFields+"}",
	"tags",
)

var listingsFields = fields(
	"header",
	"subheading",
	"selectedCaseStudies[]{_key, caseStudy->{"+caseStudyCardFields+"}}",
	"showViewAllButton",
	"viewAllButtonText",
	"viewAllButtonUrl",
)

// sectionProjection selects each section variant's fields by tag. Tags with
// no branch keep only _type and _key, which is enough to skip them.
var sectionProjection = fields(
	"_type",
	"_key",
	`_type in ["hero1", "hero2"] => {`+heroFields+`}`,
	`_type == "feature1" => {`+featureFields+`}`,
	`_type == "testimonial1" => {`+testimonialFields+`}`,
	`_type == "contactForm" => {`+contactFormFields+`}`,
	`_type == "caseStudyListings" => {`+listingsFields+`}`,
	`_type == "svelteComponent" => {componentType}`,
)

var caseStudySectionProjection = fields(
	"_type",
	"_key",
	`_type == "textSection" => {title, content}`,
	`_type == "imageSection" => {"asset": asset.asset->{_id, url, altText}}`,
	`_type == "svelteComponent" => {componentType}`,
)

var pageDetailFields = fields(
	"_id",
	"title",
	`"slug": slug.current`,
	"sections[]{"+sectionProjection+"}",
	"content",
)

var caseStudyDetailFields = fields(
	caseStudyCardFields,
	"galleryImages[]{"+imageFields+"}",
	"challenge",
	"solution",
	"results",
	"sections[]{"+caseStudySectionProjection+"}",
	"technologies",
	"websiteUrl",
	"githubUrl",
)

const faviconProjection = `favicon{` + imageFields + `}`
