// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
)

// SectionType is the discriminator tag (_type) of an embeddable section.
type SectionType string

const (
	SectionHero1             SectionType = "hero1"
	SectionHero2             SectionType = "hero2"
	SectionFeature1          SectionType = "feature1"
	SectionTestimonial1      SectionType = "testimonial1"
	SectionContactForm       SectionType = "contactForm"
	SectionCaseStudyListings SectionType = "caseStudyListings"
	SectionComponent         SectionType = "svelteComponent"
	SectionHomeHero          SectionType = "homeHeroSvelte"
	SectionFruitLabelSkills  SectionType = "fruitLabelSkills"

	// Case-study only.
	SectionText  SectionType = "textSection"
	SectionImage SectionType = "imageSection"
)

// Section is one typed block of a page. The set of implementations is closed;
// tags this build does not know decode to *Unknown.
type Section interface {
	SectionType() SectionType
	isSection()
}

// Hero is shared by hero1 and hero2. CTAs are stored as flat fields.
type Hero struct {
	Type               SectionType `json:"_type"`
	Key                string      `json:"_key,omitempty"`
	Header             string      `json:"header,omitempty"`
	Subheading         string      `json:"subheading,omitempty"`
	PrimaryCtaLabel    string      `json:"primaryCtaLabel,omitempty"`
	PrimaryCtaHref     string      `json:"primaryCtaHref,omitempty"`
	PrimaryCtaTarget   string      `json:"primaryCtaTarget,omitempty"`
	SecondaryCtaLabel  string      `json:"secondaryCtaLabel,omitempty"`
	SecondaryCtaHref   string      `json:"secondaryCtaHref,omitempty"`
	SecondaryCtaTarget string      `json:"secondaryCtaTarget,omitempty"`
	GradientFromColor  string      `json:"gradientFromColor,omitempty"`
	GradientToColor    string      `json:"gradientToColor,omitempty"`
	HeroImages         []Image     `json:"heroImages,omitempty"`
}

// PrimaryCTA returns the primary call to action, or nil when no label is set.
func (h *Hero) PrimaryCTA() *CTA {
	return flatCTA(h.PrimaryCtaLabel, h.PrimaryCtaHref, h.PrimaryCtaTarget, CTAVariantDefault)
}

// SecondaryCTA returns the secondary call to action, or nil when no label is set.
func (h *Hero) SecondaryCTA() *CTA {
	return flatCTA(h.SecondaryCtaLabel, h.SecondaryCtaHref, h.SecondaryCtaTarget, CTAVariantMuted)
}

func flatCTA(label, href, target string, variant CTAVariant) *CTA {
	if label == "" {
		return nil
	}
	return &CTA{Label: label, Href: href, Target: LinkTarget(target), Variant: variant}
}

// Feature is the feature1 section.
type Feature struct {
	Type       SectionType   `json:"_type"`
	Key        string        `json:"_key,omitempty"`
	Header     string        `json:"header,omitempty"`
	Subheading string        `json:"subheading,omitempty"`
	CTAs       []CTA         `json:"ctas,omitempty"`
	Features   []FeatureItem `json:"features,omitempty"`
}

// FeatureItem is one entry in a feature grid.
type FeatureItem struct {
	Icon     string `json:"icon,omitempty"`
	Category string `json:"category,omitempty"`
	Text     string `json:"text,omitempty"`
}

// Alignment of a testimonial block.
type Alignment string

const (
	AlignCenter Alignment = "center"
	AlignLeft   Alignment = "left"
)

// Testimonial is the testimonial1 section.
type Testimonial struct {
	Type         SectionType `json:"_type"`
	Key          string      `json:"_key,omitempty"`
	Quote        string      `json:"quote,omitempty"`
	CustomerName string      `json:"customerName,omitempty"`
	CompanyName  string      `json:"companyName,omitempty"`
	Alignment    Alignment   `json:"alignment,omitempty"`
	ShowBorders  bool        `json:"showBorders,omitempty"`
	CustomerURL  string      `json:"customerUrl,omitempty"`
	CompanyURL   string      `json:"companyUrl,omitempty"`
}

// Align returns the alignment, defaulting to center.
func (t *Testimonial) Align() Alignment {
	if t.Alignment == AlignLeft {
		return AlignLeft
	}
	return AlignCenter
}

// ContactForm is the contactForm section.
type ContactForm struct {
	Type         SectionType   `json:"_type"`
	Key          string        `json:"_key,omitempty"`
	Headline     string        `json:"headline,omitempty"`
	Description  string        `json:"description,omitempty"`
	Tagline      string        `json:"tagline,omitempty"`
	TaglineIcon  string        `json:"taglineIcon,omitempty"`
	SupportLinks []SupportLink `json:"supportLinks,omitempty"`
}

// SupportLink is a labelled icon link under a contact form.
type SupportLink struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Href  string `json:"href,omitempty"`
}

// Default copy for the listings "view all" control.
const (
	DefaultViewAllText = "View All Case Studies"
	DefaultViewAllURL  = "/case-studies"
)

// CaseStudyListings shows a curated, ordered set of case studies.
type CaseStudyListings struct {
	Type                SectionType        `json:"_type"`
	Key                 string             `json:"_key,omitempty"`
	Header              string             `json:"header,omitempty"`
	Subheading          string             `json:"subheading,omitempty"`
	SelectedCaseStudies []CaseStudyListing `json:"selectedCaseStudies,omitempty"`
	ShowViewAllButton   bool               `json:"showViewAllButton,omitempty"`
	ViewAllButtonText   string             `json:"viewAllButtonText,omitempty"`
	ViewAllButtonURL    string             `json:"viewAllButtonUrl,omitempty"`
}

// CaseStudyListing wraps one dereferenced reference. CaseStudy is nil when
// the reference did not resolve.
type CaseStudyListing struct {
	Key       string     `json:"_key,omitempty"`
	CaseStudy *CaseStudy `json:"caseStudy"`
}

// ViewAllText returns the button label with its default applied.
func (l *CaseStudyListings) ViewAllText() string {
	if l.ViewAllButtonText == "" {
		return DefaultViewAllText
	}
	return l.ViewAllButtonText
}

// ViewAllURL returns the button target with its default applied.
func (l *CaseStudyListings) ViewAllURL() string {
	if l.ViewAllButtonURL == "" {
		return DefaultViewAllURL
	}
	return l.ViewAllButtonURL
}

// Component selects an interactive embed from the component catalog by key.
type Component struct {
	Type          SectionType `json:"_type"`
	Key           string      `json:"_key,omitempty"`
	ComponentType string      `json:"componentType,omitempty"`
}

// Embed is a tag-only section bound to a fixed interactive component
// (homeHeroSvelte, fruitLabelSkills).
type Embed struct {
	Type SectionType `json:"_type"`
	Key  string      `json:"_key,omitempty"`
}

// TextSection is a titled portable-text block inside a case study.
type TextSection struct {
	Type    SectionType `json:"_type"`
	Key     string      `json:"_key,omitempty"`
	Title   string      `json:"title,omitempty"`
	Content []Block     `json:"content,omitempty"`
}

// ImageSection is a full-width image inside a case study.
type ImageSection struct {
	Type  SectionType    `json:"_type"`
	Key   string         `json:"_key,omitempty"`
	Asset *ResolvedAsset `json:"asset,omitempty"`
}

// Unknown carries a section whose tag is not recognised, or whose payload did
// not fit its variant, together with the raw JSON.
type Unknown struct {
	Type SectionType
	Raw  json.RawMessage
}

// MarshalJSON writes the original payload back out.
func (u *Unknown) MarshalJSON() ([]byte, error) {
	if len(u.Raw) == 0 {
		return []byte("null"), nil
	}
	return u.Raw, nil
}

func (s *Hero) SectionType() SectionType              { return s.Type }
func (s *Feature) SectionType() SectionType           { return SectionFeature1 }
func (s *Testimonial) SectionType() SectionType       { return SectionTestimonial1 }
func (s *ContactForm) SectionType() SectionType       { return SectionContactForm }
func (s *CaseStudyListings) SectionType() SectionType { return SectionCaseStudyListings }
func (s *Component) SectionType() SectionType         { return SectionComponent }
func (s *Embed) SectionType() SectionType             { return s.Type }
func (s *TextSection) SectionType() SectionType       { return SectionText }
func (s *ImageSection) SectionType() SectionType      { return SectionImage }
func (s *Unknown) SectionType() SectionType           { return s.Type }

func (*Hero) isSection()              {}
func (*Feature) isSection()           {}
func (*Testimonial) isSection()       {}
func (*ContactForm) isSection()       {}
func (*CaseStudyListings) isSection() {}
func (*Component) isSection()         {}
func (*Embed) isSection()             {}
func (*TextSection) isSection()       {}
func (*ImageSection) isSection()      {}
func (*Unknown) isSection()           {}

// Sections is an ordered section list. A nil Sections means the field was
// absent or not an array; an empty non-nil value is a present, empty list.
type Sections []Section

// UnmarshalJSON dispatches each element on its _type tag.
func (s *Sections) UnmarshalJSON(data []byte) error {
	raws, ok := rawArray(data)
	if !ok {
		*s = nil
		return nil
	}
	out := make(Sections, 0, len(raws))
	for _, raw := range raws {
		out = append(out, decodeSection(raw))
	}
	*s = out
	return nil
}

// decodeSection never fails: a payload that does not fit its variant's shape
// is kept as *Unknown so one bad block cannot hide the rest of the page.
func decodeSection(raw json.RawMessage) Section {
	var sec Section
	t := peekType(raw)
	switch t {
	case SectionHero1, SectionHero2:
		sec = &Hero{}
	case SectionFeature1:
		sec = &Feature{}
	case SectionTestimonial1:
		sec = &Testimonial{}
	case SectionContactForm:
		sec = &ContactForm{}
	case SectionCaseStudyListings:
		sec = &CaseStudyListings{}
	case SectionComponent:
		sec = &Component{}
	case SectionHomeHero, SectionFruitLabelSkills:
		sec = &Embed{}
	case SectionText:
		sec = &TextSection{}
	case SectionImage:
		sec = &ImageSection{}
	default:
		return unknown(t, raw)
	}
	if err := json.Unmarshal(raw, sec); err != nil {
		return unknown(t, raw)
	}
	return sec
}

func unknown(t SectionType, raw json.RawMessage) *Unknown {
	return &Unknown{Type: t, Raw: append(json.RawMessage(nil), raw...)}
}

// peekType reads only the _type field of an object. Non-objects yield "".
func peekType(raw json.RawMessage) SectionType {
	var head struct {
		Type SectionType `json:"_type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return ""
	}
	return head.Type
}

// rawArray splits a JSON array into its elements. It reports false for null
// and for any value that is not an array.
func rawArray(data []byte) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, false
	}
	return raws, true
}
