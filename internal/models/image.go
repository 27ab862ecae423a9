// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// AssetRef is a raw reference to an uploaded asset, e.g.
// {"_type":"reference","_ref":"image-abc123-1920x1080-jpg"}.
type AssetRef struct {
	Ref  string `json:"_ref,omitempty"`
	Type string `json:"_type,omitempty"`
}

// Image is an image field. When the query dereferenced the asset inline the
// Asset* fields are populated; otherwise only the raw reference is present.
type Image struct {
	Asset         *AssetRef `json:"asset,omitempty"`
	Alt           string    `json:"alt,omitempty"`
	Caption       string    `json:"caption,omitempty"`
	AssetURL      string    `json:"assetUrl,omitempty"`
	AssetMimeType string    `json:"assetMimeType,omitempty"`
	AssetExt      string    `json:"assetExt,omitempty"`
}

// Ref returns the raw asset reference or "".
func (i *Image) Ref() string {
	if i == nil || i.Asset == nil {
		return ""
	}
	return i.Asset.Ref
}

// ResolvedAsset is a fully dereferenced asset document.
type ResolvedAsset struct {
	ID      string `json:"_id,omitempty"`
	URL     string `json:"url,omitempty"`
	AltText string `json:"altText,omitempty"`
}

// LinkTarget is the HTML target attribute of a call to action.
type LinkTarget string

const (
	TargetNone   LinkTarget = ""
	TargetBlank  LinkTarget = "_blank"
	TargetSelf   LinkTarget = "_self"
	TargetParent LinkTarget = "_parent"
	TargetTop    LinkTarget = "_top"
)

// CTAVariant is the visual weight of a call to action.
type CTAVariant string

const (
	CTAVariantDefault CTAVariant = "default"
	CTAVariantMuted   CTAVariant = "muted"
)

// CTA is a call-to-action element.
type CTA struct {
	Key     string     `json:"_key,omitempty"`
	Label   string     `json:"label,omitempty"`
	Href    string     `json:"href,omitempty"`
	Target  LinkTarget `json:"target,omitempty"`
	Variant CTAVariant `json:"variant,omitempty"`
}

// Muted reports whether the CTA uses the muted variant.
func (c CTA) Muted() bool {
	return c.Variant == CTAVariantMuted
}
