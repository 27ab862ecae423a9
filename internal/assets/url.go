// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assets derives image CDN URLs from raw asset references.
package assets

import (
	"strconv"
	"strings"

	"sitefront/internal/models"
)

// DefaultHost is the image CDN host.
const DefaultHost = "cdn.sanity.io"

const refPrefix = "image-"

// Builder builds image URLs for one project and dataset.
type Builder struct {
	Host      string
	ProjectID string
	Dataset   string
}

// NewBuilder returns a Builder, defaulting the host and the dataset.
func NewBuilder(host, projectID, dataset string) Builder {
	if host == "" {
		host = DefaultHost
	}
	if dataset == "" {
		dataset = "production"
	}
	return Builder{Host: host, ProjectID: projectID, Dataset: dataset}
}

// DecodeAssetID turns "image-<id>-<w>x<h>-<ext>" into "<id>-<w>x<h>.<ext>".
// References without the image- prefix are returned unchanged.
func DecodeAssetID(ref string) string {
	if !strings.HasPrefix(ref, refPrefix) {
		return ref
	}
	id := strings.TrimPrefix(ref, refPrefix)
	if i := strings.LastIndexByte(id, '-'); i >= 0 && isWord(id[i+1:]) {
		id = id[:i] + "." + id[i+1:]
	}
	return id
}

// isWord reports whether s is a non-empty run of [A-Za-z0-9_].
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
	}
	return true
}

// URL returns the CDN URL for ref, with optional width and height in pixels.
// Zero dimensions are omitted. An empty ref yields "".
func (b Builder) URL(ref string, width, height int) string {
	if ref == "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("https://")
	sb.WriteString(b.Host)
	sb.WriteString("/images/")
	sb.WriteString(b.ProjectID)
	sb.WriteByte('/')
	sb.WriteString(b.Dataset)
	sb.WriteByte('/')
	sb.WriteString(DecodeAssetID(ref))

	sep := byte('?')
	if width > 0 {
		sb.WriteByte(sep)
		sb.WriteString("w=")
		sb.WriteString(strconv.Itoa(width))
		sep = '&'
	}
	if height > 0 {
		sb.WriteByte(sep)
		sb.WriteString("h=")
		sb.WriteString(strconv.Itoa(height))
	}
	return sb.String()
}

// ImageURL prefers the resolved asset URL and falls back to deriving one
// from the raw reference. Dimensions apply only to derived URLs.
func (b Builder) ImageURL(img *models.Image, width, height int) string {
	if img == nil {
		return ""
	}
	if img.AssetURL != "" {
		return img.AssetURL
	}
	return b.URL(img.Ref(), width, height)
}
