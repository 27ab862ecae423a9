// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package engine

import (
	"html/template"
	"strings"

	"sitefront/internal/markdown"
	"sitefront/internal/models"
	"sitefront/internal/richtext"
	"sitefront/internal/slug"
)

func (e *Engine) funcMap() template.FuncMap {
	return template.FuncMap{
		"image":      e.imageURL,
		"lineBreaks": richtext.LineBreaks,
		"markdown":   markdown.HTML,
		"richText":   richtext.HTML,
		"ctaRel":     ctaRel,
		"anchor":     slug.Generate,
		"active":     active,
		"join":       strings.Join,
	}
}

// imageURL accepts the image shapes templates range over. Zero dimensions
// are omitted from the URL.
func (e *Engine) imageURL(img any, w, h int) string {
	switch v := img.(type) {
	case *models.Image:
		return e.images.ImageURL(v, w, h)
	case models.Image:
		return e.images.ImageURL(&v, w, h)
	case *models.ResolvedAsset:
		if v == nil {
			return ""
		}
		if v.URL != "" {
			return v.URL
		}
		return e.images.URL(v.ID, w, h)
	default:
		return ""
	}
}

// ctaRel returns the rel attribute value for a link target.
func ctaRel(target models.LinkTarget) string {
	if target == models.TargetBlank {
		return "noopener noreferrer"
	}
	return ""
}

// active reports whether href is the current path or one of its parents.
func active(path, href string) bool {
	if path == href {
		return true
	}
	return href != "/" && strings.HasPrefix(path, href+"/")
}
