// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package assets

import (
	"testing"

	"sitefront/internal/models"
)

func TestDecodeAssetID(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"image-abc123-1920x1080-jpg", "abc123-1920x1080.jpg"},
		{"image-abc123-800x600-png", "abc123-800x600.png"},
		{"image-abc123-10x10-webp", "abc123-10x10.webp"},
		{"image-abc123-10x10-svg", "abc123-10x10.svg"},
		{"abc123-1920x1080-jpg", "abc123-1920x1080-jpg"},
		{"image-abc123", "abc123"},
		{"image-", ""},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := DecodeAssetID(tt.ref); got != tt.want {
				t.Errorf("DecodeAssetID(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestURL(t *testing.T) {
	b := NewBuilder("", "proj", "")
	ref := "image-abc123-1920x1080-jpg"
	base := "https://cdn.sanity.io/images/proj/production/abc123-1920x1080.jpg"

	tests := []struct {
		name string
		ref  string
		w, h int
		want string
	}{
		{"no dimensions", ref, 0, 0, base},
		{"width", ref, 800, 0, base + "?w=800"},
		{"height", ref, 0, 600, base + "?h=600"},
		{"both", ref, 800, 600, base + "?w=800&h=600"},
		{"empty ref", "", 800, 600, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.URL(tt.ref, tt.w, tt.h); got != tt.want {
				t.Errorf("URL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImageURL(t *testing.T) {
	b := NewBuilder("img.example.com", "proj", "staging")

	resolved := &models.Image{AssetURL: "https://cdn.example/resolved.png", Asset: &models.AssetRef{Ref: "image-x-1x1-png"}}
	if got := b.ImageURL(resolved, 100, 0); got != "https://cdn.example/resolved.png" {
		t.Errorf("resolved: got %q", got)
	}

	raw := &models.Image{Asset: &models.AssetRef{Ref: "image-x-1x1-png"}}
	if got := b.ImageURL(raw, 100, 0); got != "https://img.example.com/images/proj/staging/x-1x1.png?w=100" {
		t.Errorf("raw: got %q", got)
	}

	if got := b.ImageURL(nil, 0, 0); got != "" {
		t.Errorf("nil: got %q", got)
	}
	if got := b.ImageURL(&models.Image{}, 0, 0); got != "" {
		t.Errorf("empty: got %q", got)
	}
}
