// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug generates and validates URL-path slugs for documents.
package slug

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxLength is the longest slug the editor accepts.
const MaxLength = 96

// Validation errors. The messages are shown to content editors.
var (
	ErrEmpty        = errors.New("Slug is required")
	ErrLeadingSlash = errors.New("Remove leading '/' from slug")
	ErrPattern      = errors.New("Use lowercase letters, numbers, and hyphens")
	ErrTooLong      = errors.New("Slug must be at most 96 characters")
)

// PrefixError reports a slug that repeats the route prefix the site adds itself.
type PrefixError struct {
	Prefix string
}

func (e *PrefixError) Error() string {
	return "Remove '" + e.Prefix + "/' prefix; the route adds it automatically"
}

// ErrRoutePrefix matches any *PrefixError with errors.Is.
var ErrRoutePrefix = &PrefixError{}

// Is lets errors.Is(err, ErrRoutePrefix) match every prefix.
func (e *PrefixError) Is(target error) bool {
	_, ok := target.(*PrefixError)
	return ok
}

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)

	// pathPattern is the accepted shape of a stored path slug.
	pathPattern = regexp.MustCompile(`^[a-z0-9-]+(?:/[a-z0-9-]+)*$`)
	// nonPathChars matches runs of characters not allowed in a path slug.
	nonPathChars = regexp.MustCompile(`[^a-z0-9/]+`)
	// multipleSlashes collapses repeated separators.
	multipleSlashes = regexp.MustCompile(`/{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Path turns editor input into a slash-segmented slug. Leading slashes and a
// typed routePrefix are removed since the route adds them.
// Example: Path("/case-studies/Acme Redesign!", "case-studies") → "acme-redesign"
func Path(input, routePrefix string) string {
	result := strings.ToLower(strings.TrimSpace(input))
	result = strings.TrimLeft(result, "/")
	if routePrefix != "" && strings.HasPrefix(result, routePrefix+"/") {
		result = strings.TrimLeft(strings.TrimPrefix(result, routePrefix), "/")
	}
	result = nonPathChars.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = multipleSlashes.ReplaceAllString(result, "/")
	result = strings.TrimPrefix(result, "-")
	result = strings.TrimSuffix(result, "-")
	return result
}

// Validate checks a stored slug. routePrefix is the path segment the route
// adds in front of the slug ("case-studies"), or "" when there is none.
func Validate(value, routePrefix string) error {
	if value == "" {
		return ErrEmpty
	}
	if strings.HasPrefix(value, "/") {
		return ErrLeadingSlash
	}
	if routePrefix != "" && strings.HasPrefix(value, routePrefix+"/") {
		return &PrefixError{Prefix: routePrefix}
	}
	if !pathPattern.MatchString(value) {
		return ErrPattern
	}
	if utf8.RuneCountInString(value) > MaxLength {
		return ErrTooLong
	}
	return nil
}
