// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"sitefront/internal/slug"
)

// RuleKind names a validation predicate.
type RuleKind string

const (
	RuleRequired RuleKind = "required"
	RuleMax      RuleKind = "max"
	RuleMin      RuleKind = "min"
	RuleSlug     RuleKind = "slug"
	RuleURI      RuleKind = "uri"
	RuleOneOf    RuleKind = "oneOf"
)

// Rule is a declarative validation predicate. Only the fields relevant to
// Kind are set. Message overrides the default violation text.
type Rule struct {
	Kind    RuleKind `json:"rule"`
	N       int      `json:"n,omitempty"`
	Prefix  string   `json:"routePrefix,omitempty"`
	Schemes []string `json:"schemes,omitempty"`
	Values  []string `json:"values,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Required rejects absent or empty values.
func Required() Rule { return Rule{Kind: RuleRequired} }

// Max caps string length in characters or array length in items.
func Max(n int) Rule { return Rule{Kind: RuleMax, N: n} }

// Min sets a floor on string length or array length.
func Min(n int) Rule { return Rule{Kind: RuleMin, N: n} }

// Slug applies the path-slug rules with the route prefix that must not be repeated.
func Slug(routePrefix string) Rule { return Rule{Kind: RuleSlug, Prefix: routePrefix} }

// URI restricts a URL to the given schemes.
func URI(schemes ...string) Rule { return Rule{Kind: RuleURI, Schemes: schemes} }

// OneOf restricts a string to a fixed list.
func OneOf(values ...string) Rule { return Rule{Kind: RuleOneOf, Values: values} }

// WithMessage replaces the default violation text.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	return r
}

// check evaluates the rule. present is false for nil, "" and missing values.
// It returns "" when the value passes.
func (r Rule) check(v any, present bool) string {
	if !present {
		if r.Kind == RuleRequired {
			return r.msg("Required")
		}
		return ""
	}
	switch r.Kind {
	case RuleMax:
		if n, unit := size(v); n > r.N {
			return r.msg(fmt.Sprintf("Must be at most %d %s", r.N, unit))
		}
	case RuleMin:
		if n, unit := size(v); n < r.N {
			return r.msg(fmt.Sprintf("Must be at least %d %s", r.N, unit))
		}
	case RuleSlug:
		s, _ := v.(string)
		if err := slug.Validate(s, r.Prefix); err != nil {
			return r.msg(err.Error() + suggestSlug(s, r.Prefix))
		}
	case RuleURI:
		s, _ := v.(string)
		if !SchemeAllowed(s, r.Schemes) {
			return r.msg("Does not match allowed protocols/schemes: " + strings.Join(r.Schemes, ", "))
		}
	case RuleOneOf:
		s, _ := v.(string)
		if !slices.Contains(r.Values, s) {
			return r.msg(fmt.Sprintf("Value %q is not one of the allowed options", s))
		}
	}
	return ""
}

// suggestSlug offers the slugified form of a rejected value when that form
// would pass.
func suggestSlug(value, routePrefix string) string {
	fixed := slug.Path(value, routePrefix)
	if fixed == "" || fixed == value || slug.Validate(fixed, routePrefix) != nil {
		return ""
	}
	return fmt.Sprintf(" (try %q)", fixed)
}

func (r Rule) msg(def string) string {
	if r.Message != "" {
		return r.Message
	}
	return def
}

func size(v any) (int, string) {
	switch t := v.(type) {
	case string:
		return utf8.RuneCountInString(t), "characters"
	case []any:
		return len(t), "items"
	}
	return 0, ""
}

// SchemeAllowed reports whether raw is an absolute URL, or a mailto/tel URI,
// whose scheme is in schemes.
func SchemeAllowed(raw string, schemes []string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if !slices.Contains(schemes, scheme) {
		return false
	}
	if scheme == "http" || scheme == "https" {
		return u.Host != ""
	}
	return u.Opaque != "" || u.Path != ""
}
