// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"fmt"
	"strings"
)

// Violation is one failed rule at a field path such as "sections[2].quote".
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Violations collects every failed rule of a document.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = x.Path + ": " + x.Message
	}
	return strings.Join(parts, "; ")
}

// Options tunes validation.
type Options struct {
	// Exists reports whether a referenced document id exists. When nil,
	// references are not checked.
	Exists func(id string) bool
}

// Validate checks a decoded document against its registered type. It returns
// nil or a non-empty Violations.
func (r *Registry) Validate(doc map[string]any, opts Options) error {
	v := &validator{reg: r, opts: opts}
	name, _ := doc["_type"].(string)
	t, ok := r.Lookup(name)
	switch {
	case !ok:
		v.add("_type", fmt.Sprintf("Unknown document type %q", name))
	case t.Kind != KindDocument:
		v.add("_type", fmt.Sprintf("%q is not a document type", name))
	default:
		v.fields("", t.Fields, doc)
	}
	if len(v.out) == 0 {
		return nil
	}
	return v.out
}

type validator struct {
	reg  *Registry
	opts Options
	out  Violations
}

func (v *validator) add(path, msg string) {
	v.out = append(v.out, Violation{Path: path, Message: msg})
}

func (v *validator) fields(prefix string, fields []Field, obj map[string]any) {
	for _, f := range fields {
		v.field(join(prefix, f.Name), f, obj[f.Name])
	}
}

func (v *validator) field(path string, f Field, val any) {
	// Slug values are objects; rules apply to their current string.
	ruleVal := val
	if f.Type == TypeSlug {
		if m, ok := val.(map[string]any); ok {
			ruleVal = m["current"]
		}
	}
	present := isPresent(ruleVal)
	for _, rule := range f.Rules {
		if msg := rule.check(ruleVal, present); msg != "" {
			v.add(path, msg)
		}
	}
	if !present {
		return
	}
	v.shape(path, f, val)
}

// shape checks the value's type and descends into composite values.
func (v *validator) shape(path string, f Field, val any) {
	switch f.Type {
	case TypeString, TypeText, TypeDate, TypeURL:
		if _, ok := val.(string); !ok {
			v.add(path, "Expected a string")
		}
	case TypeNumber:
		if _, ok := val.(float64); !ok {
			v.add(path, "Expected a number")
		}
	case TypeBoolean:
		if _, ok := val.(bool); !ok {
			v.add(path, "Expected a boolean")
		}
	case TypeSlug:
		if _, ok := val.(map[string]any); !ok {
			v.add(path, "Expected a slug object")
		}
	case TypeReference:
		v.reference(path, val)
	case TypeImage, TypeObject:
		m, ok := val.(map[string]any)
		if !ok {
			v.add(path, "Expected an object")
			return
		}
		v.fields(path, f.Fields, m)
	case TypeArray:
		v.array(path, f, val)
	case TypePortableText:
		v.portableText(path, val)
	default:
		v.named(path, f.Type, val)
	}
}

func (v *validator) named(path, typeName string, val any) {
	t, ok := v.reg.Lookup(typeName)
	if !ok {
		v.add(path, fmt.Sprintf("Unknown type %q", typeName))
		return
	}
	m, ok := val.(map[string]any)
	if !ok {
		v.add(path, "Expected an object")
		return
	}
	v.fields(path, t.Fields, m)
}

func (v *validator) reference(path string, val any) {
	m, ok := val.(map[string]any)
	if !ok {
		v.add(path, "Expected a reference")
		return
	}
	ref, _ := m["_ref"].(string)
	if ref == "" {
		v.add(path, "Reference is missing _ref")
		return
	}
	if v.opts.Exists != nil && !v.opts.Exists(ref) {
		v.add(path, fmt.Sprintf("Referenced document %q does not exist", ref))
	}
}

func (v *validator) array(path string, f Field, val any) {
	items, ok := val.([]any)
	if !ok {
		v.add(path, "Expected an array")
		return
	}
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		member, ok := matchMember(f.Of, item)
		if !ok {
			tag, _ := asMap(item)["_type"].(string)
			v.add(itemPath, fmt.Sprintf("Type %q is not allowed here", tag))
			continue
		}
		v.field(itemPath, member, item)
	}
}

// matchMember picks the array member that describes item: by _type tag for
// objects, or the only member when the array has a single member type.
func matchMember(of []Field, item any) (Field, bool) {
	if tag, ok := asMap(item)["_type"].(string); ok {
		for _, m := range of {
			if m.Name == tag || m.Type == tag {
				return m, true
			}
		}
	}
	if len(of) == 1 {
		return of[0], true
	}
	return Field{}, false
}

func (v *validator) portableText(path string, val any) {
	blocks, ok := val.([]any)
	if !ok {
		v.add(path, "Expected an array of blocks")
		return
	}
	for i, b := range blocks {
		block := asMap(b)
		defs, _ := block["markDefs"].([]any)
		for j, d := range defs {
			def := asMap(d)
			if def["_type"] != "link" {
				continue
			}
			href, _ := def["href"].(string)
			if !SchemeAllowed(href, v.reg.linkSchemes) {
				v.add(fmt.Sprintf("%s[%d].markDefs[%d].href", path, i, j),
					"Does not match allowed protocols/schemes: "+strings.Join(v.reg.linkSchemes, ", "))
			}
		}
	}
}

func isPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	}
	return true
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
