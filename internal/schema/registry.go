// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package schema declares the document and section types editors can store,
// together with the validation rules the content store enforces on write.
// The read path never validates; the registry is exported for the editor and
// used to audit dataset exports.
package schema

import "fmt"

// Kind separates top-level documents from embeddable objects.
type Kind string

const (
	KindDocument Kind = "document"
	KindObject   Kind = "object"
)

// Primitive field types. Any other Field.Type names a registered object type.
const (
	TypeString       = "string"
	TypeText         = "text"
	TypeNumber       = "number"
	TypeBoolean      = "boolean"
	TypeDate         = "date"
	TypeURL          = "url"
	TypeSlug         = "slug"
	TypeImage        = "image"
	TypeReference    = "reference"
	TypeArray        = "array"
	TypeObject       = "object"
	TypePortableText = "portableText"
)

// Type is a named document or object type.
type Type struct {
	Name   string  `json:"name"`
	Title  string  `json:"title"`
	Kind   Kind    `json:"type"`
	Fields []Field `json:"fields"`
}

// Field is one field of a type, an inline object, or an array member.
type Field struct {
	Name        string   `json:"name"`
	Title       string   `json:"title,omitempty"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Of          []Field  `json:"of,omitempty"`
	To          []string `json:"to,omitempty"`
	Fields      []Field  `json:"fields,omitempty"`
	Options     []string `json:"options,omitempty"`
	Initial     any      `json:"initialValue,omitempty"`
	Rules       []Rule   `json:"validation,omitempty"`
}

// Registry is an immutable set of types.
type Registry struct {
	types       []Type
	byName      map[string]int
	linkSchemes []string
}

// New builds a registry. Duplicate type names are a programming error.
func New(types ...Type) (*Registry, error) {
	r := &Registry{byName: make(map[string]int, len(types))}
	for _, t := range types {
		if _, dup := r.byName[t.Name]; dup {
			return nil, fmt.Errorf("schema: duplicate type %q", t.Name)
		}
		r.byName[t.Name] = len(r.types)
		r.types = append(r.types, t)
	}
	return r, nil
}

// WithLinkSchemes sets the schemes accepted for rich-text link annotations.
func (r *Registry) WithLinkSchemes(schemes ...string) *Registry {
	r.linkSchemes = append([]string(nil), schemes...)
	return r
}

// Lookup returns the named type.
func (r *Registry) Lookup(name string) (Type, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Type{}, false
	}
	return r.types[i], true
}

// Types returns every type in declaration order.
func (r *Registry) Types() []Type {
	out := make([]Type, len(r.types))
	copy(out, r.types)
	return out
}

// Documents returns the names of the document types.
func (r *Registry) Documents() []string {
	var names []string
	for _, t := range r.types {
		if t.Kind == KindDocument {
			names = append(names, t.Name)
		}
	}
	return names
}

// Export is the serialisable form used by the editor tooling.
type Export struct {
	Types       []Type   `json:"types"`
	LinkSchemes []string `json:"linkSchemes"`
}

// Export returns the registry in serialisable form.
func (r *Registry) Export() Export {
	return Export{Types: r.Types(), LinkSchemes: r.linkSchemes}
}
