// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds one exported document.
const maxLine = 16 << 20

// Report is the validation outcome of one exported document.
type Report struct {
	ID         string     `json:"_id"`
	Type       string     `json:"_type"`
	Violations Violations `json:"violations"`
}

// AuditResult summarises a dataset audit.
type AuditResult struct {
	Checked int      `json:"checked"`
	Skipped int      `json:"skipped"`
	Invalid []Report `json:"invalid"`
}

// OK reports whether every checked document passed.
func (a AuditResult) OK() bool { return len(a.Invalid) == 0 }

// Audit validates a dataset export in NDJSON form (one document per line).
// Drafts and documents of unregistered types (assets, system records) are
// skipped, but their ids still satisfy references.
func (r *Registry) Audit(src io.Reader) (AuditResult, error) {
	var docs []map[string]any
	ids := make(map[string]struct{})

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var doc map[string]any
		if err := json.Unmarshal([]byte(text), &doc); err != nil {
			return AuditResult{}, fmt.Errorf("line %d: %w", line, err)
		}
		if id, _ := doc["_id"].(string); id != "" {
			ids[id] = struct{}{}
		}
		docs = append(docs, doc)
	}
	if err := sc.Err(); err != nil {
		return AuditResult{}, fmt.Errorf("read export: %w", err)
	}

	documents := make(map[string]bool)
	for _, name := range r.Documents() {
		documents[name] = true
	}
	opts := Options{Exists: func(id string) bool {
		_, ok := ids[id]
		return ok
	}}

	var res AuditResult
	for _, doc := range docs {
		id, _ := doc["_id"].(string)
		typ, _ := doc["_type"].(string)
		if strings.HasPrefix(id, "drafts.") || !documents[typ] {
			res.Skipped++
			continue
		}
		res.Checked++
		err := r.Validate(doc, opts)
		var vs Violations
		if errors.As(err, &vs) {
			res.Invalid = append(res.Invalid, Report{ID: id, Type: typ, Violations: vs})
		}
	}
	return res, nil
}
