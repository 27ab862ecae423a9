// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{
			name:     "paragraph and emphasis",
			input:    "We **rebuilt** the *checkout*.",
			contains: []string{"<p>", "<strong>rebuilt</strong>", "<em>checkout</em>"},
		},
		{
			name:     "hard wraps",
			input:    "Line one\nLine two",
			contains: []string{"Line one<br", "Line two"},
		},
		{
			name:     "heading ids",
			input:    "## Key results",
			contains: []string{`<h2 id="key-results">`},
		},
		{
			name:     "gfm list",
			input:    "- fast\n- cheap",
			contains: []string{"<ul>", "<li>fast</li>"},
		},
		{
			name:     "raw html is not passed through",
			input:    "<script>alert(1)</script>\n\nok",
			contains: []string{"ok"},
			absent:   []string{"<script>"},
		},
		{
			name:   "javascript links are dropped",
			input:  "[click](javascript:alert(1))",
			absent: []string{"javascript:"},
		},
		{
			name:     "fenced code keeps highlighting",
			input:    "```go\nfunc main() {}\n```",
			contains: []string{"<pre", "style="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.input)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, bad := range tt.absent {
				if strings.Contains(got, bad) {
					t.Errorf("output contains %q:\n%s", bad, got)
				}
			}
		})
	}
}

func TestToHTML_Empty(t *testing.T) {
	got, err := ToHTML("")
	if err != nil || got != "" {
		t.Errorf("ToHTML(\"\") = %q, %v", got, err)
	}
}
