// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package richtext

import (
	"testing"

	"sitefront/internal/models"
)

func block(style string, spans ...models.Span) models.Block {
	return models.Block{Type: "block", Style: style, Children: spans}
}

func item(list string, level int, text string) models.Block {
	return models.Block{Type: "block", Style: "normal", ListItem: list, Level: level,
		Children: []models.Span{{Type: "span", Text: text}}}
}

func span(text string, marks ...string) models.Span {
	return models.Span{Type: "span", Text: text, Marks: marks}
}

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		blocks []models.Block
		want   string
	}{
		{
			name:   "styles",
			blocks: []models.Block{block("h2", span("Title")), block("normal", span("Body")), block("blockquote", span("Quote"))},
			want:   "<h2>Title</h2><p>Body</p><blockquote>Quote</blockquote>",
		},
		{
			name:   "unknown style is a paragraph",
			blocks: []models.Block{block("h6", span("x"))},
			want:   "<p>x</p>",
		},
		{
			name:   "decorators nest in order",
			blocks: []models.Block{block("normal", span("a", "strong", "em"), span(" b", "strike-through"))},
			want:   "<p><strong><em>a</em></strong><s> b</s></p>",
		},
		{
			name:   "text is escaped",
			blocks: []models.Block{block("normal", span("<script>&"))},
			want:   "<p>&lt;script&gt;&amp;</p>",
		},
		{
			name:   "newlines in spans",
			blocks: []models.Block{block("normal", span("a\nb"))},
			want:   "<p>a<br>b</p>",
		},
		{
			name:   "bullet list",
			blocks: []models.Block{item("bullet", 1, "one"), item("bullet", 1, "two"), block("normal", span("after"))},
			want:   "<ul><li>one</li><li>two</li></ul><p>after</p>",
		},
		{
			name:   "nested list",
			blocks: []models.Block{item("bullet", 1, "a"), item("number", 2, "a.1"), item("bullet", 1, "b")},
			want:   "<ul><li>a<ol><li>a.1</li></ol></li><li>b</li></ul>",
		},
		{
			name:   "list type change",
			blocks: []models.Block{item("bullet", 1, "a"), item("number", 1, "1")},
			want:   "<ul><li>a</li></ul><ol><li>1</li></ol>",
		},
		{
			name:   "non-block types skipped",
			blocks: []models.Block{{Type: "image"}, block("normal", span("kept"))},
			want:   "<p>kept</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHTML(tt.blocks); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestToHTML_Links(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{"https", "https://vlah.sh", `<p><a href="https://vlah.sh" rel="noopener noreferrer">site</a></p>`},
		{"mailto", "mailto:hi@vlah.sh", `<p><a href="mailto:hi@vlah.sh">site</a></p>`},
		{"tel", "tel:+40123", `<p><a href="tel:+40123">site</a></p>`},
		{"javascript dropped", "javascript:alert(1)", `<p>site</p>`},
		{"ftp dropped", "ftp://files.example", `<p>site</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blk := block("normal", span("site", "l1"))
			blk.MarkDefs = []models.MarkDef{{Key: "l1", Type: "link", Href: tt.href}}
			if got := ToHTML([]models.Block{blk}); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestLineBreaks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\r\nb", "a<br>b"},
		{"a\nb\rc", "a<br>b<br>c"},
		{"<b>", "&lt;b&gt;"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := string(LineBreaks(tt.in)); got != tt.want {
			t.Errorf("LineBreaks(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
