// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package richtext renders portable text blocks and plain multi-line text as
// HTML. All text is escaped; only link annotations with an allowed scheme
// become anchors.
package richtext

import (
	"html"
	"html/template"
	"strings"

	"sitefront/internal/models"
	"sitefront/internal/schema"
)

var blockTags = map[string]string{
	"normal":     "p",
	"h1":         "h1",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"blockquote": "blockquote",
}

var decorators = map[string]string{
	"strong":         "strong",
	"em":             "em",
	"code":           "code",
	"underline":      "u",
	"strike-through": "s",
}

var listTags = map[string]string{
	"bullet": "ul",
	"number": "ol",
}

// ToHTML renders blocks in order. Blocks of an unknown _type are skipped;
// unknown styles render as paragraphs.
func ToHTML(blocks []models.Block) string {
	var b strings.Builder
	var lists []string // open list tags, innermost last

	closeTo := func(depth int) {
		for len(lists) > depth {
			b.WriteString("</li></")
			b.WriteString(lists[len(lists)-1])
			b.WriteString(">")
			lists = lists[:len(lists)-1]
		}
	}

	for _, blk := range blocks {
		if blk.Type != "" && blk.Type != "block" {
			continue
		}

		tag, isList := listTags[blk.ListItem]
		if !isList {
			closeTo(0)
			bt, ok := blockTags[blk.Style]
			if !ok {
				bt = "p"
			}
			b.WriteString("<" + bt + ">")
			writeSpans(&b, blk)
			b.WriteString("</" + bt + ">")
			continue
		}

		level := blk.Level
		if level < 1 {
			level = 1
		}
		if len(lists) > level {
			closeTo(level)
		}
		if len(lists) == level && lists[level-1] != tag {
			closeTo(level - 1)
		}
		if len(lists) == level {
			b.WriteString("</li>")
		}
		for len(lists) < level {
			b.WriteString("<" + tag + ">")
			lists = append(lists, tag)
			if len(lists) < level {
				b.WriteString("<li>")
			}
		}
		b.WriteString("<li>")
		writeSpans(&b, blk)
	}
	closeTo(0)
	return b.String()
}

// HTML is ToHTML for templates.
func HTML(blocks []models.Block) template.HTML {
	return template.HTML(ToHTML(blocks))
}

func writeSpans(b *strings.Builder, blk models.Block) {
	links := make(map[string]string, len(blk.MarkDefs))
	for _, d := range blk.MarkDefs {
		if d.Type == "link" && schema.SchemeAllowed(d.Href, schema.LinkSchemes) {
			links[d.Key] = d.Href
		}
	}

	for _, sp := range blk.Children {
		if sp.Type != "" && sp.Type != "span" {
			continue
		}
		var open, close []string
		for _, m := range sp.Marks {
			if tag, ok := decorators[m]; ok {
				open = append(open, "<"+tag+">")
				close = append(close, "</"+tag+">")
				continue
			}
			if href, ok := links[m]; ok {
				open = append(open, `<a href="`+html.EscapeString(href)+`"`+linkRel(href)+">")
				close = append(close, "</a>")
			}
		}
		for _, o := range open {
			b.WriteString(o)
		}
		b.WriteString(breakLines(html.EscapeString(sp.Text)))
		for i := len(close) - 1; i >= 0; i-- {
			b.WriteString(close[i])
		}
	}
}

func linkRel(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return ` rel="noopener noreferrer"`
	}
	return ""
}

// LineBreaks escapes text and turns each \r\n, \n or \r into <br>.
func LineBreaks(text string) template.HTML {
	return template.HTML(breakLines(html.EscapeString(text)))
}

var newlines = strings.NewReplacer("\r\n", "<br>", "\n", "<br>", "\r", "<br>")

func breakLines(s string) string {
	return newlines.Replace(s)
}
