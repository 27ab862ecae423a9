// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package components is the closed catalog of interactive embeds a section
// can select by key. Add an entry here to make it selectable in the editor
// and renderable on the site.
package components

// Component describes one interactive embed.
type Component struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Option is a title/value pair for an editor dropdown.
type Option struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Catalog keys with dedicated tag-only sections.
const (
	HeroHome         = "heroHome"
	InfolkSlider     = "infolkSlider"
	FruitLabelSkills = "fruitLabelSkills"
)

var defaults = []Component{
	{Key: HeroHome, Title: "Hero Home", Path: "hero-home.svelte"},
	{Key: InfolkSlider, Title: "Infolk Slider", Path: "InfolkSlider/InfolkSlider.svelte"},
	{Key: FruitLabelSkills, Title: "Fruit Label Skills", Path: "fruit-label-skills.svelte"},
}

// Catalog is an ordered, read-only set of components.
type Catalog struct {
	items []Component
	byKey map[string]int
}

// NewCatalog builds a catalog. Later entries with a duplicate key are ignored.
func NewCatalog(items ...Component) *Catalog {
	c := &Catalog{byKey: make(map[string]int, len(items))}
	for _, it := range items {
		if _, dup := c.byKey[it.Key]; dup || it.Key == "" {
			continue
		}
		c.byKey[it.Key] = len(c.items)
		c.items = append(c.items, it)
	}
	return c
}

// Default returns the catalog shipped with the site.
func Default() *Catalog {
	return NewCatalog(defaults...)
}

// Lookup returns the component for key.
func (c *Catalog) Lookup(key string) (Component, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Component{}, false
	}
	return c.items[i], true
}

// All returns the components in catalog order.
func (c *Catalog) All() []Component {
	out := make([]Component, len(c.items))
	copy(out, c.items)
	return out
}

// Keys returns the component keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.items))
	for i, it := range c.items {
		keys[i] = it.Key
	}
	return keys
}

// Options returns dropdown options for the editor.
func (c *Catalog) Options() []Option {
	opts := make([]Option, len(c.items))
	for i, it := range c.items {
		opts[i] = Option{Title: it.Title, Value: it.Key}
	}
	return opts
}
