package config

import (
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
)

type node struct {
	style    lipgloss.Style
	children map[string]*node
}

// Palette resolves space separated style selectors against a theme. A
// selector like "panel title" inherits from "panel title", "panel" and
// "title", most specific first.
type Palette struct {
	root  *node
	cache map[string]lipgloss.Style
}

func NewPalette(theme map[string]Color) *Palette {
	p := &Palette{
		root:  nil,
		cache: make(map[string]lipgloss.Style),
	}
	for key, color := range theme {
		p.add(key, createStyleFrom(color))
	}
	return p
}

func (p *Palette) add(key string, style lipgloss.Style) {
	if p.root == nil {
		p.root = &node{children: make(map[string]*node)}
	}
	current := p.root
	prefixes := strings.Fields(key)
	for _, prefix := range prefixes {
		if child, ok := current.children[prefix]; ok {
			current = child
		} else {
			child = &node{children: make(map[string]*node)}
			current.children[prefix] = child
			current = child
		}
	}
	current.style = style
}

func (p *Palette) get(fields ...string) lipgloss.Style {
	if p.root == nil {
		return lipgloss.NewStyle()
	}

	current := p.root
	for _, field := range fields {
		if child, ok := current.children[field]; ok {
			current = child
		} else {
			return lipgloss.NewStyle() // Return default style if not found
		}
	}

	return current.style
}

// Get returns the style for selector; unknown selectors give the default style.
func (p *Palette) Get(selector string) lipgloss.Style {
	if style, ok := p.cache[selector]; ok {
		return style
	}
	fields := strings.Fields(selector)
	length := len(fields)

	finalStyle := lipgloss.NewStyle()
	// for a selector like "a b c", we want to inherit styles from the most specific to the least specific
	// first pass: "a b c", "a b", "a"
	// second pass: "b c", "b"
	// third pass: "c"
	start := 0
	for start < length {
		for end := length; end > start; end-- {
			finalStyle = finalStyle.Inherit(p.get(fields[start:end]...))
		}
		start++
	}
	p.cache[selector] = finalStyle
	return finalStyle
}

func createStyleFrom(color Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if color.Fg != "" {
		style = style.Foreground(parseColor(color.Fg))
	}
	if color.Bg != "" {
		style = style.Background(parseColor(color.Bg))
	}

	if color.Bold != nil {
		style = style.Bold(*color.Bold)
	}
	if color.Faint != nil {
		style = style.Faint(*color.Faint)
	}
	if color.Italic != nil {
		style = style.Italic(*color.Italic)
	}
	if color.Underline != nil {
		style = style.Underline(*color.Underline)
	}
	if color.Strikethrough != nil {
		style = style.Strikethrough(*color.Strikethrough)
	}
	if color.Reverse != nil {
		style = style.Reverse(*color.Reverse)
	}

	return style
}

var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright black":   "8",
	"bright red":     "9",
	"bright green":   "10",
	"bright yellow":  "11",
	"bright blue":    "12",
	"bright magenta": "13",
	"bright cyan":    "14",
	"bright white":   "15",
}

func parseColor(c string) color.Color {
	// if it's a hex color, return it directly
	if len(c) == 7 && c[0] == '#' {
		return lipgloss.Color(c)
	}
	// if it's an ANSI256 color, return it directly
	if v, err := strconv.Atoi(c); err == nil {
		if v >= 0 && v <= 255 {
			return lipgloss.Color(c)
		}
	}
	if code, ok := namedColors[c]; ok {
		return lipgloss.Color(code)
	}
	if strings.HasPrefix(c, "ansi-color-") {
		code := strings.TrimPrefix(c, "ansi-color-")
		if v, err := strconv.Atoi(code); err == nil && v >= 0 && v <= 255 {
			return lipgloss.Color(code)
		}
	}
	return lipgloss.NoColor{}
}
