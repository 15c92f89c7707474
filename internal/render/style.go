package render

import (
	"image/color"
	"reflect"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Style is the visual style of a cell. The zero value is the default style,
// which renders as a plain reset.
type Style = uv.Style

// DefaultStyle returns the style a plain character is painted with.
func DefaultStyle() Style {
	return Style{}
}

// Char is a character together with the style it is painted in.
type Char struct {
	Rune  rune
	Style Style
}

// Plain returns r in the default style.
func Plain(r rune) Char {
	return Char{Rune: r}
}

// Styled returns r in style s.
func Styled(r rune, s Style) Char {
	return Char{Rune: r, Style: s}
}

// Equal reports whether both the rune and the style match. Styles compare
// field by field, so two colours that look the same but are encoded
// differently are not equal.
func (c Char) Equal(o Char) bool {
	return c.Rune == o.Rune && sameStyle(c.Style, o.Style)
}

// sameStyle is strict: colours must have the same type and value, so the
// same shade in two encodings differs. Colour types need not be comparable.
func sameStyle(a, b Style) bool {
	return a.Attrs == b.Attrs &&
		a.Underline == b.Underline &&
		sameColor(a.Fg, b.Fg) &&
		sameColor(a.Bg, b.Bg) &&
		sameColor(a.UnderlineColor, b.UnderlineColor)
}

func sameColor(a, b color.Color) bool {
	return reflect.DeepEqual(a, b)
}

// transition returns the SGR sequence that switches the terminal from style
// from to style to.
func transition(from, to Style) string {
	if seq := uv.StyleDiff(&from, &to); seq != "" {
		return seq
	}
	// The colours differ only in encoding; spell out the full style.
	return to.String()
}

// toAnsiColor converts a color.Color to the correct ansi.Color concrete type
// so that palette colors emit palette escape codes instead of 24-bit RGB.
func toAnsiColor(c color.Color) ansi.Color {
	switch c := c.(type) {
	case nil, lipgloss.NoColor:
		return nil
	case ansi.BasicColor:
		return c
	case ansi.IndexedColor: // = lipgloss.ANSIColor
		return c
	default:
		if ac, ok := c.(ansi.Color); ok {
			return ac
		}
		return nil
	}
}

// StyleFrom converts a lipgloss style to the cell style the renderer diffs on.
// Layout properties such as padding and borders are ignored.
func StyleFrom(ls lipgloss.Style) Style {
	var cs Style
	cs.Fg = toAnsiColor(ls.GetForeground())
	cs.Bg = toAnsiColor(ls.GetBackground())
	if ls.GetBold() {
		cs.Attrs |= uv.AttrBold
	}
	if ls.GetFaint() {
		cs.Attrs |= uv.AttrFaint
	}
	if ls.GetItalic() {
		cs.Attrs |= uv.AttrItalic
	}
	if ls.GetBlink() {
		cs.Attrs |= uv.AttrBlink
	}
	if ls.GetUnderline() {
		cs.Underline = uv.UnderlineSingle
	}
	if ls.GetStrikethrough() {
		cs.Attrs |= uv.AttrStrikethrough
	}
	if ls.GetReverse() {
		cs.Attrs |= uv.AttrReverse
	}
	return cs
}
