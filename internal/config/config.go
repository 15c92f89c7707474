package config

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Pyrite7/terminal-draw/internal/geom"
)

// Scene describes what termdraw paints: an area, an optional split of that
// area into two panels and the boxes placed on it.
type Scene struct {
	Clear  bool             `toml:"clear"`
	Area   RectConfig       `toml:"area"`
	Split  *SplitConfig     `toml:"split"`
	Cursor *CoordConfig     `toml:"cursor"`
	Theme  map[string]Color `toml:"theme"`
	Boxes  []Box            `toml:"boxes"`
}

// Box is text placed either in a panel of the split, in an explicit rect, or
// on a single row starting at a position.
type Box struct {
	Name  string       `toml:"name"`
	Text  StringList   `toml:"text"`
	Style string       `toml:"style"`
	Panel string       `toml:"panel"`
	Rect  *RectConfig  `toml:"rect"`
	At    *CoordConfig `toml:"at"`
}

const (
	PanelMain      = "main"
	PanelSecondary = "secondary"
)

type RectConfig struct {
	Left   int `toml:"left"`
	Top    int `toml:"top"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

func (r RectConfig) Rect() geom.Rect {
	return geom.RectOf(r.Left, r.Top, r.Width, r.Height)
}

type CoordConfig struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

func (c CoordConfig) Coord() geom.Coord {
	return geom.Pos(c.X, c.Y)
}

type SplitConfig struct {
	Percentage float64 `toml:"percentage"`
	Vertical   bool    `toml:"vertical"`
}

// Color is a theme entry. Unset attributes are inherited from less specific
// entries.
type Color struct {
	Fg            string `toml:"fg"`
	Bg            string `toml:"bg"`
	Bold          *bool  `toml:"bold"`
	Faint         *bool  `toml:"faint"`
	Italic        *bool  `toml:"italic"`
	Underline     *bool  `toml:"underline"`
	Strikethrough *bool  `toml:"strikethrough"`
	Reverse       *bool  `toml:"reverse"`
}

// StringList allows TOML values to be specified as a string or array of strings.
type StringList []string

func (l *StringList) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*l = StringList{v}
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string in list, got %T", item)
			}
			out = append(out, s)
		}
		*l = StringList(out)
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got %T", value)
	}
}

// String joins the list with line breaks.
func (l StringList) String() string {
	return strings.Join(l, "\n")
}

func (s *Scene) Validate() error {
	if s.Area.Width < 1 || s.Area.Height < 1 {
		return fmt.Errorf("area: width and height must be at least 1")
	}
	for key, color := range s.Theme {
		for _, value := range []string{color.Fg, color.Bg} {
			if value == "" {
				continue
			}
			if _, bad := parseColor(value).(lipgloss.NoColor); bad {
				return fmt.Errorf("theme %q: unknown color %q", key, value)
			}
		}
	}
	for i, box := range s.Boxes {
		if err := box.validate(s.Split != nil); err != nil {
			return fmt.Errorf("boxes[%d]: %w", i, err)
		}
	}
	return nil
}

func (b Box) validate(hasSplit bool) error {
	placements := 0
	if b.Panel != "" {
		placements++
	}
	if b.Rect != nil {
		placements++
	}
	if b.At != nil {
		placements++
	}
	if placements != 1 {
		return fmt.Errorf("exactly one of panel, rect or at is required")
	}
	switch {
	case b.Panel != "" && b.Panel != PanelMain && b.Panel != PanelSecondary:
		return fmt.Errorf("unknown panel %q", b.Panel)
	case b.Panel != "" && !hasSplit:
		return fmt.Errorf("panel %q needs a [split] table", b.Panel)
	case b.Rect != nil && (b.Rect.Width < 1 || b.Rect.Height < 1):
		return fmt.Errorf("rect: width and height must be at least 1")
	}
	return nil
}
