package main

import (
	"fmt"
	"io"

	"github.com/Pyrite7/terminal-draw/internal/config"
	"github.com/Pyrite7/terminal-draw/internal/geom"
	"github.com/Pyrite7/terminal-draw/internal/layout"
	"github.com/Pyrite7/terminal-draw/internal/render"
	"github.com/Pyrite7/terminal-draw/internal/screen"
	"github.com/Pyrite7/terminal-draw/internal/text"
)

// paintScene draws scene through t. Screen commands that are not region
// paints (clear, final cursor placement) go straight to w.
func paintScene(w io.Writer, t render.Target, scene *config.Scene) error {
	if scene.Clear {
		if err := screen.Clear(w); err != nil {
			return err
		}
	}

	area := scene.Area.Rect()
	panels := map[string]geom.Rect{}
	if scene.Split != nil {
		split := layout.NewSplit(scene.Split.Percentage, scene.Split.Vertical)
		panels[config.PanelMain], panels[config.PanelSecondary] = split.Apply(area)
	}

	palette := config.NewPalette(scene.Theme)
	for i, box := range scene.Boxes {
		if err := paintBox(t, box, palette, panels); err != nil {
			return fmt.Errorf("box %s: %w", boxName(i, box), err)
		}
	}

	if scene.Cursor != nil {
		return screen.MoveCursorTo(w, scene.Cursor.Coord())
	}
	return nil
}

func paintBox(t render.Target, box config.Box, palette *config.Palette, panels map[string]geom.Rect) error {
	style := palette.Get(box.Style)
	switch {
	case box.At != nil:
		return text.Line{{Text: box.Text.String(), Style: style}}.DrawAt(t, box.At.Coord())
	case box.Rect != nil:
		return text.TextBox{Text: box.Text.String(), Style: style}.DrawIn(t, box.Rect.Rect())
	default:
		panel, ok := panels[box.Panel]
		if !ok {
			return fmt.Errorf("unknown panel %q", box.Panel)
		}
		return text.TextBox{Text: box.Text.String(), Style: style}.DrawIn(t, panel)
	}
}

// applyTheme layers the named theme file over the scene theme. An empty name
// leaves the scene untouched.
func applyTheme(scene *config.Scene, name string) error {
	if name == "" {
		return nil
	}
	theme, err := config.LoadTheme(name, scene.Theme)
	if err != nil {
		return fmt.Errorf("theme %q: %w", name, err)
	}
	scene.Theme = theme
	return scene.Validate()
}

func boxName(i int, box config.Box) string {
	if box.Name != "" {
		return fmt.Sprintf("%q", box.Name)
	}
	return fmt.Sprintf("#%d", i)
}
