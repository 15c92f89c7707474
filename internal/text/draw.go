package text

import (
	"charm.land/lipgloss/v2"
	"github.com/Pyrite7/terminal-draw/internal/geom"
	"github.com/Pyrite7/terminal-draw/internal/render"
	"github.com/Pyrite7/terminal-draw/internal/screen"
)

// DrawLine paints text on a single row starting at pos. Empty text paints
// nothing.
func DrawLine(t render.Target, pos geom.Coord, text string) error {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	area := geom.RectOf(int(pos.X()), int(pos.Y()), len(runes), 1)
	return t.Render(area, func(x, _ int) render.Char {
		return render.Plain(runes[x])
	})
}

// DrawTextBox wraps text to the width of area and paints it, padding with
// blanks. Lines that do not fit the height of area are not shown.
func DrawTextBox(t render.Target, area geom.Rect, text string) error {
	return drawBox(t, area, text, render.DefaultStyle())
}

func drawBox(t render.Target, area geom.Rect, text string, style render.Style) error {
	wrapped := Wrap(text, int(area.Width()))
	rows := make([][]rune, len(wrapped))
	for i, line := range wrapped {
		rows[i] = []rune(line)
	}
	return t.Render(area, func(x, y int) render.Char {
		if y < len(rows) && x < len(rows[y]) {
			return render.Styled(rows[y][x], style)
		}
		return render.Styled(' ', style)
	})
}

// DrawSegments paints styled runs starting at pos, one row per line. Shorter
// lines are padded with blanks to the width of the longest one.
func DrawSegments(t render.Target, pos geom.Coord, segments []screen.Segment) error {
	lines := screen.BreakNewLines(segments)
	if len(lines) == 0 {
		return nil
	}

	grid := make([][]render.Char, len(lines))
	width := 1
	for y, line := range lines {
		for _, segment := range line {
			style := render.StyleFrom(segment.Style)
			for _, r := range segment.Text {
				grid[y] = append(grid[y], render.Styled(r, style))
			}
		}
		width = max(width, len(grid[y]))
	}

	area := geom.RectOf(int(pos.X()), int(pos.Y()), width, len(lines))
	return t.Render(area, func(x, y int) render.Char {
		if x < len(grid[y]) {
			return grid[y][x]
		}
		return render.Plain(' ')
	})
}

// PosDrawer is content that knows its own size and is placed by position.
type PosDrawer interface {
	DrawAt(t render.Target, pos geom.Coord) error
}

// AreaDrawer is content that fills whatever area it is given.
type AreaDrawer interface {
	DrawIn(t render.Target, area geom.Rect) error
}

// Label is a single unstyled line.
type Label string

func (l Label) DrawAt(t render.Target, pos geom.Coord) error {
	return DrawLine(t, pos, string(l))
}

// Line is a sequence of styled runs.
type Line []screen.Segment

func (l Line) DrawAt(t render.Target, pos geom.Coord) error {
	return DrawSegments(t, pos, l)
}

// TextBox is wrapped text painted in one style, background included.
type TextBox struct {
	Text  string
	Style lipgloss.Style
}

func (b TextBox) DrawIn(t render.Target, area geom.Rect) error {
	return drawBox(t, area, b.Text, render.StyleFrom(b.Style))
}

var (
	_ PosDrawer  = Label("")
	_ PosDrawer  = Line(nil)
	_ AreaDrawer = TextBox{}
)
