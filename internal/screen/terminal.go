// Package screen holds the one-shot terminal commands that sit next to the
// renderer. None of them flush; a buffered writer must be flushed by the
// caller before the output becomes visible.
package screen

import (
	"fmt"
	"io"

	"github.com/Pyrite7/terminal-draw/internal/geom"
	"github.com/Pyrite7/terminal-draw/internal/render"
)

// Clear erases the terminal, homes the cursor and resets the text style.
func Clear(w io.Writer) error {
	if _, err := io.WriteString(w, render.ClearScreen); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return nil
}

// MoveCursorTo places the cursor at pos, for example to put the prompt below
// a drawing.
func MoveCursorTo(w io.Writer, pos geom.Coord) error {
	if _, err := io.WriteString(w, render.CursorTo(pos.X(), pos.Y())); err != nil {
		return fmt.Errorf("move cursor to %s: %w", pos, err)
	}
	return nil
}

// ClearArea paints area with blanks in the default style.
func ClearArea(t render.Target, area geom.Rect) error {
	return t.Render(area, func(int, int) render.Char { return render.Plain(' ') })
}
