// Package render paints a rectangular screen region cell by cell, emitting a
// cursor move at every row start and an SGR sequence only where the style of
// consecutive characters changes.
//
// Every call starts from a neutral state and brackets its output with style
// resets, so nothing is assumed about what the terminal displayed before and
// no style leaks into whatever is printed afterwards.
package render

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/Pyrite7/terminal-draw/internal/geom"
)

// ContentFunc returns the character for a cell. x and y are relative to the
// top-left corner of the painted area, starting at zero.
type ContentFunc func(x, y int) Char

// drawState accumulates the output of one paint call.
type drawState struct {
	buf []byte

	cursor      geom.Coord
	cursorValid bool

	style Style
}

func newDrawState(area geom.Rect) *drawState {
	// escape codes roughly double the size of a plain grid
	return &drawState{buf: make([]byte, 0, 2*int(area.Width())*int(area.Height())+16)}
}

func (s *drawState) resetStyle() {
	s.buf = append(s.buf, ResetStyle...)
	s.style = DefaultStyle()
}

func (s *drawState) cursorTo(pos geom.Coord) {
	if s.cursorValid && s.cursor == pos {
		return
	}
	s.buf = appendCursorTo(s.buf, pos.X(), pos.Y())
	s.cursor = pos
	s.cursorValid = true
}

func (s *drawState) push(c Char) {
	if !sameStyle(c.Style, s.style) {
		s.buf = append(s.buf, transition(s.style, c.Style)...)
		s.style = c.Style
	}
	s.buf = utf8.AppendRune(s.buf, c.Rune)
	s.cursor = s.cursor.Add(1, 0)
}

// Paint returns the bytes that draw area, asking content for every cell in
// row-major order. content is called exactly once per cell.
func Paint(area geom.Rect, content ContentFunc) []byte {
	s := newDrawState(area)
	s.resetStyle()

	left, top := int(area.Left()), int(area.Top())
	for row := top; row <= int(area.Bottom()); row++ {
		// The tracked column only advances linearly, so every row start moves
		// explicitly instead of relying on terminal auto-wrap.
		s.cursorTo(geom.Pos(left, row))
		for col := left; col <= int(area.Right()); col++ {
			s.push(content(col-left, row-top))
		}
	}

	s.resetStyle()
	return s.buf
}

// Render paints area and writes the result, followed by a newline, to w in a
// single Write call. w is not flushed. A failed write is wrapped and
// returned; it is never retried.
func Render(w io.Writer, area geom.Rect, content ContentFunc) error {
	out := append(Paint(area, content), '\n')
	n, err := w.Write(out)
	if err != nil {
		return fmt.Errorf("render %s: %w", area, err)
	}
	if n < len(out) {
		return fmt.Errorf("render %s: %w", area, io.ErrShortWrite)
	}
	return nil
}
