package geom

import (
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"
)

// Rect is an inclusive cell region spanned by two opposite corners. Both
// corners are cells of the region, so width and height are never below one.
type Rect struct {
	min, max Coord
}

// NewRect builds the rectangle spanned by a and b. The corners may be given in
// any order.
func NewRect(a, b Coord) Rect {
	return Rect{
		min: Coord{x: min(a.x, b.x), y: min(a.y, b.y)},
		max: Coord{x: max(a.x, b.x), y: max(a.y, b.y)},
	}
}

// RectOf builds a rectangle from its top-left corner and size. A width or
// height below one is treated as one.
func RectOf[T Integer](left, top, width, height T) Rect {
	tl := Pos(left, top)
	w, h := uint16(width), uint16(height)
	if width < 1 || w == 0 {
		w = 1
	}
	if height < 1 || h == 0 {
		h = 1
	}
	return NewRect(tl, Coord{x: tl.x + w - 1, y: tl.y + h - 1})
}

// RectAs reinterprets r in the integer kind T, preserving left, top, width
// and height.
func RectAs[T Integer](r Rect) (left, top, width, height T) {
	return T(r.Left()), T(r.Top()), T(r.Width()), T(r.Height())
}

func (r Rect) Left() uint16 { return r.min.x }
func (r Rect) Top() uint16  { return r.min.y }

// Width is the number of columns. It wraps to 0 only for a rectangle spanning
// all 65536 columns.
func (r Rect) Width() uint16 { return r.max.x - r.min.x + 1 }

// Height is the number of rows, wrapping like Width.
func (r Rect) Height() uint16 { return r.max.y - r.min.y + 1 }

// Right is the last column inside r: Left() + Width() - 1.
func (r Rect) Right() uint16 { return r.Left() + r.Width() - 1 }

// Bottom is the last row inside r: Top() + Height() - 1.
func (r Rect) Bottom() uint16 { return r.Top() + r.Height() - 1 }

func (r Rect) TopLeft() Coord     { return Coord{x: r.Left(), y: r.Top()} }
func (r Rect) TopRight() Coord    { return Coord{x: r.Right(), y: r.Top()} }
func (r Rect) BottomLeft() Coord  { return Coord{x: r.Left(), y: r.Bottom()} }
func (r Rect) BottomRight() Coord { return Coord{x: r.Right(), y: r.Bottom()} }

// Contains reports whether c lies inside r, edges included.
func (r Rect) Contains(c Coord) bool {
	return c.x >= r.Left() && c.x <= r.Right() && c.y >= r.Top() && c.y <= r.Bottom()
}

// Rectangle converts r to the half-open rectangle used by ultraviolet and
// lipgloss, where Max lies one past the last cell.
func (r Rect) Rectangle() uv.Rectangle {
	return uv.Rect(int(r.Left()), int(r.Top()), int(r.Right())-int(r.Left())+1, int(r.Bottom())-int(r.Top())+1)
}

// FromRectangle converts a half-open rectangle. It returns false when rect
// holds no cells.
func FromRectangle(rect uv.Rectangle) (Rect, bool) {
	if rect.Empty() {
		return Rect{}, false
	}
	return NewRect(PointCoord(rect.Min), Pos(rect.Max.X-1, rect.Max.Y-1)), true
}

func (r Rect) String() string {
	return fmt.Sprintf("%s-%s", r.TopLeft(), r.BottomRight())
}
