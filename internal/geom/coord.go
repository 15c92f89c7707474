// Package geom holds the cell coordinates and inclusive rectangles used by the
// renderer. Values are stored as uint16; constructors and conversions accept any
// Go integer kind and narrow with ordinary Go conversion rules, so a value that
// does not fit wraps modulo 65536 instead of failing.
package geom

import (
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"
)

// Integer is every integer kind a coordinate may be built from or converted to.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Coord is a cell position: x is the column, y is the row.
type Coord struct {
	x, y uint16
}

// Pos builds a coordinate from two integers of any kind.
func Pos[X, Y Integer](x X, y Y) Coord {
	return Coord{x: uint16(x), y: uint16(y)}
}

// CoordOf builds a coordinate from a pair of the same integer kind.
func CoordOf[T Integer](x, y T) Coord {
	return Pos(x, y)
}

// CoordAs reinterprets c in the integer kind T. Values round-trip exactly when
// they fit in T.
func CoordAs[T Integer](c Coord) (x, y T) {
	return T(c.x), T(c.y)
}

func (c Coord) X() uint16 { return c.x }
func (c Coord) Y() uint16 { return c.y }

// Add offsets c by (dx, dy), wrapping like uint16 arithmetic.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{x: uint16(int(c.x) + dx), y: uint16(int(c.y) + dy)}
}

// Point converts c to the image.Point based position used by ultraviolet.
func (c Coord) Point() uv.Position {
	return uv.Pos(int(c.x), int(c.y))
}

// PointCoord converts an ultraviolet position, narrowing each axis to uint16.
func PointCoord(p uv.Position) Coord {
	return Pos(p.X, p.Y)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.x, c.y)
}
