package layout

import (
	"math"

	"github.com/Pyrite7/terminal-draw/internal/geom"
)

// Split divides an area into a main and a secondary panel by percentage.
type Split struct {
	Percentage float64 // 0-100, percentage for secondary panel
	Vertical   bool    // true = top/bottom, false = left/right
	MinPercent float64 // Minimum percentage (e.g., 10)
	MaxPercent float64 // Maximum percentage (e.g., 95)
}

// NewSplit creates a new Split with the given initial percentage and orientation.
func NewSplit(percentage float64, vertical bool) *Split {
	s := &Split{
		Percentage: percentage,
		Vertical:   vertical,
		MinPercent: 10,
		MaxPercent: 95,
	}
	s.clamp()
	return s
}

// Apply splits the rect according to the current percentage.
// Returns (main, secondary) rects.
// If Vertical: main is top, secondary is bottom.
// If Horizontal: main is left, secondary is right.
// Each panel keeps at least one cell; a rect one cell thick along the split
// axis is returned unchanged as both panels.
func (s *Split) Apply(rect geom.Rect) (main, secondary geom.Rect) {
	left, top, width, height := geom.RectAs[int](rect)
	if s.Vertical {
		mainSpan, secondarySpan, ok := s.spans(height)
		if !ok {
			return rect, rect
		}
		main = geom.RectOf(left, top, width, mainSpan)
		secondary = geom.RectOf(left, top+mainSpan, width, secondarySpan)
		return main, secondary
	}
	mainSpan, secondarySpan, ok := s.spans(width)
	if !ok {
		return rect, rect
	}
	main = geom.RectOf(left, top, mainSpan, height)
	secondary = geom.RectOf(left+mainSpan, top, secondarySpan, height)
	return main, secondary
}

func (s *Split) spans(total int) (mainSpan, secondarySpan int, ok bool) {
	if total < 2 {
		return 0, 0, false
	}
	secondarySpan = int(math.Round(float64(total) * s.Percentage / 100))
	secondarySpan = min(max(secondarySpan, 1), total-1)
	return total - secondarySpan, secondarySpan, true
}

// clamp ensures percentage stays within bounds.
func (s *Split) clamp() {
	if s.Percentage < s.MinPercent {
		s.Percentage = s.MinPercent
	}
	if s.Percentage > s.MaxPercent {
		s.Percentage = s.MaxPercent
	}
}
