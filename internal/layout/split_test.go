package layout

import (
	"testing"

	"github.com/Pyrite7/terminal-draw/internal/geom"
)

func TestNewSplit(t *testing.T) {
	s := NewSplit(30, true)

	if s.Percentage != 30 {
		t.Errorf("Percentage = %f, want 30", s.Percentage)
	}
	if !s.Vertical {
		t.Error("Vertical = false, want true")
	}
	if s.MinPercent != 10 {
		t.Errorf("MinPercent = %f, want 10", s.MinPercent)
	}
	if s.MaxPercent != 95 {
		t.Errorf("MaxPercent = %f, want 95", s.MaxPercent)
	}
}

func TestNewSplit_Clamping(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		want       float64
	}{
		{"below_min", 5, 10},
		{"above_max", 99, 95},
		{"within_bounds", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSplit(tt.percentage, true)
			if s.Percentage != tt.want {
				t.Errorf("Percentage = %f, want %f", s.Percentage, tt.want)
			}
		})
	}
}

func TestSplit_Apply_Vertical(t *testing.T) {
	s := NewSplit(30, true) // 30% for secondary (bottom)
	rect := geom.RectOf(0, 0, 100, 100)

	main, secondary := s.Apply(rect)

	// Main should be 70% (top)
	if main.Height() != 70 {
		t.Errorf("main height = %d, want 70", main.Height())
	}
	if main.Top() != 0 || main.Bottom() != 69 {
		t.Errorf("main rows = [%d, %d], want [0, 69]", main.Top(), main.Bottom())
	}

	// Secondary should be 30% (bottom)
	if secondary.Height() != 30 {
		t.Errorf("secondary height = %d, want 30", secondary.Height())
	}
	if secondary.Top() != 70 || secondary.Bottom() != 99 {
		t.Errorf("secondary rows = [%d, %d], want [70, 99]", secondary.Top(), secondary.Bottom())
	}
}

func TestSplit_Apply_Horizontal(t *testing.T) {
	s := NewSplit(40, false) // 40% for secondary (right)
	rect := geom.RectOf(0, 0, 100, 50)

	main, secondary := s.Apply(rect)

	// Main should be 60% (left)
	if main.Width() != 60 {
		t.Errorf("main width = %d, want 60", main.Width())
	}
	if main.Left() != 0 {
		t.Errorf("main starts at X=%d, want 0", main.Left())
	}

	// Secondary should be 40% (right)
	if secondary.Width() != 40 {
		t.Errorf("secondary width = %d, want 40", secondary.Width())
	}
	if secondary.Left() != 60 {
		t.Errorf("secondary starts at X=%d, want 60", secondary.Left())
	}
}

func TestSplit_Apply_OffsetRect(t *testing.T) {
	s := NewSplit(30, true)
	rect := geom.RectOf(10, 20, 100, 80) // offset rect

	main, secondary := s.Apply(rect)

	// Check X coordinates are preserved
	if main.Left() != 10 || main.Right() != 109 {
		t.Errorf("main X range = [%d, %d], want [10, 109]", main.Left(), main.Right())
	}
	if secondary.Left() != 10 || secondary.Right() != 109 {
		t.Errorf("secondary X range = [%d, %d], want [10, 109]", secondary.Left(), secondary.Right())
	}

	// 80 height, 70% main = 56, 30% secondary = 24
	if main.Height() != 56 {
		t.Errorf("main height = %d, want 56", main.Height())
	}
	if secondary.Height() != 24 {
		t.Errorf("secondary height = %d, want 24", secondary.Height())
	}
	if secondary.Top() != main.Bottom()+1 {
		t.Errorf("secondary starts at Y=%d, want %d", secondary.Top(), main.Bottom()+1)
	}
}

func TestSplit_Apply_TinyRects(t *testing.T) {
	s := NewSplit(10, false)

	// 10% of 3 columns rounds to 0 but each panel keeps a cell
	main, secondary := s.Apply(geom.RectOf(0, 0, 3, 1))
	if main.Width() != 2 || secondary.Width() != 1 {
		t.Errorf("widths = %d/%d, want 2/1", main.Width(), secondary.Width())
	}

	single := geom.RectOf(5, 5, 1, 4)
	main, secondary = s.Apply(single)
	if main != single || secondary != single {
		t.Errorf("single column split = %s/%s, want both %s", main, secondary, single)
	}
}
