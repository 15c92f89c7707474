package render

import (
	"io"

	"github.com/Pyrite7/terminal-draw/internal/geom"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
)

// Target paints one region per call.
type Target interface {
	Render(area geom.Rect, content ContentFunc) error
}

// Renderer renders to a writer, downsampling styles to what the terminal's
// colour profile can show.
type Renderer struct {
	out     io.Writer
	profile colorprofile.Profile
}

var _ Target = (*Renderer)(nil)

// NewRenderer returns a Renderer writing to w with the given profile.
func NewRenderer(w io.Writer, profile colorprofile.Profile) *Renderer {
	return &Renderer{out: w, profile: profile}
}

// To returns a Target writing to w with styles passed through untouched.
func To(w io.Writer) *Renderer {
	return NewRenderer(w, colorprofile.TrueColor)
}

func (r *Renderer) Profile() colorprofile.Profile {
	return r.profile
}

// Render paints area to the underlying writer. See the package level Render.
func (r *Renderer) Render(area geom.Rect, content ContentFunc) error {
	if r.profile == colorprofile.TrueColor {
		return Render(r.out, area, content)
	}
	return Render(r.out, area, func(x, y int) Char {
		c := content(x, y)
		c.Style = uv.ConvertStyle(c.Style, r.profile)
		return c
	})
}
