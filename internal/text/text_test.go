package text

import (
	"bytes"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/Pyrite7/terminal-draw/internal/geom"
	"github.com/Pyrite7/terminal-draw/internal/render"
	"github.com/Pyrite7/terminal-draw/internal/screen"
	"github.com/Pyrite7/terminal-draw/test"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTarget struct {
	areas []geom.Rect
}

func (r *recordingTarget) Render(area geom.Rect, content render.ContentFunc) error {
	r.areas = append(r.areas, area)
	return nil
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"by character count", "lorem ipsum dolor lorem ipsum dolor", 6, []string{"lorem ", "ipsum ", "dolor ", "lorem ", "ipsum ", "dolor"}},
		{"hard break", "lorem ipsum\ndolor", 11, []string{"lorem ipsum", "dolor"}},
		{"hard break after split", "lorem ipsum dolor\nlorem ipsum", 12, []string{"lorem ipsum ", "dolor", "lorem ipsum"}},
		{"crlf", "ab\r\ncd\r\n", 5, []string{"ab", "cd"}},
		{"empty lines dropped", "a\n\nb", 3, []string{"a", "b"}},
		{"multibyte", "äöüß", 3, []string{"äöü", "ß"}},
		{"empty", "", 4, nil},
		{"zero width", "abc", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestWrap_LinesNeverExceedWidth(t *testing.T) {
	text := strings.Repeat("the quick brown fox\n", 3)
	for width := 1; width < 25; width++ {
		for _, line := range Wrap(text, width) {
			assert.LessOrEqual(t, len([]rune(line)), width)
		}
	}
}

func TestDrawLine(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, DrawLine(render.To(&out), geom.Pos(2, 1), "hello"))

	assert.Equal(t, "\x1b[0m\x1b[1;2Hhello\x1b[0m\n", out.String())
}

func TestDrawLine_Empty(t *testing.T) {
	target := &recordingTarget{}
	require.NoError(t, DrawLine(target, geom.Pos(0, 0), ""))
	assert.Empty(t, target.areas)
}

func TestLabel_DrawAt(t *testing.T) {
	target := &recordingTarget{}
	require.NoError(t, Label("héllo").DrawAt(target, geom.Pos(3, 4)))
	require.Len(t, target.areas, 1)
	assert.Equal(t, geom.RectOf(3, 4, 5, 1), target.areas[0])
}

func TestDrawTextBox(t *testing.T) {
	var out bytes.Buffer
	area := geom.RectOf(1, 1, 6, 3)
	require.NoError(t, DrawTextBox(render.To(&out), area, "lorem ipsum\ndolor"))

	rows := test.Rows(test.Replay(out.Bytes(), 8, 5))
	assert.Equal(t, " lorem", strings.TrimRight(rows[1], " "))
	assert.Equal(t, " ipsum", strings.TrimRight(rows[2], " "))
	assert.Equal(t, " dolor", strings.TrimRight(rows[3], " "))
}

func TestDrawTextBox_PadsAndClips(t *testing.T) {
	var out bytes.Buffer
	area := geom.RectOf(0, 0, 4, 2)
	require.NoError(t, DrawTextBox(render.To(&out), area, "ab\ncdefgh\nij"))

	rows := test.Rows(test.Replay(out.Bytes(), 4, 3))
	assert.Equal(t, "ab  ", rows[0])
	assert.Equal(t, "cdef", rows[1])
	// "gh" and "ij" fall below the area
	assert.Equal(t, "    ", rows[2])
}

func TestTextBox_DrawIn(t *testing.T) {
	var out bytes.Buffer
	box := TextBox{Text: "hi", Style: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("4"))}
	require.NoError(t, box.DrawIn(render.To(&out), geom.RectOf(0, 0, 3, 1)))

	buf := test.Replay(out.Bytes(), 3, 1)
	for x := 0; x < 3; x++ {
		cell := buf.CellAt(x, 0)
		require.NotNil(t, cell)
		assert.NotZero(t, cell.Style.Attrs&uv.AttrBold)
		assert.NotNil(t, cell.Style.Bg)
	}
}

func TestDrawSegments(t *testing.T) {
	var out bytes.Buffer
	bold := lipgloss.NewStyle().Bold(true)
	segments := []screen.Segment{
		{Text: "key: "},
		{Text: "value\nnext", Style: bold},
	}
	require.NoError(t, Line(segments).DrawAt(render.To(&out), geom.Pos(0, 0)))

	buf := test.Replay(out.Bytes(), 12, 2)
	rows := test.Rows(buf)
	assert.Equal(t, "key: value", strings.TrimRight(rows[0], " "))
	assert.Equal(t, "next", strings.TrimRight(rows[1], " "))

	plain := buf.CellAt(0, 0)
	require.NotNil(t, plain)
	assert.Zero(t, plain.Style.Attrs&uv.AttrBold)
	strong := buf.CellAt(5, 0)
	require.NotNil(t, strong)
	assert.NotZero(t, strong.Style.Attrs&uv.AttrBold)
}

func TestDrawSegments_Empty(t *testing.T) {
	target := &recordingTarget{}
	require.NoError(t, DrawSegments(target, geom.Pos(0, 0), nil))
	assert.Empty(t, target.areas)
}
