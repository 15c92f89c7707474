package test

import (
	"regexp"
	"strconv"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
)

var (
	cursorMove = regexp.MustCompile(`\x1b\[(\d+);(\d+)H`)
	sgr        = regexp.MustCompile(`\x1b\[[0-9;:]*m`)
)

// Replay decodes renderer output into a fixed-size screen buffer. Cursor moves
// are taken as buffer coordinates; SGR state carries over from one row to the
// next the way a terminal keeps it. Line feeds only terminate paints and are
// dropped, so the output of several calls can be replayed at once.
func Replay(out []byte, width, height int) uv.ScreenBuffer {
	buf := uv.NewScreenBuffer(width, height)
	s := strings.ReplaceAll(string(out), "\n", "")

	var pen strings.Builder
	moves := cursorMove.FindAllStringSubmatchIndex(s, -1)
	for i, loc := range moves {
		row, _ := strconv.Atoi(s[loc[2]:loc[3]])
		col, _ := strconv.Atoi(s[loc[4]:loc[5]])
		end := len(s)
		if i+1 < len(moves) {
			end = moves[i+1][0]
		}
		segment := s[loc[1]:end]
		if col < width && row < height {
			uv.NewStyledString(pen.String()+segment).Draw(buf, uv.Rect(col, row, width-col, 1))
		}
		for _, code := range sgr.FindAllString(segment, -1) {
			pen.WriteString(code)
		}
	}
	return buf
}

// Rows returns the plain text of every buffer row.
func Rows(buf uv.ScreenBuffer) []string {
	return strings.Split(buf.String(), "\r\n")
}
