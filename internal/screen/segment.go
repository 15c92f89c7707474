package screen

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Segment is a run of text painted in one style.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// Width is the number of characters in the segment.
func (s Segment) Width() int {
	return len([]rune(s.Text))
}

// BreakNewLines groups segments into lines by breaking segments at new lines.
// A trailing new line does not open an extra empty line.
func BreakNewLines(segments []Segment) [][]Segment {
	var lines [][]Segment
	currentLine := make([]Segment, 0)
	for _, segment := range segments {
		text := segment.Text
		idx := strings.IndexByte(text, '\n')
		for idx != -1 {
			if idx > 0 {
				currentLine = append(currentLine, Segment{Text: text[:idx], Style: segment.Style})
			}
			lines = append(lines, currentLine)
			currentLine = make([]Segment, 0)
			text = text[idx+1:]
			idx = strings.IndexByte(text, '\n')
		}
		if len(text) > 0 {
			currentLine = append(currentLine, Segment{Text: text, Style: segment.Style})
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, currentLine)
	}
	return lines
}
