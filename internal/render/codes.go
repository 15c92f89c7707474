package render

import (
	"strconv"

	"github.com/charmbracelet/x/ansi"
)

// ResetStyle returns every SGR attribute to the terminal default.
const ResetStyle = "\x1b[0m"

// ClearScreen erases the display, homes the cursor and resets the style.
const ClearScreen = ansi.EraseEntireScreen + ansi.CursorHomePosition + ResetStyle

// CursorTo returns the absolute cursor move ESC [ y ; x H. Both numbers are
// written as given, zero included, so callers pass terminal (1-based) values.
func CursorTo(x, y uint16) string {
	return string(appendCursorTo(nil, x, y))
}

func appendCursorTo(b []byte, x, y uint16) []byte {
	b = append(b, "\x1b["...)
	b = strconv.AppendUint(b, uint64(y), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(x), 10)
	return append(b, 'H')
}
