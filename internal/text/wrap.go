// Package text lays plain and styled text out on top of the renderer.
package text

import "strings"

// Wrap splits text into lines of at most width characters. Line breaks in
// text are kept as hard breaks; longer lines are cut by character count with
// no regard for word boundaries. Empty lines produce no output and a
// non-positive width yields nil.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var res []string
	for _, line := range splitLines(text) {
		runes := []rune(line)
		for len(runes) > 0 {
			n := min(width, len(runes))
			res = append(res, string(runes[:n]))
			runes = runes[n:]
		}
	}
	return res
}

// splitLines splits on "\n", dropping one trailing "\r" per line and the empty
// remainder after a final line break.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
