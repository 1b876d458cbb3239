package text

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	xansi "github.com/charmbracelet/x/ansi"
)

// Clip trims s to at most maxW display columns.
func Clip(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= maxW {
		return s
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxW {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}
