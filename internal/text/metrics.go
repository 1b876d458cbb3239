package text

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Width returns the number of terminal columns s occupies. ANSI escape
// sequences count as zero columns; East Asian wide runes count as two.
func Width(s string) int {
	return xansi.StringWidth(s)
}

// MaxLineWidth returns the Width of the widest line in a possibly
// multi-line string.
func MaxLineWidth(s string) int {
	max := 0
	for _, ln := range strings.Split(s, "\n") {
		if w := xansi.StringWidth(ln); w > max {
			max = w
		}
	}
	return max
}

// Strip removes ANSI styling sequences from s.
func Strip(s string) string {
	return xansi.Strip(s)
}
