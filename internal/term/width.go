// Package term reports properties of the attached terminal.
package term

import (
	"os"

	"golang.org/x/term"
)

// Width returns the current terminal width in columns. Falls back to 80
// when stdout is not a terminal, and clamps very narrow terminals so
// layout always has some room to work.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	if w < 20 {
		return 20
	}
	return w
}
