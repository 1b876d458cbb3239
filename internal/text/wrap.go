package text

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Wrap hard-wraps s so no line exceeds width display columns, breaking at
// whitespace. A single token wider than width is emitted whole on its own
// line rather than broken mid-token. Embedded ANSI sequences pass through
// intact and count as zero columns. width <= 0 disables wrapping. When
// trimTrailing is set, trailing spaces and tabs are removed from each
// produced line; leave it unset when the output must stay byte-exact, e.g.
// inside Markdown fences.
func Wrap(s string, width int, trimTrailing bool) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, ln := range strings.Split(s, "\n") {
		out = append(out, wrapLine(ln, width, trimTrailing)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int, trimTrailing bool) []string {
	var lines []string
	cur := ""   // line being assembled
	space := "" // whitespace run since the last word
	flush := func() {
		if trimTrailing {
			cur = strings.TrimRight(cur, " \t")
		}
		lines = append(lines, cur)
		cur = ""
	}
	for _, tok := range splitTokens(line) {
		if tok[0] == ' ' || tok[0] == '\t' {
			space += tok
			continue
		}
		switch {
		case cur == "" && len(lines) == 0:
			// first word keeps the line's original indentation
			cur = space + tok
		case cur == "":
			cur = tok
		case Width(cur)+Width(space)+xansi.StringWidth(tok) <= width:
			cur += space + tok
		default:
			if !trimTrailing {
				cur += space
			}
			flush()
			cur = tok
		}
		space = ""
	}
	if !trimTrailing {
		cur += space
	}
	if cur != "" || len(lines) == 0 {
		flush()
	}
	return lines
}

// splitTokens cuts a line into alternating runs of whitespace and
// non-whitespace bytes, preserving every byte.
func splitTokens(s string) []string {
	if s == "" {
		return nil
	}
	var toks []string
	start := 0
	blank := s[0] == ' ' || s[0] == '\t'
	for i := 1; i < len(s); i++ {
		b := s[i] == ' ' || s[i] == '\t'
		if b != blank {
			toks = append(toks, s[start:i])
			start = i
			blank = b
		}
	}
	return append(toks, s[start:])
}
