package help

import (
	"strings"

	"helpctl/internal/layout"
	"helpctl/internal/text"
	"helpctl/internal/ui"
)

// bodyIndent is how far section bodies sit under their heading on screen.
const bodyIndent = 2

// RenderScreen renders a for a terminal of the given width. Styling in
// the input is preserved.
func RenderScreen(a Article, width int) string {
	var parts []string
	if a.Title != "" {
		parts = append(parts, a.Title)
	}
	for _, s := range a.Sections {
		var b strings.Builder
		b.WriteString(ui.HeadingStyle().Render(strings.ToUpper(s.Heading)))
		if body := screenBody(s.Body, width-bodyIndent); body != "" {
			b.WriteString("\n")
			b.WriteString(indent(body, bodyIndent))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

func screenBody(body Body, width int) string {
	switch b := body.(type) {
	case nil:
		return ""
	case Prose:
		return text.Wrap(string(b), width, true)
	case ProseLines:
		return text.Wrap(strings.Join(b, "\n"), width, true)
	case Pairs:
		return layout.Render(b, layout.Options{MaxWidth: width})
	}
	return ""
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if ln != "" {
			lines[i] = pad + ln
		}
	}
	return strings.Join(lines, "\n")
}
