package help

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"helpctl/internal/layout"
	"helpctl/internal/text"
)

// Markdown documents wrap at a fixed budget regardless of the terminal,
// so regenerating them is reproducible.
const (
	markdownBudget = 100
	markdownMargin = 2
)

// RenderMarkdown renders a as a Markdown document. Styling sequences are
// stripped throughout: Markdown cannot render them and they would corrupt
// code fences.
func RenderMarkdown(a Article) string {
	var parts []string
	if a.Title != "" {
		title := text.Strip(a.Title)
		parts = append(parts, title+"\n"+strings.Repeat("-", text.Width(title)))
	}
	for _, s := range a.Sections {
		var b strings.Builder
		b.WriteString("**")
		b.WriteString(capitalize(text.Strip(s.Heading)))
		b.WriteString("**")
		if body := markdownBody(s); body != "" {
			b.WriteString("\n\n")
			b.WriteString(body)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

func markdownBody(s Section) string {
	width := markdownBudget - markdownMargin
	if s.Code {
		body := proseOf(s.Body, width)
		if body == "" {
			return ""
		}
		return fence("shell", body)
	}
	switch b := s.Body.(type) {
	case nil:
		return ""
	case Prose, ProseLines:
		return text.Wrap(text.Strip(flatten(s.Body)), width, true)
	case Pairs:
		rendered := layout.Render(b, layout.Options{MaxWidth: width, StripStyling: true})
		if rendered == "" {
			return ""
		}
		return fence("", rendered)
	}
	return ""
}

// proseOf renders any body shape to plain wrapped text for a code fence.
// Trailing whitespace is kept so fenced content stays byte-exact.
func proseOf(body Body, width int) string {
	switch b := body.(type) {
	case nil:
		return ""
	case Prose, ProseLines:
		return text.Wrap(text.Strip(flatten(body)), width, false)
	case Pairs:
		return layout.Render(b, layout.Options{MaxWidth: width, StripStyling: true})
	}
	return ""
}

func flatten(body Body) string {
	switch b := body.(type) {
	case Prose:
		return string(b)
	case ProseLines:
		return strings.Join(b, "\n")
	}
	return ""
}

func fence(lang, body string) string {
	return "```" + lang + "\n" + body + "\n```"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
