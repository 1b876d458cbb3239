package help

import "fmt"

// Format selects the output surface for one render call.
type Format int

const (
	// FormatScreen targets the interactive terminal.
	FormatScreen Format = iota
	// FormatMarkdown targets generated documentation files.
	FormatMarkdown
	// FormatMan renders exactly as FormatScreen.
	FormatMan
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "screen", "":
		return FormatScreen, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "man":
		return FormatMan, nil
	}
	return FormatScreen, fmt.Errorf("unknown format %q (want screen, markdown or man)", s)
}

// RenderOptions carry everything one render call needs beyond the article
// itself.
type RenderOptions struct {
	Format Format
	// Width is the terminal budget for screen output. Markdown ignores it
	// and uses a fixed budget so generated docs are reproducible.
	Width int
	// Vars back {{name}} placeholder substitution in article strings.
	Vars Vars
}

// Render expands template placeholders in a and renders it per opts.
func Render(a Article, opts RenderOptions) string {
	a = ExpandArticle(a, opts.Vars)
	if opts.Format == FormatMarkdown {
		return RenderMarkdown(a)
	}
	return RenderScreen(a, opts.Width)
}
