// Package help models structured help articles and renders them for a
// terminal screen or a Markdown document.
package help

import "helpctl/internal/layout"

// Article is a titled, ordered collection of help sections for one
// command or the root help screen. Sections render in the order given.
type Article struct {
	Title    string
	Sections []Section
}

// Section is one labeled block of help content.
type Section struct {
	Heading string
	// Code marks the body as a shell session; Markdown output fences it
	// regardless of body shape.
	Code bool
	Body Body
}

// Body is the content of a section. Exactly three shapes exist; the
// renderers dispatch on them exhaustively.
type Body interface {
	body()
}

// Prose is a single free-form string.
type Prose string

// ProseLines is prose given line by line, joined with newlines before
// wrapping.
type ProseLines []string

// Pairs is the tabular form, rendered through the column layout engine.
type Pairs []layout.Row

func (Prose) body()      {}
func (ProseLines) body() {}
func (Pairs) body()      {}
