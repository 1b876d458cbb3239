package help

import (
	"regexp"

	"helpctl/internal/layout"
)

// Vars are the read-only values available to {{name}} placeholders in
// article strings.
type Vars map[string]string

// Named lookup only. No expressions, no nesting; keeps template
// substitution from growing back into an evaluator.
var placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.]+)\s*\}\}`)

// Expand substitutes {{name}} placeholders in s from vars. Unknown
// placeholders stay verbatim.
func Expand(s string, vars Vars) string {
	if vars == nil {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}

// ExpandArticle returns a copy of a with the title and every heading,
// label and description expanded against vars.
func ExpandArticle(a Article, vars Vars) Article {
	if vars == nil {
		return a
	}
	out := Article{Title: Expand(a.Title, vars)}
	for _, s := range a.Sections {
		sec := Section{Heading: Expand(s.Heading, vars), Code: s.Code}
		switch b := s.Body.(type) {
		case Prose:
			sec.Body = Prose(Expand(string(b), vars))
		case ProseLines:
			lines := make(ProseLines, len(b))
			for i, ln := range b {
				lines[i] = Expand(ln, vars)
			}
			sec.Body = lines
		case Pairs:
			rows := make(Pairs, len(b))
			for i, r := range b {
				rows[i] = layout.Row{
					Label: Expand(r.Label, vars),
					Desc:  Expand(r.Desc, vars),
				}
			}
			sec.Body = rows
		}
		out.Sections = append(out.Sections, sec)
	}
	return out
}
