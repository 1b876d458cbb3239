// Package layout arranges label/description pairs for a fixed-width
// surface. Lists render as an aligned two-column table when every
// description stays short, and fall back to stacked label/description
// groups when any row would wrap into an unscannable block.
package layout

import (
	"strings"

	"helpctl/internal/text"
)

// Row is one label/description entry in a help list. Either side may be
// empty.
type Row struct {
	Label string
	Desc  string
}

// Options control how a list of rows is laid out.
type Options struct {
	// MaxWidth is the total column budget for the rendered list.
	MaxWidth int
	// ForceStacked skips the compact attempt entirely.
	ForceStacked bool
	// StripStyling removes ANSI sequences from both sides before layout,
	// for surfaces that cannot render them.
	StripStyling bool
}

// compactLineLimit is the most wrapped description lines a single row may
// produce before the whole list falls back to stacked layout. Heuristic,
// tunable; not a domain rule.
const compactLineLimit = 4

// gutter separates the label column from the description column.
const gutter = 2

// stackedIndent is the description indent in stacked layout.
const stackedIndent = 4

// Render lays out rows per opts. The compact/stacked decision is
// all-or-nothing: a single overflowing row re-renders the entire list
// stacked so the two styles never mix within one list.
func Render(rows []Row, opts Options) string {
	if opts.StripStyling {
		stripped := make([]Row, len(rows))
		for i, r := range rows {
			stripped[i] = Row{Label: text.Strip(r.Label), Desc: text.Strip(r.Desc)}
		}
		rows = stripped
	}
	if opts.ForceStacked {
		return renderStacked(rows, opts.MaxWidth)
	}
	out, ok := renderCompact(rows, opts.MaxWidth)
	if !ok {
		return renderStacked(rows, opts.MaxWidth)
	}
	return out
}

// renderCompact attempts the two-column table. It reports false when some
// row's description wraps past compactLineLimit lines.
func renderCompact(rows []Row, maxWidth int) (string, bool) {
	labelW := 0
	for _, r := range rows {
		if w := text.Width(r.Label); w > labelW {
			labelW = w
		}
	}
	col := labelW + gutter

	var blocks []string
	var tight []bool // block keeps single-newline spacing to its successor
	for _, r := range rows {
		if r.Label == "" && r.Desc == "" {
			continue
		}
		if r.Desc == "" {
			// header-style row: no gap, groups with what follows
			blocks = append(blocks, strings.TrimSpace(r.Label))
			tight = append(tight, true)
			continue
		}
		lines := strings.Split(text.Wrap(r.Desc, maxWidth-col, true), "\n")
		if len(lines) > compactLineLimit {
			return "", false
		}
		var b strings.Builder
		b.WriteString(r.Label)
		b.WriteString(strings.Repeat(" ", col-text.Width(r.Label)))
		b.WriteString(lines[0])
		for _, ln := range lines[1:] {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", col))
			b.WriteString(ln)
		}
		blocks = append(blocks, b.String())
		tight = append(tight, false)
	}

	var sb strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			if tight[i-1] {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(blk)
	}
	return sb.String(), true
}

// renderStacked puts each label and its description on separate line
// groups, trading density for readability.
func renderStacked(rows []Row, maxWidth int) string {
	var blocks []string
	for _, r := range rows {
		if r.Label == "" && r.Desc == "" {
			continue
		}
		var b strings.Builder
		if r.Label != "" {
			b.WriteString(strings.TrimSpace(text.Wrap(r.Label, maxWidth, true)))
		}
		if r.Desc != "" {
			if r.Label != "" {
				b.WriteString("\n")
			}
			wrapped := text.Wrap(r.Desc, maxWidth-stackedIndent, true)
			for j, ln := range strings.Split(wrapped, "\n") {
				if j > 0 {
					b.WriteString("\n")
				}
				b.WriteString(strings.Repeat(" ", stackedIndent))
				b.WriteString(ln)
			}
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}
