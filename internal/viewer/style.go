package viewer

import (
	"strings"

	gansi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"

	"helpctl/internal/ui"
)

// themeStyle returns a glamour ANSI style config matching the shared
// Vitesse palette.
func themeStyle() gansi.StyleConfig {
	// lipgloss.Color -> hex without alpha
	hex := func(c lipgloss.Color) string {
		s := string(c)
		if strings.HasPrefix(s, "#") && len(s) == 9 { // #RRGGBBAA
			return s[:7]
		}
		return s
	}
	sp := func(s string) *string { return &s }
	bp := func(b bool) *bool { return &b }

	text := hex(ui.Vitesse.Text)
	secondary := hex(ui.Vitesse.Secondary)
	muted := hex(ui.Vitesse.Muted)
	primary := hex(ui.Vitesse.Primary)
	blue := hex(ui.Vitesse.Blue)
	yellow := hex(ui.Vitesse.Yellow)
	bgSoft := hex(ui.Vitesse.BgSoft)

	heading := gansi.StyleBlock{
		StylePrimitive: gansi.StylePrimitive{Color: sp(blue), Bold: bp(true)},
	}
	return gansi.StyleConfig{
		Document:  gansi.StyleBlock{StylePrimitive: gansi.StylePrimitive{Color: sp(text)}},
		Paragraph: gansi.StyleBlock{StylePrimitive: gansi.StylePrimitive{Color: sp(text)}},
		BlockQuote: gansi.StyleBlock{
			StylePrimitive: gansi.StylePrimitive{Color: sp(secondary), Italic: bp(true)},
		},
		Heading: heading,
		H1:      heading,
		H2:      heading,
		H3:      heading,
		H4:      heading,
		H5:      heading,
		H6:      heading,

		Text:           gansi.StylePrimitive{Color: sp(text)},
		Emph:           gansi.StylePrimitive{Italic: bp(true)},
		Strong:         gansi.StylePrimitive{Bold: bp(true), Color: sp(primary)},
		HorizontalRule: gansi.StylePrimitive{Color: sp(secondary)},

		Link:     gansi.StylePrimitive{Color: sp(blue), Underline: bp(true)},
		LinkText: gansi.StylePrimitive{Color: sp(blue), Underline: bp(true)},

		Code: gansi.StyleBlock{
			StylePrimitive: gansi.StylePrimitive{Color: sp(yellow), BackgroundColor: sp(bgSoft)},
		},
		CodeBlock: gansi.StyleCodeBlock{
			StyleBlock: gansi.StyleBlock{
				StylePrimitive: gansi.StylePrimitive{Color: sp(text), BackgroundColor: sp(bgSoft)},
			},
			Chroma: &gansi.Chroma{
				Text:          gansi.StylePrimitive{Color: sp(text)},
				Comment:       gansi.StylePrimitive{Color: sp(muted), Italic: bp(true)},
				Keyword:       gansi.StylePrimitive{Color: sp(primary), Bold: bp(true)},
				LiteralString: gansi.StylePrimitive{Color: sp(yellow)},
			},
		},

		Table: gansi.StyleTable{
			StyleBlock:      gansi.StyleBlock{StylePrimitive: gansi.StylePrimitive{Color: sp(text)}},
			CenterSeparator: sp("│"),
			ColumnSeparator: sp("│"),
			RowSeparator:    sp("─"),
		},
	}
}
