// Package viewer pages glamour-rendered Markdown help in the terminal.
package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"helpctl/internal/text"
	"helpctl/internal/ui"
)

// Run opens an interactive pager showing the rendered Markdown for one
// help article. It blocks until the user quits.
func Run(title, markdown string) error {
	m := model{title: title, source: markdown}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type model struct {
	title  string
	source string
	vp     viewport.Model
	width  int
	ready  bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 1
		}
		m.vp.SetContent(renderMarkdown(m.source, msg.Width))
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "loading…"
	}
	return m.vp.View() + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	right := fmt.Sprintf(" %3.0f%% · q to quit ", m.vp.ScrollPercent()*100)
	left := " " + text.Clip(m.title, m.width-text.Width(right)-1)
	pad := m.width - text.Width(left) - text.Width(right)
	if pad < 0 {
		pad = 0
	}
	return ui.StatusBarStyle().Render(left + strings.Repeat(" ", pad) + right)
}

// renderMarkdown runs src through glamour at the given width, falling
// back to the raw source when rendering fails.
func renderMarkdown(src string, width int) string {
	// glamour adds a two column gutter of its own
	const gutter = 2
	wrap := width - gutter
	if wrap < 10 {
		wrap = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(themeStyle()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimRight(out, "\n")
}
