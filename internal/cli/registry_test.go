package cli

import (
	"strings"
	"testing"

	"helpctl/internal/help"
)

func TestRegistry_CoversCommandsAndGuides(t *testing.T) {
	reg := registry()
	for _, name := range []string{"docs", "view", "version", "config", "formats", "templates"} {
		if _, err := reg.Resolve(name); err != nil {
			t.Fatalf("topic %q missing: %v", name, err)
		}
	}
}

func TestRegistry_TopicArticlesRenderWithoutPlaceholders(t *testing.T) {
	reg := registry()
	vars := help.Vars{"executable": "helpctl", "docsDir": "docs"}
	for _, tp := range reg.Topics(true) {
		out := help.Render(tp.Build(), help.RenderOptions{Format: help.FormatMarkdown, Vars: vars})
		if strings.Contains(out, "{{") {
			t.Fatalf("topic %q leaked placeholders:\n%s", tp.Name, out)
		}
		if strings.Contains(out, "\x1b") {
			t.Fatalf("topic %q leaked styling into markdown", tp.Name)
		}
	}
}

func TestRootArticle_MentionsEveryVisibleTopic(t *testing.T) {
	reg := registry()
	a := help.RootArticle(reg, "helpctl", "", false)
	out := help.Render(a, help.RenderOptions{Format: help.FormatScreen, Width: 100})
	for _, tp := range reg.Topics(false) {
		if !strings.Contains(out, tp.Name) {
			t.Fatalf("root article missing topic %q:\n%s", tp.Name, out)
		}
	}
}
