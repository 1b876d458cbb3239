package help

import (
	"strings"
	"testing"

	"helpctl/internal/text"
)

func TestRenderMarkdown_ProseArticle(t *testing.T) {
	a := Article{
		Title:    "mycli",
		Sections: []Section{{Heading: "description", Body: Prose("A tool.")}},
	}
	want := "mycli\n-----\n\n**Description**\n\nA tool."
	if got := RenderMarkdown(a); got != want {
		t.Fatalf("RenderMarkdown = %q, want %q", got, want)
	}
}

func TestRenderMarkdown_UnderlineMatchesStyledTitleWidth(t *testing.T) {
	a := Article{Title: "\x1b[1mmycli\x1b[0m"}
	got := RenderMarkdown(a)
	if got != "mycli\n-----" {
		t.Fatalf("styled title handled wrong: %q", got)
	}
}

func TestRenderMarkdown_NeverEmitsStyling(t *testing.T) {
	a := Article{
		Title: "\x1b[32mtool\x1b[0m",
		Sections: []Section{
			{Heading: "\x1b[1moptions\x1b[0m", Body: Pairs{
				{Label: "\x1b[33m--color\x1b[0m", Desc: "colorize \x1b[4moutput\x1b[0m"},
			}},
			{Heading: "notes", Body: ProseLines{"styled \x1b[31mline\x1b[0m", "plain line"}},
		},
	}
	got := RenderMarkdown(a)
	if strings.Contains(got, "\x1b") {
		t.Fatalf("markdown output contains escape sequences: %q", got)
	}
}

func TestRenderMarkdown_PairsAreFenced(t *testing.T) {
	a := Article{Sections: []Section{
		{Heading: "options", Body: Pairs{{Label: "-v", Desc: "verbose"}}},
	}}
	got := RenderMarkdown(a)
	want := "**Options**\n\n```\n-v  verbose\n```"
	if got != want {
		t.Fatalf("fenced pairs = %q, want %q", got, want)
	}
}

func TestRenderMarkdown_CodeSectionFencesAnyShape(t *testing.T) {
	a := Article{Sections: []Section{
		{Heading: "examples", Code: true, Body: ProseLines{"$ mycli run", "done"}},
	}}
	got := RenderMarkdown(a)
	want := "**Examples**\n\n```shell\n$ mycli run\ndone\n```"
	if got != want {
		t.Fatalf("code section = %q, want %q", got, want)
	}
}

func TestRenderMarkdown_EmptyArticle(t *testing.T) {
	if got := RenderMarkdown(Article{Title: "solo"}); got != "solo\n----" {
		t.Fatalf("empty article = %q", got)
	}
}

func TestRenderScreen_HeadingsUppercasedAndBodiesIndented(t *testing.T) {
	a := Article{
		Title: "tool",
		Sections: []Section{
			{Heading: "usage", Body: Prose("tool [flags]")},
			{Heading: "empty"},
		},
	}
	got := text.Strip(RenderScreen(a, 80))
	want := "tool\n\nUSAGE\n  tool [flags]\n\nEMPTY"
	if got != want {
		t.Fatalf("RenderScreen = %q, want %q", got, want)
	}
}

func TestRenderScreen_ListBody(t *testing.T) {
	a := Article{Sections: []Section{
		{Heading: "flags", Body: Pairs{
			{Label: "-a", Desc: "first"},
			{Label: "--second", Desc: "second"},
		}},
	}}
	got := text.Strip(RenderScreen(a, 60))
	if !strings.Contains(got, "  -a        first") {
		t.Fatalf("list body misaligned:\n%s", got)
	}
	if !strings.Contains(got, "  --second  second") {
		t.Fatalf("list body misaligned:\n%s", got)
	}
}

func TestRenderScreen_TitlePreservesStyling(t *testing.T) {
	a := Article{Title: "\x1b[1mtool\x1b[0m"}
	if got := RenderScreen(a, 80); !strings.Contains(got, "\x1b[1m") {
		t.Fatalf("screen render dropped title styling: %q", got)
	}
}

func TestRender_ManBehavesAsScreen(t *testing.T) {
	a := Article{Title: "t", Sections: []Section{{Heading: "h", Body: Prose("body")}}}
	man := Render(a, RenderOptions{Format: FormatMan, Width: 60})
	screen := Render(a, RenderOptions{Format: FormatScreen, Width: 60})
	if man != screen {
		t.Fatalf("man output diverged from screen output")
	}
}

func TestRender_ExpandsPlaceholders(t *testing.T) {
	a := Article{Sections: []Section{
		{Heading: "usage", Body: Prose("{{executable}} run")},
		{Heading: "flags", Body: Pairs{{Label: "--bin", Desc: "path to {{executable}}"}}},
	}}
	got := Render(a, RenderOptions{Format: FormatMarkdown, Vars: Vars{"executable": "mycli"}})
	if strings.Contains(got, "{{") {
		t.Fatalf("placeholders left in output: %q", got)
	}
	if !strings.Contains(got, "mycli run") || !strings.Contains(got, "path to mycli") {
		t.Fatalf("substitution wrong: %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"screen": FormatScreen, "markdown": FormatMarkdown, "md": FormatMarkdown, "man": FormatMan,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
