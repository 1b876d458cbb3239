package help

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func testCommand() *cobra.Command {
	root := &cobra.Command{Use: "mycli", Short: "demo tool"}
	run := &cobra.Command{
		Use:     "run [target]",
		Short:   "run a target",
		Long:    "Run the named target with the current configuration.",
		Example: "$ mycli run all",
		Run:     func(*cobra.Command, []string) {},
	}
	run.Flags().BoolP("force", "f", false, "overwrite existing files")
	run.Flags().String("out", "dist", "output directory")
	root.AddCommand(run)
	return root
}

func TestFromCommand_Sections(t *testing.T) {
	root := testCommand()
	var run *cobra.Command
	for _, c := range root.Commands() {
		if c.Name() == "run" {
			run = c
		}
	}
	a := FromCommand(run)
	if a.Title != "run" {
		t.Fatalf("title = %q", a.Title)
	}
	headings := make([]string, 0, len(a.Sections))
	for _, s := range a.Sections {
		headings = append(headings, s.Heading)
	}
	want := []string{"usage", "description", "flags", "examples"}
	if strings.Join(headings, ",") != strings.Join(want, ",") {
		t.Fatalf("headings = %v, want %v", headings, want)
	}
}

func TestFromCommand_FlagRows(t *testing.T) {
	root := testCommand()
	a := FromCommand(root.Commands()[0])
	var flags Pairs
	for _, s := range a.Sections {
		if s.Heading == "flags" {
			flags = s.Body.(Pairs)
		}
	}
	var labels, descs []string
	for _, r := range flags {
		labels = append(labels, r.Label)
		descs = append(descs, r.Desc)
	}
	joined := strings.Join(labels, "\n")
	if !strings.Contains(joined, "-f, --force") {
		t.Fatalf("shorthand flag label missing: %v", labels)
	}
	if !strings.Contains(joined, "--out string") {
		t.Fatalf("value flag label missing: %v", labels)
	}
	if !strings.Contains(strings.Join(descs, "\n"), "(default dist)") {
		t.Fatalf("default not shown: %v", descs)
	}
}

func TestFromCommand_UsageCarriesPlaceholder(t *testing.T) {
	a := FromCommand(testCommand().Commands()[0])
	usage := string(a.Sections[0].Body.(Prose))
	if !strings.HasPrefix(usage, "{{executable}} run") {
		t.Fatalf("usage = %q", usage)
	}
}

func TestFromCommand_ExampleIsCodeSection(t *testing.T) {
	a := FromCommand(testCommand().Commands()[0])
	last := a.Sections[len(a.Sections)-1]
	if last.Heading != "examples" || !last.Code {
		t.Fatalf("examples section wrong: %+v", last)
	}
}

func TestRootArticle_ListsTopics(t *testing.T) {
	reg := testRegistry()
	a := RootArticle(reg, "mycli", "demo tool", false)
	found := false
	for _, s := range a.Sections {
		if s.Heading != "topics" {
			continue
		}
		found = true
		rows := s.Body.(Pairs)
		if len(rows) != 2 || rows[0].Label != "render" {
			t.Fatalf("topic rows wrong: %+v", rows)
		}
	}
	if !found {
		t.Fatal("no topics section")
	}
}
