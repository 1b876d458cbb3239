package help

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"helpctl/internal/layout"
)

// FromCommand builds the help article for one cobra command: usage,
// description, subcommands, flags and examples. Strings carry
// {{executable}} placeholders so the renderer can substitute the real
// binary name at render time.
func FromCommand(cmd *cobra.Command) Article {
	a := Article{Title: cmd.Name()}

	use := strings.TrimSpace(cmd.Use)
	usage := "{{executable}}"
	if cmd.HasParent() {
		usage += " " + use
	} else if cmd.HasAvailableSubCommands() {
		usage += " <command> [flags]"
	}
	a.Sections = append(a.Sections, Section{Heading: "usage", Body: Prose(usage)})

	if long := strings.TrimSpace(cmd.Long); long != "" {
		a.Sections = append(a.Sections, Section{Heading: "description", Body: Prose(long)})
	} else if short := strings.TrimSpace(cmd.Short); short != "" {
		a.Sections = append(a.Sections, Section{Heading: "description", Body: Prose(short)})
	}

	if rows := commandRows(cmd); len(rows) > 0 {
		a.Sections = append(a.Sections, Section{Heading: "commands", Body: rows})
	}
	if rows := flagRows(cmd.NonInheritedFlags()); len(rows) > 0 {
		a.Sections = append(a.Sections, Section{Heading: "flags", Body: rows})
	}
	if rows := flagRows(cmd.InheritedFlags()); len(rows) > 0 {
		a.Sections = append(a.Sections, Section{Heading: "global flags", Body: rows})
	}
	if ex := strings.TrimSpace(cmd.Example); ex != "" {
		a.Sections = append(a.Sections, Section{Heading: "examples", Code: true, Body: Prose(ex)})
	}
	return a
}

func commandRows(cmd *cobra.Command) Pairs {
	var rows Pairs
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		rows = append(rows, layout.Row{Label: c.Name(), Desc: c.Short})
	}
	return rows
}

func flagRows(fs *pflag.FlagSet) Pairs {
	var rows Pairs
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		label := "--" + f.Name
		if f.Shorthand != "" {
			label = "-" + f.Shorthand + ", " + label
		}
		if f.Value.Type() != "bool" {
			label += " " + f.Value.Type()
		}
		desc := f.Usage
		if f.DefValue != "" && f.DefValue != "false" {
			desc += " (default " + f.DefValue + ")"
		}
		rows = append(rows, layout.Row{Label: label, Desc: desc})
	})
	return rows
}

// RootArticle builds the top-level help screen: a short intro plus the
// list of every visible topic.
func RootArticle(reg *Registry, title, intro string, all bool) Article {
	a := Article{Title: title}
	a.Sections = append(a.Sections, Section{Heading: "usage", Body: Prose("{{executable}} <command> [flags]")})
	if intro != "" {
		a.Sections = append(a.Sections, Section{Heading: "description", Body: Prose(intro)})
	}
	var rows Pairs
	for _, t := range reg.Topics(all) {
		rows = append(rows, layout.Row{Label: t.Name, Desc: t.Short})
	}
	if len(rows) > 0 {
		a.Sections = append(a.Sections, Section{Heading: "topics", Body: rows})
	}
	a.Sections = append(a.Sections, Section{
		Heading: "learn more",
		Body:    Prose(`Use "{{executable}} help <topic>" for details on a topic.`),
	})
	return a
}
