package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"helpctl/internal/config"
	"helpctl/internal/help"
	"helpctl/internal/term"
)

// registry assembles the help topic set: one topic per subcommand plus
// the standalone guide topics below.
func registry() *help.Registry {
	reg := help.NewRegistry()
	for _, c := range rootCmd.Commands() {
		if c.IsAdditionalHelpTopicCommand() {
			continue
		}
		c := c
		reg.Add(help.Topic{
			Name:   c.Name(),
			Short:  c.Short,
			Hidden: c.Hidden,
			Build:  func() help.Article { return help.FromCommand(c) },
		})
	}
	for _, t := range guideTopics {
		reg.Add(t)
	}
	return reg
}

// guideTopics are articles about the tool itself rather than a command.
var guideTopics = []help.Topic{
	{
		Name:  "formats",
		Short: "output formats and where they differ",
		Build: func() help.Article {
			return help.Article{
				Title: "formats",
				Sections: []help.Section{
					{Heading: "description", Body: help.Prose(
						"Every article renders to one of three formats. Screen and man output " +
							"target the current terminal and keep styling; markdown output strips " +
							"styling and wraps at a fixed 100 column budget so regenerated docs " +
							"never depend on the terminal they were built in.")},
					{Heading: "formats", Body: help.Pairs{
						{Label: "screen", Desc: "two-column layout sized to the current terminal"},
						{Label: "man", Desc: "same as screen"},
						{Label: "markdown", Desc: "plain Markdown with fenced option tables"},
					}},
					{Heading: "examples", Code: true, Body: help.ProseLines{
						"$ {{executable}} help formats --format markdown",
						"$ {{executable}} docs ./site",
					}},
				},
			}
		},
	},
	{
		Name:  "templates",
		Short: "placeholder substitution in article text",
		Build: func() help.Article {
			return help.Article{
				Title: "templates",
				Sections: []help.Section{
					{Heading: "description", Body: help.Prose(
						"Article strings may reference configuration through {{name}} " +
							"placeholders. Substitution is a plain named lookup; unknown names " +
							"are left as written.")},
					{Heading: "placeholders", Body: help.Pairs{
						{Label: "executable", Desc: "the binary name shown in usage lines"},
						{Label: "docsDir", Desc: "default destination for generated docs"},
					}},
				},
			}
		},
	},
}

// renderOut renders a through the configured format and prints it.
func renderOut(a help.Article) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	format, err := help.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	out := help.Render(a, help.RenderOptions{
		Format: format,
		Width:  term.Width(),
		Vars:   help.Vars(cfg.Vars()),
	})
	fmt.Println(out)
	return nil
}

func renderRoot(cmd *cobra.Command) error {
	reg := registry()
	return renderOut(help.RootArticle(reg, cmd.Name(), cmd.Long, allFlag))
}
