package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"helpctl/internal/help"
	"helpctl/internal/system"
)

func init() {
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(helpCmd)
}

var helpCmd = &cobra.Command{
	Use:   "help [topic]",
	Short: "Show help for a command or topic",
	Example: "$ helpctl help formats\n" +
		"$ helpctl help docs --format markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry()
		if len(args) == 0 {
			return renderRoot(cmd.Root())
		}
		t, err := reg.Resolve(args[0])
		if err != nil {
			if !errors.Is(err, help.ErrNotFound) {
				return err
			}
			if sugg := reg.Suggest(args[0], 3); len(sugg) > 0 {
				system.Logger.Error("unknown help topic",
					"topic", args[0],
					"did you mean", strings.Join(sugg, ", "))
			}
			return err
		}
		return renderOut(t.Build())
	},
}
