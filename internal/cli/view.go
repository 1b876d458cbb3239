package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"helpctl/internal/config"
	"helpctl/internal/help"
	"helpctl/internal/system"
	"helpctl/internal/viewer"
)

func init() {
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:     "view [topic]",
	Short:   "Browse rendered help in an interactive pager",
	Example: "$ helpctl view formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		reg := registry()
		title := cmd.Root().Name()
		a := help.RootArticle(reg, title, cmd.Root().Long, allFlag)
		if len(args) > 0 {
			t, rerr := reg.Resolve(args[0])
			if rerr != nil {
				if errors.Is(rerr, help.ErrNotFound) {
					if sugg := reg.Suggest(args[0], 3); len(sugg) > 0 {
						system.Logger.Error("unknown help topic",
							"topic", args[0],
							"did you mean", strings.Join(sugg, ", "))
					}
				}
				return rerr
			}
			a = t.Build()
			title = t.Name
		}
		md := help.Render(a, help.RenderOptions{
			Format: help.FormatMarkdown,
			Vars:   help.Vars(cfg.Vars()),
		})
		return viewer.Run(title, md)
	},
}
