package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"helpctl/internal/config"
	"helpctl/internal/help"
	"helpctl/internal/system"
)

func init() {
	rootCmd.AddCommand(docsCmd)
}

var docsCmd = &cobra.Command{
	Use:     "docs [dir]",
	Short:   "Write Markdown help for every topic",
	Example: "$ helpctl docs ./site/help",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dir := cfg.DocsDir
		if len(args) > 0 {
			dir = args[0]
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		reg := registry()
		vars := help.Vars(cfg.Vars())
		write := func(name string, a help.Article) error {
			out := help.Render(a, help.RenderOptions{Format: help.FormatMarkdown, Vars: vars})
			path := filepath.Join(dir, name+".md")
			if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
				return err
			}
			system.Logger.Info("wrote", "path", path)
			return nil
		}
		if err := write("index", help.RootArticle(reg, cmd.Root().Name(), cmd.Root().Long, allFlag)); err != nil {
			return err
		}
		for _, t := range reg.Topics(allFlag) {
			if err := write(t.Name, t.Build()); err != nil {
				return err
			}
		}
		return nil
	},
}
