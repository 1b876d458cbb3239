package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	formatFlag string
	allFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "helpctl",
	Short: "helpctl – structured help article renderer",
	Long: "helpctl renders structured help articles as aligned two-column text " +
		"for the terminal or as Markdown documents for generated docs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		// Default action: show the root help article
		return renderRoot(cmd)
	}
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "screen", "output format: screen, markdown or man")
	rootCmd.PersistentFlags().BoolVar(&allFlag, "all", false, "include hidden topics")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
