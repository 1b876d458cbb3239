package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"helpctl/internal/config"
	"helpctl/internal/system"
)

var configInit bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configInit, "init", false, "write the effective config to the config dir")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if configInit {
			if err := config.Save(cfg); err != nil {
				return err
			}
			dir, _ := config.Dir()
			system.Logger.Info("wrote config", "dir", dir)
		}
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
