package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active config file, or rebuild it with defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		rebuild, _ := cmd.Flags().GetBool("rebuild")
		if rebuild {
			path, err := config.RebuildConfigFile()
			if err != nil {
				return fmt.Errorf("failed to rebuild config: %w", err)
			}
			fmt.Fprintf(out, "rebuilt %s\n", path)
			return nil
		}

		cfg, path, err := config.LoadConfigWithPriority(flags.configPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "# "+config.GetActiveConfigPath(path))
		return toml.NewEncoder(out).Encode(cfg)
	},
}

func init() {
	configCmd.Flags().Bool("rebuild", false, "overwrite the default config file with defaults")
	rootCmd.AddCommand(configCmd)
}
