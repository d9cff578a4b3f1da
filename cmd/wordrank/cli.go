package main

import (
	"os"

	"github.com/bastiangx/wordrank/internal/cli"
	"github.com/spf13/cobra"
)

var cliCmd = &cobra.Command{
	Use:   "cli",
	Short: "Interactive classification and ranking for testing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		handler := cli.NewInputHandler(env.classifier, env.options(), env.config.Rank.DefaultLimit, os.Stdin, os.Stdout)
		return handler.Start()
	},
}

func init() {
	rootCmd.AddCommand(cliCmd)
}
