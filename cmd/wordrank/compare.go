package main

import (
	"fmt"

	"github.com/bastiangx/wordrank/pkg/document"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare FILE FILE...",
	Short: "Score how alike files are by their topical words",
	Long: `compare prints the similarity of every pair of files. 1.0 means the
topicality of their words is identical; the score drops as they diverge and
can go below zero.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		docs, err := document.LoadAll(cmd.Context(), env.classifier, args, env.options())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i := range docs {
			for j := i + 1; j < len(docs); j++ {
				fmt.Fprintf(out, "%s\t%s\t%.4f\n", docs[i].Title, docs[j].Title, docs[i].Compare(docs[j]))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
