package main

import (
	"fmt"

	"github.com/bastiangx/wordrank/pkg/tagger"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify WORD...",
	Short: "Print the part of speech of each word",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")

		out := cmd.OutOrStdout()
		for _, word := range args {
			tag := env.classifier.Classify(word)
			if !verbose {
				fmt.Fprintf(out, "%s\t%s\n", word, tag)
				continue
			}
			raw, guessed := env.classifier.Lookup(word)
			closed := env.classifier.IsClosed(tagger.Normalize(word))
			fmt.Fprintf(out, "%s\t%s\tlookup=%s guessed=%t closed=%t\n", word, tag, raw, guessed, closed)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().BoolP("verbose", "v", false, "show the raw suffix lookup")
	rootCmd.AddCommand(classifyCmd)
}
