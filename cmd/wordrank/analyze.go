package main

import (
	"fmt"
	"io"

	"github.com/bastiangx/wordrank/pkg/document"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "List the best words and phrases of each file",
	Long: `analyze processes every file as one document and lists its highest
ranked open class words, and with --phrases its highest ranked phrases. Files
are processed in parallel.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		unique, _ := cmd.Flags().GetBool("unique")
		withPhrases, _ := cmd.Flags().GetBool("phrases")
		limit = env.config.Rank.ClampLimit(limit)

		docs, err := document.LoadAll(cmd.Context(), env.classifier, args, env.options())
		if err != nil {
			return err
		}
		for _, doc := range docs {
			printDocument(cmd.OutOrStdout(), doc, limit, !unique, withPhrases)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntP("limit", "l", 0, "entries per listing (default from config)")
	analyzeCmd.Flags().Bool("unique", false, "rank by uniqueness instead of topicality")
	analyzeCmd.Flags().BoolP("phrases", "p", false, "also list phrases")
	rootCmd.AddCommand(analyzeCmd)
}

func printDocument(w io.Writer, doc *document.Document, limit int, byTopicality, withPhrases bool) {
	stats := doc.Stats()
	order := "uniqueness"
	if byTopicality {
		order = "topicality"
	}
	fmt.Fprintf(w, "== %s (%d tokens, %d words, %d phrases)\n", doc.Title, stats.Tokens, stats.Canonical, stats.Phrases)

	fmt.Fprintf(w, "words by %s:\n", order)
	for i, word := range doc.BestWords(limit, byTopicality) {
		score := word.Uniqueness()
		if byTopicality {
			score = word.Topicality()
		}
		fmt.Fprintf(w, "%3d. %-30s %-5s %4d %10.3f\n", i+1, word.Word, word.Tag, word.Freq, score)
	}
	if !withPhrases {
		return
	}

	fmt.Fprintf(w, "phrases by %s:\n", order)
	for i, phrase := range doc.BestPhrases(limit, byTopicality) {
		score := phrase.Uniqueness()
		if byTopicality {
			score = phrase.Topicality()
		}
		fmt.Fprintf(w, "%3d. %-40s %4d %10.3f\n", i+1, phrase.Text, phrase.Freq, score)
	}
}
