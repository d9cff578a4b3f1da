// Copyright 2025 The WordRank Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordrank command: a part of speech classifier and
keyword/keyphrase ranker, usable as a MessagePack IPC server or from the shell.

wordrank learns word endings from POS tagged corpora (CoNLL-U treebanks or
word<TAB>TAG lists) and classifies any word by its spelling. With that it
pulls the most topical or most unique words and phrases out of a text and
scores how alike two texts are.

# Usage

Serve requests over stdin/stdout, training from the corpora in ./data:

	wordrank serve

Train from explicit files and enable debug logging:

	wordrank serve --corpus de_gsd-ud-train.conllu --corpus extra.tsv -d

Classify words, rank files and compare them from the shell:

	wordrank classify Katze laufend die
	wordrank analyze --limit 5 article.txt
	wordrank analyze --unique --phrases article.txt
	wordrank compare a.txt b.txt c.txt

Try things interactively:

	wordrank cli

Print the active config, or reset the default one:

	wordrank config
	wordrank config --rebuild

# Configuration

The config file is created with defaults at ~/.config/wordrank/config.toml
when missing. A custom one is passed with --config:

	[corpus]
	files = []
	dir = "data"
	ignore_tags = ["PUNCT", "X", "NOUN", "PROPN"]

	[extract]
	max_phrase_value = 2
	suffix_tolerance = 3

	[rank]
	default_limit = 10
	max_limit = 100

	[server]
	max_text_bytes = 1048576

When corpus.files is empty every .conllu, .conll, .tsv and .txt file in the
corpus directory is trained. The directory is looked up relative to the
working directory, the executable and the config directory.

# IPC Protocol

See package server for the message formats.
*/
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
	AppName = "wordrank"
	gh      = "https://github.com/bastiangx/wordrank"
)

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Suffix based POS classification and keyword ranking",
	Long: `wordrank classifies words by their endings, learned from POS tagged
corpora, and uses that to rank the most topical or unique words and phrases of
a text and to compare texts.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flags.debug)
	},
}

// flags shared by every subcommand
var flags struct {
	configPath string
	corpus     []string
	dataDir    string
	debug      bool
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default: ~/.config/wordrank/config.toml)")
	pf.StringSliceVar(&flags.corpus, "corpus", nil, "corpus file to train from, repeatable (overrides the config)")
	pf.StringVar(&flags.dataDir, "data", "", "directory with corpus files (default from config)")
	pf.BoolVarP(&flags.debug, "debug", "d", false, "toggle debug mode")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
