package main

import (
	"fmt"
	"path/filepath"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/bastiangx/wordrank/pkg/corpus"
	"github.com/bastiangx/wordrank/pkg/document"
	"github.com/bastiangx/wordrank/pkg/tagger"
	"github.com/charmbracelet/log"
)

func setupLogging(debug bool) {
	logger.SetDebug(debug)
	if !debug {
		log.SetLevel(log.WarnLevel)
	}
}

// environment is what every subcommand works with
type environment struct {
	config     *config.Config
	configPath string
	classifier *tagger.Classifier
	corpusDir  string
	files      []string
}

func (e *environment) options() document.Options {
	return document.Options{
		MaxPhraseValue:  e.config.Extract.MaxPhraseValue,
		SuffixTolerance: e.config.Extract.SuffixTolerance,
	}
}

// loadEnvironment reads the config, picks the corpus files and trains the classifier.
func loadEnvironment() (*environment, error) {
	cfg, configPath, err := config.LoadConfigWithPriority(flags.configPath)
	if err != nil {
		return nil, err
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(configPath))

	env := &environment{config: cfg, configPath: configPath}
	files, err := env.corpusFiles()
	if err != nil {
		return nil, err
	}

	var valid []string
	for _, f := range files {
		if err := corpus.ValidateFile(f); err != nil {
			log.Warnf("Skipping corpus file: %v", err)
			continue
		}
		valid = append(valid, f)
	}
	if len(valid) == 0 {
		log.Warn("No corpus files found, running with an empty classifier...")
	}
	env.files = valid

	env.classifier, err = corpus.Build(cfg.Corpus.IgnoreTags, valid...)
	if err != nil {
		return nil, fmt.Errorf("failed to train classifier: %w", err)
	}
	return env, nil
}

func (e *environment) corpusFiles() ([]string, error) {
	if len(flags.corpus) > 0 {
		return flags.corpus, nil
	}

	dir := e.config.Corpus.Dir
	if flags.dataDir != "" {
		dir = flags.dataDir
	}
	resolver, err := utils.NewPathResolver(corpus.Extensions())
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
		e.corpusDir = dir
	} else {
		e.corpusDir = resolver.GetCorpusDir(dir)
	}
	log.Debugf("Using corpus dir at: %s", e.corpusDir)

	baseDir := ""
	if e.configPath != "" {
		baseDir = filepath.Dir(e.configPath)
	}
	files, err := e.config.Corpus.CorpusFiles(baseDir, e.corpusDir, corpus.Extensions())
	if err != nil && len(e.config.Corpus.Files) == 0 {
		log.Warnf("Cannot read corpus dir %s: %v", e.corpusDir, err)
		return nil, nil
	}
	return files, err
}
