/*
Package corpus trains a tagger.Classifier from POS tagged corpus files.

Two formats are read:

  - CoNLL-U treebanks (.conllu): FORM in the second and UPOS in the fourth column
  - word lists (.tsv, .txt): one "word<TAB>TAG" pair per line

Blank lines and lines starting with '#' are skipped, as are lines missing
columns and tags on the loader's ignore list. Malformed input never fails a
load; only I/O errors do.
*/
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/bastiangx/wordrank/pkg/tagger"
	"github.com/charmbracelet/log"
)

// DefaultIgnoreTags are the tags never trained. Nouns and proper nouns are
// left to the capitalization rule; PUNCT and X carry no suffix information.
var DefaultIgnoreTags = []string{"PUNCT", "X", "NOUN", "PROPN"}

// Stats counts what a load did with each line
type Stats struct {
	Lines    int // every line read
	Trained  int // observations accepted by the classifier
	Skipped  int // blank, comment, short or ignored lines
	Rejected int // tags outside the tag set
	Files    int
}

func (s *Stats) add(o Stats) {
	s.Lines += o.Lines
	s.Trained += o.Trained
	s.Skipped += o.Skipped
	s.Rejected += o.Rejected
	s.Files += o.Files
}

// Loader feeds corpus files into a classifier
type Loader struct {
	classifier *tagger.Classifier
	ignore     map[string]bool
	stats      Stats
}

// NewLoader creates a loader training c. A nil ignore list means DefaultIgnoreTags.
func NewLoader(c *tagger.Classifier, ignore []string) *Loader {
	if ignore == nil {
		ignore = DefaultIgnoreTags
	}
	set := make(map[string]bool, len(ignore))
	for _, tag := range ignore {
		set[tag] = true
	}
	return &Loader{classifier: c, ignore: set}
}

// Stats returns the totals over every load so far.
func (l *Loader) Stats() Stats {
	return l.stats
}

// LoadFile detects the format of filename and trains from it.
func (l *Loader) LoadFile(filename string) (Stats, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return Stats{}, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open corpus file %s: %w", filename, err)
	}
	defer file.Close()

	stats, err := l.Load(file, format)
	if err != nil {
		return stats, fmt.Errorf("failed to read corpus file %s: %w", filename, err)
	}
	log.Debugf("Corpus file %s: %d lines, %d trained, %d skipped, %d rejected",
		filename, stats.Lines, stats.Trained, stats.Skipped, stats.Rejected)
	return stats, nil
}

// Load trains from r, read as format.
func (l *Loader) Load(r io.Reader, format FileFormat) (Stats, error) {
	info, ok := GetFormatInfo(format)
	if !ok {
		return Stats{}, fmt.Errorf("unknown format: %v", format)
	}

	var stats Stats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		if isComment(line) {
			stats.Skipped++
			continue
		}

		cols := splitColumns(line, format)
		if len(cols) < info.MinColumns {
			stats.Skipped++
			continue
		}
		word, tag := cols[info.FormColumn], cols[info.TagColumn]
		if l.ignore[tag] {
			stats.Skipped++
			continue
		}

		trained, err := l.classifier.Train(word, tagger.Tag(tag))
		if err != nil {
			return stats, err
		}
		if trained {
			stats.Trained++
		} else {
			stats.Rejected++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}

	stats.Files = 1
	l.stats.add(stats)
	return stats, nil
}

// Build trains a new classifier from every file in paths and seals it.
func Build(ignore []string, paths ...string) (*tagger.Classifier, error) {
	start := time.Now()
	c := tagger.New()
	loader := NewLoader(c, ignore)

	for _, path := range paths {
		if _, err := loader.LoadFile(path); err != nil {
			return nil, err
		}
	}
	c.Seal()

	stats := loader.Stats()
	log.Infof("Loaded %s words to classifier in %v (%d files, %s observations)",
		utils.FormatWithCommas(c.Count()), time.Since(start).Round(time.Millisecond),
		stats.Files, utils.FormatWithCommas(stats.Trained))
	return c, nil
}
