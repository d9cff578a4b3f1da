/*
Package document extracts, deduplicates and ranks the words and phrases of
a text.

A Document is built once from its text and is read-only afterwards:

	doc := document.New(classifier, "article", text, document.DefaultOptions())
	words := doc.BestWords(10, true)    // most topical words
	phrases := doc.BestPhrases(10, false) // most unique phrases
	score := doc.Compare(other)

Every word is tagged through the shared classifier. Near identical forms
("Katze", "Katzen") are collapsed into one canonical record, and phrases are
built around nouns and verbs. Each document owns its records, so documents
can be processed in parallel as long as the classifier is sealed.
*/
package document

import (
	"sort"
	"time"

	"github.com/bastiangx/wordrank/pkg/dedup"
	"github.com/bastiangx/wordrank/pkg/tagger"
	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tagger is the part of the classifier a document needs.
type Tagger interface {
	Classify(word string) tagger.Tag
	IsClosed(normalized string) bool
}

// Options tune extraction.
type Options struct {
	// MaxPhraseValue is the number of nouns and verbs a phrase may hold.
	MaxPhraseValue int
	// SuffixTolerance is the longest ending two words may differ in and still merge.
	SuffixTolerance int
}

// DefaultOptions returns the options used when nothing else is configured.
func DefaultOptions() Options {
	return Options{
		MaxPhraseValue:  2,
		SuffixTolerance: dedup.DefaultTolerance,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxPhraseValue < 2 {
		o.MaxPhraseValue = def.MaxPhraseValue
	}
	if o.SuffixTolerance < 0 {
		o.SuffixTolerance = def.SuffixTolerance
	}
	return o
}

// Stats summarizes one extraction pass.
type Stats struct {
	Clauses        int
	Tokens         int
	Records        int
	Canonical      int
	Candidates     int
	Phrases        int
	DroppedPhrases int
}

// Document holds the deduplicated words and phrases of one text.
type Document struct {
	Title string
	Text  string

	arena       *dedup.Arena
	trie        *dedup.Trie
	phrases     []*PhraseRecord
	phraseIndex map[string]int

	topicality      map[string]float64 // folded form => topicality
	topicalKeys     []string           // sorted keys of topicality
	totalTopicality float64

	stats Stats
}

// New runs the extraction pass over text.
func New(t Tagger, title, text string, opts Options) *Document {
	start := time.Now()
	opts = opts.withDefaults()

	d := &Document{
		Title:       title,
		Text:        text,
		arena:       dedup.NewArena(64),
		phraseIndex: make(map[string]int),
	}

	byFolded := make(map[string]dedup.RecordID)
	var candidates [][]token

	for _, clause := range Clauses(text) {
		d.stats.Clauses++
		words := Tokens(clause)
		toks := make([]token, 0, len(words))

		for _, word := range words {
			folded := tagger.Normalize(word)
			id, seen := byFolded[folded]
			if seen {
				d.arena.Get(id).Freq++
			} else {
				id = d.arena.Add(dedup.WordRecord{
					Word:   word,
					Folded: folded,
					Tag:    t.Classify(word),
					Closed: t.IsClosed(folded),
					Freq:   1,
				})
				byFolded[folded] = id
			}

			// nouns are shown capitalized, everything else folded
			display := folded
			if d.arena.Get(id).Tag == tagger.NOUN {
				display = cases.Title(language.Und).String(word)
			}
			toks = append(toks, token{display: display, id: id})
		}

		d.stats.Tokens += len(toks)
		candidates = append(candidates, windows(d.arena, toks, opts.MaxPhraseValue)...)
	}

	d.trie = dedup.NewTrie(d.arena, opts.SuffixTolerance)
	d.trie.Insert(d.arena.IDs()...)

	for _, candidate := range candidates {
		phrase, ok := resolvePhrase(d.arena, d.trie, candidate)
		if !ok {
			d.stats.DroppedPhrases++
			log.Debug("Dropping phrase with unresolved word", "title", title, "words", len(candidate))
			continue
		}
		if idx, exists := d.phraseIndex[phrase.Key]; exists {
			d.phrases[idx].merge(phrase)
			continue
		}
		d.phraseIndex[phrase.Key] = len(d.phrases)
		d.phrases = append(d.phrases, phrase)
	}

	d.calcTopicality()

	d.stats.Records = d.arena.Len()
	d.stats.Canonical = d.trie.Len()
	d.stats.Candidates = len(candidates)
	d.stats.Phrases = len(d.phrases)

	log.Debugf("Processed text %q in %v: %d tokens, %d words, %d phrases",
		title, time.Since(start), d.stats.Tokens, d.stats.Canonical, d.stats.Phrases)
	return d
}

// calcTopicality fills the folded form => topicality map used by Compare
func (d *Document) calcTopicality() {
	d.topicality = make(map[string]float64, d.trie.Len())
	d.totalTopicality = 0
	for _, id := range d.trie.Extract() {
		r := d.arena.Get(id)
		t := r.Topicality()
		d.topicality[r.Folded] += t
		d.totalTopicality += t
	}
	d.topicalKeys = make([]string, 0, len(d.topicality))
	for word := range d.topicality {
		d.topicalKeys = append(d.topicalKeys, word)
	}
	sort.Strings(d.topicalKeys)
}

// Stats returns the counters of the extraction pass.
func (d *Document) Stats() Stats {
	return d.stats
}

// Words returns every canonical record, closed class included, in trie order.
func (d *Document) Words() []*dedup.WordRecord {
	ids := d.trie.Extract()
	words := make([]*dedup.WordRecord, len(ids))
	for i, id := range ids {
		words[i] = d.arena.Get(id)
	}
	return words
}

// Phrases returns every phrase in order of first appearance.
func (d *Document) Phrases() []*PhraseRecord {
	out := make([]*PhraseRecord, len(d.phrases))
	copy(out, d.phrases)
	return out
}

// BestWords returns the n highest scoring open class words, by topicality or
// by uniqueness. Ties keep trie order.
func (d *Document) BestWords(n int, byTopicality bool) []*dedup.WordRecord {
	if n <= 0 {
		return []*dedup.WordRecord{}
	}
	var words []*dedup.WordRecord
	for _, w := range d.Words() {
		if !w.Closed {
			words = append(words, w)
		}
	}

	score := (*dedup.WordRecord).Uniqueness
	if byTopicality {
		score = (*dedup.WordRecord).Topicality
	}
	sort.SliceStable(words, func(i, j int) bool {
		return score(words[i]) > score(words[j])
	})

	if len(words) > n {
		words = words[:n]
	}
	if words == nil {
		return []*dedup.WordRecord{}
	}
	return words
}

// BestPhrases returns the n highest scoring phrases, by topicality or by
// uniqueness. Ties keep order of first appearance.
func (d *Document) BestPhrases(n int, byTopicality bool) []*PhraseRecord {
	if n <= 0 {
		return []*PhraseRecord{}
	}
	phrases := d.Phrases()

	score := (*PhraseRecord).Uniqueness
	if byTopicality {
		score = (*PhraseRecord).Topicality
	}
	sort.SliceStable(phrases, func(i, j int) bool {
		return score(phrases[i]) > score(phrases[j])
	})

	if len(phrases) > n {
		phrases = phrases[:n]
	}
	return phrases
}

// Compare scores how alike the topicality distributions of d and other are.
// Identical distributions score 1.0, the score drops as they diverge and is
// not clamped. Two documents without any topical mass compare as identical.
func (d *Document) Compare(other *Document) float64 {
	total := d.totalTopicality + other.totalTopicality
	if total == 0 {
		return 1.0
	}

	// sorted keys keep the float sums reproducible
	diff := 0.0
	for _, word := range d.topicalKeys {
		t := d.topicality[word]
		ot := other.topicality[word] // missing words are zero mass
		if t > ot {
			diff += t - ot
		} else {
			diff += ot - t
		}
	}
	for _, word := range other.topicalKeys {
		if _, ok := d.topicality[word]; !ok {
			diff += other.topicality[word]
		}
	}
	return 1.0 - diff/total
}
