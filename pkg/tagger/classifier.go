/*
Package tagger guesses the part of speech of a word from its spelling.

Words from a tagged corpus are stored case folded and reversed in a trie, so
that words sharing an ending share a path. Unknown words are classified by
walking their own reversed spelling as far as the trie allows and taking the
tag of the deepest stored word on that path (suffix backoff):

	c := tagger.New()
	c.Train("laufen", tagger.VERB)
	c.Train("die", tagger.DET)
	c.Seal()

	c.Classify("verlaufen") // VERB, the ending "laufen" is known
	c.Classify("Studie")    // NOUN, unknown and capitalized

Closed class tags (determiners, pronouns, ...) are only ever taken from an
exact match, never generalized to a longer word that merely ends the same way.

A Classifier is built once, sealed, and then only read. A sealed Classifier
is safe for concurrent use.
*/
package tagger

import (
	"errors"
	"sort"

	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrSealed is returned when training a classifier that was already sealed.
var ErrSealed = errors.New("tagger: classifier is sealed")

const rootNode int32 = 0

// tagCount is one observed tag of a stored word.
type tagCount struct {
	tag   Tag
	count int
}

// node is a trie node. Children are indices into Classifier.nodes,
// each node is owned by exactly one parent.
type node struct {
	children map[rune]int32
	terminal bool
	tags     []tagCount // insertion ordered
}

// pos returns the most common tag of the word ending here,
// earliest observation wins ties.
func (n *node) pos() Tag {
	best := X
	bestCount := 0
	for _, tc := range n.tags {
		if tc.count > bestCount {
			best, bestCount = tc.tag, tc.count
		}
	}
	return best
}

// Classifier is a suffix indexed POS classifier.
type Classifier struct {
	nodes  []node
	closed *patricia.Trie
	sealed bool
	words  int
}

// Word is a stored word with its tag.
type Word struct {
	Word string
	Tag  Tag
}

// New creates an empty classifier.
func New() *Classifier {
	return &Classifier{
		nodes:  []node{{}},
		closed: patricia.NewTrie(),
	}
}

// Train records that word was seen tagged as tag.
// Only the first tag seen for an exact word is kept; later observations of
// the same word are ignored. Returns false when the observation was rejected
// (empty word, tag outside the tag set).
func (c *Classifier) Train(word string, tag Tag) (bool, error) {
	if c.sealed {
		return false, ErrSealed
	}
	if _, ok := knownTags[string(tag)]; !ok || word == "" {
		return false, nil
	}
	runes := utils.ReverseRunes(Normalize(word))
	if len(runes) == 0 {
		return false, nil
	}

	cur := rootNode
	for _, r := range runes {
		next, ok := c.nodes[cur].children[r]
		if !ok {
			next = int32(len(c.nodes))
			c.nodes = append(c.nodes, node{})
			if c.nodes[cur].children == nil {
				c.nodes[cur].children = make(map[rune]int32)
			}
			c.nodes[cur].children[r] = next
		}
		cur = next
	}

	n := &c.nodes[cur]
	if !n.terminal {
		n.terminal = true
		n.tags = append(n.tags, tagCount{tag: tag, count: 1})
		c.words++
	}
	return true, nil
}

// Seal freezes the classifier and builds the closed word index.
// Sealing twice is a no-op.
func (c *Classifier) Seal() {
	if c.sealed {
		return
	}
	closedCount := 0
	for _, w := range c.Words() {
		if w.Tag.Closed() {
			if c.closed.Insert(patricia.Prefix(w.Word), w.Tag) {
				closedCount++
			}
		}
	}
	c.sealed = true
	log.Debugf("Classifier sealed: %d words, %d closed class", c.words, closedCount)
}

// Sealed reports whether the classifier is read-only.
func (c *Classifier) Sealed() bool {
	return c.sealed
}

// Lookup walks the suffix trie for word. guessed is true when the walk used
// up the whole word but stopped on a node that is not itself a stored word.
func (c *Classifier) Lookup(word string) (tag Tag, guessed bool) {
	if utils.StartsWithDigit(word) {
		return NUM, false
	}
	runes := utils.ReverseRunes(Normalize(word))
	if len(runes) == 0 {
		return X, true
	}

	best := X
	cur := rootNode
	for i := 0; ; i++ {
		n := &c.nodes[cur]
		if n.terminal {
			// closed class tags need an exact match
			if p := n.pos(); !p.Closed() || i == len(runes) {
				best = p
			}
		}
		if i == len(runes) {
			return best, !n.terminal
		}
		next, ok := n.children[runes[i]]
		if !ok {
			return best, false
		}
		cur = next
	}
}

// Classify returns the tag of word. Capitalized words the trie can only
// guess at are treated as common nouns; PROPN is never produced.
func (c *Classifier) Classify(word string) Tag {
	tag, guessed := c.Lookup(word)
	if (guessed || tag == X) && utils.IsTitle(word) {
		return NOUN
	}
	return tag
}

// IsClosed reports whether the normalized word is a known closed class word.
// The classifier must be sealed for closed words to be indexed.
func (c *Classifier) IsClosed(normalized string) bool {
	return c.closed.Get(patricia.Prefix(normalized)) != nil
}

// ClosedWords returns every indexed closed class word in lexical order.
func (c *Classifier) ClosedWords() []Word {
	var words []Word
	err := c.closed.Visit(func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, Word{Word: string(p), Tag: item.(Tag)})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting closed word index: %v", err)
	}
	sort.Slice(words, func(i, j int) bool { return words[i].Word < words[j].Word })
	return words
}

// Count returns the number of distinct stored words.
func (c *Classifier) Count() int {
	return c.words
}

// Words enumerates every stored word in trie order: pre-order over the
// reversed spelling, children in ascending rune order.
func (c *Classifier) Words() []Word {
	words := make([]Word, 0, c.words)
	var path []rune
	var walk func(idx int32)
	walk = func(idx int32) {
		n := &c.nodes[idx]
		if n.terminal {
			words = append(words, Word{
				Word: string(utils.ReverseRunes(string(path))),
				Tag:  n.pos(),
			})
		}
		keys := make([]rune, 0, len(n.children))
		for r := range n.children {
			keys = append(keys, r)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, r := range keys {
			path = append(path, r)
			walk(n.children[r])
			path = path[:len(path)-1]
		}
	}
	walk(rootNode)
	return words
}
