package document

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordrank/pkg/dedup"
)

// token is one word of a clause: how it is shown in phrases and the record it counts towards
type token struct {
	display string
	id      dedup.RecordID
}

// PhraseRecord is a run of resolved words. Phrases that differ only in their
// closed class words (articles, prepositions, ...) share a key and are merged.
type PhraseRecord struct {
	Text    string
	Records []dedup.RecordID
	Key     string
	Freq    int

	arena *dedup.Arena
}

// String returns the display text of the phrase.
func (p *PhraseRecord) String() string {
	return p.Text
}

// Words returns the resolved records the phrase is built from.
func (p *PhraseRecord) Words() []*dedup.WordRecord {
	words := make([]*dedup.WordRecord, len(p.Records))
	for i, id := range p.Records {
		words[i] = p.arena.Get(id)
	}
	return words
}

// Uniqueness is the mean uniqueness of the open class members times the phrase frequency.
func (p *PhraseRecord) Uniqueness() float64 {
	return p.mean((*dedup.WordRecord).Uniqueness) * float64(p.Freq)
}

// Topicality is the mean topicality of the open class members times the phrase frequency.
func (p *PhraseRecord) Topicality() float64 {
	return p.mean((*dedup.WordRecord).Topicality) * float64(p.Freq)
}

func (p *PhraseRecord) mean(score func(*dedup.WordRecord) float64) float64 {
	sum := 0.0
	n := 0
	for _, id := range p.Records {
		r := p.arena.Get(id)
		if r.Closed {
			continue
		}
		sum += score(r)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// merge absorbs other, keeping the shorter display text.
func (p *PhraseRecord) merge(other *PhraseRecord) {
	if utf8.RuneCountInString(other.Text) < utf8.RuneCountInString(p.Text) {
		p.Text = other.Text
	}
	p.Freq += other.Freq
}

// windows proposes candidate phrases for one clause. Every valuable token
// anchors a window: modifier and function words right before it are pulled
// in, then tokens are appended until maxValue valuable tokens are collected.
// A candidate is emitted each time the window holds at least two.
func windows(arena *dedup.Arena, toks []token, maxValue int) [][]token {
	var out [][]token
	for i := range toks {
		if !arena.Get(toks[i].id).Tag.Valuable() {
			continue
		}

		start := i
		for start > 0 && arena.Get(toks[start-1].id).Tag.Prefix() {
			start--
		}

		value := 0
		for j := i; value < maxValue && j < len(toks); j++ {
			if arena.Get(toks[j].id).Tag.Valuable() {
				value++
				if value > 1 {
					candidate := make([]token, j+1-start)
					copy(candidate, toks[start:j+1])
					out = append(out, candidate)
				}
			}
		}
	}
	return out
}

// resolvePhrase maps every candidate token to its canonical record. ok is
// false when one of them has no representative in trie.
func resolvePhrase(arena *dedup.Arena, trie *dedup.Trie, candidate []token) (*PhraseRecord, bool) {
	ids := make([]dedup.RecordID, len(candidate))
	words := make([]string, len(candidate))
	for i, tok := range candidate {
		id, ok := trie.FindClosest(tok.id)
		if !ok {
			return nil, false
		}
		ids[i] = id
		words[i] = tok.display
	}
	return &PhraseRecord{
		Text:    strings.Join(words, " "),
		Records: ids,
		Key:     phraseKey(arena, ids),
		Freq:    1,
		arena:   arena,
	}, true
}

// phraseKey encodes the identities of the open class members in order.
func phraseKey(arena *dedup.Arena, ids []dedup.RecordID) string {
	buf := make([]byte, 0, len(ids)*4)
	for _, id := range ids {
		if arena.Get(id).Closed {
			continue
		}
		buf = strconv.AppendInt(buf, int64(id), 10)
		buf = append(buf, ',')
	}
	return string(buf)
}
