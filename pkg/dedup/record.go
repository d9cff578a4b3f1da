// Package dedup collapses near identical word forms (stem plus inflection)
// into canonical records using a forward character trie.
package dedup

import (
	"unicode/utf8"

	"github.com/bastiangx/wordrank/pkg/tagger"
)

// DefaultTolerance is the longest differing ending two open class words may
// have and still be considered the same word.
const DefaultTolerance = 3

// RecordID identifies a WordRecord inside its Arena.
// Two records are the same word only if their IDs are equal.
type RecordID int32

// NoRecord is the zero handle, it never refers to a record.
const NoRecord RecordID = -1

// WordRecord is one surface word, or the canonical form of several.
type WordRecord struct {
	Word   string
	Folded string
	Tag    tagger.Tag
	Closed bool
	Freq   int
}

// Len returns the length of the folded form in runes.
func (r *WordRecord) Len() int {
	return utf8.RuneCountInString(r.Folded)
}

// Uniqueness favours long, rare, content bearing words.
func (r *WordRecord) Uniqueness() float64 {
	if r.Freq == 0 {
		return 0
	}
	return float64(r.Len()) / float64(r.Freq) * tagger.Rate(r.Tag)
}

// Topicality favours long, frequent, content bearing words.
func (r *WordRecord) Topicality() float64 {
	return float64(r.Len()) * float64(r.Freq) * tagger.Rate(r.Tag)
}

// Similar reports whether a and b are likely the same word. Closed class
// words must match exactly, open class words may differ in an ending of up
// to tolerance runes past their common prefix.
func Similar(a, b *WordRecord, tolerance int) bool {
	if a.Folded == b.Folded {
		return true
	}
	if a.Closed || b.Closed {
		return false
	}
	ar, br := []rune(a.Folded), []rune(b.Folded)
	maxLen, minLen := len(ar), len(br)
	if maxLen < minLen {
		maxLen, minLen = minLen, maxLen
	}
	common := 0
	for common < minLen && ar[common] == br[common] {
		common++
	}
	return maxLen-common <= tolerance
}

// Merge absorbs src into dst: the shorter spelling is kept, the tag of the
// more frequent side is kept, and frequencies are summed.
func Merge(dst, src *WordRecord) {
	if src.Len() < dst.Len() {
		dst.Word = src.Word
		dst.Folded = src.Folded
	}
	if dst.Freq < src.Freq {
		dst.Tag = src.Tag
		dst.Closed = src.Closed
	}
	dst.Freq += src.Freq
}

// Arena owns the WordRecords of one document.
type Arena struct {
	records []WordRecord
}

// NewArena creates an empty arena with room for n records.
func NewArena(n int) *Arena {
	return &Arena{records: make([]WordRecord, 0, n)}
}

// Add stores a copy of r and returns its handle.
func (a *Arena) Add(r WordRecord) RecordID {
	a.records = append(a.records, r)
	return RecordID(len(a.records) - 1)
}

// Get returns the record behind id. The pointer stays valid until the next Add.
func (a *Arena) Get(id RecordID) *WordRecord {
	return &a.records[id]
}

// Len returns the number of records, merged ones included.
func (a *Arena) Len() int {
	return len(a.records)
}

// IDs returns every handle in insertion order.
func (a *Arena) IDs() []RecordID {
	ids := make([]RecordID, len(a.records))
	for i := range ids {
		ids[i] = RecordID(i)
	}
	return ids
}
