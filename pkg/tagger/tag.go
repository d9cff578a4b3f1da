package tagger

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Tag is a universal POS category as written in UD corpora.
type Tag string

const (
	NOUN  Tag = "NOUN"
	VERB  Tag = "VERB"
	ADJ   Tag = "ADJ"
	ADV   Tag = "ADV"
	NUM   Tag = "NUM"
	ADP   Tag = "ADP"
	AUX   Tag = "AUX"
	CCONJ Tag = "CCONJ"
	DET   Tag = "DET"
	PART  Tag = "PART"
	PRON  Tag = "PRON"
	SCONJ Tag = "SCONJ"
	X     Tag = "X"
)

var knownTags = map[string]Tag{
	"NOUN": NOUN, "VERB": VERB, "ADJ": ADJ, "ADV": ADV, "NUM": NUM,
	"ADP": ADP, "AUX": AUX, "CCONJ": CCONJ, "DET": DET, "PART": PART,
	"PRON": PRON, "SCONJ": SCONJ, "X": X,
}

// weight of each tag when scoring, anything missing falls back to defaultRate
var rates = map[Tag]float64{
	NOUN: 1.5,
	VERB: 1.25,
	X:    1.0,
	ADJ:  0.75,
	ADV:  0.25,
	NUM:  0,
}

const defaultRate = 0.5

// ParseTag returns the Tag spelled by s, or false if s is not part of the tag set.
func ParseTag(s string) (Tag, bool) {
	t, ok := knownTags[s]
	return t, ok
}

// Closed reports whether the tag belongs to a closed word class.
// Closed class words are matched by exact spelling only.
func (t Tag) Closed() bool {
	switch t {
	case ADP, AUX, CCONJ, DET, PART, PRON, SCONJ:
		return true
	}
	return false
}

// Valuable reports whether a token with this tag can anchor a phrase.
func (t Tag) Valuable() bool {
	return t == NOUN || t == VERB
}

// Prefix reports whether a token with this tag may lead into a phrase.
func (t Tag) Prefix() bool {
	switch t {
	case DET, ADJ, ADV, ADP:
		return true
	}
	return false
}

// Rate returns the scoring weight of t.
func Rate(t Tag) float64 {
	if r, ok := rates[t]; ok {
		return r
	}
	return defaultRate
}

// Normalize returns the comparison key of a word: NFC composed and case folded.
// A fresh Caser is used per call since casers carry state.
func Normalize(word string) string {
	return cases.Fold().String(norm.NFC.String(word))
}
