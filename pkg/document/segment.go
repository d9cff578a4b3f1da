package document

import (
	"regexp"
	"strings"

	"github.com/bastiangx/wordrank/internal/utils"
)

// clause boundaries: punctuation followed by a non word rune, or a spaced hyphen
var clauseBoundary = regexp.MustCompile(`[,.:;][^\p{L}\p{M}\p{N}_]|\s-\s`)

// Clauses splits text into the units phrases are built in.
// Phrases never cross a clause boundary.
func Clauses(text string) []string {
	return clauseBoundary.Split(text, -1)
}

// Tokens returns the maximal runs of word runes in clause, in order.
func Tokens(clause string) []string {
	return strings.FieldsFunc(clause, func(r rune) bool {
		return !utils.IsWordRune(r)
	})
}
