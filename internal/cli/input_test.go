package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordrank/pkg/document"
	"github.com/bastiangx/wordrank/pkg/tagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInput(t *testing.T, input string) string {
	t.Helper()
	c := tagger.New()
	for word, tag := range map[string]tagger.Tag{"die": tagger.DET, "jagt": tagger.VERB, "schläft": tagger.VERB} {
		_, err := c.Train(word, tag)
		require.NoError(t, err)
	}
	c.Seal()

	var out bytes.Buffer
	h := NewInputHandler(c, document.DefaultOptions(), 3, strings.NewReader(input), &out)
	require.NoError(t, h.Start())
	return out.String()
}

func TestClassifyWord(t *testing.T) {
	out := runInput(t, "Katze\n\njagt\n")
	assert.Contains(t, out, "Katze\033[0m => NOUN")
	assert.Contains(t, out, "jagt\033[0m => VERB")
}

func TestAnalyzeText(t *testing.T) {
	out := runInput(t, "Die Katze jagt die Maus. Die Katze schläft.\n")
	assert.Contains(t, out, "Top 3 words by topicality:")
	assert.Contains(t, out, "Top 3 phrases by topicality:")
	assert.Contains(t, out, "die Katze schläft")

	// best word first
	require.Contains(t, out, "2. \033[38;5;75mschläft")
	assert.Less(t, strings.Index(out, "1. \033[38;5;75mKatze"), strings.Index(out, "2. \033[38;5;75mschläft"))
}

func TestCommands(t *testing.T) {
	input := strings.Join([]string{
		":compare Die Katze",
		"Die Katze schläft.",
		":unique",
		":limit 1",
		":limit zero",
		"Die Katze jagt die Maus.",
		":compare Die Katze schläft.",
		":bogus",
	}, "\n")
	out := runInput(t, input)

	assert.Contains(t, out, "nothing analyzed yet")
	assert.Contains(t, out, "ranking by uniqueness")
	assert.Contains(t, out, "limit set to 1")
	assert.Contains(t, out, "invalid limit: zero")
	assert.Contains(t, out, "Top 1 words by uniqueness:")
	assert.Contains(t, out, "similarity with previous text:")
	assert.Contains(t, out, "unknown command: :bogus")
}
