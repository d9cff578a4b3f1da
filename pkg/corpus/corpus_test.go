package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordrank/pkg/tagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conlluSample = `# sent_id = 1
# text = Die Katze läuft schnell.
1	Die	der	DET	ART	_	2	det	_	_
2	Katze	Katze	NOUN	NN	_	3	nsubj	_	_
3	läuft	laufen	VERB	VVFIN	_	0	root	_	_
4	schnell	schnell	ADJ	ADJD	_	3	advmod	_	SpaceAfter=No
5	.	.	PUNCT	$.	_	3	punct	_	_

1 Berlin Berlin PROPN NE _ 0 root _ _
2	kaputt
3	im	in	ADP	APPRART	_	0	case	_	_
4	x	x	SYM	XY	_	0	dep	_	_
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFormat(t *testing.T) {
	testCases := []struct {
		name     string
		expected FileFormat
		wantErr  bool
	}{
		{"de_gsd-ud-train.conllu", FormatCoNLLU, false},
		{"TRAIN.CONLLU", FormatCoNLLU, false},
		{"old.conll", FormatCoNLLU, false},
		{"words.tsv", FormatTSV, false},
		{"words.txt", FormatTSV, false},
		{"dict_0001.bin", FormatUnknown, true},
		{"noext", FormatUnknown, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			format, err := DetectFormat(tc.name)
			assert.Equal(t, tc.expected, format)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFile(t *testing.T) {
	assert.NoError(t, ValidateFile(writeFile(t, "ok.conllu", conlluSample)))
	assert.NoError(t, ValidateFile(writeFile(t, "ok.tsv", "# header\nhaus\tNOUN\n")))

	assert.Error(t, ValidateFile(writeFile(t, "empty.tsv", "")))
	assert.Error(t, ValidateFile(writeFile(t, "comments.tsv", "# only\n\n# comments\n")))
	assert.Error(t, ValidateFile(writeFile(t, "short.conllu", "1\tDie\tder\n")))
	assert.Error(t, ValidateFile(writeFile(t, "data.bin", "\x01\x00\x00\x00")))
	assert.Error(t, ValidateFile(filepath.Join(t.TempDir(), "missing.tsv")))
}

func TestLoadCoNLLU(t *testing.T) {
	c := tagger.New()
	loader := NewLoader(c, nil)

	stats, err := loader.Load(strings.NewReader(conlluSample), FormatCoNLLU)
	require.NoError(t, err)

	assert.Equal(t, 12, stats.Lines)
	assert.Equal(t, 4, stats.Trained, "Die, läuft, schnell, im")
	assert.Equal(t, 1, stats.Rejected, "SYM is outside the tag set")
	assert.Equal(t, 7, stats.Skipped)
	assert.Equal(t, 1, stats.Files)

	c.Seal()
	assert.Equal(t, 4, c.Count())
	assert.True(t, c.IsClosed("die"))
	assert.True(t, c.IsClosed("im"))

	tag, guessed := c.Lookup("läuft")
	assert.Equal(t, tagger.VERB, tag)
	assert.False(t, guessed)

	// nouns are never trained, capitalization takes over
	tag, _ = c.Lookup("Katze")
	assert.Equal(t, tagger.X, tag)
	assert.Equal(t, tagger.NOUN, c.Classify("Katze"))
}

func TestLoadTSV(t *testing.T) {
	c := tagger.New()
	loader := NewLoader(c, []string{"PUNCT"})

	input := "laufen\tVERB\r\nHaus\tNOUN\n\n  \nschnell ADJ\ngut\tADJ\textra\n.\tPUNCT\nwas\tINTJ\n"
	stats, err := loader.Load(strings.NewReader(input), FormatTSV)
	require.NoError(t, err)

	assert.Equal(t, 8, stats.Lines)
	assert.Equal(t, 3, stats.Trained, "laufen, Haus, gut")
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, 4, stats.Skipped)

	c.Seal()
	tag, _ := c.Lookup("haus")
	assert.Equal(t, tagger.NOUN, tag, "custom ignore list keeps nouns")
}

func TestLoadAfterSeal(t *testing.T) {
	c := tagger.New()
	c.Seal()
	_, err := NewLoader(c, nil).Load(strings.NewReader("laufen\tVERB\n"), FormatTSV)
	assert.ErrorIs(t, err, tagger.ErrSealed)
}

func TestLoaderStatsAccumulate(t *testing.T) {
	c := tagger.New()
	loader := NewLoader(c, nil)

	_, err := loader.LoadFile(writeFile(t, "a.tsv", "laufen\tVERB\nund\tCCONJ\n"))
	require.NoError(t, err)
	_, err = loader.LoadFile(writeFile(t, "b.conllu", conlluSample))
	require.NoError(t, err)

	total := loader.Stats()
	assert.Equal(t, 2, total.Files)
	assert.Equal(t, 6, total.Trained)
}

func TestBuild(t *testing.T) {
	tsv := writeFile(t, "words.tsv", "laufen\tVERB\ndie\tDET\n")
	conllu := writeFile(t, "train.conllu", conlluSample)

	c, err := Build(nil, tsv, conllu)
	require.NoError(t, err)
	assert.True(t, c.Sealed())
	assert.Equal(t, tagger.VERB, c.Classify("verlaufen"))
	assert.True(t, c.IsClosed("die"))

	_, err = Build(nil, tsv, filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)

	_, err = Build(nil, writeFile(t, "x.bin", "data"))
	assert.Error(t, err)
}
