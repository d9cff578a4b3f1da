// Package cli runs an interactive loop for trying out the classifier and the
// ranking on typed text
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/bastiangx/wordrank/pkg/document"
	"github.com/bastiangx/wordrank/pkg/tagger"
	"github.com/charmbracelet/log"
)

// InputHandler reads lines and reports on them. A single word is
// classified; anything longer is analyzed as a document. Lines starting with
// ':' are commands.
type InputHandler struct {
	classifier   *tagger.Classifier
	opts         document.Options
	limit        int
	byTopicality bool
	last         *document.Document
	in           io.Reader
	out          *log.Logger
}

// NewInputHandler creates a handler reading from in and reporting to out.
func NewInputHandler(c *tagger.Classifier, opts document.Options, limit int, in io.Reader, out io.Writer) *InputHandler {
	l := logger.NewWithWriter(out, "")
	l.SetReportTimestamp(false)
	return &InputHandler{
		classifier:   c,
		opts:         opts,
		limit:        limit,
		byTopicality: true,
		in:           in,
		out:          l,
	}
}

// Start runs the loop until the input ends.
func (h *InputHandler) Start() error {
	h.out.Print("WordRank CLI")
	h.out.Print("type a word to classify it, or a sentence to rank it (:help for commands)")

	scanner := bufio.NewScanner(h.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	if strings.HasPrefix(line, ":") {
		h.handleCommand(line)
		return
	}

	words := document.Tokens(line)
	if len(words) == 1 && words[0] == line {
		h.classify(line)
		return
	}
	h.analyze(line)
}

func (h *InputHandler) handleCommand(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help":
		h.out.Print(":topical | :unique   switch ranking order")
		h.out.Print(":limit N             entries per listing")
		h.out.Print(":compare TEXT        compare TEXT with the last analyzed text")
	case ":topical":
		h.byTopicality = true
		h.out.Print("ranking by topicality")
	case ":unique":
		h.byTopicality = false
		h.out.Print("ranking by uniqueness")
	case ":limit":
		var n int
		if len(fields) != 2 {
			h.out.Errorf("usage: :limit N")
			return
		}
		if _, err := fmt.Sscanf(fields[1], "%d", &n); err != nil || n < 1 {
			h.out.Errorf("invalid limit: %s", fields[1])
			return
		}
		h.limit = n
		h.out.Printf("limit set to %d", n)
	case ":compare":
		if h.last == nil {
			h.out.Warn("nothing analyzed yet")
			return
		}
		text := strings.TrimSpace(strings.TrimPrefix(line, ":compare"))
		other := document.New(h.classifier, "input", text, h.opts)
		h.out.Printf("similarity with previous text: %.4f", h.last.Compare(other))
	default:
		h.out.Errorf("unknown command: %s", fields[0])
	}
}

func (h *InputHandler) classify(word string) {
	start := time.Now()
	tag, guessed := h.classifier.Lookup(word)
	final := h.classifier.Classify(word)
	closed := h.classifier.IsClosed(tagger.Normalize(word))
	log.Debugf("Took [ %v ] for word '%s'", time.Since(start), word)

	h.out.Printf("%s => %s", colorize(word), final)
	h.out.Debug("lookup", "tag", tag, "guessed", guessed, "closed", closed)
}

func (h *InputHandler) analyze(text string) {
	start := time.Now()
	doc := document.New(h.classifier, "input", text, h.opts)
	log.Debugf("Took [ %v ] for %d bytes", time.Since(start), len(text))
	h.last = doc

	order := "uniqueness"
	if h.byTopicality {
		order = "topicality"
	}

	words := doc.BestWords(h.limit, h.byTopicality)
	if len(words) == 0 {
		h.out.Warn("No open class words found")
		return
	}
	h.out.Printf("Top %d words by %s:", len(words), order)
	for i, w := range words {
		score := w.Uniqueness()
		if h.byTopicality {
			score = w.Topicality()
		}
		h.out.Printf("%2d. %-30s %-5s (freq: %s, score: %.3f)",
			i+1, colorize(w.Word), w.Tag, utils.FormatWithCommas(w.Freq), score)
	}

	phrases := doc.BestPhrases(h.limit, h.byTopicality)
	if len(phrases) == 0 {
		return
	}
	h.out.Printf("Top %d phrases by %s:", len(phrases), order)
	for i, p := range phrases {
		score := p.Uniqueness()
		if h.byTopicality {
			score = p.Topicality()
		}
		h.out.Printf("%2d. %-40s (freq: %s, score: %.3f)",
			i+1, colorize(p.Text), utils.FormatWithCommas(p.Freq), score)
	}
}

func colorize(s string) string {
	return fmt.Sprintf("\033[38;5;75m%s\033[0m", s)
}
