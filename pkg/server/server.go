package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/bastiangx/wordrank/pkg/document"
	"github.com/bastiangx/wordrank/pkg/tagger"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Classifier is what the server needs from a trained, sealed classifier
type Classifier interface {
	document.Tagger
	Count() int
}

// Server handles the IPC for classification and ranking
type Server struct {
	classifier Classifier
	config     *config.Config
	opts       document.Options
	decoder    *msgpack.Decoder
	writer     *bufio.Writer
	encoder    *msgpack.Encoder
	log        *log.Logger
	served     int
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(c Classifier, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		classifier: c,
		config:     cfg,
		opts: document.Options{
			MaxPhraseValue:  cfg.Extract.MaxPhraseValue,
			SuffixTolerance: cfg.Extract.SuffixTolerance,
		},
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  bw,
		encoder: msgpack.NewEncoder(bw),
		log:     logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends or ctx
// is cancelled. A clean end of input returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.log.Debug("Starting server", "words", s.classifier.Count())
	if err := s.send(StatusResponse{Status: "ready", Words: s.classifier.Count()}); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed", "served", s.served)
				return nil
			}
			return fmt.Errorf("failed to read request: %w", err)
		}
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes and dispatches one message. Only write errors are returned.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.log.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid request", 400)
	}
	s.served++

	switch req.Op {
	case OpClassify:
		return s.handleClassify(req)
	case OpAnalyze:
		return s.handleAnalyze(req)
	case OpCompare:
		return s.handleCompare(req)
	case OpHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok", Words: s.classifier.Count(), Served: s.served})
	case "":
		return s.sendError(req.ID, "missing 'op'", 400)
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown op: %s", req.Op), 400)
	}
}

func (s *Server) handleClassify(req Request) error {
	if len(req.Words) == 0 {
		return s.sendError(req.ID, "missing 'w' parameter", 400)
	}
	start := time.Now()
	tags := make([]WordTag, len(req.Words))
	for i, word := range req.Words {
		tags[i] = WordTag{
			Word:   word,
			Tag:    string(s.classifier.Classify(word)),
			Closed: s.classifier.IsClosed(tagger.Normalize(word)),
		}
	}
	return s.send(ClassifyResponse{
		ID:        req.ID,
		Tags:      tags,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleAnalyze(req Request) error {
	if err := s.checkSize(req.Text); err != nil {
		return s.sendError(req.ID, err.Error(), 413)
	}
	by := req.By
	if by == "" {
		by = ByTopicality
	}
	if by != ByTopicality && by != ByUniqueness {
		return s.sendError(req.ID, fmt.Sprintf("unknown ranking: %s", by), 400)
	}
	byTopicality := by == ByTopicality
	limit := s.config.Rank.ClampLimit(req.Limit)

	start := time.Now()
	doc := document.New(s.classifier, req.Title, req.Text, s.opts)

	words := doc.BestWords(limit, byTopicality)
	rankedWords := make([]RankedWord, len(words))
	for i, w := range words {
		score := w.Uniqueness()
		if byTopicality {
			score = w.Topicality()
		}
		rankedWords[i] = RankedWord{Word: w.Word, Tag: string(w.Tag), Freq: w.Freq, Score: score, Rank: i + 1}
	}

	phrases := doc.BestPhrases(limit, byTopicality)
	rankedPhrases := make([]RankedPhrase, len(phrases))
	for i, p := range phrases {
		score := p.Uniqueness()
		if byTopicality {
			score = p.Topicality()
		}
		rankedPhrases[i] = RankedPhrase{Text: p.Text, Freq: p.Freq, Score: score, Rank: i + 1}
	}

	stats := doc.Stats()
	elapsed := time.Since(start)
	s.log.Debugf("Analyzed %d tokens in %v", stats.Tokens, elapsed)

	return s.send(AnalyzeResponse{
		ID:      req.ID,
		Title:   req.Title,
		By:      by,
		Words:   rankedWords,
		Phrases: rankedPhrases,
		Stats: DocumentStats{
			Tokens:         stats.Tokens,
			Words:          stats.Canonical,
			Phrases:        stats.Phrases,
			DroppedPhrases: stats.DroppedPhrases,
		},
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleCompare(req Request) error {
	for _, text := range []string{req.Text, req.Other} {
		if err := s.checkSize(text); err != nil {
			return s.sendError(req.ID, err.Error(), 413)
		}
	}
	start := time.Now()
	a := document.New(s.classifier, "x", req.Text, s.opts)
	b := document.New(s.classifier, "y", req.Other, s.opts)
	return s.send(CompareResponse{
		ID:        req.ID,
		Score:     a.Compare(b),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) checkSize(text string) error {
	if len(text) > s.config.Server.MaxTextBytes {
		return fmt.Errorf("text exceeds %d bytes", s.config.Server.MaxTextBytes)
	}
	return nil
}

// send encodes one response and flushes it to the client
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return err
	}
	return s.writer.Flush()
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	s.log.Debug("Request failed", "id", id, "error", message, "code", code)
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
