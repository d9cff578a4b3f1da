/*
Package server implements msgpack IPC for word classification and document ranking.

Clients write msgpack encoded requests to stdin and read one msgpack
response per request from stdout. Requests are handled one at a time in the
order they arrive. Every response echoes the request ID and carries the
processing time in microseconds.

# IPC

Right after start the server writes a status message:

	{"status": "ready", "words": 12034}

Every request names its operation:

	{"id": "r1", "op": "classify", "w": ["Katze", "laufend", "die"]}
	{"id": "r2", "op": "analyze", "x": "Die Katze jagt die Maus.", "l": 5, "by": "topical"}
	{"id": "r3", "op": "compare", "x": "Die Katze schläft.", "y": "Der Hund schläft."}
	{"id": "r4", "op": "health"}

classify answers with one tag per word:

	{"id": "r1", "tags": [{"w": "Katze", "t": "NOUN"}, ...], "t": 41}

analyze answers with the ranked words and phrases of the text, rank 1 being the best:

	{"id": "r2", "words": [{"w": "Katze", "tag": "NOUN", "f": 1, "s": 7.5, "r": 1}], "phrases": [...], "t": 210}

compare answers with the similarity score, 1.0 meaning identical topicality:

	{"id": "r3", "score": 0.41, "t": 95}

Failed requests get an ErrorResponse instead:

	{"id": "r5", "e": "text exceeds 1048576 bytes", "c": 413}
*/
package server

// Operations understood by the server
const (
	OpClassify = "classify"
	OpAnalyze  = "analyze"
	OpCompare  = "compare"
	OpHealth   = "health"
)

// Ranking orders for analyze
const (
	ByTopicality = "topical"
	ByUniqueness = "unique"
)

// Request is the envelope of every client message. Only the fields of the
// named operation are read.
type Request struct {
	ID    string   `msgpack:"id"`
	Op    string   `msgpack:"op"`
	Words []string `msgpack:"w,omitempty"`  // classify
	Text  string   `msgpack:"x,omitempty"`  // analyze, compare
	Other string   `msgpack:"y,omitempty"`  // compare
	Title string   `msgpack:"ti,omitempty"` // analyze
	Limit int      `msgpack:"l,omitempty"`  // analyze
	By    string   `msgpack:"by,omitempty"` // analyze: "topical" (default) or "unique"
}

// StatusResponse reports server state on start and for health checks
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words"`
	Served int    `msgpack:"served,omitempty"`
}

// WordTag - tag of one classified word
type WordTag struct {
	Word   string `msgpack:"w"`
	Tag    string `msgpack:"t"`
	Closed bool   `msgpack:"c,omitempty"`
}

// ClassifyResponse - classify response
type ClassifyResponse struct {
	ID        string    `msgpack:"id"`
	Tags      []WordTag `msgpack:"tags"`
	TimeTaken int64     `msgpack:"t"`
}

// RankedWord - one entry of a word listing
type RankedWord struct {
	Word  string  `msgpack:"w"`
	Tag   string  `msgpack:"tag"`
	Freq  int     `msgpack:"f"`
	Score float64 `msgpack:"s"`
	Rank  int     `msgpack:"r"`
}

// RankedPhrase - one entry of a phrase listing
type RankedPhrase struct {
	Text  string  `msgpack:"p"`
	Freq  int     `msgpack:"f"`
	Score float64 `msgpack:"s"`
	Rank  int     `msgpack:"r"`
}

// DocumentStats - extraction counters of an analyzed text
type DocumentStats struct {
	Tokens         int `msgpack:"tokens"`
	Words          int `msgpack:"words"`
	Phrases        int `msgpack:"phrases"`
	DroppedPhrases int `msgpack:"dropped,omitempty"`
}

// AnalyzeResponse - analyze response
type AnalyzeResponse struct {
	ID        string         `msgpack:"id"`
	Title     string         `msgpack:"ti,omitempty"`
	By        string         `msgpack:"by"`
	Words     []RankedWord   `msgpack:"words"`
	Phrases   []RankedPhrase `msgpack:"phrases"`
	Stats     DocumentStats  `msgpack:"stats"`
	TimeTaken int64          `msgpack:"t"`
}

// CompareResponse - compare response
type CompareResponse struct {
	ID        string  `msgpack:"id"`
	Score     float64 `msgpack:"score"`
	TimeTaken int64   `msgpack:"t"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
