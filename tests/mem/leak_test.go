//go:build test

package mem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/bastiangx/wordrank/pkg/corpus"
	"github.com/bastiangx/wordrank/pkg/document"
	"github.com/bastiangx/wordrank/pkg/tagger"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var trainingPairs = []string{
	"die\tDET", "der\tDET", "das\tDET", "eine\tDET", "ein\tDET",
	"in\tADP", "auf\tADP", "mit\tADP", "und\tCCONJ", "sie\tPRON",
	"laufen\tVERB", "gelaufen\tVERB", "jagt\tVERB", "schläft\tVERB", "bellt\tVERB",
	"schnell\tADJ", "groß\tADJ", "heute\tADV", "sehr\tADV",
}

var texts = []string{
	"Die Katze jagt die Maus. Die Katze schläft.",
	"Der schnelle Hund jagt die Katze. Die Katze schläft im Garten, der Hund bellt - Katzen jagen Mäuse.",
	"Heute laufen sehr viele Leute durch die große Stadt; sie laufen schnell und sehr weit.",
	"Ein Haus, zwei Häuser, drei Hausboote: die Hausverwaltung ist mit den Häusern beschäftigt.",
}

func buildClassifier(t *testing.T) *tagger.Classifier {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.tsv")
	if err := os.WriteFile(path, []byte(strings.Join(trainingPairs, "\n")), 0644); err != nil {
		t.Fatalf("corpus write failed: %v", err)
	}
	c, err := corpus.Build(nil, path)
	if err != nil {
		t.Fatalf("classifier build failed: %v", err)
	}
	return c
}

func TestMemoryLeakBasic(t *testing.T) {
	iterations := []int{100, 500, 1000}

	for _, iterCount := range iterations {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			runBasicMemoryTest(t, iterCount)
		})
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 400},
		{workers: 2, iterationsPerWorker: 200},
		{workers: 4, iterationsPerWorker: 100},
		{workers: 8, iterationsPerWorker: 50},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			runConcurrentMemoryTest(t, config.workers, config.iterationsPerWorker)
		})
	}
}

func TestLoadAllGoroutines(t *testing.T) {
	c := buildClassifier(t)
	dir := t.TempDir()
	var paths []string
	for i, text := range texts {
		path := filepath.Join(dir, fmt.Sprintf("doc_%d.txt", i))
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			t.Fatalf("document write failed: %v", err)
		}
		paths = append(paths, path)
	}

	baselineGoroutines := runtime.NumGoroutine()
	for i := 0; i < 50; i++ {
		docs, err := document.LoadAll(context.Background(), c, paths, document.DefaultOptions())
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(docs) != len(paths) {
			t.Fatalf("expected %d documents, got %d", len(paths), len(docs))
		}
	}
	runtime.GC()

	if delta := runtime.NumGoroutine() - baselineGoroutines; delta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", delta)
	}
}

// documents are dropped after each pass, so retained heap must not grow with
// the number of passes
func runBasicMemoryTest(t *testing.T, iterations int) {
	c := buildClassifier(t)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < iterations; i++ {
		for _, text := range texts {
			doc := document.New(c, "mem", text, document.DefaultOptions())
			_ = doc.BestPhrases(10, true)
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	finalGoroutines := runtime.NumGoroutine()

	memDelta := int64(final.Alloc) - int64(baseline.Alloc)
	goroutineDelta := finalGoroutines - baselineGoroutines
	totalOps := iterations * len(texts)
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		iterations, totalOps, memDelta, memPerOp, goroutineDelta)

	if memPerOp > 1000 {
		t.Errorf("excessive memory retained per document: %.2f bytes", memPerOp)
	}
	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

// a sealed classifier is shared by every worker
func runConcurrentMemoryTest(t *testing.T, workers, iterationsPerWorker int) {
	c := buildClassifier(t)
	want := document.New(c, "ref", texts[1], document.DefaultOptions())

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	var wg sync.WaitGroup
	var mu sync.Mutex
	totalOps := 0
	mismatches := 0

	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ops, bad := 0, 0
			for iter := 0; iter < iterationsPerWorker; iter++ {
				for _, text := range texts {
					doc := document.New(c, "mem", text, document.DefaultOptions())
					if text == texts[1] && doc.Compare(want) != 1.0 {
						bad++
					}
					ops++
				}
			}
			mu.Lock()
			totalOps += ops
			mismatches += bad
			mu.Unlock()
		}()
	}
	wg.Wait()

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	finalGoroutines := runtime.NumGoroutine()

	memDelta := int64(final.Alloc) - int64(baseline.Alloc)
	goroutineDelta := finalGoroutines - baselineGoroutines
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("workers=%d iter_per_worker=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		workers, iterationsPerWorker, totalOps, memDelta, memPerOp, goroutineDelta)

	if mismatches > 0 {
		t.Errorf("%d concurrent results differ from the sequential one", mismatches)
	}
	if memPerOp > 1000 {
		t.Errorf("excessive memory retained per document: %.2f bytes", memPerOp)
	}
	if goroutineDelta > 3 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
