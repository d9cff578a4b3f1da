package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FromReader reads the whole of r and processes it as one document.
func FromReader(t Tagger, title string, r io.Reader, opts Options) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", title, err)
	}
	return New(t, title, string(data), opts), nil
}

// Load processes the file at path. The title is the file name without extension.
func Load(t Tagger, path string, opts Options) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}
	defer file.Close()

	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	return FromReader(t, title, file, opts)
}

// LoadAll processes every file in paths concurrently, each document with its
// own records. Results keep the order of paths. t must be safe for concurrent use.
func LoadAll(ctx context.Context, t Tagger, paths []string, opts Options) ([]*Document, error) {
	docs := make([]*Document, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := Load(t, path, opts)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
