package collector

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/juris-bench/internal/corpus"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
)

// ChunkCollector streams the chunks of a JSONL corpus file, or the documents
// of an XML corpus directory, optionally restricted to those containing a
// substring.
type ChunkCollector struct {
	path   string
	source corpus.Source
	opts   corpus.Options
	filter string
	buffer int
}

type ChunkCollectorOption func(*ChunkCollector)

func WithFilter(needle string) ChunkCollectorOption {
	return func(c *ChunkCollector) {
		c.filter = needle
	}
}

func WithSource(src corpus.Source) ChunkCollectorOption {
	return func(c *ChunkCollector) {
		c.source = src
	}
}

func WithBuffer(size int) ChunkCollectorOption {
	return func(c *ChunkCollector) {
		c.buffer = size
	}
}

func NewChunkCollector(path string, opts corpus.Options, options ...ChunkCollectorOption) *ChunkCollector {
	c := &ChunkCollector{
		path:   path,
		source: corpus.SourceJSONL,
		opts:   opts,
		buffer: 64,
	}
	for _, o := range options {
		o(c)
	}
	return c
}

func (c *ChunkCollector) Collect(ctx context.Context) (<-chan Result[document.Document], error) {
	docs, stats, err := corpus.LoadSource(c.source, c.path, c.opts)
	if err != nil {
		return nil, err
	}
	if c.filter != "" {
		docs = corpus.FilterBySubstring(docs, c.filter, corpus.FieldText, corpus.FieldTitle, corpus.FieldDocID)
		slog.Info("Corpus filtered", "filter", c.filter, "kept", len(docs), "loaded", stats.Kept)
	}

	out := make(chan Result[document.Document], c.buffer)
	go func() {
		defer close(out)
		for _, d := range docs {
			select {
			case <-ctx.Done():
				return
			case out <- Result[document.Document]{Result: d}:
			}
		}
	}()
	return out, nil
}
