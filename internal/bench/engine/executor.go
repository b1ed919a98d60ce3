package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage"
)

// Executor sends one free-text query to a retrieval engine.
type Executor interface {
	Search(ctx context.Context, query string, size int) (*Execution, error)
	Name() string
	Close() error
}

// Execution is one ranked list, ordered by descending score.
type Execution struct {
	Results      []document.Ranked
	TotalMatches int64
	Latency      time.Duration
}

// SearcherExecutor adapts a storage.Searcher to Executor.
type SearcherExecutor struct {
	name     string
	searcher storage.Searcher
	close    func() error
}

func NewSearcherExecutor(name string, searcher storage.Searcher, closeFn func() error) *SearcherExecutor {
	if closeFn == nil {
		closeFn = func() error { return nil }
	}
	return &SearcherExecutor{name: name, searcher: searcher, close: closeFn}
}

func (e *SearcherExecutor) Search(ctx context.Context, query string, size int) (*Execution, error) {
	if size < 1 {
		return nil, fmt.Errorf("%s: size must be positive, got %d", e.name, size)
	}

	start := time.Now()
	res, err := e.searcher.Search(ctx, query, size)
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", e.name, err)
	}
	latency := time.Since(start)

	return &Execution{
		Results:      sortByScore(res.Hits),
		TotalMatches: res.TotalMatches,
		Latency:      latency,
	}, nil
}

func (e *SearcherExecutor) Name() string { return e.name }
func (e *SearcherExecutor) Close() error { return e.close() }

func sortByScore(hits []document.Ranked) []document.Ranked {
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	return hits
}
