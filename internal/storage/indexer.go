package storage

import (
	"context"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
)

// Indexer writes corpus chunks to a retrieval backend.
type Indexer interface {
	Save(ctx context.Context, doc document.Document) (string, error)
	SaveBulk(ctx context.Context, docs []document.Document) error
}

// SearchResult holds one ranked page, ordered by descending score.
type SearchResult struct {
	Hits         []document.Ranked `json:"hits"`
	TotalMatches int64             `json:"total_matches"`
}

// Searcher runs a free-text query against a backend and returns at most size
// hits.
type Searcher interface {
	Search(ctx context.Context, query string, size int) (*SearchResult, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	File  Type = "file"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
