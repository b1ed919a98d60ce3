package engine

import (
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/es"
)

// NewEsExecutor runs BM25 match queries on the chunk text.
func NewEsExecutor(name string, cfg es.ClientConfig) (*SearcherExecutor, error) {
	searcher, err := es.NewSearcher(cfg)
	if err != nil {
		return nil, err
	}
	return NewSearcherExecutor(name, searcher, nil), nil
}
