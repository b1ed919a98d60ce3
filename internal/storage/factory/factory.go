package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/juris-bench/internal/storage"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/es"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/pg"
)

// NewIndexer creates the indexer selected by cfg. The returned cleanup must be
// called once the indexer is no longer used.
func NewIndexer(ctx context.Context, cfg *StorageConfig) (storage.Indexer, func(), error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		indexer := pg.NewIndexer(pool)
		if err := indexer.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return indexer, pool.Close, nil

	case storage.ES:
		indexer, err := es.NewIndexer(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return indexer, func() {}, nil

	case storage.File:
		return storage.NewJsonFileStorer(cfg.File), func() {}, nil

	case storage.InMem:
		return in_mem.NewInMemStorer(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
