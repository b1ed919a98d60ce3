package engine

import (
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/pg"
)

// NewPgExecutor runs French full-text queries. Closing the executor closes
// the pool.
func NewPgExecutor(name string, pool *pg.ConnectionPool) *SearcherExecutor {
	return NewSearcherExecutor(name, pg.NewSearcher(pool), func() error {
		pool.Close()
		return nil
	})
}
