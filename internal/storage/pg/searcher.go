package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const searchSQL = `
	SELECT doc_id, chunk_id, chunk_index, doc_type, text, meta_num, meta_titre,
		ts_rank_cd(search_vector, q) AS rank,
		count(*) OVER () AS total
	FROM legal_chunks, websearch_to_tsquery('french', $1) q
	WHERE search_vector @@ q
	ORDER BY rank DESC, id
	LIMIT $2
`

// Searcher runs French full-text queries ranked by cover density.
type Searcher struct {
	db *pgxpool.Pool
}

func NewSearcher(pool *ConnectionPool) *Searcher {
	return &Searcher{db: pool.conn}
}

func (r *Searcher) Search(ctx context.Context, query string, size int) (*storage.SearchResult, error) {
	slog.Debug("executing pg full-text search", "query", query, "size", size)

	rows, err := r.db.Query(ctx, searchSQL, query, size)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	defer rows.Close()

	result := &storage.SearchResult{Hits: make([]document.Ranked, 0, size)}
	for rows.Next() {
		hit, total, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		result.Hits = append(result.Hits, hit)
		result.TotalMatches = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search rows: %w", err)
	}
	return result, nil
}

func scanChunk(rows pgx.Rows) (document.Ranked, int64, error) {
	var (
		doc        document.Document
		num, titre *string
		rank       float32
		total      int64
	)
	if err := rows.Scan(
		&doc.DocID,
		&doc.ChunkID,
		&doc.ChunkIndex,
		&doc.DocType,
		&doc.Text,
		&num,
		&titre,
		&rank,
		&total,
	); err != nil {
		return document.Ranked{}, 0, fmt.Errorf("failed to scan chunk: %w", err)
	}

	if num != nil || titre != nil {
		doc.Meta = &document.Meta{}
		if num != nil {
			doc.Meta.Num = *num
		}
		if titre != nil {
			doc.Meta.Titre = *titre
		}
	}
	return document.Ranked{Document: doc, Score: float64(rank)}, total, nil
}
