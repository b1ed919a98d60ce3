package pg

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

const defaultBatchSize = 500

const upsertChunkSQL = `
	INSERT INTO legal_chunks (id, doc_id, chunk_id, chunk_index, doc_type, text, meta_num, meta_titre, indexed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		doc_id = EXCLUDED.doc_id,
		chunk_id = EXCLUDED.chunk_id,
		chunk_index = EXCLUDED.chunk_index,
		doc_type = EXCLUDED.doc_type,
		text = EXCLUDED.text,
		meta_num = EXCLUDED.meta_num,
		meta_titre = EXCLUDED.meta_titre,
		indexed_at = EXCLUDED.indexed_at
`

type Indexer struct {
	db        *pgxpool.Pool
	batchSize int
}

func NewIndexer(pool *ConnectionPool) *Indexer {
	return &Indexer{db: pool.conn, batchSize: defaultBatchSize}
}

func (s *Indexer) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Indexer) Truncate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, "TRUNCATE TABLE legal_chunks"); err != nil {
		return fmt.Errorf("failed to truncate legal_chunks: %w", err)
	}
	return nil
}

// Reset removes every indexed chunk.
func (s *Indexer) Reset(ctx context.Context) error {
	return s.Truncate(ctx)
}

func (s *Indexer) Save(ctx context.Context, doc document.Document) (string, error) {
	id := doc.StableID()
	if _, err := s.db.Exec(ctx, upsertChunkSQL, chunkArgs(doc, time.Now().UTC())...); err != nil {
		return "", fmt.Errorf("failed to insert chunk %s: %w", doc.Key(), err)
	}
	return id.String(), nil
}

// SaveBulk upserts docs in batches of batchSize statements.
func (s *Indexer) SaveBulk(ctx context.Context, docs []document.Document) error {
	now := time.Now().UTC()
	for start := 0; start < len(docs); start += s.batchSize {
		end := min(start+s.batchSize, len(docs))

		batch := &pgx.Batch{}
		for _, doc := range docs[start:end] {
			batch.Queue(upsertChunkSQL, chunkArgs(doc, now)...)
		}

		if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert chunks %d-%d: %w", start, end, err)
		}
		slog.Debug("chunk batch inserted", "from", start, "to", end)
	}

	slog.Info("bulk insert completed", "total", len(docs), "table", "legal_chunks")
	return nil
}

func chunkArgs(doc document.Document, now time.Time) []any {
	var num, titre *string
	if doc.Meta != nil {
		if doc.Meta.Num != "" {
			num = &doc.Meta.Num
		}
		if doc.Meta.Titre != "" {
			titre = &doc.Meta.Titre
		}
	}
	return []any{
		doc.StableID(),
		doc.DocID,
		doc.ChunkID,
		doc.ChunkIndex,
		doc.DocType,
		doc.Text,
		num,
		titre,
		now,
	}
}
