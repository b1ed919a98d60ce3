package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
)

// JsonFileStorer appends chunks to a JSONL file in the corpus format, so the
// output of an ingest can be fed back to the corpus loader.
type JsonFileStorer struct {
	mu       sync.Mutex
	filePath string
}

func NewJsonFileStorer(filePath string) *JsonFileStorer {
	return &JsonFileStorer{
		filePath: filePath,
	}
}

func (s *JsonFileStorer) Save(ctx context.Context, doc document.Document) (string, error) {
	if err := s.SaveBulk(ctx, []document.Document{doc}); err != nil {
		return "", err
	}
	return doc.StableID().String(), nil
}

func (s *JsonFileStorer) SaveBulk(ctx context.Context, docs []document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.filePath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode chunk %s: %w", doc.Key(), err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", s.filePath, err)
	}

	slog.Info("chunks written", "path", s.filePath, "count", len(docs))
	return nil
}
