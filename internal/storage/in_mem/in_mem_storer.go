package in_mem

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage"
	"github.com/google/uuid"
)

// InMemStorer keeps chunks in insertion order and ranks them by query term
// frequency. It stands in for a real engine in tests and dry runs.
type InMemStorer struct {
	storageLock sync.RWMutex
	order       []uuid.UUID
	storage     map[uuid.UUID]document.Document
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]document.Document),
	}
}

func (s *InMemStorer) Save(ctx context.Context, doc document.Document) (string, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	return s.put(doc).String(), nil
}

func (s *InMemStorer) SaveBulk(ctx context.Context, docs []document.Document) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, doc := range docs {
		s.put(doc)
	}
	return nil
}

func (s *InMemStorer) put(doc document.Document) uuid.UUID {
	id := doc.StableID()
	if _, ok := s.storage[id]; !ok {
		s.order = append(s.order, id)
	}
	s.storage[id] = doc
	return id
}

func (s *InMemStorer) Len() int {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return len(s.order)
}

// Search scores each chunk by the number of occurrences of the query terms in
// its lower-cased text. Chunks without any occurrence are not returned. Ties
// keep insertion order.
func (s *InMemStorer) Search(ctx context.Context, query string, size int) (*storage.SearchResult, error) {
	terms := strings.Fields(strings.ToLower(query))

	s.storageLock.RLock()
	hits := make([]document.Ranked, 0)
	for _, id := range s.order {
		doc := s.storage[id]
		text := strings.ToLower(doc.Text)
		var score float64
		for _, term := range terms {
			score += float64(strings.Count(text, term))
		}
		if score > 0 {
			hits = append(hits, document.Ranked{Document: doc, Score: score})
		}
	}
	s.storageLock.RUnlock()

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	total := int64(len(hits))
	if size >= 0 && len(hits) > size {
		hits = hits[:size]
	}
	return &storage.SearchResult{Hits: hits, TotalMatches: total}, nil
}

func (s *InMemStorer) Reset(ctx context.Context) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.order = nil
	s.storage = make(map[uuid.UUID]document.Document)
	return nil
}
