package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// Searcher runs BM25 match queries over the chunk text.
type Searcher struct {
	client       *elasticsearch.TypedClient
	indexName    string
	indexBuilder *IndexBuilder
}

func NewSearcher(config ClientConfig) (*Searcher, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Searcher{
		client:       client,
		indexName:    config.index(),
		indexBuilder: NewIndexBuilder(),
	}, nil
}

func (r *Searcher) Search(ctx context.Context, query string, size int) (*storage.SearchResult, error) {
	slog.Debug("executing es match search", "query", query, "size", size, "index", r.indexName)

	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{
			Match: map[string]types.MatchQuery{
				"text": {Query: query},
			},
		}).
		Size(size).
		TrackScores(true).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	hits, err := r.mapToResult(res.Hits.Hits)
	if err != nil {
		return nil, fmt.Errorf("failed to map search results: %w", err)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	return &storage.SearchResult{Hits: hits, TotalMatches: total}, nil
}

func (r *Searcher) mapToResult(hits []types.Hit) ([]document.Ranked, error) {
	out := make([]document.Ranked, 0, len(hits))
	for _, hit := range hits {
		var doc ChunkDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}

		var score float64
		if hit.Score_ != nil {
			score = float64(*hit.Score_)
		}
		out = append(out, document.Ranked{
			Document: r.indexBuilder.mapToDomain(doc),
			Score:    score,
		})
	}
	return out, nil
}
