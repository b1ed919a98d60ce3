package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"gopkg.in/yaml.v3"
)

// ReplayFile is a frozen run: ranked lists keyed by the exact query text that
// was sent to the engine.
type ReplayFile struct {
	Name    string                       `yaml:"name"`
	Queries map[string][]document.Ranked `yaml:"queries"`
}

// ReplayExecutor serves pre-computed ranked lists. It allows comparing metric
// changes without a running engine. Unknown queries return an empty list.
type ReplayExecutor struct {
	name    string
	queries map[string][]document.Ranked
}

func NewReplayExecutor(name string, file *ReplayFile) *ReplayExecutor {
	queries := make(map[string][]document.Ranked, len(file.Queries))
	for q, hits := range file.Queries {
		queries[q] = sortByScore(append([]document.Ranked(nil), hits...))
	}
	return &ReplayExecutor{name: name, queries: queries}
}

func LoadReplayFile(path string) (*ReplayFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfiguration(fmt.Sprintf("read replay file %s", path), err)
	}
	var f ReplayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, apperr.NewParse(fmt.Sprintf("parse replay file %s", path), err)
	}
	return &f, nil
}

func (e *ReplayExecutor) Search(ctx context.Context, query string, size int) (*Execution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hits, ok := e.queries[query]
	if !ok {
		slog.Warn("replay has no ranked list for query", "engine", e.name, "query", query)
	}

	total := int64(len(hits))
	if size >= 0 && len(hits) > size {
		hits = hits[:size]
	}
	return &Execution{
		Results:      append([]document.Ranked(nil), hits...),
		TotalMatches: total,
	}, nil
}

func (e *ReplayExecutor) Name() string { return e.name }
func (e *ReplayExecutor) Close() error { return nil }
