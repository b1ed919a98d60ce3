package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/DjordjeVuckovic/juris-bench/internal/bench/spec"
	"github.com/DjordjeVuckovic/juris-bench/internal/corpus"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/es"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/pg"
)

// CreateFromSpec builds one executor per declared engine. The returned
// cleanup closes every executor that was created.
func CreateFromSpec(ctx context.Context, bs *spec.BenchSpec) (map[string]Executor, func(), error) {
	executors := make(map[string]Executor, len(bs.Engines))

	cleanup := func() {
		for _, exec := range executors {
			_ = exec.Close()
		}
	}

	names := make([]string, 0, len(bs.Engines))
	for name := range bs.Engines {
		names = append(names, name)
	}
	sort.Strings(names)

	var memory *in_mem.InMemStorer
	for _, name := range names {
		eng := bs.Engines[name]
		switch eng.Type {
		case spec.EnginePostgres:
			pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: eng.Connection})
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("create pg pool for %q: %w", name, err)
			}
			executors[name] = NewPgExecutor(name, pool)

		case spec.EngineElasticsearch:
			exec, err := NewEsExecutor(name, es.ClientConfig{
				Addresses: []string{eng.Connection},
				IndexName: eng.Index,
			})
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("create es client for %q: %w", name, err)
			}
			executors[name] = exec

		case spec.EngineAPI:
			executors[name] = NewAPIExecutor(name, eng.Connection)

		case spec.EngineReplay:
			file, err := LoadReplayFile(eng.Connection)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("load replay for %q: %w", name, err)
			}
			executors[name] = NewReplayExecutor(name, file)

		case spec.EngineMemory:
			if memory == nil {
				store, err := loadMemoryStore(ctx, bs.Corpus)
				if err != nil {
					cleanup()
					return nil, nil, fmt.Errorf("load corpus for %q: %w", name, err)
				}
				memory = store
			}
			executors[name] = NewSearcherExecutor(name, memory, nil)

		default:
			cleanup()
			return nil, nil, fmt.Errorf("unsupported engine type %q for %q", eng.Type, name)
		}
	}

	return executors, cleanup, nil
}

func loadMemoryStore(ctx context.Context, cfg *spec.CorpusConfig) (*in_mem.InMemStorer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no corpus configured")
	}
	src := corpus.SourceJSONL
	if cfg.Source != "" {
		parsed, err := corpus.ParseSource(cfg.Source)
		if err != nil {
			return nil, err
		}
		src = parsed
	}
	opts := corpus.DefaultOptionsFor(src)
	if cfg.MinTextLen > 0 {
		opts.MinTextLen = cfg.MinTextLen
	}
	opts.Limit = cfg.Limit
	docs, _, err := corpus.LoadSource(src, cfg.Path, opts)
	if err != nil {
		return nil, err
	}
	docs = corpus.FilterBySubstring(docs, cfg.Filter)

	store := in_mem.NewInMemStorer()
	if err := store.SaveBulk(ctx, docs); err != nil {
		return nil, err
	}
	return store, nil
}
