package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/juris-bench/internal/collector"
	"github.com/DjordjeVuckovic/juris-bench/internal/processor"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/factory"
	"github.com/DjordjeVuckovic/juris-bench/pkg/config/env"
)

// resetter is implemented by indexers that can clear previously ingested
// chunks.
type resetter interface {
	Reset(ctx context.Context) error
}

func main() {
	slog.SetLogLoggerLevel(env.LogLevel())

	cfg, err := Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	indexer, cleanup, err := factory.NewIndexer(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to create indexer", "target", cfg.Storage.Type, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if cfg.Reset {
		if err := reset(ctx, indexer); err != nil {
			slog.Error("Failed to reset target", "target", cfg.Storage.Type, "error", err)
			os.Exit(1)
		}
	}

	c := collector.NewChunkCollector(cfg.CorpusPath, cfg.Corpus,
		collector.WithSource(cfg.Source),
		collector.WithFilter(cfg.Filter),
	)

	opts := []processor.PipelineOption{processor.WithName("ingest-" + string(cfg.Storage.Type))}
	if cfg.BulkSize > 0 {
		opts = append(opts, processor.WithBulk(cfg.BulkSize))
	}

	stats, err := processor.NewPipeline(c, indexer, opts...).Run(ctx)
	if err != nil {
		slog.Error("Ingest failed", "error", err)
		os.Exit(1)
	}
	if stats.Errors > 0 {
		slog.Warn("Ingest finished with errors", "processed", stats.Processed, "errors", stats.Errors)
		os.Exit(1)
	}
	slog.Info("Ingest finished", "processed", stats.Processed, "batches", stats.Batches)
}

func reset(ctx context.Context, indexer storage.Indexer) error {
	r, ok := indexer.(resetter)
	if !ok {
		slog.Warn("Target does not support reset, skipping")
		return nil
	}
	slog.Info("Resetting target")
	return r.Reset(ctx)
}
