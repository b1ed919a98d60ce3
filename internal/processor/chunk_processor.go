package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/juris-bench/internal/collector"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage"
)

const defaultBatchSize = 1000

type Pipeline interface {
	Run(ctx context.Context) (Stats, error)
}

type BulkOptions struct {
	Enabled bool
	Size    int
}

type PipelineConfig struct {
	Name string
	Bulk *BulkOptions
}

// Stats counts the chunks of one run.
type Stats struct {
	Processed int
	Errors    int
	Batches   int
}

// ChunkPipeline moves chunks from a collector into an indexer.
type ChunkPipeline struct {
	collector collector.Collector[document.Document]
	indexer   storage.Indexer
	config    *PipelineConfig
}

type PipelineOption func(pipeline *ChunkPipeline)

// WithBulk enables batched writes of size chunks. A size below 1 keeps the
// default batch size.
func WithBulk(size int) PipelineOption {
	return func(pipeline *ChunkPipeline) {
		pipeline.config.Bulk.Enabled = true
		if size > 0 {
			pipeline.config.Bulk.Size = size
		}
	}
}

func WithName(name string) PipelineOption {
	return func(pipeline *ChunkPipeline) {
		pipeline.config.Name = name
	}
}

func NewPipeline(c collector.Collector[document.Document], indexer storage.Indexer, opts ...PipelineOption) *ChunkPipeline {
	p := &ChunkPipeline{
		collector: c,
		indexer:   indexer,
		config: &PipelineConfig{
			Name: "chunk-pipeline",
			Bulk: &BulkOptions{
				Enabled: false,
				Size:    defaultBatchSize,
			},
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *ChunkPipeline) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	slog.Info("Starting pipeline run",
		"pipeline", p.config.Name,
		"bulk_enabled", p.config.Bulk.Enabled,
		"batch_size", p.config.Bulk.Size,
	)

	results, err := p.collector.Collect(ctx)
	if err != nil {
		slog.Error("Error collecting chunks", "error", err, "pipeline", p.config.Name)
		return Stats{}, err
	}

	var stats Stats
	if p.config.Bulk.Enabled {
		stats, err = p.processBatch(ctx, results)
	} else {
		stats, err = p.processBasic(ctx, results)
	}

	slog.Info("Pipeline run completed",
		"pipeline", p.config.Name,
		"duration", time.Since(start),
		"processed", stats.Processed,
		"errors", stats.Errors,
		"batches", stats.Batches,
	)
	return stats, err
}

func (p *ChunkPipeline) processBasic(ctx context.Context, results <-chan collector.Result[document.Document]) (Stats, error) {
	var stats Stats

	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case res, ok := <-results:
			if !ok {
				return stats, nil
			}
			if res.Err != nil {
				slog.Error("Error collecting chunk", "error", res.Err, "pipeline", p.config.Name)
				stats.Errors++
				continue
			}

			id, err := p.indexer.Save(ctx, res.Result)
			if err != nil {
				slog.Error("Error saving chunk",
					"error", err,
					"doc_id", res.Result.DocID,
					"pipeline", p.config.Name,
				)
				stats.Errors++
				continue
			}
			slog.Debug("Chunk saved", "id", id, "doc_id", res.Result.DocID)
			stats.Processed++
		}
	}
}

func (p *ChunkPipeline) processBatch(ctx context.Context, results <-chan collector.Result[document.Document]) (Stats, error) {
	var (
		stats Stats
		batch []document.Document
	)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := p.indexer.SaveBulk(ctx, batch); err != nil {
			slog.Error("Error saving chunk batch",
				"error", err,
				"count", len(batch),
				"pipeline", p.config.Name,
			)
			stats.Errors += len(batch)
		} else {
			stats.Processed += len(batch)
			stats.Batches++
			slog.Info("Chunk batch saved",
				"count", len(batch),
				"batch", stats.Batches,
				"pipeline", p.config.Name,
			)
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case res, ok := <-results:
			if !ok {
				flush()
				return stats, nil
			}
			if res.Err != nil {
				slog.Error("Error collecting chunk", "error", res.Err, "pipeline", p.config.Name)
				stats.Errors++
				continue
			}

			batch = append(batch, res.Result)
			if len(batch) >= p.config.Bulk.Size {
				flush()
			}
		}
	}
}
