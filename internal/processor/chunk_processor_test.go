package processor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/juris-bench/internal/collector"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceCollector struct {
	results []collector.Result[document.Document]
}

func (c *sliceCollector) Collect(context.Context) (<-chan collector.Result[document.Document], error) {
	out := make(chan collector.Result[document.Document], len(c.results))
	for _, r := range c.results {
		out <- r
	}
	close(out)
	return out, nil
}

type failingCollector struct{}

func (failingCollector) Collect(context.Context) (<-chan collector.Result[document.Document], error) {
	return nil, errors.New("no corpus")
}

func chunks(n int) *sliceCollector {
	c := &sliceCollector{}
	for i := range n {
		c.results = append(c.results, collector.Result[document.Document]{
			Result: document.Document{DocID: fmt.Sprintf("doc-%d", i), Text: "texte"},
		})
	}
	return c
}

func TestChunkPipeline_Run(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PipelineOption
		wantBatches int
	}{
		{name: "one by one", opts: nil, wantBatches: 0},
		{name: "bulk with remainder", opts: []PipelineOption{WithBulk(2)}, wantBatches: 3},
		{name: "bulk default size", opts: []PipelineOption{WithBulk(0)}, wantBatches: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := in_mem.NewInMemStorer()
			stats, err := NewPipeline(chunks(5), store, tt.opts...).Run(t.Context())
			require.NoError(t, err)

			assert.Equal(t, 5, stats.Processed)
			assert.Zero(t, stats.Errors)
			assert.Equal(t, tt.wantBatches, stats.Batches)
			assert.Equal(t, 5, store.Len())
		})
	}
}

func TestChunkPipeline_CollectErrors(t *testing.T) {
	c := chunks(2)
	c.results = append(c.results, collector.Result[document.Document]{Err: errors.New("bad line")})

	stats, err := NewPipeline(c, in_mem.NewInMemStorer(), WithName("test")).Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.Errors)

	_, err = NewPipeline(failingCollector{}, in_mem.NewInMemStorer()).Run(t.Context())
	assert.Error(t, err)
}
