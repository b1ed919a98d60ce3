//go:build integration

package es

import (
	"testing"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	pkgtesting "github.com/DjordjeVuckovic/juris-bench/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexerAndSearcher(t *testing.T) {
	ctx := t.Context()
	container := pkgtesting.NewESContainer(ctx, t)
	cfg := ClientConfig{Addresses: []string{container.Address}, IndexName: "legal_chunks_test"}

	indexer, err := NewIndexer(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, indexer.EnsureIndex(ctx))

	docs := []document.Document{
		{DocID: "code-travail", ChunkID: "c1", Text: "Le salarié licencié pour faute grave est privé de préavis.", Meta: &document.Meta{Num: "L1234-1"}},
		{DocID: "code-travail", ChunkID: "c2", Text: "Le licenciement pour motif économique est prononcé par l'employeur."},
		{DocID: "code-civil", ChunkID: "c3", Text: "Les contrats légalement formés tiennent lieu de loi."},
	}
	require.NoError(t, indexer.SaveBulk(ctx, docs))

	searcher, err := NewSearcher(cfg)
	require.NoError(t, err)

	res, err := searcher.Search(ctx, "faute grave préavis", 10)
	require.NoError(t, err)
	require.NotEmpty(t, res.Hits)
	assert.Equal(t, "c1", res.Hits[0].Document.ChunkID)
	assert.Equal(t, "L1234-1", res.Hits[0].Document.Meta.Num)
	for i := 1; i < len(res.Hits); i++ {
		assert.GreaterOrEqual(t, res.Hits[i-1].Score, res.Hits[i].Score)
	}

	require.NoError(t, indexer.DropIndex(ctx))
}
