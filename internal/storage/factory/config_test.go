package factory

import (
	"testing"

	"github.com/DjordjeVuckovic/juris-bench/internal/storage"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("elasticsearch", func(t *testing.T) {
		t.Setenv("ES_ADDRESSES", "http://a:9200, http://b:9200,")
		t.Setenv("ES_INDEX_NAME", "chunks")

		cfg, err := FromEnv(storage.ES)
		require.NoError(t, err)
		assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
		assert.Equal(t, "chunks", cfg.Es.IndexName)
	})

	t.Run("elasticsearch without address", func(t *testing.T) {
		t.Setenv("ES_ADDRESSES", "")
		_, err := FromEnv(storage.ES)
		assert.Error(t, err)
	})

	t.Run("postgres", func(t *testing.T) {
		t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost/db")
		cfg, err := FromEnv(storage.PG)
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@localhost/db", cfg.Pg.ConnStr)
	})

	t.Run("postgres without connection string", func(t *testing.T) {
		t.Setenv("PG_CONNECTION_STRING", "")
		_, err := FromEnv(storage.PG)
		assert.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := FromEnv("solr")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid storage type")
	})

	t.Run("storage type from env", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		_, err := LoadEnv()
		assert.Error(t, err)

		t.Setenv("STORAGE_TYPE", string(storage.InMem))
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, storage.InMem, cfg.Type)
	})
}

func TestNewIndexer_InMem(t *testing.T) {
	indexer, cleanup, err := NewIndexer(t.Context(), &StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &in_mem.InMemStorer{}, indexer)
}
