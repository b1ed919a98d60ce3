package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		yaml := `
dictionary: configs/juridical_dictionary.yml
engines:
  pg-fts:
    type: postgres
    connection: "postgresql://localhost/test"
  es-bm25:
    type: elasticsearch
    connection: "http://localhost:9200"
    index: legal_chunks

metrics:
  k_values: [3, 5, 10]
  max_k: 10

runs:
  warmup: 1
  iterations: 3

jobs:
  - name: "v2-enriched"
    suite: v2
    engines: [pg-fts, es-bm25]
    understanding: true
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Len(t, s.Jobs, 1)
		assert.Len(t, s.Engines, 2)
		assert.Equal(t, "v2-enriched", s.Jobs[0].Name)
		assert.True(t, s.Jobs[0].Understanding)
		assert.True(t, s.UsesUnderstanding())
		assert.Equal(t, 3, s.Runs.Iterations)
		assert.Equal(t, "legal_chunks", s.Engines["es-bm25"].Index)
	})

	t.Run("defaults", func(t *testing.T) {
		yaml := `
engines:
  es:
    type: elasticsearch
    connection: "http://localhost:9200"
jobs:
  - name: raw
    suite: v1
    engines: [es]
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, []int{3, 5, 10}, s.Metrics.KValues)
		assert.Equal(t, 10, s.Metrics.MaxK)
		assert.Equal(t, 1, s.Runs.Iterations)
		assert.False(t, s.UsesUnderstanding())
	})

	t.Run("expands environment", func(t *testing.T) {
		t.Setenv("PG_CONNECTION_STRING", "postgresql://bench@db/juris")
		yaml := `
engines:
  pg:
    type: postgres
    connection: "${PG_CONNECTION_STRING}"
jobs:
  - name: raw
    suite: v1
    engines: [pg]
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "postgresql://bench@db/juris", s.Engines["pg"].Connection)
	})

	t.Run("memory engine with corpus", func(t *testing.T) {
		yaml := `
corpus:
  path: data/chunks.jsonl
  min_text_len: 80
engines:
  mem:
    type: memory
jobs:
  - name: dry-run
    suite: v2
    engines: [mem]
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		require.NotNil(t, s.Corpus)
		assert.Equal(t, 80, s.Corpus.MinTextLen)
	})

	t.Run("malformed yaml is a parse error", func(t *testing.T) {
		_, err := Parse([]byte("jobs: [unterminated"))
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindParse))
	})

	errorCases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "no jobs",
			yaml: `
engines:
  pg:
    type: postgres
    connection: "postgresql://localhost/test"
jobs: []
`,
			wantErr: "no jobs",
		},
		{
			name: "no engines",
			yaml: `
engines: {}
jobs:
  - name: test
    suite: v1
    engines: [pg]
`,
			wantErr: "no engines",
		},
		{
			name: "job references unknown engine",
			yaml: `
engines:
  pg:
    type: postgres
    connection: "postgresql://localhost/test"
jobs:
  - name: test
    suite: v1
    engines: [pg, unknown]
`,
			wantErr: "unknown engine",
		},
		{
			name: "unknown suite version",
			yaml: `
engines:
  pg:
    type: postgres
    connection: "postgresql://localhost/test"
jobs:
  - name: test
    suite: v3
    engines: [pg]
`,
			wantErr: "unknown suite version",
		},
		{
			name: "invalid engine type",
			yaml: `
engines:
  solr:
    type: solr
    connection: "http://localhost:8983"
jobs:
  - name: test
    suite: v1
    engines: [solr]
`,
			wantErr: "invalid type",
		},
		{
			name: "missing connection",
			yaml: `
engines:
  pg:
    type: postgres
jobs:
  - name: test
    suite: v1
    engines: [pg]
`,
			wantErr: "no connection",
		},
		{
			name: "memory engine without corpus",
			yaml: `
engines:
  mem:
    type: memory
jobs:
  - name: test
    suite: v1
    engines: [mem]
`,
			wantErr: "needs a corpus path",
		},
		{
			name: "memory engine with unknown corpus source",
			yaml: `
corpus:
  source: csv
  path: data/chunks.csv
engines:
  mem:
    type: memory
jobs:
  - name: test
    suite: v1
    engines: [mem]
`,
			wantErr: "corpus source must be",
		},
		{
			name: "understanding without dictionary",
			yaml: `
engines:
  pg:
    type: postgres
    connection: "postgresql://localhost/test"
jobs:
  - name: test
    suite: v1
    engines: [pg]
    understanding: true
`,
			wantErr: "no dictionary",
		},
		{
			name: "k above max_k",
			yaml: `
engines:
  pg:
    type: postgres
    connection: "postgresql://localhost/test"
metrics:
  k_values: [5, 20]
  max_k: 10
jobs:
  - name: test
    suite: v1
    engines: [pg]
`,
			wantErr: "exceeds max_k",
		},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindConfiguration))
	})

	t.Run("bundled specs parse", func(t *testing.T) {
		paths, err := filepath.Glob(filepath.Join("..", "..", "..", "configs", "bench", "*.yaml"))
		require.NoError(t, err)
		require.NotEmpty(t, paths)
		for _, p := range paths {
			_, err := LoadFromFile(p)
			assert.NoError(t, err, p)
		}
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "spec.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
engines:
  frozen:
    type: replay
    connection: runs/frozen.yaml
jobs:
  - name: replay
    suite: v1
    engines: [frozen]
`), 0o644))
		s, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, EngineReplay, s.Engines["frozen"].Type)
	})
}
