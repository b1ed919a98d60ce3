package collector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/DjordjeVuckovic/juris-bench/internal/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chunks.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}

func TestChunkCollector_Collect(t *testing.T) {
	path := writeCorpus(t,
		`{"doc_id":"a","text":"Le salarié licencié pour faute grave est privé de préavis."}`,
		`{"doc_id":"b","text":"Le licenciement pour motif économique suit une procédure.","meta":{"num":"L1233-3"}}`,
		`{"doc_id":"c","text":"court"}`,
	)
	opts := corpus.Options{MinTextLen: 10}

	t.Run("all chunks", func(t *testing.T) {
		ch, err := NewChunkCollector(path, opts).Collect(t.Context())
		require.NoError(t, err)

		var ids []string
		for res := range ch {
			require.NoError(t, res.Err)
			ids = append(ids, res.Result.DocID)
		}
		assert.Equal(t, []string{"a", "b"}, ids)
	})

	t.Run("filtered", func(t *testing.T) {
		ch, err := NewChunkCollector(path, opts, WithFilter("ÉCONOMIQUE"), WithBuffer(1)).Collect(t.Context())
		require.NoError(t, err)

		var ids []string
		for res := range ch {
			ids = append(ids, res.Result.DocID)
		}
		assert.Equal(t, []string{"b"}, ids)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewChunkCollector(filepath.Join(t.TempDir(), "none.jsonl"), opts).Collect(t.Context())
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindConfiguration))
	})
}

func TestChunkCollector_CollectXML(t *testing.T) {
	root := t.TempDir()
	body := strings.Repeat("Le contrat de travail à durée indéterminée peut être rompu. ", 5)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "code", "travail"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "code", "travail", "L1231-1.xml"),
		[]byte("<ARTICLE><BLOC_TEXTUEL><CONTENU>"+body+"</CONTENU></BLOC_TEXTUEL></ARTICLE>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "code", "court.xml"),
		[]byte("<ARTICLE>bref</ARTICLE>"), 0o644))

	ch, err := NewChunkCollector(root, corpus.DefaultXMLOptions(), WithSource(corpus.SourceXML)).Collect(t.Context())
	require.NoError(t, err)

	var docs []string
	for res := range ch {
		require.NoError(t, res.Err)
		docs = append(docs, res.Result.DocID)
	}
	assert.Equal(t, []string{filepath.Join(root, "code", "travail", "L1231-1.xml")}, docs)
}
