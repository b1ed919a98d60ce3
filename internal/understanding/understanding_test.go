package understanding

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/DjordjeVuckovic/juris-bench/internal/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDictionary = `
rupture_sans_preavis:
  intentions_utilisateur: ["rompu sans préavis", "rupture sans préavis"]
  concepts_juridiques_centrals: ["faute grave", "faute lourde"]
  termes_juridiques_textes: ["préavis", "indemnité compensatrice"]
  codes_cibles: ["Code du travail"]
  articles_cibles: ["L1234-1", "L1234-5"]
licenciement_economique:
  intentions_utilisateur: ["motif économique"]
  concepts_juridiques_centrals: ["motif économique"]
  termes_juridiques_textes: ["difficultés économiques"]
  codes_cibles: ["Code du travail"]
  articles_cibles: ["L1233-3"]
`

func mustParse(t *testing.T, src string) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.Parse([]byte(src))
	require.NoError(t, err)
	return d
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "hyphen becomes separator", in: "peut-il", want: "peut il"},
		{name: "question with hyphen and punctuation", in: "Dans quels cas un CDI peut-il être rompu sans préavis ?", want: "dans quels cas un cdi peut il être rompu sans préavis"},
		{name: "digits removed", in: "Article L1234-5", want: "article l"},
		{name: "apostrophe removed", in: "Qu'est-ce qu'un licenciement", want: "qu est ce qu un licenciement"},
		{name: "accents kept and lowered", in: "ÉCONOMIQUE Œuvre ÇA", want: "économique œuvre ça"},
		{name: "whitespace collapsed", in: "  a \t\n  b  ", want: "a b"},
		{name: "only punctuation", in: "?!.,;", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "non latin letters dropped", in: "préavis ß καλή", want: "préavis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Dans quels cas un CDI peut-il être rompu sans préavis ?",
		"Qu'est-ce qu'un licenciement pour motif économique ?",
		"ÀÂÇÉÈÊËÎÏÔÛÙÜŸÑÆŒ",
		"İstanbul \u0085mixed spaces",
		"tab\tnew\nline",
		"",
		"123 456",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestDetectIntent(t *testing.T) {
	d := mustParse(t, testDictionary)

	tests := []struct {
		name   string
		query  string
		want   string
		wantOK bool
	}{
		{name: "cdi broken without notice", query: "Dans quels cas un CDI peut-il être rompu sans préavis ?", want: "rupture_sans_preavis", wantOK: true},
		{name: "second entry", query: "Qu'est-ce qu'un licenciement pour motif économique ?", want: "licenciement_economique", wantOK: true},
		{name: "case insensitive through normalization", query: "RUPTURE SANS PRÉAVIS", want: "rupture_sans_preavis", wantOK: true},
		{name: "no trigger", query: "Un salarié peut-il contester un licenciement ?", wantOK: false},
		{name: "accent required", query: "rompu sans preavis", wantOK: false},
		{name: "empty query", query: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := DetectIntent(tt.query, d)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectIntent_SubstringMatchesMidWord(t *testing.T) {
	d := mustParse(t, `
prefix:
  intentions_utilisateur: ["licenci"]
  concepts_juridiques_centrals: []
  termes_juridiques_textes: []
  codes_cibles: []
  articles_cibles: []
`)
	got, ok, err := DetectIntent("J'ai été licencié hier", d)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "prefix", got)
}

func TestDetectIntent_FirstDeclaredWins(t *testing.T) {
	d := mustParse(t, `
second_alpha:
  intentions_utilisateur: ["préavis"]
first_alpha:
  intentions_utilisateur: ["rompu sans préavis"]
`)
	got, ok, err := DetectIntent("rompu sans préavis", d)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second_alpha", got)
}

func TestDetectIntent_TriggersNotNormalized(t *testing.T) {
	d := mustParse(t, `
upper:
  intentions_utilisateur: ["Rompu Sans Préavis"]
`)
	_, ok, err := DetectIntent("rompu sans préavis", d)
	require.NoError(t, err)
	assert.False(t, ok)

	issues := LintTriggers(d)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "rompu sans préavis")
}

func TestDetectIntent_SchemaError(t *testing.T) {
	d := mustParse(t, `
broken:
  concepts_juridiques_centrals: ["x"]
ok:
  intentions_utilisateur: ["anything"]
`)
	_, _, err := DetectIntent("anything", d)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindSchema))
}

func TestDetectIntent_SchemaErrorOnlyWhenReached(t *testing.T) {
	d := mustParse(t, `
ok:
  intentions_utilisateur: ["anything"]
broken:
  concepts_juridiques_centrals: ["x"]
`)
	got, ok, err := DetectIntent("anything", d)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ok", got)
}

func TestEnrich(t *testing.T) {
	d := mustParse(t, testDictionary)
	query := "Dans quels cas un CDI peut-il être rompu sans préavis ?"

	t.Run("appends concepts then terms", func(t *testing.T) {
		got, err := Enrich(query, "rupture_sans_preavis", d)
		require.NoError(t, err)
		assert.Equal(t, query+" faute grave faute lourde préavis indemnité compensatrice", got)
		assert.True(t, strings.HasPrefix(got, query+" "))
	})

	t.Run("unknown intent is a precondition violation", func(t *testing.T) {
		_, err := Enrich(query, "unknown", d)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindPrecondition))
	})

	t.Run("missing vocabulary is a schema error", func(t *testing.T) {
		partial := mustParse(t, "partial:\n  intentions_utilisateur: [\"x\"]\n  concepts_juridiques_centrals: [\"c\"]\n")
		_, err := Enrich(query, "partial", partial)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindSchema))
		assert.Contains(t, err.Error(), dictionary.FieldTextTerms)
	})

	t.Run("empty vocabulary keeps trailing separator", func(t *testing.T) {
		empty := mustParse(t, `
bare:
  intentions_utilisateur: ["x"]
  concepts_juridiques_centrals: []
  termes_juridiques_textes: []
`)
		got, err := Enrich("q", "bare", empty)
		require.NoError(t, err)
		assert.Equal(t, "q ", got)
	})
}

func TestPipeline_Process(t *testing.T) {
	p := NewPipeline(mustParse(t, testDictionary))

	t.Run("intent detected and query enriched", func(t *testing.T) {
		query := "Dans quels cas un CDI peut-il être rompu sans préavis ?"
		res, err := p.Process(query)
		require.NoError(t, err)

		require.NotNil(t, res.IntentDetected)
		assert.Equal(t, "rupture_sans_preavis", res.Intent())
		assert.True(t, strings.HasPrefix(res.EnrichedQuery, query))
		for _, term := range []string{"faute grave", "faute lourde", "préavis", "indemnité compensatrice"} {
			assert.Contains(t, res.EnrichedQuery, term)
		}
		assert.Equal(t, []string{"Code du travail"}, res.TargetCodes)
		assert.Equal(t, []string{"L1234-1", "L1234-5"}, res.TargetArticles)
		assert.Empty(t, res.Notes)
	})

	t.Run("no intent returns query unchanged", func(t *testing.T) {
		query := "Quel temps fera-t-il demain ?"
		res, err := p.Process(query)
		require.NoError(t, err)

		assert.Nil(t, res.IntentDetected)
		assert.Equal(t, "", res.Intent())
		assert.Equal(t, query, res.EnrichedQuery)
		assert.Equal(t, NoIntentNote, res.Notes)
		assert.Nil(t, res.TargetCodes)
		assert.Nil(t, res.TargetArticles)
	})

	t.Run("missing targets surface as schema error", func(t *testing.T) {
		partial := NewPipeline(mustParse(t, `
partial:
  intentions_utilisateur: ["x"]
  concepts_juridiques_centrals: []
  termes_juridiques_textes: []
`))
		_, err := partial.Process("x")
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindSchema))
	})
}

func TestPipeline_ConcurrentReaders(t *testing.T) {
	p := NewPipeline(mustParse(t, testDictionary))
	query := "rupture sans préavis"

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := p.Process(query)
			if err == nil {
				results[i] = res.EnrichedQuery
			}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0], r)
		assert.NotEmpty(t, r)
	}
}

func TestPipeline_BundledDictionary(t *testing.T) {
	d, err := dictionary.LoadFromFile(filepath.Join("..", "..", "configs", "juridical_dictionary.yml"))
	require.NoError(t, err)
	assert.Empty(t, LintTriggers(d))

	res, err := NewPipeline(d).Process("Dans quels cas un CDI peut-il être rompu sans préavis ?")
	require.NoError(t, err)
	assert.Equal(t, "rupture_sans_preavis", res.Intent())
}
