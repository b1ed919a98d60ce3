package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("versions", func(t *testing.T) {
		assert.Equal(t, []string{VersionV1, VersionV2}, Versions())
	})

	t.Run("every registered suite is valid", func(t *testing.T) {
		for _, v := range Versions() {
			s, err := Get(v)
			require.NoError(t, err)
			require.NoError(t, s.Validate(), "suite %s", v)
			assert.Equal(t, v, s.Version)
			assert.Len(t, s.Queries, 3)
		}
	})

	t.Run("v1 uses keyword oracles", func(t *testing.T) {
		for _, q := range V1().Queries {
			assert.Equal(t, "keyword", q.Oracle.Kind(), q.ID)
			assert.NotEmpty(t, q.Intent, q.ID)
		}
	})

	t.Run("v2 uses article oracles with fallback", func(t *testing.T) {
		for _, q := range V2().Queries {
			assert.Equal(t, "article_prefix", q.Oracle.Kind(), q.ID)
			assert.NotEmpty(t, q.Oracle.Article.FallbackKeywords, q.ID)
		}
		assert.Equal(t, []string{"L1471", "L1235"}, V2().Queries[2].Oracle.Article.NumPrefixes)
	})

	t.Run("unknown version", func(t *testing.T) {
		_, err := Get("v9")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown suite version")
	})

	t.Run("fixtures are frozen across calls", func(t *testing.T) {
		a, _ := Get(VersionV1)
		b, _ := Get(VersionV1)
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
		assert.NotEqual(t, V1().Fingerprint(), V2().Fingerprint())

		a.Queries[0].Oracle.Keywords.Keywords[0] = "edited"
		c, _ := Get(VersionV1)
		assert.Equal(t, "faute grave", c.Queries[0].Oracle.Keywords.Keywords[0])
		assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	})
}

func TestSuite_Validate(t *testing.T) {
	kw := OracleSpec{Keywords: &KeywordSpec{Keywords: []string{"x"}}}

	tests := []struct {
		name    string
		suite   Suite
		wantErr string
	}{
		{name: "no queries", suite: Suite{Name: "s"}, wantErr: "no queries"},
		{name: "missing id", suite: Suite{Queries: []Query{{Question: "q", Oracle: kw}}}, wantErr: "has no id"},
		{name: "duplicate id", suite: Suite{Queries: []Query{{ID: "a", Question: "q", Oracle: kw}, {ID: "a", Question: "q", Oracle: kw}}}, wantErr: "declared twice"},
		{name: "missing question", suite: Suite{Queries: []Query{{ID: "a", Oracle: kw}}}, wantErr: "no question"},
		{name: "no oracle", suite: Suite{Queries: []Query{{ID: "a", Question: "q"}}}, wantErr: "exactly one oracle"},
		{
			name: "two oracles",
			suite: Suite{Queries: []Query{{ID: "a", Question: "q", Oracle: OracleSpec{
				Keywords: &KeywordSpec{},
				Article:  &ArticleSpec{},
			}}}},
			wantErr: "exactly one oracle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.suite.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
