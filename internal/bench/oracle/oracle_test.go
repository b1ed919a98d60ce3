package oracle

import (
	"testing"

	"github.com/DjordjeVuckovic/juris-bench/internal/bench/suite"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"github.com/stretchr/testify/assert"
)

func withNum(num, text string) document.Document {
	return document.Document{DocID: "d", Text: text, Meta: &document.Meta{Num: num}}
}

func TestKeywordOracle(t *testing.T) {
	o := Keyword([]string{"Faute Grave", "L1234"})

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "case insensitive", text: "licenciement pour FAUTE GRAVE", want: true},
		{name: "keyword with digits", text: "voir article l1234-9", want: true},
		{name: "substring inside word", text: "fautes graves", want: false},
		{name: "no keyword", text: "contrat à durée déterminée", want: false},
		{name: "empty text", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, o.Judge(document.Document{Text: tt.text}))
		})
	}

	t.Run("no keywords never relevant", func(t *testing.T) {
		assert.False(t, Keyword(nil).Judge(document.Document{Text: "faute grave"}))
	})
}

func TestArticlePrefixOracle(t *testing.T) {
	t.Run("article number under prefix", func(t *testing.T) {
		doc := withNum("L1234-3", "")
		assert.True(t, ArticlePrefix([]string{"L1234"}, nil).Judge(doc))
		assert.False(t, ArticlePrefix([]string{"L1233"}, nil).Judge(doc))

		noNum := document.Document{Text: "préavis faute grave"}
		assert.False(t, ArticlePrefix([]string{"L1234"}, nil).Judge(noNum))
	})

	t.Run("any of several prefixes", func(t *testing.T) {
		o := ArticlePrefix([]string{"L1471", "L1235"}, nil)
		assert.True(t, o.Judge(withNum("L1235-1", "")))
		assert.True(t, o.Judge(withNum("L1471-1", "")))
		assert.False(t, o.Judge(withNum("L1234-1", "")))
	})

	t.Run("prefix is case sensitive", func(t *testing.T) {
		assert.False(t, ArticlePrefix([]string{"L1234"}, nil).Judge(withNum("l1234-1", "")))
	})

	t.Run("fallback only without meta num", func(t *testing.T) {
		o := ArticlePrefix([]string{"L1234"}, []string{"préavis"})
		assert.True(t, o.Judge(document.Document{Text: "durée du Préavis"}))
		assert.True(t, o.Judge(withNum("", "durée du préavis")))
		assert.False(t, o.Judge(withNum("L1233-3", "durée du préavis")))
	})

	t.Run("no prefixes and no fallback", func(t *testing.T) {
		o := ArticlePrefix(nil, nil)
		assert.False(t, o.Judge(document.Document{Text: "préavis"}))
		assert.False(t, o.Judge(withNum("L1234-1", "")))
	})
}

func TestForQuery(t *testing.T) {
	t.Run("v1 queries use keywords", func(t *testing.T) {
		o := ForQuery(suite.V1().Queries[0])
		assert.IsType(t, &KeywordOracle{}, o)
		assert.True(t, o.Judge(document.Document{Text: "une faute lourde"}))
	})

	t.Run("v2 queries use article prefixes", func(t *testing.T) {
		o := ForQuery(suite.V2().Queries[2])
		assert.IsType(t, &ArticlePrefixOracle{}, o)
		assert.True(t, o.Judge(withNum("L1235-2", "")))
		assert.True(t, o.Judge(document.Document{Text: "saisine du conseil"}))
	})

	t.Run("no oracle spec", func(t *testing.T) {
		o := ForQuery(suite.Query{ID: "x", Question: "q"})
		assert.False(t, o.Judge(document.Document{Text: "anything"}))
	})
}
