// Package oracle judges whether a retrieved document is relevant to a
// benchmark query. Judgments are deterministic rules over keywords or over the
// structured article reference; they never look at rank or score.
package oracle

import (
	"strings"

	"github.com/DjordjeVuckovic/juris-bench/internal/bench/suite"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
)

type Oracle interface {
	Judge(doc document.Document) bool
}

// Func adapts a plain predicate to Oracle.
type Func func(doc document.Document) bool

func (f Func) Judge(doc document.Document) bool { return f(doc) }

// KeywordOracle marks a document relevant when any keyword, case-folded,
// occurs in its case-folded text.
type KeywordOracle struct {
	keywords []string
}

func Keyword(keywords []string) *KeywordOracle {
	folded := make([]string, len(keywords))
	for i, kw := range keywords {
		folded[i] = strings.ToLower(kw)
	}
	return &KeywordOracle{keywords: folded}
}

func (o *KeywordOracle) Judge(doc document.Document) bool {
	text := strings.ToLower(doc.Text)
	for _, kw := range o.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ArticlePrefixOracle marks a document relevant when meta.num starts with one
// of the accepted prefixes. Documents without meta.num are judged by the
// fallback keywords, or not relevant when there are none.
type ArticlePrefixOracle struct {
	prefixes []string
	fallback *KeywordOracle
}

func ArticlePrefix(prefixes []string, fallbackKeywords []string) *ArticlePrefixOracle {
	o := &ArticlePrefixOracle{prefixes: prefixes}
	if len(fallbackKeywords) > 0 {
		o.fallback = Keyword(fallbackKeywords)
	}
	return o
}

func (o *ArticlePrefixOracle) Judge(doc document.Document) bool {
	num, ok := doc.ArticleNum()
	if !ok {
		if o.fallback == nil {
			return false
		}
		return o.fallback.Judge(doc)
	}

	for _, p := range o.prefixes {
		if strings.HasPrefix(num, p) {
			return true
		}
	}
	return false
}

// ForQuery builds the oracle declared by a benchmark query. A query without
// any oracle specification judges every document not relevant.
func ForQuery(q suite.Query) Oracle {
	switch {
	case q.Oracle.Article != nil:
		return ArticlePrefix(q.Oracle.Article.NumPrefixes, q.Oracle.Article.FallbackKeywords)
	case q.Oracle.Keywords != nil:
		return Keyword(q.Oracle.Keywords.Keywords)
	default:
		return Func(func(document.Document) bool { return false })
	}
}
