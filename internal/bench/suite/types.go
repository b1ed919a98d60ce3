package suite

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const (
	VersionV1 = "v1"
	VersionV2 = "v2"
)

type Suite struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Version     string  `json:"version" yaml:"version"`
	Queries     []Query `json:"queries" yaml:"queries"`
}

// Query is a reference question with its relevance oracle specification.
type Query struct {
	ID       string     `json:"id" yaml:"id"`
	Question string     `json:"question" yaml:"question"`
	Intent   string     `json:"intent,omitempty" yaml:"intent,omitempty"`
	Notes    string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	Oracle   OracleSpec `json:"oracle" yaml:"oracle"`
}

// OracleSpec carries exactly one of Keywords (v1) or Article (v2).
type OracleSpec struct {
	Keywords *KeywordSpec `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Article  *ArticleSpec `json:"article,omitempty" yaml:"article,omitempty"`
}

type KeywordSpec struct {
	Keywords []string `json:"relevant_keywords" yaml:"relevant_keywords"`
}

type ArticleSpec struct {
	NumPrefixes []string `json:"relevant_num_prefixes" yaml:"relevant_num_prefixes"`
	// FallbackKeywords apply only to documents without meta.num. Nil means
	// such documents are never relevant.
	FallbackKeywords []string `json:"relevant_keywords_fallback,omitempty" yaml:"relevant_keywords_fallback,omitempty"`
}

// Kind names the oracle variant: "keyword", "article_prefix" or "none".
func (o OracleSpec) Kind() string {
	switch {
	case o.Article != nil:
		return "article_prefix"
	case o.Keywords != nil:
		return "keyword"
	default:
		return "none"
	}
}

func (s *Suite) Validate() error {
	if len(s.Queries) == 0 {
		return fmt.Errorf("suite %q has no queries", s.Name)
	}
	seen := make(map[string]bool, len(s.Queries))
	for i, q := range s.Queries {
		if q.ID == "" {
			return fmt.Errorf("query at index %d has no id", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("query %q declared twice", q.ID)
		}
		seen[q.ID] = true
		if q.Question == "" {
			return fmt.Errorf("query %q has no question", q.ID)
		}
		if (q.Oracle.Keywords == nil) == (q.Oracle.Article == nil) {
			return fmt.Errorf("query %q must carry exactly one oracle specification", q.ID)
		}
	}
	return nil
}

// Fingerprint hashes the canonical JSON encoding of the suite. Two runs are
// comparable only when their suite fingerprints are equal.
func (s *Suite) Fingerprint() string {
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}
