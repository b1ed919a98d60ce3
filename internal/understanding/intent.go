package understanding

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/DjordjeVuckovic/juris-bench/internal/dictionary"
)

// DetectIntent returns the key of the first dictionary entry, in declaration
// order, having a trigger phrase that is a substring of the normalized query.
// Substring means mid-word matches count. Trigger phrases are used as stored.
// When several entries would match, the earliest declared wins.
func DetectIntent(query string, dict *dictionary.Dictionary) (string, bool, error) {
	normalized := Normalize(query)

	var (
		found string
		err   error
	)
	dict.Each(func(e *dictionary.Entry) bool {
		triggers, terr := e.Triggers()
		if terr != nil {
			err = terr
			return false
		}
		for _, phrase := range triggers {
			if strings.Contains(normalized, phrase) {
				found = e.Key
				return false
			}
		}
		return true
	})

	if err != nil {
		return "", false, err
	}
	return found, found != "", nil
}

// Enrich appends the intent vocabulary (central concepts, then text terms) to
// the query, which is kept verbatim as the prefix. An unknown intent key is a
// caller error.
func Enrich(query, intentKey string, dict *dictionary.Dictionary) (string, error) {
	entry, ok := dict.Lookup(intentKey)
	if !ok {
		return "", apperr.NewPrecondition(fmt.Sprintf("intent %q is not in dictionary", intentKey))
	}

	vocab, err := entry.Vocabulary()
	if err != nil {
		return "", err
	}

	return query + " " + strings.Join(vocab, " "), nil
}

// LintTriggers lists trigger phrases that are not in normalized form and so
// can never match a normalized query.
func LintTriggers(dict *dictionary.Dictionary) []string {
	var issues []string
	dict.Each(func(e *dictionary.Entry) bool {
		for _, phrase := range e.UserIntents {
			if n := Normalize(phrase); n != phrase {
				issues = append(issues, fmt.Sprintf("%s: %q should be %q", e.Key, phrase, n))
			}
		}
		return true
	})
	return issues
}
