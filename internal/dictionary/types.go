package dictionary

import (
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
)

// YAML field names of an intent definition.
const (
	FieldUserIntents     = "intentions_utilisateur"
	FieldCentralConcepts = "concepts_juridiques_centrals"
	FieldTextTerms       = "termes_juridiques_textes"
	FieldTargetCodes     = "codes_cibles"
	FieldTargetArticles  = "articles_cibles"
)

var requiredFields = []string{
	FieldUserIntents,
	FieldCentralConcepts,
	FieldTextTerms,
	FieldTargetCodes,
	FieldTargetArticles,
}

// Entry is one intent definition. Trigger phrases are expected to be stored
// in normalized form (lowercase, accents kept).
type Entry struct {
	Key             string   `json:"key"`
	UserIntents     []string `json:"intentions_utilisateur"`
	CentralConcepts []string `json:"concepts_juridiques_centrals"`
	TextTerms       []string `json:"termes_juridiques_textes"`
	TargetCodes     []string `json:"codes_cibles"`
	TargetArticles  []string `json:"articles_cibles"`

	missing map[string]bool
}

// Require returns a schema error naming the first absent field.
func (e *Entry) Require(fields ...string) error {
	for _, f := range fields {
		if e.missing[f] {
			return apperr.NewSchema(fmt.Sprintf("intent %q has no %s", e.Key, f))
		}
	}
	return nil
}

// Triggers returns the trigger phrases; they must be present and non-empty.
func (e *Entry) Triggers() ([]string, error) {
	if err := e.Require(FieldUserIntents); err != nil {
		return nil, err
	}
	if len(e.UserIntents) == 0 {
		return nil, apperr.NewSchema(fmt.Sprintf("intent %q has an empty %s", e.Key, FieldUserIntents))
	}
	return e.UserIntents, nil
}

// Vocabulary returns central concepts followed by text terms.
func (e *Entry) Vocabulary() ([]string, error) {
	if err := e.Require(FieldCentralConcepts, FieldTextTerms); err != nil {
		return nil, err
	}
	vocab := make([]string, 0, len(e.CentralConcepts)+len(e.TextTerms))
	vocab = append(vocab, e.CentralConcepts...)
	vocab = append(vocab, e.TextTerms...)
	return vocab, nil
}

// Targets returns the code and article identifiers the intent points at.
func (e *Entry) Targets() (codes []string, articles []string, err error) {
	if err := e.Require(FieldTargetCodes, FieldTargetArticles); err != nil {
		return nil, nil, err
	}
	return slices.Clone(e.TargetCodes), slices.Clone(e.TargetArticles), nil
}

func (e *Entry) clone() Entry {
	return Entry{
		Key:             e.Key,
		UserIntents:     slices.Clone(e.UserIntents),
		CentralConcepts: slices.Clone(e.CentralConcepts),
		TextTerms:       slices.Clone(e.TextTerms),
		TargetCodes:     slices.Clone(e.TargetCodes),
		TargetArticles:  slices.Clone(e.TargetArticles),
		missing:         e.missing,
	}
}

// Dictionary is the immutable, ordered set of intent definitions. It is built
// once by Parse or LoadFromFile and never mutated afterwards, so a single
// instance can be shared by concurrent readers. Reloading means building a new
// Dictionary.
type Dictionary struct {
	entries []Entry
	index   map[string]int
	version string
	source  string
}

// Len returns the number of intents.
func (d *Dictionary) Len() int { return len(d.entries) }

// Version identifies the dictionary content (hash prefix of the source bytes).
func (d *Dictionary) Version() string { return d.version }

// Source is the file the dictionary was read from, empty when parsed from memory.
func (d *Dictionary) Source() string { return d.source }

// Keys returns intent keys in declaration order.
func (d *Dictionary) Keys() []string {
	keys := make([]string, len(d.entries))
	for i := range d.entries {
		keys[i] = d.entries[i].Key
	}
	return keys
}

// Entries returns copies of all entries in declaration order.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	for i := range d.entries {
		out[i] = d.entries[i].clone()
	}
	return out
}

// Lookup returns a copy of the entry for key.
func (d *Dictionary) Lookup(key string) (Entry, bool) {
	i, ok := d.index[key]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i].clone(), true
}

// Each calls fn for every entry in declaration order until fn returns false.
// The entry passed to fn must not be modified.
func (d *Dictionary) Each(fn func(e *Entry) bool) {
	for i := range d.entries {
		if !fn(&d.entries[i]) {
			return
		}
	}
}

// Validate checks every entry for the fields that matching and enrichment
// would otherwise only reject when they reach the entry.
func (d *Dictionary) Validate() error {
	for i := range d.entries {
		e := &d.entries[i]
		if err := e.Require(requiredFields...); err != nil {
			return err
		}
		if _, err := e.Triggers(); err != nil {
			return err
		}
	}
	return nil
}
