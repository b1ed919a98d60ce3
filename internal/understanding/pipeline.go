package understanding

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/juris-bench/internal/dictionary"
)

const NoIntentNote = "Aucune intention métier détectée"

type Result struct {
	IntentDetected *string  `json:"intent_detected"`
	EnrichedQuery  string   `json:"enriched_query"`
	TargetCodes    []string `json:"codes_cibles,omitempty"`
	TargetArticles []string `json:"articles_cibles,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// Intent returns the detected intent key, or "" when none was found.
func (r *Result) Intent() string {
	if r.IntentDetected == nil {
		return ""
	}
	return *r.IntentDetected
}

// Pipeline binds the detection and enrichment steps to one dictionary
// instance. It holds no mutable state; a new dictionary version needs a new
// Pipeline.
type Pipeline struct {
	dict *dictionary.Dictionary
}

func NewPipeline(dict *dictionary.Dictionary) *Pipeline {
	return &Pipeline{dict: dict}
}

func (p *Pipeline) Dictionary() *dictionary.Dictionary {
	return p.dict
}

// Process detects the intent of query and, when one is found, enriches the
// query with its vocabulary. Without an intent the query is returned as is.
func (p *Pipeline) Process(query string) (*Result, error) {
	intent, ok, err := DetectIntent(query, p.dict)
	if err != nil {
		return nil, fmt.Errorf("detect intent: %w", err)
	}

	if !ok {
		slog.Debug("No intent detected", "query", query)
		return &Result{
			EnrichedQuery: query,
			Notes:         NoIntentNote,
		}, nil
	}

	enriched, err := Enrich(query, intent, p.dict)
	if err != nil {
		return nil, fmt.Errorf("enrich query: %w", err)
	}

	entry, _ := p.dict.Lookup(intent)
	codes, articles, err := entry.Targets()
	if err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}

	slog.Debug("Intent detected", "query", query, "intent", intent)
	return &Result{
		IntentDetected: &intent,
		EnrichedQuery:  enriched,
		TargetCodes:    codes,
		TargetArticles: articles,
	}, nil
}
