package runner

import (
	"time"

	"github.com/DjordjeVuckovic/juris-bench/internal/bench/metrics"
	"github.com/google/uuid"
)

type QueryResult struct {
	QueryID    string
	Question   string
	JobName    string
	EngineName string
	// SentQuery is the text actually sent to the engine: the question, or its
	// enriched form when understanding is enabled.
	SentQuery    string
	Intent       string
	Scores       metrics.ScoreSet
	RankedKeys   []string
	TotalMatches int64
	Latency      LatencyStats
	Error        error
}

type JobResult struct {
	JobName          string
	SuiteName        string
	SuiteVersion     string
	SuiteFingerprint string
	Understanding    bool
	Results          map[string]map[string]QueryResult // [queryID][engineName]
	QueryOrder       []string
	EngineNames      []string
}

type BenchmarkResult struct {
	RunID             uuid.UUID
	StartedAt         time.Time
	Duration          time.Duration
	DictionaryVersion string
	Jobs              []*JobResult
	Config            Config
}

func (br *BenchmarkResult) AllEngineNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, jr := range br.Jobs {
		for _, name := range jr.EngineNames {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
