package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/juris-bench/internal/bench/runner"
)

type Report struct {
	Meta   BenchMeta    `json:"meta"`
	Jobs   []JobReport  `json:"jobs"`
	Config ReportConfig `json:"config"`
}

type BenchMeta struct {
	RunID             string                `json:"run_id"`
	Timestamp         time.Time             `json:"timestamp"`
	Duration          time.Duration         `json:"duration"`
	DictionaryVersion string                `json:"dictionary_version,omitempty"`
	Engines           map[string]EngineInfo `json:"engines,omitempty"`
	Environment       EnvironmentInfo       `json:"environment"`
}

type EngineInfo struct {
	Type  string `json:"type"`
	Index string `json:"index,omitempty"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type JobReport struct {
	JobName          string            `json:"job_name"`
	Suite            string            `json:"suite"`
	SuiteVersion     string            `json:"suite_version"`
	SuiteFingerprint string            `json:"suite_fingerprint"`
	Understanding    bool              `json:"understanding"`
	Aggregated       []AggregatedEntry `json:"aggregated"`
	PerQuery         []Entry           `json:"per_query"`
}

type ReportConfig struct {
	KValues []int `json:"k_values"`
	MaxK    int   `json:"max_k"`
	Runs    int   `json:"runs"`
}

type Entry struct {
	QueryID       string          `json:"query_id"`
	EngineName    string          `json:"engine"`
	Intent        string          `json:"intent,omitempty"`
	SentQuery     string          `json:"sent_query"`
	NDCG          map[int]float64 `json:"ndcg_at_k"`
	Recall        map[int]float64 `json:"recall_at_k"`
	RR            float64         `json:"reciprocal_rank"`
	Judgments     []bool          `json:"judgments"`
	RankedKeys    []string        `json:"ranked"`
	RelevantFound int             `json:"relevant_found"`
	TotalMatches  int64           `json:"total_matches"`
	Latency       LatencyStats    `json:"latency"`
	Error         string          `json:"error,omitempty"`
}

// AggregatedEntry holds the means over the queries that ran without error.
type AggregatedEntry struct {
	EngineName string          `json:"engine"`
	NDCG       map[int]float64 `json:"ndcg_at_k"`
	Recall     map[int]float64 `json:"recall_at_k"`
	MRR        float64         `json:"mrr"`
	Latency    LatencyStats    `json:"latency"`
	QueryCount int             `json:"query_count"`
	ErrorCount int             `json:"error_count"`
}

type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Median      time.Duration         `json:"median"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sample_count"`
}

func fromRunnerLatencyStats(s runner.LatencyStats) LatencyStats {
	return LatencyStats{
		Min:         s.Min,
		Max:         s.Max,
		Mean:        s.Mean,
		Median:      s.Median,
		Stddev:      s.Stddev,
		Percentiles: s.Percentiles,
		SampleCount: s.SampleCount,
	}
}

func (s LatencyStats) P50() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P95() time.Duration { return s.Percentiles[95] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }
