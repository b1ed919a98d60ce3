package runner

import "github.com/DjordjeVuckovic/juris-bench/internal/bench/spec"

var DefaultKValues = []int{3, 5, 10}

const (
	DefaultMaxK       = 10
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	KValues    []int `json:"k_values"`
	MaxK       int   `json:"max_k"`
	WarmupRuns int   `json:"warmup_runs"`
	Runs       int   `json:"runs"`
}

func DefaultConfig() Config {
	return Config{
		KValues:    DefaultKValues,
		MaxK:       DefaultMaxK,
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
	}
}

// ConfigFromSpec takes metric and run settings from a validated spec.
func ConfigFromSpec(bs *spec.BenchSpec) Config {
	return Config{
		KValues:    bs.Metrics.KValues,
		MaxK:       bs.Metrics.MaxK,
		WarmupRuns: bs.Runs.Warmup,
		Runs:       bs.Runs.Iterations,
	}
}
