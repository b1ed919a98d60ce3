package runner

import (
	"math"
	"slices"
	"time"
)

// LatencyStats summarizes the measured runs of one query against one engine.
// Warmup runs are never part of the samples.
type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Median      time.Duration         `json:"median"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sample_count"`
	Samples     []time.Duration       `json:"-"`
}

var reportedPercentiles = []int{50, 95, 99}

func ComputeLatencyStats(samples []time.Duration) LatencyStats {
	stats := LatencyStats{Percentiles: make(map[int]time.Duration, len(reportedPercentiles))}
	if len(samples) == 0 {
		return stats
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	n := len(sorted)

	stats.Min = sorted[0]
	stats.Max = sorted[n-1]
	stats.Mean = total / time.Duration(n)
	stats.Median = interpolate(sorted, 50)
	stats.SampleCount = n
	stats.Samples = samples
	stats.Stddev = sampleStddev(sorted, stats.Mean)

	for _, p := range reportedPercentiles {
		stats.Percentiles[p] = interpolate(sorted, p)
	}
	return stats
}

// sampleStddev uses the n-1 denominator and is zero below two samples.
func sampleStddev(samples []time.Duration, mean time.Duration) time.Duration {
	if len(samples) < 2 {
		return 0
	}
	var sq float64
	for _, d := range samples {
		diff := float64(d - mean)
		sq += diff * diff
	}
	return time.Duration(math.Sqrt(sq / float64(len(samples)-1)))
}

// interpolate returns the p-th percentile of sorted using linear
// interpolation between closest ranks.
func interpolate(sorted []time.Duration, p int) time.Duration {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	pos := float64(p) / 100 * float64(len(sorted)-1)
	lo := int(pos)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return time.Duration(float64(sorted[lo])*(1-frac) + float64(sorted[lo+1])*frac)
}

// AggregateLatencyStats pools the raw samples of several queries.
func AggregateLatencyStats(stats []LatencyStats) LatencyStats {
	var pooled []time.Duration
	for _, s := range stats {
		pooled = append(pooled, s.Samples...)
	}
	return ComputeLatencyStats(pooled)
}

func (s LatencyStats) P50() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P95() time.Duration { return s.Percentiles[95] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }

func (s LatencyStats) IsZero() bool { return s.SampleCount == 0 }
