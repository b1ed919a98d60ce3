package metrics

// Judgments are binary relevance verdicts aligned with a ranked list:
// judgments[i] is the verdict for the result at rank i+1.

// RecallAtK is a hit indicator: 1 if any of the first k results is relevant.
// It is not the fraction of relevant documents retrieved.
func RecallAtK(judgments []bool, k int) float64 {
	if k < 1 {
		return 0
	}
	n := min(k, len(judgments))
	for i := 0; i < n; i++ {
		if judgments[i] {
			return 1
		}
	}
	return 0
}

// ReciprocalRank returns 1/rank of the first relevant result over the whole
// list, not windowed to k.
func ReciprocalRank(judgments []bool) float64 {
	for i, rel := range judgments {
		if rel {
			return 1.0 / float64(i+1)
		}
	}
	return 0
}

// Mean returns the arithmetic mean of values, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
