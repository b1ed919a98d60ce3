package metrics

import "math"

// NDCGAtK computes binary-relevance nDCG over the first k results.
//
// The ideal DCG is built from the number of relevant results found inside the
// window, not from the number of relevant documents in the corpus. The score
// therefore rewards ordering among the found items and does not penalize
// missed documents beyond what RecallAtK reports.
func NDCGAtK(judgments []bool, k int) float64 {
	if k < 1 {
		return 0
	}
	n := min(k, len(judgments))

	var dcg float64
	found := 0
	for i := 0; i < n; i++ {
		if judgments[i] {
			dcg += gain(i + 1)
			found++
		}
	}
	if found == 0 {
		return 0
	}

	var idcg float64
	for j := 1; j <= found; j++ {
		idcg += gain(j)
	}
	return dcg / idcg
}

// gain is the discount at a 1-based rank.
func gain(rank int) float64 {
	return 1 / math.Log2(float64(rank+1))
}
