package metrics

import (
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/oracle"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
)

// ScoreSet holds the scores of one ranked list for one benchmark query.
type ScoreSet struct {
	Recall         map[int]float64 `json:"recall_at_k"`
	NDCG           map[int]float64 `json:"ndcg_at_k"`
	ReciprocalRank float64         `json:"reciprocal_rank"`
	Judgments      []bool          `json:"judgments"`
	RelevantFound  int             `json:"relevant_found"`
}

// Judge applies the oracle to every ranked result, preserving order.
func Judge(ranked []document.Ranked, o oracle.Oracle) []bool {
	judgments := make([]bool, len(ranked))
	for i, r := range ranked {
		judgments[i] = o.Judge(r.Document)
	}
	return judgments
}

// ComputeAll judges ranked once and derives every metric for each k.
func ComputeAll(ranked []document.Ranked, o oracle.Oracle, kValues []int) ScoreSet {
	judgments := Judge(ranked, o)

	s := ScoreSet{
		Recall:         make(map[int]float64, len(kValues)),
		NDCG:           make(map[int]float64, len(kValues)),
		ReciprocalRank: ReciprocalRank(judgments),
		Judgments:      judgments,
	}
	for _, rel := range judgments {
		if rel {
			s.RelevantFound++
		}
	}
	for _, k := range kValues {
		s.Recall[k] = RecallAtK(judgments, k)
		s.NDCG[k] = NDCGAtK(judgments, k)
	}
	return s
}
