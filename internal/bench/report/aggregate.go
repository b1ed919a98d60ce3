package report

import (
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/runner"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/spec"
)

// Generate builds the report of a run. bs may be nil; it only contributes
// engine metadata.
func Generate(br *runner.BenchmarkResult, bs *spec.BenchSpec) *Report {
	r := &Report{
		Meta: BenchMeta{
			RunID:             br.RunID.String(),
			Timestamp:         br.StartedAt,
			Duration:          br.Duration,
			DictionaryVersion: br.DictionaryVersion,
			Environment:       NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			KValues: br.Config.KValues,
			MaxK:    br.Config.MaxK,
			Runs:    br.Config.Runs,
		},
	}
	if bs != nil {
		r.Meta.Engines = make(map[string]EngineInfo, len(bs.Engines))
		for name, eng := range bs.Engines {
			r.Meta.Engines[name] = EngineInfo{Type: eng.Type, Index: eng.Index}
		}
	}

	for _, jr := range br.Jobs {
		r.Jobs = append(r.Jobs, generateJob(jr, br.Config.KValues))
	}
	return r
}

func generateJob(jr *runner.JobResult, kValues []int) JobReport {
	out := JobReport{
		JobName:          jr.JobName,
		Suite:            jr.SuiteName,
		SuiteVersion:     jr.SuiteVersion,
		SuiteFingerprint: jr.SuiteFingerprint,
		Understanding:    jr.Understanding,
	}

	for _, qID := range jr.QueryOrder {
		for _, engName := range jr.EngineNames {
			qr := jr.Results[qID][engName]
			entry := Entry{
				QueryID:       qID,
				EngineName:    engName,
				Intent:        qr.Intent,
				SentQuery:     qr.SentQuery,
				NDCG:          qr.Scores.NDCG,
				Recall:        qr.Scores.Recall,
				RR:            qr.Scores.ReciprocalRank,
				Judgments:     qr.Scores.Judgments,
				RankedKeys:    qr.RankedKeys,
				RelevantFound: qr.Scores.RelevantFound,
				TotalMatches:  qr.TotalMatches,
				Latency:       fromRunnerLatencyStats(qr.Latency),
			}
			if qr.Error != nil {
				entry.Error = qr.Error.Error()
			}
			out.PerQuery = append(out.PerQuery, entry)
		}
	}

	out.Aggregated = aggregate(jr, kValues)
	return out
}

func aggregate(jr *runner.JobResult, kValues []int) []AggregatedEntry {
	entries := make([]AggregatedEntry, 0, len(jr.EngineNames))

	for _, engName := range jr.EngineNames {
		agg := AggregatedEntry{
			EngineName: engName,
			NDCG:       make(map[int]float64, len(kValues)),
			Recall:     make(map[int]float64, len(kValues)),
		}

		var (
			rr        []float64
			ndcg      = make(map[int][]float64, len(kValues))
			recall    = make(map[int][]float64, len(kValues))
			latencies []runner.LatencyStats
		)
		for _, qID := range jr.QueryOrder {
			qr := jr.Results[qID][engName]
			agg.QueryCount++

			if qr.Error != nil {
				agg.ErrorCount++
				continue
			}

			rr = append(rr, qr.Scores.ReciprocalRank)
			latencies = append(latencies, qr.Latency)
			for _, k := range kValues {
				ndcg[k] = append(ndcg[k], qr.Scores.NDCG[k])
				recall[k] = append(recall[k], qr.Scores.Recall[k])
			}
		}

		agg.MRR = metrics.Mean(rr)
		for _, k := range kValues {
			agg.NDCG[k] = metrics.Mean(ndcg[k])
			agg.Recall[k] = metrics.Mean(recall[k])
		}
		agg.Latency = fromRunnerLatencyStats(runner.AggregateLatencyStats(latencies))

		entries = append(entries, agg)
	}

	return entries
}
