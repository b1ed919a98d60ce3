package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/juris-bench/internal/bench/engine"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/oracle"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/spec"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/suite"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"github.com/DjordjeVuckovic/juris-bench/internal/understanding"
	"github.com/google/uuid"
)

// Runner evaluates benchmark suites against retrieval engines. Queries and
// engines are run sequentially so latencies are not skewed by contention.
type Runner struct {
	config   Config
	pipeline *understanding.Pipeline
}

type Option func(*Runner)

// WithPipeline enables query understanding for jobs that request it.
func WithPipeline(p *understanding.Pipeline) Option {
	return func(r *Runner) {
		r.pipeline = p
	}
}

func New(cfg Config, opts ...Option) *Runner {
	r := &Runner{config: cfg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) RunAll(
	ctx context.Context,
	bs *spec.BenchSpec,
	executors map[string]engine.Executor,
) (*BenchmarkResult, error) {
	br := &BenchmarkResult{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Config:    r.config,
	}
	if r.pipeline != nil {
		br.DictionaryVersion = r.pipeline.Dictionary().Version()
	}
	slog.Info("benchmark run started", "run_id", br.RunID, "jobs", len(bs.Jobs))

	for _, job := range bs.Jobs {
		s, err := suite.Get(job.Suite)
		if err != nil {
			return nil, fmt.Errorf("load suite for job %q: %w", job.Name, err)
		}

		jr, err := r.RunJob(ctx, job, s, executors)
		if err != nil {
			return nil, fmt.Errorf("run job %q: %w", job.Name, err)
		}
		br.Jobs = append(br.Jobs, jr)
	}

	br.Duration = time.Since(br.StartedAt)
	slog.Info("benchmark run completed", "run_id", br.RunID, "duration", br.Duration)
	return br, nil
}

func (r *Runner) RunJob(
	ctx context.Context,
	job spec.Job,
	s *suite.Suite,
	executors map[string]engine.Executor,
) (*JobResult, error) {
	if job.Understanding && r.pipeline == nil {
		return nil, fmt.Errorf("job %q enables understanding but no pipeline is configured", job.Name)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid suite %q: %w", s.Name, err)
	}

	for _, engName := range job.Engines {
		if _, ok := executors[engName]; !ok {
			return nil, fmt.Errorf("executor %q not found", engName)
		}
	}

	jr := &JobResult{
		JobName:          job.Name,
		SuiteName:        s.Name,
		SuiteVersion:     s.Version,
		SuiteFingerprint: s.Fingerprint(),
		Understanding:    job.Understanding,
		Results:          make(map[string]map[string]QueryResult),
		EngineNames:      job.Engines,
	}

	for _, q := range s.Queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sent, intent, err := r.prepareQuery(q.Question, job.Understanding)
		if err != nil {
			return nil, fmt.Errorf("understand query %q: %w", q.ID, err)
		}

		jr.QueryOrder = append(jr.QueryOrder, q.ID)
		jr.Results[q.ID] = make(map[string]QueryResult, len(job.Engines))
		o := oracle.ForQuery(q)

		for _, engName := range job.Engines {
			qr := r.runQuery(ctx, executors[engName], q, sent, o)
			qr.JobName = job.Name
			qr.Intent = intent
			jr.Results[q.ID][engName] = qr

			if qr.Error != nil {
				slog.Warn("query failed", "job", job.Name, "query", q.ID, "engine", engName, "error", qr.Error)
				continue
			}
			slog.Debug("query evaluated",
				"job", job.Name,
				"query", q.ID,
				"engine", engName,
				"rr", qr.Scores.ReciprocalRank,
				"relevant_found", qr.Scores.RelevantFound,
			)
		}
	}

	return jr, nil
}

// prepareQuery returns the text to send and the detected intent, if any.
func (r *Runner) prepareQuery(question string, understand bool) (string, string, error) {
	if !understand {
		return question, "", nil
	}
	res, err := r.pipeline.Process(question)
	if err != nil {
		return "", "", err
	}
	return res.EnrichedQuery, res.Intent(), nil
}

func (r *Runner) runQuery(
	ctx context.Context,
	exec engine.Executor,
	q suite.Query,
	sent string,
	o oracle.Oracle,
) QueryResult {
	qr := QueryResult{
		QueryID:    q.ID,
		Question:   q.Question,
		EngineName: exec.Name(),
		SentQuery:  sent,
	}

	result := r.executeWithRetries(ctx, exec, sent, r.config.WarmupRuns, r.config.Runs)
	if result.err != nil {
		qr.Error = result.err
		return qr
	}

	qr.Scores = metrics.ComputeAll(result.ranked, o, r.config.KValues)
	qr.RankedKeys = make([]string, len(result.ranked))
	for i, hit := range result.ranked {
		qr.RankedKeys[i] = hit.Document.Key()
	}
	qr.TotalMatches = result.totalMatches
	qr.Latency = result.latencyStats
	return qr
}

type execResult struct {
	ranked       []document.Ranked
	totalMatches int64
	latencyStats LatencyStats
	err          error
}

func (r *Runner) executeWithRetries(
	ctx context.Context,
	exec engine.Executor,
	query string,
	warmup, runs int,
) execResult {
	for i := 0; i < warmup; i++ {
		_, _ = exec.Search(ctx, query, r.config.MaxK)
	}

	var latencies []time.Duration
	var lastExec *engine.Execution
	var lastErr error

	for i := 0; i < max(runs, 1); i++ {
		result, err := exec.Search(ctx, query, r.config.MaxK)
		if err != nil {
			lastErr = err
			continue
		}
		lastExec = result
		latencies = append(latencies, result.Latency)
	}

	if lastExec == nil {
		return execResult{err: lastErr}
	}

	return execResult{
		ranked:       lastExec.Results,
		totalMatches: lastExec.TotalMatches,
		latencyStats: ComputeLatencyStats(latencies),
	}
}
