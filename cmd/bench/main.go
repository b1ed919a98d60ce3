package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/juris-bench/internal/bench/engine"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/report"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/runner"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/spec"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/suite"
	"github.com/DjordjeVuckovic/juris-bench/internal/dictionary"
	"github.com/DjordjeVuckovic/juris-bench/internal/understanding"
	"github.com/DjordjeVuckovic/juris-bench/pkg/config/env"
)

const (
	defaultDictionaryPath = "configs/juridical_dictionary.yml"
	stdoutPath            = "-"
)

func main() {
	slog.SetLogLoggerLevel(env.LogLevel())

	cfg := parseFlags()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Mode {
	case "bench":
		runBench(ctx, cfg)
	case "understand":
		runUnderstand(cfg)
	case "suites":
		listSuites()
	default:
		slog.Error("Unknown mode", "mode", cfg.Mode)
		os.Exit(1)
	}
}

func runBench(ctx context.Context, cfg cliConfig) {
	var (
		bs  *spec.BenchSpec
		err error
	)
	if cfg.SpecPath != "" {
		bs, err = spec.LoadFromFile(cfg.SpecPath)
	} else {
		bs, err = buildQuickSpec(cfg)
	}
	if err != nil {
		slog.Error("Failed to load spec", "path", cfg.SpecPath, "error", err)
		os.Exit(1)
	}

	var opts []runner.Option
	if bs.UsesUnderstanding() {
		path := bs.Dictionary
		if cfg.DictionaryPath != "" {
			path = cfg.DictionaryPath
		}
		pipeline, err := loadPipeline(path)
		if err != nil {
			slog.Error("Failed to load dictionary", "path", path, "error", err)
			os.Exit(1)
		}
		opts = append(opts, runner.WithPipeline(pipeline))
	}

	executors, cleanup, err := engine.CreateFromSpec(ctx, bs)
	if err != nil {
		slog.Error("Failed to create executors", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	result, err := runner.New(runner.ConfigFromSpec(bs), opts...).RunAll(ctx, bs, executors)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		cleanup()
		os.Exit(1)
	}

	if err := outputReport(result, bs, cfg.Output); err != nil {
		slog.Error("Failed to write JSON report", "error", err)
		cleanup()
		os.Exit(1)
	}
}

func buildQuickSpec(cfg cliConfig) (*spec.BenchSpec, error) {
	kValues, err := cfg.parseKValues()
	if err != nil {
		return nil, err
	}

	engines := make(map[string]spec.Engine)
	var engineNames []string
	add := func(name string, eng spec.Engine) {
		engines[name] = eng
		engineNames = append(engineNames, name)
	}

	if cfg.PgConnStr != "" {
		add("pg-fts", spec.Engine{Type: spec.EnginePostgres, Connection: cfg.PgConnStr})
	}
	if cfg.EsAddresses != "" {
		add("es-bm25", spec.Engine{Type: spec.EngineElasticsearch, Connection: cfg.EsAddresses, Index: cfg.EsIndex})
	}
	if cfg.APIURL != "" {
		add("api", spec.Engine{Type: spec.EngineAPI, Connection: cfg.APIURL})
	}

	bs := &spec.BenchSpec{
		Engines: engines,
		Metrics: spec.MetricsConfig{KValues: kValues, MaxK: cfg.MaxK},
		Runs:    spec.RunsConfig{Warmup: cfg.Warmup, Iterations: cfg.Runs},
	}
	if cfg.CorpusPath != "" {
		bs.Corpus = &spec.CorpusConfig{Path: cfg.CorpusPath}
		add("memory", spec.Engine{Type: spec.EngineMemory})
	}
	if len(engineNames) == 0 {
		return nil, fmt.Errorf("quick mode requires -pg, -es-addresses, -api or -corpus")
	}

	if cfg.Understanding {
		bs.Dictionary = defaultDictionaryPath
	}
	bs.Jobs = []spec.Job{{
		Name:          "quick-" + cfg.Suite,
		Suite:         cfg.Suite,
		Engines:       engineNames,
		Understanding: cfg.Understanding,
	}}

	if err := bs.Validate(); err != nil {
		return nil, err
	}
	return bs, nil
}

func loadPipeline(path string) (*understanding.Pipeline, error) {
	dict, err := dictionary.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	for _, issue := range understanding.LintTriggers(dict) {
		slog.Warn("Dictionary trigger is not normalized", "issue", issue)
	}
	return understanding.NewPipeline(dict), nil
}

// outputReport prints the tables, then writes the JSON report to outputPath.
// With outputPath "-" the JSON replaces the tables on stdout.
func outputReport(result *runner.BenchmarkResult, bs *spec.BenchSpec, outputPath string) error {
	rpt := report.Generate(result, bs)
	if outputPath == stdoutPath {
		return report.EncodeJSON(rpt, os.Stdout)
	}
	report.WriteTable(rpt, os.Stdout)

	if outputPath == "" {
		return nil
	}
	if err := report.WriteJSON(rpt, outputPath); err != nil {
		return err
	}
	slog.Info("Report written", "path", outputPath)
	return nil
}

func runUnderstand(cfg cliConfig) {
	if cfg.Query == "" {
		slog.Error("Understand mode requires -query")
		os.Exit(1)
	}
	path := cfg.DictionaryPath
	if path == "" {
		path = defaultDictionaryPath
	}

	pipeline, err := loadPipeline(path)
	if err != nil {
		slog.Error("Failed to load dictionary", "path", path, "error", err)
		os.Exit(1)
	}

	res, err := pipeline.Process(cfg.Query)
	if err != nil {
		slog.Error("Failed to process query", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		slog.Error("Failed to encode result", "error", err)
		os.Exit(1)
	}
}

func listSuites() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Version\tName\tFingerprint\tQueries")
	for _, v := range suite.Versions() {
		s, _ := suite.Get(v)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", s.Version, s.Name, s.Fingerprint(), len(s.Queries))
	}
	tw.Flush()
}
