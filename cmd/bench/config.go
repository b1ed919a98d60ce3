package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

type cliConfig struct {
	Mode           string
	SpecPath       string
	DictionaryPath string
	Query          string
	Output         string

	// quick mode
	Suite         string
	Understanding bool
	PgConnStr     string
	EsAddresses   string
	EsIndex       string
	APIURL        string
	CorpusPath    string
	KValues       string
	MaxK          int
	Warmup        int
	Runs          int
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Mode, "mode", "bench", "Run mode: bench, understand or suites")
	flag.StringVar(&cfg.SpecPath, "spec", "", "Path to bench spec YAML (multi-job mode)")
	flag.StringVar(&cfg.DictionaryPath, "dictionary", "", "Intent dictionary YAML, overrides the spec dictionary")
	flag.StringVar(&cfg.Query, "query", "", "Question to analyse (understand mode)")
	flag.StringVar(&cfg.Output, "out", "", "Output path for the JSON report, - for stdout")

	flag.StringVar(&cfg.Suite, "suite", "v2", "Suite version for quick mode: v1 or v2")
	flag.BoolVar(&cfg.Understanding, "understanding", false, "Send enriched queries in quick mode")
	flag.StringVar(&cfg.PgConnStr, "pg", "", "PostgreSQL connection string")
	flag.StringVar(&cfg.EsAddresses, "es-addresses", "", "Elasticsearch address")
	flag.StringVar(&cfg.EsIndex, "es-index", "legal_chunks", "Elasticsearch index name")
	flag.StringVar(&cfg.APIURL, "api", "", "Base URL of a search API")
	flag.StringVar(&cfg.CorpusPath, "corpus", "", "JSONL corpus searched in memory")
	flag.StringVar(&cfg.KValues, "k", "3,5,10", "K values for metrics, comma-separated")
	flag.IntVar(&cfg.MaxK, "max-k", 10, "Number of results retrieved per query")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs before measurement")
	flag.IntVar(&cfg.Runs, "runs", 1, "Number of measured iterations")

	flag.Parse()
	return cfg
}

func (c cliConfig) parseKValues() ([]int, error) {
	parts := strings.Split(c.KValues, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid k value %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("k value must be positive, got %d", v)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
