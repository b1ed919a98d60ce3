package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/juris-bench/internal/corpus"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/factory"
	"github.com/DjordjeVuckovic/juris-bench/pkg/config/env"
)

const defaultBulkSize = 5_000

type IngestConfig struct {
	CorpusPath string
	Source     corpus.Source
	Filter     string
	Corpus     corpus.Options
	BulkSize   int
	Reset      bool
	Storage    *factory.StorageConfig
}

type cliFlags struct {
	corpusPath string
	source     string
	target     string
	filter     string
	minLen     int
	limit      int
	bulkSize   int
	reset      bool
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.StringVar(&f.corpusPath, "corpus", os.Getenv("CORPUS_PATH"), "Path to the JSONL chunk corpus, or root directory of the XML corpus")
	flag.StringVar(&f.source, "source", envOr("CORPUS_SOURCE", string(corpus.SourceJSONL)), "Corpus format: jsonl or xml")
	flag.StringVar(&f.target, "target", os.Getenv("STORAGE_TYPE"), "Storage target: es, pg, file or in_mem")
	flag.StringVar(&f.filter, "filter", "", "Only ingest chunks whose text, title or doc id contains this substring")
	flag.IntVar(&f.minLen, "min-len", -1, "Minimum text length in characters, -1 for the source default (50 jsonl, 200 xml)")
	flag.IntVar(&f.limit, "limit", 0, "Maximum number of kept chunks (jsonl) or visited files (xml), 0 for all")
	flag.IntVar(&f.bulkSize, "bulk", envInt("BULK_SIZE", defaultBulkSize), "Bulk batch size, 0 to save chunks one by one")
	flag.BoolVar(&f.reset, "reset", false, "Drop indexed chunks before ingesting")
	flag.Parse()
	return f
}

func Load() (*IngestConfig, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/ingest/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	f := parseFlags()
	if f.corpusPath == "" {
		return nil, fmt.Errorf("corpus path is not set, use -corpus or CORPUS_PATH")
	}
	if f.target == "" {
		return nil, fmt.Errorf("storage target is not set, use -target or STORAGE_TYPE")
	}

	src, err := corpus.ParseSource(f.source)
	if err != nil {
		return nil, err
	}

	storageCfg, err := factory.FromEnv(storage.Type(f.target))
	if err != nil {
		return nil, err
	}

	opts := corpus.DefaultOptionsFor(src)
	if f.minLen >= 0 {
		opts.MinTextLen = f.minLen
	}
	opts.Limit = f.limit

	return &IngestConfig{
		CorpusPath: f.corpusPath,
		Source:     src,
		Filter:     f.filter,
		Corpus:     opts,
		BulkSize:   f.bulkSize,
		Reset:      f.reset,
		Storage:    storageCfg,
	}, nil
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
