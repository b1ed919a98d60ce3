package spec

const (
	EnginePostgres      = "postgres"
	EngineElasticsearch = "elasticsearch"
	EngineAPI           = "api"
	EngineReplay        = "replay"
	EngineMemory        = "memory"
)

type BenchSpec struct {
	// Dictionary is the path of the intent dictionary used by jobs with
	// understanding enabled.
	Dictionary string            `yaml:"dictionary"`
	Corpus     *CorpusConfig     `yaml:"corpus,omitempty"`
	Jobs       []Job             `yaml:"jobs"`
	Engines    map[string]Engine `yaml:"engines"`
	Metrics    MetricsConfig     `yaml:"metrics"`
	Runs       RunsConfig        `yaml:"runs"`
}

// CorpusConfig feeds the memory engine.
type CorpusConfig struct {
	// Source is jsonl (default) or xml; for xml, Path is a directory.
	Source     string `yaml:"source"`
	Path       string `yaml:"path"`
	MinTextLen int    `yaml:"min_text_len"`
	Limit      int    `yaml:"limit"`
	Filter     string `yaml:"filter"`
}

type Job struct {
	Name    string   `yaml:"name"`
	Suite   string   `yaml:"suite"`
	Engines []string `yaml:"engines"`
	// Understanding sends the enriched query instead of the raw question.
	Understanding bool `yaml:"understanding"`
}

type Engine struct {
	Type       string `yaml:"type"`
	Connection string `yaml:"connection"`
	Index      string `yaml:"index,omitempty"`
}

type MetricsConfig struct {
	KValues []int `yaml:"k_values"`
	MaxK    int   `yaml:"max_k"`
}

type RunsConfig struct {
	Warmup     int `yaml:"warmup"`
	Iterations int `yaml:"iterations"`
}

// UsesUnderstanding reports whether any job needs the dictionary.
func (s *BenchSpec) UsesUnderstanding() bool {
	for _, j := range s.Jobs {
		if j.Understanding {
			return true
		}
	}
	return false
}
