package spec

import (
	"fmt"
	"os"
	"sort"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/DjordjeVuckovic/juris-bench/internal/bench/suite"
	"github.com/DjordjeVuckovic/juris-bench/internal/corpus"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*BenchSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfiguration("read spec file", err)
	}
	return Parse(data)
}

// Parse expands ${VAR} references against the environment before decoding,
// so connections can be kept out of the spec file.
func Parse(data []byte) (*BenchSpec, error) {
	var s BenchSpec
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &s); err != nil {
		return nil, apperr.NewParse("parse spec YAML", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks a spec built in code and fills the same defaults as Parse.
func (s *BenchSpec) Validate() error {
	return validate(s)
}

var validEngineTypes = map[string]bool{
	EnginePostgres:      true,
	EngineElasticsearch: true,
	EngineAPI:           true,
	EngineReplay:        true,
	EngineMemory:        true,
}

func validate(s *BenchSpec) error {
	if len(s.Jobs) == 0 {
		return fmt.Errorf("spec has no jobs")
	}
	if len(s.Engines) == 0 {
		return fmt.Errorf("spec has no engines")
	}
	for i, j := range s.Jobs {
		if j.Name == "" {
			return fmt.Errorf("job at index %d has no name", i)
		}
		if j.Suite == "" {
			return fmt.Errorf("job %q has no suite", j.Name)
		}
		if _, err := suite.Get(j.Suite); err != nil {
			return fmt.Errorf("job %q: %w", j.Name, err)
		}
		if len(j.Engines) == 0 {
			return fmt.Errorf("job %q has no engines", j.Name)
		}
		for _, engRef := range j.Engines {
			if _, ok := s.Engines[engRef]; !ok {
				return fmt.Errorf("job %q references unknown engine %q", j.Name, engRef)
			}
		}
	}
	if s.UsesUnderstanding() && s.Dictionary == "" {
		return fmt.Errorf("spec enables understanding but sets no dictionary")
	}

	names := make([]string, 0, len(s.Engines))
	for name := range s.Engines {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		eng := s.Engines[name]
		if eng.Type == "" {
			return fmt.Errorf("engine %q has no type", name)
		}
		if !validEngineTypes[eng.Type] {
			return fmt.Errorf("engine %q has invalid type %q", name, eng.Type)
		}
		switch eng.Type {
		case EngineMemory:
			if s.Corpus == nil || s.Corpus.Path == "" {
				return fmt.Errorf("engine %q needs a corpus path", name)
			}
			if s.Corpus.Source != "" {
				if _, err := corpus.ParseSource(s.Corpus.Source); err != nil {
					return fmt.Errorf("engine %q: %w", name, err)
				}
			}
		default:
			if eng.Connection == "" {
				return fmt.Errorf("engine %q has no connection", name)
			}
		}
	}

	if s.Metrics.MaxK <= 0 {
		s.Metrics.MaxK = 10
	}
	if len(s.Metrics.KValues) == 0 {
		s.Metrics.KValues = []int{3, 5, 10}
	}
	for _, k := range s.Metrics.KValues {
		if k < 1 {
			return fmt.Errorf("k value %d must be at least 1", k)
		}
		if k > s.Metrics.MaxK {
			return fmt.Errorf("k value %d exceeds max_k %d", k, s.Metrics.MaxK)
		}
	}
	if s.Runs.Iterations <= 0 {
		s.Runs.Iterations = 1
	}
	if s.Runs.Warmup < 0 {
		s.Runs.Warmup = 0
	}
	return nil
}
