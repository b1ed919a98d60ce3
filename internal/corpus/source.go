package corpus

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
)

// Source selects the corpus format: a JSONL file of chunks or a directory of
// raw XML documents.
type Source string

const (
	SourceJSONL Source = "jsonl"
	SourceXML   Source = "xml"
)

func ParseSource(s string) (Source, error) {
	switch src := Source(strings.ToLower(strings.TrimSpace(s))); src {
	case SourceJSONL, SourceXML:
		return src, nil
	default:
		return "", apperr.NewValidation(fmt.Sprintf("corpus source must be %q or %q, got %q", SourceXML, SourceJSONL, s))
	}
}

// DefaultOptionsFor returns the minimum text length suited to the source:
// chunks are short, whole XML documents are not.
func DefaultOptionsFor(src Source) Options {
	if src == SourceXML {
		return DefaultXMLOptions()
	}
	return DefaultOptions()
}

// LoadSource reads path as src. For XML, path is the root directory and Limit
// counts files; for JSONL, path is the file and Limit counts kept chunks.
func LoadSource(src Source, path string, opts Options) ([]document.Document, Stats, error) {
	switch src {
	case SourceXML:
		return LoadXMLDir(path, opts)
	case SourceJSONL:
		return LoadFromFile(path, opts)
	default:
		return nil, Stats{}, apperr.NewValidation(fmt.Sprintf("unknown corpus source %q", src))
	}
}
