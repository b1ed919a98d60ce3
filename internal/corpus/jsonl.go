// Package corpus loads the chunked legal corpus used by the indexers and the
// benchmark runner.
package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
)

const (
	DefaultMinTextLen = 50
	maxLineSize       = 16 * 1024 * 1024
)

// Options control which chunks are kept. MinTextLen is counted in characters.
// Limit caps the number of kept chunks; zero means no limit.
type Options struct {
	MinTextLen int
	Limit      int
}

func DefaultOptions() Options {
	return Options{MinTextLen: DefaultMinTextLen}
}

// Stats describes one load. Files is only set by the XML loader.
type Stats struct {
	Lines   int
	Files   int
	Kept    int
	Skipped int
}

type rawChunk struct {
	DocID      json.RawMessage `json:"doc_id"`
	Text       json.RawMessage `json:"text"`
	ChunkID    json.RawMessage `json:"chunk_id"`
	ChunkIndex json.RawMessage `json:"chunk_index"`
	DocType    string          `json:"doc_type"`
	Meta       json.RawMessage `json:"meta"`
}

type rawMeta struct {
	Num   json.RawMessage `json:"num"`
	Titre json.RawMessage `json:"titre"`
}

func LoadFromFile(path string, opts Options) ([]document.Document, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Stats{}, apperr.NewConfiguration(fmt.Sprintf("corpus file %s not found", path), err)
		}
		return nil, Stats{}, apperr.NewConfiguration(fmt.Sprintf("open corpus %s", path), err)
	}
	defer f.Close()

	docs, stats, err := Load(f, opts)
	if err != nil {
		return nil, stats, fmt.Errorf("load corpus %s: %w", path, err)
	}

	slog.Info("corpus loaded",
		"path", path,
		"lines", stats.Lines,
		"kept", stats.Kept,
		"skipped", stats.Skipped,
	)
	return docs, stats, nil
}

// Load reads one chunk per line. Blank or undecodable lines, chunks without
// doc_id, chunks whose text is not a string and chunks shorter than
// MinTextLen are skipped. doc_id may be a string or a non-zero number.
// Chunks carrying neither chunk_id nor chunk_index get their ordinal within
// their document as chunk_index.
func Load(r io.Reader, opts Options) ([]document.Document, Stats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		docs  []document.Document
		stats Stats
	)
	ordinals := make(map[string]int)
	for scanner.Scan() {
		if opts.Limit > 0 && len(docs) >= opts.Limit {
			break
		}
		stats.Lines++

		doc, ok := decodeLine(scanner.Bytes(), opts.MinTextLen)
		if !ok {
			stats.Skipped++
			continue
		}
		if doc.ChunkID == "" && doc.ChunkIndex == nil {
			n := ordinals[doc.DocID]
			ordinals[doc.DocID] = n + 1
			doc.ChunkIndex = &n
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, apperr.NewParse("read corpus lines", err)
	}

	stats.Kept = len(docs)
	return docs, stats, nil
}

func decodeLine(line []byte, minTextLen int) (document.Document, bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return document.Document{}, false
	}

	var raw rawChunk
	if err := json.Unmarshal(line, &raw); err != nil {
		return document.Document{}, false
	}
	docID, isNum := scalarString(raw.DocID)
	if docID == "" || (isNum && isZero(docID)) {
		return document.Document{}, false
	}

	var text string
	if err := json.Unmarshal(raw.Text, &text); err != nil {
		return document.Document{}, false
	}
	if utf8.RuneCountInString(text) < minTextLen {
		return document.Document{}, false
	}

	chunkID, _ := scalarString(raw.ChunkID)
	return document.Document{
		DocID:      docID,
		Text:       text,
		ChunkID:    chunkID,
		ChunkIndex: decodeIndex(raw.ChunkIndex),
		DocType:    raw.DocType,
		Meta:       decodeMeta(raw.Meta),
	}, true
}

// scalarString renders a JSON string or number as text. Any other value,
// null included, yields "".
func scalarString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func isZero(num string) bool {
	f, err := strconv.ParseFloat(num, 64)
	return err == nil && f == 0
}

func decodeIndex(raw json.RawMessage) *int {
	s, isNum := scalarString(raw)
	if !isNum {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return nil
	}
	i := int(f)
	return &i
}

// decodeMeta keeps num and titre when meta is an object. Numeric values are
// rendered as text.
func decodeMeta(raw json.RawMessage) *document.Meta {
	if len(raw) == 0 {
		return nil
	}
	var m rawMeta
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	if m.Num == nil && m.Titre == nil {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			return nil
		}
	}
	num, _ := scalarString(m.Num)
	titre, _ := scalarString(m.Titre)
	return &document.Meta{Num: num, Titre: titre}
}
