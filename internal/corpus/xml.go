package corpus

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
)

const DefaultXMLMinTextLen = 200

// DefaultXMLOptions applies to raw, unchunked XML documents. Limit caps the
// number of .xml files visited.
func DefaultXMLOptions() Options {
	return Options{MinTextLen: DefaultXMLMinTextLen}
}

// LoadXMLDir walks root recursively in lexical order and turns every .xml file
// into one document whose doc_id is the file path and whose text is the
// concatenation of all its text nodes. Unparseable files and texts shorter
// than MinTextLen are skipped.
func LoadXMLDir(root string, opts Options) ([]document.Document, Stats, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Stats{}, apperr.NewConfiguration(fmt.Sprintf("xml corpus %s not found", root), err)
		}
		return nil, Stats{}, apperr.NewConfiguration(fmt.Sprintf("stat xml corpus %s", root), err)
	}
	if !info.IsDir() {
		return nil, Stats{}, apperr.NewConfiguration(fmt.Sprintf("xml corpus %s is not a directory", root), nil)
	}

	var (
		docs  []document.Document
		stats Stats
	)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			slog.Warn("xml corpus entry unreadable", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".xml") {
			return nil
		}
		stats.Files++

		text, err := extractXMLText(path)
		if err != nil {
			slog.Debug("xml file skipped", "path", path, "error", err)
		}
		if err != nil || text == "" || utf8.RuneCountInString(text) < opts.MinTextLen {
			stats.Skipped++
		} else {
			docs = append(docs, document.Document{DocID: path, Text: text})
		}

		if opts.Limit > 0 && stats.Files >= opts.Limit {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, stats, apperr.NewConfiguration(fmt.Sprintf("walk xml corpus %s", root), err)
	}

	stats.Kept = len(docs)
	slog.Info("xml corpus loaded",
		"root", root,
		"files", stats.Files,
		"kept", stats.Kept,
		"skipped", stats.Skipped,
	)
	return docs, stats, nil
}

func extractXMLText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return ExtractXMLText(f)
}

// ExtractXMLText streams the tokens of an XML document and joins its trimmed
// character data with single spaces. Element names, namespaces, attributes
// and comments do not contribute.
func ExtractXMLText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		parts []string
		depth int
		root  bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			root = true
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 {
				continue
			}
			if s := strings.TrimSpace(string(t)); s != "" {
				parts = append(parts, s)
			}
		}
	}
	if !root {
		return "", errors.New("decode xml: no root element")
	}

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " "), nil
}
