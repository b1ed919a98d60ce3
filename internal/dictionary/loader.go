package dictionary

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"gopkg.in/yaml.v3"
)

const versionLen = 12

func LoadFromFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfiguration(fmt.Sprintf("read dictionary %q", path), err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, err
	}
	d.source = path

	slog.Info("Dictionary loaded", "path", path, "intents", d.Len(), "version", d.version)
	return d, nil
}

type rawEntry struct {
	UserIntents     *[]string `yaml:"intentions_utilisateur"`
	CentralConcepts *[]string `yaml:"concepts_juridiques_centrals"`
	TextTerms       *[]string `yaml:"termes_juridiques_textes"`
	TargetCodes     *[]string `yaml:"codes_cibles"`
	TargetArticles  *[]string `yaml:"articles_cibles"`
}

// Parse decodes a YAML mapping of intent key to intent definition. Entry order
// follows the document. Absent fields are not rejected here; they surface as
// schema errors once the entry is consumed (or through Validate).
func Parse(data []byte) (*Dictionary, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperr.NewParse("decode dictionary YAML", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, apperr.NewParse("dictionary is empty", nil)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, apperr.NewParse(fmt.Sprintf("dictionary root must be a mapping, got %s", kindName(root.Kind)), nil)
	}

	d := &Dictionary{
		entries: make([]Entry, 0, len(root.Content)/2),
		index:   make(map[string]int, len(root.Content)/2),
		version: contentVersion(data),
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		key := keyNode.Value
		if keyNode.Kind != yaml.ScalarNode || key == "" {
			return nil, apperr.NewParse(fmt.Sprintf("intent key at line %d must be a non-empty scalar", keyNode.Line), nil)
		}
		if _, dup := d.index[key]; dup {
			return nil, apperr.NewParse(fmt.Sprintf("intent %q declared twice (line %d)", key, keyNode.Line), nil)
		}
		if valNode.Kind != yaml.MappingNode {
			return nil, apperr.NewParse(fmt.Sprintf("intent %q must be a mapping, got %s", key, kindName(valNode.Kind)), nil)
		}

		var raw rawEntry
		if err := valNode.Decode(&raw); err != nil {
			return nil, apperr.NewParse(fmt.Sprintf("decode intent %q", key), err)
		}

		d.index[key] = len(d.entries)
		d.entries = append(d.entries, raw.toEntry(key))
	}

	return d, nil
}

func (r rawEntry) toEntry(key string) Entry {
	e := Entry{Key: key, missing: make(map[string]bool)}
	take := func(field string, src *[]string, dst *[]string) {
		if src == nil {
			e.missing[field] = true
			return
		}
		*dst = *src
	}
	take(FieldUserIntents, r.UserIntents, &e.UserIntents)
	take(FieldCentralConcepts, r.CentralConcepts, &e.CentralConcepts)
	take(FieldTextTerms, r.TextTerms, &e.TextTerms)
	take(FieldTargetCodes, r.TargetCodes, &e.TargetCodes)
	take(FieldTargetArticles, r.TargetArticles, &e.TargetArticles)
	return e
}

func contentVersion(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:versionLen]
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "unknown node"
	}
}
