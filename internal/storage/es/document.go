package es

import (
	"time"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

const (
	frenchAnalyzer = "french"
	foldedAnalyzer = "legal_folded"
)

// ChunkDocument is the indexed form of a corpus chunk.
type ChunkDocument struct {
	ID         string     `json:"id"`
	DocID      string     `json:"doc_id"`
	ChunkID    string     `json:"chunk_id,omitempty"`
	ChunkIndex *int       `json:"chunk_index,omitempty"`
	DocType    string     `json:"doc_type,omitempty"`
	Text       string     `json:"text"`
	Meta       *ChunkMeta `json:"meta,omitempty"`
	IndexedAt  time.Time  `json:"indexed_at"`
}

type ChunkMeta struct {
	Num   string `json:"num,omitempty"`
	Titre string `json:"titre,omitempty"`
}

type IndexBuilder struct{}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{}
}

func (b *IndexBuilder) mapToESDocument(doc document.Document) ChunkDocument {
	out := ChunkDocument{
		ID:         doc.StableID().String(),
		DocID:      doc.DocID,
		ChunkID:    doc.ChunkID,
		ChunkIndex: doc.ChunkIndex,
		DocType:    doc.DocType,
		Text:       doc.Text,
		IndexedAt:  time.Now().UTC(),
	}
	if doc.Meta != nil {
		out.Meta = &ChunkMeta{Num: doc.Meta.Num, Titre: doc.Meta.Titre}
	}
	return out
}

func (b *IndexBuilder) mapToDomain(doc ChunkDocument) document.Document {
	out := document.Document{
		DocID:      doc.DocID,
		Text:       doc.Text,
		ChunkID:    doc.ChunkID,
		ChunkIndex: doc.ChunkIndex,
		DocType:    doc.DocType,
	}
	if doc.Meta != nil {
		out.Meta = &document.Meta{Num: doc.Meta.Num, Titre: doc.Meta.Titre}
	}
	return out
}

func (b *IndexBuilder) buildSettings() types.IndexSettings {
	return types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				foldedAnalyzer: types.CustomAnalyzer{
					Tokenizer: "standard",
					Filter:    []string{"lowercase", "asciifolding"},
				},
			},
		},
	}
}

func (b *IndexBuilder) buildMapping() types.TypeMapping {
	text := types.NewTextProperty()
	analyzer := frenchAnalyzer
	text.Analyzer = &analyzer
	folded := foldedAnalyzer
	foldedProp := types.NewTextProperty()
	foldedProp.Analyzer = &folded
	text.Fields = map[string]types.Property{
		"folded": foldedProp,
	}

	title := types.NewTextProperty()
	title.Analyzer = &analyzer
	title.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	meta := types.NewObjectProperty()
	meta.Properties = map[string]types.Property{
		"num":   types.NewKeywordProperty(),
		"titre": title,
	}

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewKeywordProperty(),
			"doc_id":      types.NewKeywordProperty(),
			"chunk_id":    types.NewKeywordProperty(),
			"chunk_index": types.NewIntegerNumberProperty(),
			"doc_type":    types.NewKeywordProperty(),
			"text":        text,
			"meta":        meta,
			"indexed_at":  types.NewDateProperty(),
		},
	}
}
