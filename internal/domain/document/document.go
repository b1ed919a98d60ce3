package document

import (
	"strconv"

	"github.com/google/uuid"
)

// chunkNamespace scopes StableID so that re-indexing the same corpus
// overwrites chunks instead of duplicating them.
var chunkNamespace = uuid.MustParse("7f1c1f0e-5b5e-4c3a-9a57-3f0a6b1d2e41")

// Document is a legal text or pre-chunked passage as returned by a retrieval
// engine or produced by the corpus loader.
type Document struct {
	DocID      string `json:"doc_id" yaml:"doc_id"`
	Text       string `json:"text" yaml:"text"`
	ChunkID    string `json:"chunk_id,omitempty" yaml:"chunk_id,omitempty"`
	ChunkIndex *int   `json:"chunk_index,omitempty" yaml:"chunk_index,omitempty"`
	DocType    string `json:"doc_type,omitempty" yaml:"doc_type,omitempty"`
	// Meta is nil when the source carries no structured metadata.
	Meta *Meta `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Meta holds the structured article reference of a chunk.
type Meta struct {
	// Num is the article number, e.g. "L1234-3".
	Num   string `json:"num,omitempty" yaml:"num,omitempty"`
	Titre string `json:"titre,omitempty" yaml:"titre,omitempty"`
}

// ArticleNum returns the article reference and whether it is usable.
// An empty reference counts as absent.
func (d Document) ArticleNum() (string, bool) {
	if d.Meta == nil || d.Meta.Num == "" {
		return "", false
	}
	return d.Meta.Num, true
}

// Title returns meta.titre or "".
func (d Document) Title() string {
	if d.Meta == nil {
		return ""
	}
	return d.Meta.Titre
}

// Key identifies a document within a result list: the chunk id when present,
// the document id otherwise.
func (d Document) Key() string {
	if d.ChunkID != "" {
		return d.ChunkID
	}
	return d.DocID
}

// StableID derives a deterministic id from doc id, chunk id and chunk index.
// Without chunk id and chunk index the text takes their place, so distinct
// passages of one document never share an id.
func (d Document) StableID() uuid.UUID {
	name := d.DocID + "#" + d.ChunkID
	switch {
	case d.ChunkIndex != nil:
		name += "#" + strconv.Itoa(*d.ChunkIndex)
	case d.ChunkID == "":
		name += "#text:" + d.Text
	}
	return uuid.NewSHA1(chunkNamespace, []byte(name))
}

// Ranked is one entry of a result list, ordered by descending Score.
type Ranked struct {
	Document Document `json:"document" yaml:"document"`
	Score    float64  `json:"score" yaml:"score"`
}
