package corpus

import (
	"strings"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
)

const (
	FieldText  = "text"
	FieldTitle = "meta.titre"
	FieldDocID = "doc_id"
)

var defaultFilterFields = []string{FieldText, FieldTitle, FieldDocID}

// FilterBySubstring keeps documents whose selected fields contain needle,
// case-insensitively. An empty needle keeps everything. Without fields, text,
// meta.titre and doc_id are searched.
func FilterBySubstring(docs []document.Document, needle string, fields ...string) []document.Document {
	if needle == "" {
		return append([]document.Document(nil), docs...)
	}
	if len(fields) == 0 {
		fields = defaultFilterFields
	}
	needle = strings.ToLower(needle)

	out := make([]document.Document, 0, len(docs))
	parts := make([]string, len(fields))
	for _, doc := range docs {
		for i, f := range fields {
			parts[i] = field(doc, f)
		}
		if strings.Contains(strings.ToLower(strings.Join(parts, " ")), needle) {
			out = append(out, doc)
		}
	}
	return out
}

func field(doc document.Document, name string) string {
	switch name {
	case FieldText:
		return doc.Text
	case FieldTitle:
		return doc.Title()
	case FieldDocID:
		return doc.DocID
	default:
		return ""
	}
}
