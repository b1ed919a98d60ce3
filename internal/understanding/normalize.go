// Package understanding turns a raw user query into an intent-enriched query
// using a business dictionary. Matching is literal: normalized substrings, no
// scoring and no model.
package understanding

import (
	"strings"
	"unicode"
)

// accented lists the non-ASCII lowercase letters that survive normalization.
const accented = "àâçéèêëîïôûùüÿñæœ"

// Normalize lower-cases text, turns every rune that is not a lowercase Latin
// letter (including the French accented set) or whitespace into a space, then
// collapses whitespace runs and trims. "peut-il" becomes "peut il".
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if keep(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func keep(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	if unicode.IsSpace(r) {
		return true
	}
	return strings.ContainsRune(accented, r)
}
