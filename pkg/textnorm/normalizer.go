package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks so that "mañana", "MAÑANA" and
// "manana" all normalize to the same key. Built once; transform.Chain is
// safe for concurrent use via fresh transformers per call.
func foldTransformer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold lowercases the input, removes diacritics and collapses internal
// whitespace. The result is the canonical form used for trigger matching
// and cache signatures.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	out, _, err := transform.String(foldTransformer(), s)
	if err != nil {
		// Fall back to the lowercased input; matching degrades gracefully
		// for the affected characters instead of failing the request.
		out = s
	}

	return strings.Join(strings.Fields(out), " ")
}

// Tokenize folds the input and splits it into word tokens. Punctuation is
// treated as a separator; digits stay inside tokens so "25" survives.
func Tokenize(s string) []string {
	folded := Fold(s)
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ContainsPhrase reports whether the folded haystack contains the folded
// phrase as a substring on word boundaries.
func ContainsPhrase(haystack, phrase string) bool {
	h := " " + Fold(haystack) + " "
	p := " " + Fold(phrase) + " "
	return strings.Contains(h, p)
}
