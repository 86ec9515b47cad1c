package match

import (
	"strings"
	"unicode"
)

// filler words that carry no product identity; dropped before fuzzy scoring so
// "PruShield Life Insurance" and "Pru Shield Life" converge on the same key.
var stopwords = map[string]struct{}{
	"insurance": {},
	"assurance": {},
	"plan":      {},
	"policy":    {},
	"scheme":    {},
	"co":        {},
	"company":   {},
	"ltd":       {},
	"limited":   {},
	"the":       {},
}

// Normalize lowercases, strips punctuation, and collapses whitespace. This is
// the identity form used for exact catalog lookups and stored in the catalog's
// normalized_* columns.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '/':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		default:
			// punctuation: drop entirely
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// fuzzyKey reduces a normalized name further for similarity scoring: stopwords
// removed and remaining tokens squashed, so spacing differences inside a brand
// name ("Pru Shield" vs "PruShield") stop mattering.
func fuzzyKey(normalized string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(normalized) {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		b.WriteString(tok)
	}
	if b.Len() == 0 {
		// all tokens were stopwords; fall back to the squashed original
		return strings.ReplaceAll(normalized, " ", "")
	}
	return b.String()
}
