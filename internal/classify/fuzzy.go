package classify

import (
	"strings"

	"github.com/agext/levenshtein"
)

// fuzzyContainsAny matches the way containsAny does, but additionally
// accepts single-word terms at Levenshtein distance 1 from any token of the
// text. OCR frequently mangles one character of a brand name ("v1sa",
// "mastercord"); multi-word terms stay exact-substring only.
func fuzzyContainsAny(text string, terms []string) bool {
	if containsAny(text, terms) {
		return true
	}
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	for _, term := range terms {
		if strings.ContainsRune(term, ' ') || len(term) < 4 {
			continue
		}
		for _, tok := range tokens {
			// same length only: one substitution, never an insertion or
			// deletion, which would catch unrelated shorter words
			if len(tok) != len(term) {
				continue
			}
			if levenshtein.Distance(term, tok, nil) <= 1 {
				return true
			}
		}
	}
	return false
}
