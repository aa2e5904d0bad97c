package classify

import (
	"strings"

	"doclens/internal/domain"
)

// BuildHaystack lowercases and concatenates the OCR text with all known
// field values into the single corpus every detector searches.
func BuildHaystack(text string, fields []domain.Field) string {
	if len(fields) == 0 {
		return strings.ToLower(text)
	}
	var b strings.Builder
	b.WriteString(text)
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.Value)
	}
	return strings.ToLower(b.String())
}

func fieldKeys(fields []domain.Field) []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = strings.ToLower(f.Key)
	}
	return keys
}

func fieldValues(fields []domain.Field) []string {
	vals := make([]string, len(fields))
	for i, f := range fields {
		vals[i] = strings.ToLower(f.Value)
	}
	return vals
}

// containsAny reports whether any term occurs as a substring of text.
func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
