package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doclens/internal/classify"
)

func TestValidLuhn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid 16-digit", "4532015112830366", true},
		{"checksum off by one", "4532015112830367", false},
		{"valid with spaces", "4111 1111 1111 1111", true},
		{"valid with dashes", "5555-5555-5555-4444", true},
		{"valid 15-digit amex", "378282246310005", true},
		{"too short", "411111111111", false},
		{"too long", "41111111111111111111", false},
		{"letters rejected", "4111111111111111x", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify.ValidLuhn(tt.input))
		})
	}
}

func TestExtractCardCandidates(t *testing.T) {
	text := "Card: 4111 1111 1111 1111\nAlt: 378282246310005\nZip: 98101"
	candidates := classify.ExtractCardCandidates(text)

	assert.Len(t, candidates, 2)
	assert.Contains(t, candidates, "4111 1111 1111 1111")
	assert.Contains(t, candidates, "378282246310005")
}

func TestExtractCardCandidates_DeduplicatesAcrossFormats(t *testing.T) {
	// Same number grouped and contiguous should yield one candidate.
	text := "4111 1111 1111 1111 also printed as 4111111111111111"
	candidates := classify.ExtractCardCandidates(text)

	assert.Len(t, candidates, 1)
}

func TestExtractCardCandidates_IgnoresShortRuns(t *testing.T) {
	assert.Empty(t, classify.ExtractCardCandidates("Order #123456 on 12/01/2026"))
}
