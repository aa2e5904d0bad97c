package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doclens/internal/extract"
)

func TestExtractCardDetails_FullCard(t *testing.T) {
	text := "FIRST NATIONAL BANK\n4111 1111 1111 1111\nVALID THRU 12/27\nJane Ann Doe"
	details := extract.ExtractCardDetails(text)

	assert.Equal(t, "4111111111111111", details.PAN)
	assert.Equal(t, "12/27", details.Expiry)
	assert.Equal(t, "Jane Ann Doe", details.Holder)
	assert.Equal(t, "Visa", details.Issuer)
	assert.False(t, details.IsEmpty())
}

func TestExtractCardDetails_IssuerFromPANPrefix(t *testing.T) {
	tests := []struct {
		name string
		pan  string
		want string
	}{
		{"visa", "4111 1111 1111 1111", "Visa"},
		{"mastercard", "5555 5555 5555 4444", "Mastercard"},
		{"amex", "3782 8224 6310 005", "American Express"},
		{"discover", "6011 1111 1111 1117", "Discover"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := extract.ExtractCardDetails("Card Number: " + tt.pan)
			assert.Equal(t, tt.want, details.Issuer)
		})
	}
}

func TestExtractCardDetails_RequiresLuhnValidPAN(t *testing.T) {
	details := extract.ExtractCardDetails("Card Number: 4111 1111 1111 1112\nMasterCard")

	assert.Empty(t, details.PAN)
	// Issuer still resolves from the printed brand.
	assert.Equal(t, "Mastercard", details.Issuer)
}

func TestExtractCardDetails_PrefersContextualPAN(t *testing.T) {
	text := "ref 4111111111111111\nCard Number: 5555 5555 5555 4444"
	details := extract.ExtractCardDetails(text)

	assert.Equal(t, "5555555555554444", details.PAN)
}

func TestExtractCardDetails_BrandedLinesNotHolder(t *testing.T) {
	details := extract.ExtractCardDetails("Platinum Rewards Card\n4111 1111 1111 1111")

	assert.Empty(t, details.Holder)
}

func TestExtractCardDetails_Empty(t *testing.T) {
	assert.True(t, extract.ExtractCardDetails("plain text with no card at all").IsEmpty())
}
