package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doclens/internal/domain"
	"doclens/internal/extract"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		key      string
		category domain.DocumentCategory
		want     string
	}{
		{"Valid Thru", domain.CategoryCreditCard, "expiry_date"},
		{"exp", domain.CategoryCreditCard, "expiry_date"},
		{"PAN", domain.CategoryCreditCard, "card_number"},
		{"holder_name", domain.CategoryCreditCard, "cardholder"},
		{"name", domain.CategoryCreditCard, "cardholder"},
		{"name", domain.CategoryLetter, "name"},
		{"total", domain.CategoryReceipt, "total_amount"},
		{"balance_due", domain.CategoryBillStatement, "amount_due"},
		{"  Phone Number ", domain.CategoryGeneric, "phone"},
		{"already_canonical_key", domain.CategoryGeneric, "already_canonical_key"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extract.CanonicalKey(tt.key, tt.category), "key %q", tt.key)
	}
}

func TestCanonicalKey_Idempotent(t *testing.T) {
	for _, key := range []string{"expiry_date", "card_number", "cardholder", "total_amount", "member_id"} {
		once := extract.CanonicalKey(key, domain.CategoryCreditCard)
		assert.Equal(t, once, extract.CanonicalKey(once, domain.CategoryCreditCard))
	}
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "4111111111111111", extract.NormalizeValue("card_number", "4111 1111 1111 1111"))
	assert.Equal(t, "09/27", extract.NormalizeValue("expiry_date", "9/2027"))
	assert.Equal(t, "12/27", extract.NormalizeValue("expiry_date", "12/27"))
	assert.Equal(t, "Visa", extract.NormalizeValue("issuer", "VISA"))
	assert.Equal(t, "American Express", extract.NormalizeValue("issuer", "american express"))
	assert.Equal(t, "plain value", extract.NormalizeValue("subject", "  plain value  "))
}

func TestFuse_HighestConfidenceWins(t *testing.T) {
	fields := []domain.Field{
		domain.NewField("exp", "12/27", 0.85, domain.SourceLocalPattern),
		domain.NewField("expiry_date", "11/27", 0.9, domain.SourceLLM),
	}
	fused := extract.Fuse(fields, domain.CategoryCreditCard)

	assert.Len(t, fused, 1)
	assert.Equal(t, "expiry_date", fused[0].Key)
	assert.Equal(t, "11/27", fused[0].Value)
	assert.Equal(t, domain.SourceFused, fused[0].Source)
}

func TestFuse_TieBreaksOnLongerValue(t *testing.T) {
	fields := []domain.Field{
		domain.NewField("cardholder", "Jane Doe", 0.7, domain.SourceLocalPattern),
		domain.NewField("cardholder", "Jane Ann Doe", 0.7, domain.SourceLLM),
	}
	fused := extract.Fuse(fields, domain.CategoryCreditCard)

	assert.Len(t, fused, 1)
	assert.Equal(t, "Jane Ann Doe", fused[0].Value)
}

func TestFuse_SingleCandidateKeepsSource(t *testing.T) {
	fields := []domain.Field{
		domain.NewField("card_number", "4111 1111 1111 1111", 0.9, domain.SourceLocalPattern),
	}
	fused := extract.Fuse(fields, domain.CategoryCreditCard)

	assert.Len(t, fused, 1)
	assert.Equal(t, "4111111111111111", fused[0].Value)
	assert.Equal(t, domain.SourceLocalPattern, fused[0].Source)
}

func TestFuse_AllowlistFiltersOffSchemaKeys(t *testing.T) {
	fields := []domain.Field{
		domain.NewField("card_number", "4111111111111111", 0.9, domain.SourceLocalPattern),
		domain.NewField("email", "jane@example.com", 0.9, domain.SourceLocalPattern),
		domain.NewField("merchant", "Corner Store", 0.8, domain.SourceLLM),
	}
	fused := extract.Fuse(fields, domain.CategoryCreditCard)

	assert.Len(t, fused, 1)
	assert.Equal(t, "card_number", fused[0].Key)
}

func TestFuse_GenericPassesEverythingSorted(t *testing.T) {
	fields := []domain.Field{
		domain.NewField("zebra", "z", 0.5, domain.SourceLLM),
		domain.NewField("alpha", "a", 0.5, domain.SourceLLM),
		domain.NewField("email", "jane@example.com", 0.9, domain.SourceLocalPattern),
	}
	fused := extract.Fuse(fields, domain.CategoryGeneric)

	assert.Len(t, fused, 3)
	assert.Equal(t, "alpha", fused[0].Key)
	assert.Equal(t, "email", fused[1].Key)
	assert.Equal(t, "zebra", fused[2].Key)
}

func TestFuse_DropsEmptyValues(t *testing.T) {
	fields := []domain.Field{
		domain.NewField("subject", "   ", 0.9, domain.SourceLLM),
	}
	assert.Empty(t, extract.Fuse(fields, domain.CategoryGeneric))
}

func TestFuse_SynonymsCollapseToOneKey(t *testing.T) {
	fields := []domain.Field{
		domain.NewField("receipt_number", "R-1", 0.95, domain.SourceLocalPattern),
		domain.NewField("order_number", "R-1", 0.9, domain.SourceLLM),
		domain.NewField("transaction_id", "R-1", 0.9, domain.SourceLLM),
	}
	fused := extract.Fuse(fields, domain.CategoryReceipt)

	assert.Len(t, fused, 1)
	assert.Equal(t, "transaction_id", fused[0].Key)
	assert.Equal(t, domain.SourceFused, fused[0].Source)
}
