package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doclens/internal/classify"
)

func haystack(text string) string {
	return classify.BuildHaystack(text, nil)
}

func TestIsPromotional(t *testing.T) {
	hit, detail := classify.IsPromotional(haystack(
		"Get $50 bonus when you sign up for a new account. Offer expires March 31, 2026.",
	))

	assert.True(t, hit)
	assert.Equal(t, 5, detail["signal_count"])
}

func TestIsPromotional_SingleFamilyNotEnough(t *testing.T) {
	// "free" alone is a promo term but no second family matches.
	hit, detail := classify.IsPromotional(haystack("the parking garage is free after 6pm"))

	assert.False(t, hit)
	assert.Equal(t, 1, detail["signal_count"])
}

func TestIsReceipt_StrongTransaction(t *testing.T) {
	hit, detail := classify.IsReceipt(haystack(
		"Receipt #4821\nPaid with VISA ending 4242\nTotal: $18.95",
	), false)

	assert.True(t, hit)
	assert.Equal(t, classify.ReceiptRuleStrong, detail["rule"])
}

func TestIsReceipt_MerchantPayment(t *testing.T) {
	hit, detail := classify.IsReceipt(haystack(
		"Store #12 Cashier: Dana\nAmount paid: $5.00\nChange: $0.00",
	), false)

	assert.True(t, hit)
	assert.Equal(t, classify.ReceiptRuleMerchant, detail["rule"])
}

func TestIsReceipt_WeakCombined(t *testing.T) {
	hit, detail := classify.IsReceipt(haystack(
		"RECEIPT\nWidget $3.00\nGadget $4.00\nChange due $3.00\nThank you for shopping",
	), false)

	assert.True(t, hit)
	assert.Equal(t, classify.ReceiptRuleWeak, detail["rule"])
}

func TestIsReceipt_WeakNeedsThreeAmounts(t *testing.T) {
	hit, _ := classify.IsReceipt(haystack(
		"RECEIPT\nWidget $3.00\nChange due",
	), false)

	assert.False(t, hit)
}

func TestIsReceipt_PromotionalOverrides(t *testing.T) {
	hit, detail := classify.IsReceipt(haystack(
		"Receipt #4821\nPaid with VISA\nTotal: $18.95",
	), true)

	assert.False(t, hit)
	assert.Equal(t, "promotional", detail["rejected_reason"])
}

func TestIsInsuranceCard_SignalCount(t *testing.T) {
	hit, detail := classify.IsInsuranceCard(haystack(
		"Premera Blue Cross\nMember ID: ZGP123456789\nGroup: 100045\nPPO",
	))

	assert.True(t, hit)
	assert.Equal(t, 3, detail["signal_count"])
}

func TestIsInsuranceCard_RxBinAlone(t *testing.T) {
	hit, detail := classify.IsInsuranceCard(haystack("RX BIN: 610014"))

	assert.True(t, hit)
	assert.Equal(t, true, detail["has_rx_bin"])
}

func TestIsInsuranceCard_AntiPattern(t *testing.T) {
	hit, detail := classify.IsInsuranceCard(haystack(
		"Explanation of Benefits\nMember ID: ZGP123456789\nPPO plan details enclosed",
	))

	assert.False(t, hit)
	assert.Equal(t, "anti_pattern", detail["rejected_reason"])
}

func TestIsInsuranceCard_FuzzyInsurerName(t *testing.T) {
	// OCR substituted one character of the insurer brand.
	hit, detail := classify.IsInsuranceCard(haystack(
		"Prenera Health Plans\nMember ID: ZGP123456789",
	))

	assert.True(t, hit)
	assert.Equal(t, true, detail["has_known_insurer"])
}

func TestIsCreditCard_ValidPANWithContext(t *testing.T) {
	hit, detail := classify.IsCreditCard(haystack(
		"VISA\n4532 0151 1283 0366\nVALID THRU 12/27",
	), nil, nil)

	assert.True(t, hit)
	assert.Equal(t, true, detail["has_valid_pan"])
	assert.Equal(t, true, detail["has_issuer_name"])
}

func TestIsCreditCard_PANWithoutContext(t *testing.T) {
	// A bare Luhn-valid number, and "via" must not fuzzy-match "visa".
	hit, _ := classify.IsCreditCard(haystack(
		"reachable via courier 4532015112830366",
	), nil, nil)

	assert.False(t, hit)
}

func TestIsCreditCard_CorruptedPANRescuedByIssuerAndExpiry(t *testing.T) {
	// OCR broke the checksum but issuer plus expiry still identify a card.
	hit, detail := classify.IsCreditCard(haystack(
		"Mastercard 5500 0055 5555 5551 expires 11/26",
	), nil, nil)

	assert.True(t, hit)
	assert.Equal(t, false, detail["has_valid_pan"])
}

func TestIsCreditCard_GiftCardRejected(t *testing.T) {
	hit, detail := classify.IsCreditCard(haystack(
		"Gift Card\nCard number: 6006 4930 1234 5678\nBalance: $25.00",
	), nil, nil)

	assert.False(t, hit)
	assert.Equal(t, "non_payment_card", detail["rejected_reason"])
}

func TestIsCreditCard_FieldKeySuppliesContext(t *testing.T) {
	hit, detail := classify.IsCreditCard(
		haystack("4532015112830366"),
		nil,
		[]string{"card_number"},
	)

	assert.True(t, hit)
	assert.Equal(t, true, detail["has_card_field"])
}

func TestIsBillStatement_BillingTermInstant(t *testing.T) {
	hit, detail := classify.IsBillStatement(haystack(
		"Billing Statement\nStatement date: 07/01/2026\nNew balance: $120.00",
	))

	assert.True(t, hit)
	assert.Equal(t, "billing_term", detail["matched_rule"])
}

func TestIsBillStatement_PaymentDueNeedsContext(t *testing.T) {
	hit, _ := classify.IsBillStatement(haystack("Total due: $0.00"))

	assert.False(t, hit)
}

func TestIsBillStatement_AccountPlusDue(t *testing.T) {
	hit, detail := classify.IsBillStatement(haystack(
		"Account number: 889123\nAmount due: $45.00",
	))

	assert.True(t, hit)
	assert.Equal(t, "account_payment", detail["matched_rule"])
}

func TestIsLetter(t *testing.T) {
	hit, _ := classify.IsLetter(haystack(
		"Dear Ms. Alvarez,\nThank you for your inquiry about the lease.\nSincerely,\nThomas Reed",
	), false)

	assert.True(t, hit)
}

func TestIsLetter_SalutationAloneNotEnough(t *testing.T) {
	hit, _ := classify.IsLetter(haystack("Dear resident, please note the schedule change."), false)

	assert.False(t, hit)
}

func TestIsLetter_PromotionalOverrides(t *testing.T) {
	hit, detail := classify.IsLetter(haystack(
		"Dear customer,\nSincerely,\nThe Marketing Team",
	), true)

	assert.False(t, hit)
	assert.Equal(t, "promotional", detail["rejected_reason"])
}
