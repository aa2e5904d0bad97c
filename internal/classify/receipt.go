package classify

// Receipt rule tiers, strongest first.
const (
	ReceiptRuleStrong   = "strong_transaction"
	ReceiptRuleMerchant = "merchant_payment"
	ReceiptRuleWeak     = "weak_combined"
)

// IsReceipt detects proof-of-purchase documents. A document that carries
// promotional intent is never a receipt, whatever its structure: monetary
// amounts and reward language in an offer otherwise masquerade as a
// completed transaction.
func IsReceipt(haystack string, promotional bool) (bool, Detail) {
	if promotional {
		return false, Detail{"rejected_reason": "promotional"}
	}

	hasTransactionID := containsAny(haystack, transactionIDTerms)

	hasCardPayment := containsAny(haystack, cardBrandTerms) ||
		containsAny(haystack, paymentAuthTerms)
	hasCashPayment := containsAny(haystack, cashTerms)
	hasPaymentMethod := hasCardPayment || hasCashPayment

	hasMerchantContext := containsAny(haystack, merchantTerms)

	// Strong: transaction identifier plus payment method.
	if hasTransactionID && hasPaymentMethod {
		return true, Detail{
			"rule":               ReceiptRuleStrong,
			"has_transaction_id": true,
			"has_payment_method": true,
		}
	}

	// Medium: merchant context plus payment method.
	if hasMerchantContext && hasPaymentMethod {
		return true, Detail{
			"rule":                 ReceiptRuleMerchant,
			"has_merchant_context": true,
			"has_payment_method":   true,
		}
	}

	// Weak: receipt wording, payment-completion wording, and at least
	// three distinct currency amounts.
	hasReceiptWord := containsAny(haystack, receiptWords)
	hasPaymentComplete := containsAny(haystack, paymentCompleteTerms)
	amountCount := len(amountRe.FindAllString(haystack, -1))

	if hasReceiptWord && hasPaymentComplete && amountCount >= 3 {
		return true, Detail{
			"rule":                 ReceiptRuleWeak,
			"has_receipt_word":     true,
			"has_payment_complete": true,
			"amount_count":         amountCount,
		}
	}

	return false, Detail{
		"has_transaction_id":   hasTransactionID,
		"has_payment_method":   hasPaymentMethod,
		"has_merchant_context": hasMerchantContext,
	}
}
