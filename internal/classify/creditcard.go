package classify

import "strings"

// IsCreditCard detects physical payment cards. A Luhn-valid PAN alone is
// not enough: strong context (issuer name, expiry, or a card-specific field
// key) must accompany it, and gift/membership/loyalty cards without an
// issuer brand are rejected outright.
func IsCreditCard(haystack string, values, keys []string) (bool, Detail) {
	isNonPaymentCard := containsAny(haystack, nonPaymentCardTerms)
	hasIssuerName := fuzzyContainsAny(haystack, issuerNames)

	if isNonPaymentCard && !hasIssuerName {
		return false, Detail{"rejected_reason": "non_payment_card"}
	}

	hasValidPAN := false
	for _, corpus := range append([]string{haystack}, values...) {
		for _, candidate := range ExtractCardCandidates(corpus) {
			if ValidLuhn(candidate) {
				hasValidPAN = true
				break
			}
		}
		if hasValidPAN {
			break
		}
	}

	hasExpiry := expiryRe.MatchString(haystack)

	hasCardField := false
	for _, key := range keys {
		if (strings.Contains(key, "card") && (strings.Contains(key, "number") || strings.Contains(key, "pan"))) ||
			strings.Contains(key, "credit") || strings.Contains(key, "debit") {
			hasCardField = true
			break
		}
	}

	hasCardKeyword := containsAny(haystack, cardTypeKeywords)

	hasStrongContext := hasIssuerName || hasExpiry || hasCardField || hasCardKeyword

	// Even without a clean checksum (OCR misreads digits), issuer plus
	// expiry alongside a PAN-shaped number is convincing.
	hasCandidate := hasValidPAN || len(ExtractCardCandidates(haystack)) > 0
	hit := (hasValidPAN && hasStrongContext) || (hasCandidate && hasIssuerName && hasExpiry)

	return hit, Detail{
		"has_valid_pan":       hasValidPAN,
		"has_issuer_name":     hasIssuerName,
		"has_expiry":          hasExpiry,
		"has_card_field":      hasCardField,
		"has_card_keyword":    hasCardKeyword,
		"is_non_payment_card": isNonPaymentCard,
	}
}
