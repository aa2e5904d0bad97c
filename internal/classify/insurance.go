package classify

import "strings"

// IsInsuranceCard detects health/dental/vision insurance cards. Explicit
// "not a card" anti-patterns short-circuit to false; an RX BIN mention is
// an instant match because nothing else carries it; otherwise two distinct
// signal families are required.
func IsInsuranceCard(haystack string) (bool, Detail) {
	if containsAny(haystack, insuranceAntiPatterns) {
		return false, Detail{"rejected_reason": "anti_pattern"}
	}

	hasCardIndicator := containsAny(haystack, cardIdentifierTerms)
	hasInsuranceTerm := containsAny(haystack, insuranceTerms)
	hasNetworkTerm := containsAny(haystack, networkTerms)
	hasKnownInsurer := fuzzyContainsAny(haystack, knownInsurers)

	count := 0
	for _, hit := range []bool{hasCardIndicator, hasInsuranceTerm, hasNetworkTerm, hasKnownInsurer} {
		if hit {
			count++
		}
	}

	hasRxBin := strings.Contains(haystack, "rx bin") || strings.Contains(haystack, "rxbin")

	return count >= 2 || hasRxBin, Detail{
		"signal_count":       count,
		"has_card_indicator": hasCardIndicator,
		"has_insurance_term": hasInsuranceTerm,
		"has_network_term":   hasNetworkTerm,
		"has_known_insurer":  hasKnownInsurer,
		"has_rx_bin":         hasRxBin,
	}
}
