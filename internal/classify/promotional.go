package classify

// Detail carries per-detector signal booleans for diagnostics and API
// responses.
type Detail map[string]any

// IsPromotional detects marketing materials, offers, and coupons. It
// returns true only when at least two distinct signal families match, so a
// single stray word ("free", "visit") cannot mis-trigger it.
func IsPromotional(haystack string) (bool, Detail) {
	hasIncentive := containsAny(haystack, incentiveVerbs)
	hasConditional := containsAny(haystack, conditionalTerms)
	hasPromoTerm := containsAny(haystack, promoTerms)
	hasUrgency := containsAny(haystack, urgencyTerms)
	hasCTA := containsAny(haystack, ctaTerms)

	count := 0
	for _, hit := range []bool{hasIncentive, hasConditional, hasPromoTerm, hasUrgency, hasCTA} {
		if hit {
			count++
		}
	}

	return count >= 2, Detail{
		"signal_count":       count,
		"has_incentive_verb": hasIncentive,
		"has_conditional":    hasConditional,
		"has_promo_term":     hasPromoTerm,
		"has_urgency":        hasUrgency,
		"has_cta":            hasCTA,
	}
}
