package classify

// IsLetter detects correspondence. Promotional intent takes precedence over
// format, and both a salutation and a closing are required: matching the
// letter format alone is not enough because marketing mail mimics it.
func IsLetter(haystack string, promotional bool) (bool, Detail) {
	if promotional {
		return false, Detail{"rejected_reason": "promotional"}
	}

	hasSalutation := containsAny(haystack, salutationTerms)
	hasClosing := containsAny(haystack, closingTerms)

	return hasSalutation && hasClosing, Detail{
		"has_salutation": hasSalutation,
		"has_closing":    hasClosing,
	}
}
