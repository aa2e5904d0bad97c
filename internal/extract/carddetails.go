package extract

import (
	"strconv"
	"strings"

	"doclens/internal/classify"
	"doclens/internal/domain"
)

var panContextTerms = []string{"card", "number", "pan", "account", "valid"}

// holderStopWords are tokens that disqualify a capitalized line from being
// a cardholder name: bank and network branding share the same casing.
var holderStopWords = []string{
	"bank", "visa", "mastercard", "american", "express", "discover",
	"maestro", "jcb", "credit", "debit", "card", "valid", "thru", "member",
	"since", "platinum", "gold", "business", "rewards",
}

// ExtractCardDetails derives a high-precision holder/PAN/expiry/issuer view
// from raw card text. Unlike the general pipeline it insists on a Luhn-valid
// PAN and scores candidates by local context, so card-specific UI can trust
// the result directly.
func ExtractCardDetails(text string) domain.CardDetails {
	var details domain.CardDetails

	details.PAN = bestPAN(text)
	if m := cardExpiryRe.FindString(text); m != "" {
		details.Expiry = normalizeExpiry(m)
	}
	details.Holder = findHolder(text)
	details.Issuer = resolveIssuer(details.PAN, text)

	return details
}

// bestPAN picks the Luhn-valid candidate with the strongest local context.
func bestPAN(text string) string {
	lower := strings.ToLower(text)

	best := ""
	bestScore := -1
	for _, candidate := range classify.ExtractCardCandidates(text) {
		if !classify.ValidLuhn(candidate) {
			continue
		}
		score := 0
		if idx := strings.Index(lower, strings.ToLower(candidate)); idx >= 0 {
			ctx := contextBefore(lower, idx, 30)
			for _, term := range panContextTerms {
				if strings.Contains(ctx, term) {
					score++
				}
			}
		}
		digits := nonDigitRe.ReplaceAllString(candidate, "")
		if len(digits) == 16 {
			score++
		}
		if score > bestScore {
			bestScore = score
			best = digits
		}
	}
	return best
}

func findHolder(text string) string {
	for _, line := range strings.Split(text, "\n") {
		m := holderLineRe.FindString(line)
		if m == "" {
			continue
		}
		lower := strings.ToLower(m)
		disqualified := false
		for _, stop := range holderStopWords {
			if strings.Contains(lower, stop) {
				disqualified = true
				break
			}
		}
		if !disqualified {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// resolveIssuer maps the PAN's leading digits to the card network, falling
// back to brand names printed on the card.
func resolveIssuer(pan, text string) string {
	if pan != "" {
		switch {
		case strings.HasPrefix(pan, "4"):
			return "Visa"
		case hasPrefixInRange(pan, 51, 55), hasPrefixInRange(pan, 2221, 2720):
			return "Mastercard"
		case strings.HasPrefix(pan, "34"), strings.HasPrefix(pan, "37"):
			return "American Express"
		case strings.HasPrefix(pan, "6011"), strings.HasPrefix(pan, "65"):
			return "Discover"
		case strings.HasPrefix(pan, "35"):
			return "JCB"
		}
	}

	lower := strings.ToLower(text)
	for _, issuer := range []string{"visa", "mastercard", "american express", "amex", "discover", "maestro", "jcb"} {
		if strings.Contains(lower, issuer) {
			if issuer == "amex" {
				return "American Express"
			}
			return titleCase(issuer)
		}
	}
	return ""
}

func hasPrefixInRange(pan string, lo, hi int) bool {
	width := len(strconv.Itoa(lo))
	if len(pan) < width {
		return false
	}
	prefix, err := strconv.Atoi(pan[:width])
	if err != nil {
		return false
	}
	return prefix >= lo && prefix <= hi
}
