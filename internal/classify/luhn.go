package classify

import "strings"

// ValidLuhn reports whether s passes the standard mod-10 card-number
// checksum. Spaces and dashes are tolerated; any other non-digit, or a
// digit count outside 13-19, fails.
func ValidLuhn(s string) bool {
	var digits []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c-'0')
		case c == ' ' || c == '-':
			// separator noise from OCR
		default:
			return false
		}
	}
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		n := int(digits[len(digits)-1-i])
		if i%2 == 1 {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
	}
	return sum%10 == 0
}

// ExtractCardCandidates returns every 13-19 digit sequence in text,
// tolerating embedded spaces and dashes between 4-digit groups.
func ExtractCardCandidates(text string) []string {
	var out []string
	seen := map[string]bool{}
	add := func(m string) {
		norm := strings.NewReplacer(" ", "", "-", "").Replace(m)
		if len(norm) < 13 || len(norm) > 19 || seen[norm] {
			return
		}
		seen[norm] = true
		out = append(out, m)
	}
	for _, m := range panGroupedRe.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range panContiguousRe.FindAllString(text, -1) {
		add(m)
	}
	return out
}
