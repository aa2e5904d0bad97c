package extract

import (
	"regexp"
	"sort"
	"strings"

	"doclens/internal/domain"
)

// keySynonyms maps common key spellings from any extractor (or the LLM) to
// the canonical vocabulary. Canonical keys map to themselves, which keeps
// canonicalization idempotent.
var keySynonyms = map[string]string{
	"exp":              "expiry_date",
	"expiry":           "expiry_date",
	"expires":          "expiry_date",
	"expiration":       "expiry_date",
	"expiration_date":  "expiry_date",
	"valid_thru":       "expiry_date",
	"valid_through":    "expiry_date",
	"pan":              "card_number",
	"card_no":          "card_number",
	"card_num":         "card_number",
	"cardnumber":       "card_number",
	"card_holder":      "cardholder",
	"holder":           "cardholder",
	"holder_name":      "cardholder",
	"cardholder_name":  "cardholder",
	"card_network":     "issuer",
	"issuer_name":      "issuer",
	"balance_due":      "amount_due",
	"total_due":        "amount_due",
	"total":            "total_amount",
	"acct":             "account_number",
	"acct_number":      "account_number",
	"account_no":       "account_number",
	"account_num":      "account_number",
	"phone_number":     "phone",
	"telephone":        "phone",
	"tel":              "phone",
	"email_address":    "email",
	"e-mail":           "email",
	"website":          "url",
	"web":              "url",
	"link":             "url",
	"merchant_name":    "merchant",
	"store":            "merchant",
	"vendor":           "merchant",
	"promocode":        "promo_code",
	"coupon_code":      "promo_code",
	"dob":              "date_of_birth",
	"birth_date":       "date_of_birth",
	"member_no":        "member_id",
	"memberid":         "member_id",
	"subscriber_id":    "member_id",
	"group_no":         "group_number",
	"grp_number":       "group_number",
	"receipt_number":   "transaction_id",
	"order_number":     "transaction_id",
	"transaction_number": "transaction_id",
}

// categoryAllowlists fixes the closed key set permitted per category after
// fusion. Generic has no allowlist and passes everything through.
var categoryAllowlists = map[domain.DocumentCategory]map[string]bool{
	domain.CategoryCreditCard: allow(
		"cardholder", "card_number", "expiry_date", "issuer", "card_type",
	),
	domain.CategoryInsuranceCard: allow(
		"member_name", "member_id", "group_number", "payer_id", "plan_type",
		"insurer", "rx_bin", "phone", "url",
	),
	domain.CategoryBillStatement: allow(
		"account_number", "due_date", "amount_due", "total_amount",
		"statement_date", "billing_period", "service_provider", "phone", "url",
	),
	domain.CategoryReceipt: allow(
		"merchant", "transaction_id", "date", "total_amount", "amount",
		"payment_method", "phone", "address",
	),
	domain.CategoryPromotional: allow(
		"promo_code", "offer_amount", "offer_expiry", "expiry_date",
		"merchant", "url", "phone",
	),
	domain.CategoryLetter: allow(
		"sender", "recipient", "subject", "date", "name", "email", "phone",
		"address",
	),
	domain.CategoryIDCard: allow(
		"name", "id_number", "date_of_birth", "expiry_date", "height",
		"address",
	),
}

func allow(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

var nonDigitRe = regexp.MustCompile(`\D`)

// CanonicalKey normalizes a raw field key into the canonical snake_case
// vocabulary: trim, lowercase, spaces to underscores, then synonym mapping.
// A bare "name" means the cardholder only under the card category.
// Canonicalizing an already-canonical key is a no-op.
func CanonicalKey(key string, category domain.DocumentCategory) string {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.ReplaceAll(k, " ", "_")
	if canonical, ok := keySynonyms[k]; ok {
		k = canonical
	}
	if k == "name" && category == domain.CategoryCreditCard {
		k = "cardholder"
	}
	return k
}

// NormalizeValue rewrites a value into the canonical shape for its key:
// digits-only card numbers, MM/YY expiries, title-cased issuer names.
// Values it cannot parse pass through unchanged.
func NormalizeValue(key, value string) string {
	switch key {
	case "card_number":
		if digits := nonDigitRe.ReplaceAllString(value, ""); digits != "" {
			return digits
		}
		return value
	case "expiry_date":
		return normalizeExpiry(value)
	case "issuer", "card_type":
		return titleCase(value)
	default:
		return strings.TrimSpace(value)
	}
}

var expiryPartsRe = regexp.MustCompile(`(\d{1,2})\s*/\s*(\d{2,4})`)

func normalizeExpiry(value string) string {
	m := expiryPartsRe.FindStringSubmatch(value)
	if m == nil {
		return strings.TrimSpace(value)
	}
	month := m[1]
	if len(month) == 1 {
		month = "0" + month
	}
	year := m[2]
	if len(year) == 4 {
		year = year[2:]
	}
	return month + "/" + year
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Fuse canonicalizes, normalizes, deduplicates, and schema-filters fields
// from all sources into the final set for the category. When several fields
// share a canonical key, the highest confidence wins; on a tie the longer
// value survives. Fields merged from multiple candidates are marked fused.
func Fuse(fields []domain.Field, category domain.DocumentCategory) []domain.Field {
	type group struct {
		best  domain.Field
		count int
	}
	groups := make(map[string]*group)
	var order []string

	for _, f := range fields {
		key := CanonicalKey(f.Key, category)
		value := NormalizeValue(key, f.Value)
		if key == "" || value == "" {
			continue
		}
		candidate := domain.NewField(key, value, f.Confidence, f.Source)

		g, ok := groups[key]
		if !ok {
			groups[key] = &group{best: candidate, count: 1}
			order = append(order, key)
			continue
		}
		g.count++
		if candidate.Confidence > g.best.Confidence ||
			(candidate.Confidence == g.best.Confidence && len(candidate.Value) > len(g.best.Value)) {
			g.best = candidate
		}
	}

	allowlist := categoryAllowlists[category]

	out := make([]domain.Field, 0, len(order))
	for _, key := range order {
		if allowlist != nil && !allowlist[key] {
			continue
		}
		g := groups[key]
		f := g.best
		if g.count > 1 {
			f.Source = domain.SourceFused
		}
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
