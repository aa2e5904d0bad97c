package extract

import (
	"regexp"
	"strings"

	"doclens/internal/classify"
	"doclens/internal/domain"
)

var (
	cardExpiryRe = regexp.MustCompile(`\b(0[1-9]|1[0-2])/(\d{2}|\d{4})\b`)
	holderLineRe = regexp.MustCompile(`(?m)^[A-Z][A-Za-z.'-]+(?:\s+[A-Z][A-Za-z.'-]+){1,2}\s*$`)

	memberIDRe  = regexp.MustCompile(`(?i)(?:member|subscriber)\s*(?:id|#|number)?\s*:?\s*([A-Z0-9][A-Z0-9-]{2,})`)
	groupNumRe  = regexp.MustCompile(`(?i)(?:group|grp)\s*(?:id|#|number|no\.?)?\s*:?\s*([A-Z0-9][A-Z0-9-]{1,})`)
	payerIDRe   = regexp.MustCompile(`(?i)payer\s*id\s*:?\s*([A-Z0-9-]+)`)
	rxBinRe     = regexp.MustCompile(`(?i)rx\s*bin\s*:?\s*(\d{4,6})`)
	planTypeRe  = regexp.MustCompile(`(?i)\b(ppo|hmo|epo|pos)\b`)
	rosterRe    = regexp.MustCompile(`(?m)^\s*\d{1,2}[.)]\s+([A-Z][A-Za-z.'-]+(?:\s+[A-Z][A-Za-z.'-]+){1,2})\s*$`)
	insurerWord = []string{"blue cross", "blue shield", "premera", "regence", "aetna", "cigna", "kaiser", "vsp", "delta dental"}

	accountNumRe = regexp.MustCompile(`(?i)account\s*(?:#|number|no\.?)?\s*:?\s*([A-Z0-9][A-Z0-9-]{3,})`)
	dueDateRe    = regexp.MustCompile(`(?i)(?:due\s*date|payment\s*due)\s*:?\s*(\d{1,2}/\d{1,2}/\d{2,4})`)
	amountDueRe  = regexp.MustCompile(`(?i)(?:amount|total|balance)\s*due\s*:?\s*(\$\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)

	heightRe   = regexp.MustCompile(`(?i)(?:height|hgt|ht)\s*:?\s*(\d\s*'\s*\d{1,2}\s*"?|\d'\d{1,2}"|\d{3}\s*cm|\d-\d{2})`)
	idNumberRe = regexp.MustCompile(`(?i)(?:id|license|lic|dl)\s*(?:#|number|no\.?)?\s*:?\s*([A-Z0-9][A-Z0-9-]{4,})`)

	subjectRe = regexp.MustCompile(`(?im)^\s*(?:subject|re)\s*:\s*(.+?)\s*$`)

	txnIDRe         = regexp.MustCompile(`(?i)(?:receipt|transaction|order|confirmation)\s*#\s*:?\s*([A-Z0-9-]+)`)
	receiptTotalRe  = regexp.MustCompile(`(?i)total\s*:?\s*(\$\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	promoCodeRes    = []*regexp.Regexp{
		regexp.MustCompile(`(?i)promo\s*code\s*:?\s*([A-Za-z0-9]+)`),
		regexp.MustCompile(`(?i)use\s*code\s*:?\s*([A-Za-z0-9]+)`),
		regexp.MustCompile(`(?i)\bcode\s*:?\s*([A-Za-z0-9]{4,})`),
	}
	promoExpiryRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)expires?\s*:?\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?i)ends?\s*:?\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?i)(?:expires?|ends?|by)\s+(\d{1,2}/\d{1,2}/\d{2,4})`),
	}
	offerAmountRe = regexp.MustCompile(`(?i)(?:get|save|earn|receive)\s*(\$\s*\d+(?:\.\d{2})?)`)
)

// ExtractForCategory runs the additional regex passes tuned to a resolved
// category. The switch is exhaustive over the closed enum so adding a
// category is visible here at compile review.
func ExtractForCategory(text string, category domain.DocumentCategory) []domain.Field {
	switch category {
	case domain.CategoryCreditCard:
		return extractCardFields(text)
	case domain.CategoryInsuranceCard:
		return extractInsuranceFields(text)
	case domain.CategoryBillStatement:
		return extractBillFields(text)
	case domain.CategoryIDCard:
		return extractIDCardFields(text)
	case domain.CategoryLetter:
		return extractLetterFields(text)
	case domain.CategoryReceipt:
		return extractReceiptFields(text)
	case domain.CategoryPromotional:
		return extractPromotionalFields(text)
	case domain.CategoryGeneric:
		return nil
	default:
		return nil
	}
}

func extractCardFields(text string) []domain.Field {
	var fields []domain.Field

	for _, candidate := range classify.ExtractCardCandidates(text) {
		if classify.ValidLuhn(candidate) {
			fields = append(fields, domain.NewField("card_number", candidate, 0.9, domain.SourceLocalPattern))
			break
		}
	}

	if m := cardExpiryRe.FindString(text); m != "" {
		fields = append(fields, domain.NewField("expiry_date", m, 0.85, domain.SourceLocalPattern))
	}

	lower := strings.ToLower(text)
	for _, issuer := range []string{"visa", "mastercard", "american express", "amex", "discover", "maestro", "jcb"} {
		if strings.Contains(lower, issuer) {
			fields = append(fields, domain.NewField("issuer", issuer, 0.85, domain.SourceLocalPattern))
			break
		}
	}
	switch {
	case strings.Contains(lower, "debit"):
		fields = append(fields, domain.NewField("card_type", "debit", 0.8, domain.SourceLocalPattern))
	case strings.Contains(lower, "credit"):
		fields = append(fields, domain.NewField("card_type", "credit", 0.8, domain.SourceLocalPattern))
	}

	if m := holderLineRe.FindString(text); m != "" {
		fields = append(fields, domain.NewField("cardholder", strings.TrimSpace(m), 0.7, domain.SourceLocalPattern))
	}

	return fields
}

func extractInsuranceFields(text string) []domain.Field {
	var fields []domain.Field

	if m := memberIDRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("member_id", m[1], 0.9, domain.SourceLocalPattern))
	}
	if m := groupNumRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("group_number", m[1], 0.85, domain.SourceLocalPattern))
	}
	if m := payerIDRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("payer_id", m[1], 0.9, domain.SourceLocalPattern))
	}
	if m := rxBinRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("rx_bin", m[1], 0.95, domain.SourceLocalPattern))
	}
	if m := planTypeRe.FindString(text); m != "" {
		fields = append(fields, domain.NewField("plan_type", strings.ToUpper(m), 0.85, domain.SourceLocalPattern))
	}

	lower := strings.ToLower(text)
	for _, insurer := range insurerWord {
		if strings.Contains(lower, insurer) {
			fields = append(fields, domain.NewField("insurer", insurer, 0.85, domain.SourceLocalPattern))
			break
		}
	}

	// Family plans print covered members as a numbered roster; fusion
	// keeps keys unique, so the roster becomes one joined value.
	var members []string
	for _, m := range rosterRe.FindAllStringSubmatch(text, -1) {
		members = append(members, m[1])
	}
	if len(members) > 0 {
		fields = append(fields, domain.NewField("member_name", strings.Join(members, ", "), 0.8, domain.SourceLocalPattern))
	}

	return fields
}

func extractBillFields(text string) []domain.Field {
	var fields []domain.Field
	if m := accountNumRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("account_number", m[1], 0.9, domain.SourceLocalPattern))
	}
	if m := dueDateRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("due_date", m[1], 0.95, domain.SourceLocalPattern))
	}
	if m := amountDueRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("amount_due", strings.ReplaceAll(m[1], " ", ""), 0.9, domain.SourceLocalPattern))
	}
	return fields
}

func extractIDCardFields(text string) []domain.Field {
	var fields []domain.Field
	if m := heightRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("height", strings.TrimSpace(m[1]), 0.85, domain.SourceLocalPattern))
	}
	if m := idNumberRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("id_number", m[1], 0.85, domain.SourceLocalPattern))
	}
	return fields
}

func extractLetterFields(text string) []domain.Field {
	var fields []domain.Field
	if m := subjectRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("subject", strings.TrimSpace(m[1]), 0.9, domain.SourceLocalPattern))
	}
	return fields
}

func extractReceiptFields(text string) []domain.Field {
	var fields []domain.Field
	if m := txnIDRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("transaction_id", m[1], 0.95, domain.SourceLocalPattern))
	}
	if m := receiptTotalRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("total_amount", strings.ReplaceAll(m[1], " ", ""), 0.95, domain.SourceLocalPattern))
	}
	return fields
}

func extractPromotionalFields(text string) []domain.Field {
	var fields []domain.Field
	for _, re := range promoCodeRes {
		if m := re.FindStringSubmatch(text); m != nil {
			fields = append(fields, domain.NewField("promo_code", m[1], 0.95, domain.SourceLocalPattern))
			break
		}
	}
	for _, re := range promoExpiryRes {
		if m := re.FindStringSubmatch(text); m != nil {
			fields = append(fields, domain.NewField("offer_expiry", m[1], 0.9, domain.SourceLocalPattern))
			break
		}
	}
	if m := offerAmountRe.FindStringSubmatch(text); m != nil {
		fields = append(fields, domain.NewField("offer_amount", strings.ReplaceAll(m[1], " ", ""), 0.9, domain.SourceLocalPattern))
	}
	return fields
}
