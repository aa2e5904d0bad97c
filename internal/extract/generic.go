// Package extract turns raw OCR text into candidate fields and fuses them
// into the canonical, schema-constrained set for a document category.
package extract

import (
	"log"
	"regexp"
	"strings"

	"doclens/internal/domain"
)

var (
	phoneRe = regexp.MustCompile(`\b(\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4})\b`)
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	urlRe   = regexp.MustCompile(`\b(?:https?://|www\.)[^\s<>"]+`)
	dateRe  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)\.?\s+\d{1,2},?\s+\d{4}\b`)
	addrRe  = regexp.MustCompile(`(?i)\b\d+\s+[A-Za-z0-9.\s]{2,40}?\s(?:street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|court|ct|way|place|pl)\b\.?`)
	moneyRe = regexp.MustCompile(`\$\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?|\$\s*\d+(?:\.\d{2})?`)
	nameRe  = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z]\.?)?(?:\s+[A-Z][a-z]+){1,2}\b`)
)

// Context vocabularies used to key or score ambiguous matches.
var (
	phoneContextTerms  = []string{"phone", "tel", "call", "fax", "mobile", "cell", "contact"}
	phoneBannedContext = []string{"group", "policy", "member", "account", "card", "id #", "id:"}
	dueContextTerms    = []string{"due", "payment", "pay by"}
	expiryContextTerms = []string{"expire", "expires", "expiry", "valid thru", "valid through", "ends"}
	totalContextTerms  = []string{"total", "subtotal"}
	nameContextTerms   = []string{"name", "member", "cardholder", "holder", "patient", "dear", "attn", "customer"}
)

// ExtractGeneric runs the independent pattern extractors over the raw text.
// Each extractor is isolated: a failure in one contributes zero fields and
// never aborts the others.
func ExtractGeneric(text string) []domain.Field {
	var fields []domain.Field
	extractors := []struct {
		name string
		fn   func(string) []domain.Field
	}{
		{"phone", extractPhones},
		{"email", extractEmails},
		{"url", extractURLs},
		{"date", extractDates},
		{"address", extractAddresses},
		{"amount", extractAmounts},
		{"name", extractNames},
	}
	for _, e := range extractors {
		fields = append(fields, runExtractor(e.name, e.fn, text)...)
	}
	return fields
}

// runExtractor isolates a single extractor pass; a panic is logged and
// contributes nothing.
func runExtractor(name string, fn func(string) []domain.Field, text string) (fields []domain.Field) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("extract.runExtractor: %s extractor failed: %v", name, r)
			fields = nil
		}
	}()
	return fn(text)
}

// contextBefore returns the lowercased window of up to n characters that
// precedes position idx in text.
func contextBefore(text string, idx, n int) string {
	start := idx - n
	if start < 0 {
		start = 0
	}
	return strings.ToLower(text[start:idx])
}

func extractPhones(text string) []domain.Field {
	var fields []domain.Field
	for _, loc := range phoneRe.FindAllStringIndex(text, -1) {
		match := text[loc[0]:loc[1]]
		ctx := contextBefore(text, loc[0], 25)

		// A ten-digit run next to "group" or "policy" is an identifier,
		// not a phone number.
		if containsAnyTerm(ctx, phoneBannedContext) {
			continue
		}

		confidence := 0.6
		if strings.ContainsAny(match, "()-. ") {
			confidence = 0.75
		}
		if containsAnyTerm(ctx, phoneContextTerms) {
			confidence = 0.9
		}
		fields = append(fields, domain.NewField("phone", match, confidence, domain.SourceLocalPattern))
	}
	return fields
}

func extractEmails(text string) []domain.Field {
	var fields []domain.Field
	for _, match := range emailRe.FindAllString(text, -1) {
		fields = append(fields, domain.NewField("email", match, 0.9, domain.SourceLocalPattern))
	}
	return fields
}

func extractURLs(text string) []domain.Field {
	var fields []domain.Field
	for _, match := range urlRe.FindAllString(text, -1) {
		match = strings.TrimRight(match, ".,;:)")
		fields = append(fields, domain.NewField("url", match, 0.85, domain.SourceLocalPattern))
	}
	return fields
}

func extractDates(text string) []domain.Field {
	var fields []domain.Field
	for _, loc := range dateRe.FindAllStringIndex(text, -1) {
		match := text[loc[0]:loc[1]]
		ctx := contextBefore(text, loc[0], 30)

		key := "date"
		switch {
		case containsAnyTerm(ctx, dueContextTerms):
			key = "due_date"
		case containsAnyTerm(ctx, expiryContextTerms):
			key = "expiry_date"
		}
		fields = append(fields, domain.NewField(key, match, 0.8, domain.SourceLocalPattern))
	}
	return fields
}

func extractAddresses(text string) []domain.Field {
	var fields []domain.Field
	for _, match := range addrRe.FindAllString(text, -1) {
		fields = append(fields, domain.NewField("address", strings.TrimSpace(match), 0.75, domain.SourceLocalPattern))
	}
	return fields
}

func extractAmounts(text string) []domain.Field {
	var fields []domain.Field
	for _, loc := range moneyRe.FindAllStringIndex(text, -1) {
		match := text[loc[0]:loc[1]]
		ctx := contextBefore(text, loc[0], 25)

		key := "amount"
		switch {
		case containsAnyTerm(ctx, dueContextTerms):
			key = "amount_due"
		case containsAnyTerm(ctx, totalContextTerms):
			key = "total_amount"
		}
		fields = append(fields, domain.NewField(key, strings.ReplaceAll(match, " ", ""), 0.85, domain.SourceLocalPattern))
	}
	return fields
}

// extractNames tags capitalized word sequences, but only when nearby
// vocabulary suggests a person name; bare Title Case is too common in
// headings and merchant names.
func extractNames(text string) []domain.Field {
	var fields []domain.Field
	for _, loc := range nameRe.FindAllStringIndex(text, -1) {
		match := text[loc[0]:loc[1]]
		ctx := contextBefore(text, loc[0], 30)
		if !containsAnyTerm(ctx, nameContextTerms) {
			continue
		}
		fields = append(fields, domain.NewField("name", match, 0.7, domain.SourceNLEntity))
	}
	return fields
}

func containsAnyTerm(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
