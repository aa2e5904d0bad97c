// Package llm holds what is shared across LLM providers: prompt selection,
// response sanitizing and flattening, the provider registry, and the
// fallback chain.
package llm

import (
	"doclens/internal/domain"
)

const promptPreamble = `You are a document data extraction assistant. Analyze the provided document text and extract the requested fields.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation — just the raw JSON object. If a field is not present in the document, omit it entirely; never invent values.

`

// genericPrompt asks for everything the model can find; used when the
// document resolved to no specific category.
const genericPrompt = promptPreamble + `Extract every meaningful field you can identify from the document: names, dates, amounts, identifiers, contact details, organizations, addresses, and anything else that looks like structured data.

Return a single flat JSON object mapping snake_case field names to values.

Document text:
`

// categoryPrompts are compact, schema-constrained prompts keyed by resolved
// category. Keys follow the canonical vocabulary so responses fuse cleanly.
var categoryPrompts = map[domain.DocumentCategory]string{
	domain.CategoryCreditCard: promptPreamble + `The document is a payment card. Return a JSON object with this schema:
{"cardholder": "", "card_number": "", "expiry_date": "", "issuer": "", "card_type": ""}

Document text:
`,
	domain.CategoryInsuranceCard: promptPreamble + `The document is a health, dental, or vision insurance card. Return a JSON object with this schema:
{"member_name": "", "member_id": "", "group_number": "", "payer_id": "", "plan_type": "", "insurer": "", "rx_bin": ""}

Document text:
`,
	domain.CategoryIDCard: promptPreamble + `The document is an identification card. Return a JSON object with this schema:
{"name": "", "id_number": "", "date_of_birth": "", "expiry_date": "", "height": "", "address": ""}

Document text:
`,
	domain.CategoryBillStatement: promptPreamble + `The document is a bill or account statement. Return a JSON object with this schema:
{"account_number": "", "due_date": "", "amount_due": "", "total_amount": "", "statement_date": "", "billing_period": "", "service_provider": ""}

Document text:
`,
	domain.CategoryReceipt: promptPreamble + `The document is a purchase receipt. Return a JSON object with this schema:
{"merchant": "", "transaction_id": "", "date": "", "total_amount": "", "payment_method": ""}

Document text:
`,
	domain.CategoryPromotional: promptPreamble + `The document is promotional material. Return a JSON object with this schema:
{"merchant": "", "promo_code": "", "offer_amount": "", "offer_expiry": "", "url": ""}

Document text:
`,
	domain.CategoryLetter: promptPreamble + `The document is a letter. Return a JSON object with this schema:
{"sender": "", "recipient": "", "subject": "", "date": ""}

Document text:
`,
}

// PromptFor returns the extraction prompt for a resolved category: the
// comprehensive open-schema prompt for generic documents, a compact
// category-specific one otherwise.
func PromptFor(category domain.DocumentCategory) string {
	if p, ok := categoryPrompts[category]; ok {
		return p
	}
	return genericPrompt
}
