package domain

import "fmt"

// DocumentCategory is the closed set of document types the classifier can
// resolve. Classification is total: every call resolves to exactly one
// member, with CategoryGeneric as the universal fallback.
type DocumentCategory string

const (
	CategoryCreditCard    DocumentCategory = "creditCard"
	CategoryInsuranceCard DocumentCategory = "insuranceCard"
	CategoryIDCard        DocumentCategory = "idCard"
	CategoryLetter        DocumentCategory = "letter"
	CategoryBillStatement DocumentCategory = "billStatement"
	CategoryReceipt       DocumentCategory = "receipt"
	CategoryPromotional   DocumentCategory = "promotional"
	CategoryGeneric       DocumentCategory = "generic"
)

// AllCategories lists every member of the closed enum, detector-priority
// order first, generic last.
var AllCategories = []DocumentCategory{
	CategoryPromotional,
	CategoryInsuranceCard,
	CategoryCreditCard,
	CategoryReceipt,
	CategoryBillStatement,
	CategoryLetter,
	CategoryIDCard,
	CategoryGeneric,
}

// CategoryDescriptions maps each category to a short human-readable summary.
var CategoryDescriptions = map[DocumentCategory]string{
	CategoryReceipt:       "Proof of purchase with transaction ID and payment method",
	CategoryPromotional:   "Marketing materials, offers, coupons, and promotional content",
	CategoryBillStatement: "Recurring service bills and statements requiring payment",
	CategoryCreditCard:    "Physical payment cards (credit/debit) with PAN and expiry",
	CategoryInsuranceCard: "Health/dental/vision insurance cards with member ID",
	CategoryIDCard:        "Government or organizational identification cards",
	CategoryLetter:        "Personal or business correspondence with salutation and closing",
	CategoryGeneric:       "Documents that don't fit other specific categories",
}

// IsValid reports whether c is a member of the closed enum.
func (c DocumentCategory) IsValid() bool {
	_, ok := CategoryDescriptions[c]
	return ok
}

func (c DocumentCategory) String() string {
	return string(c)
}

// ParseCategory converts a wire string into a DocumentCategory. Unknown
// values are an error; callers that want a fallback should use
// CategoryGeneric explicitly.
func ParseCategory(s string) (DocumentCategory, error) {
	c := DocumentCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// FieldSource identifies which extractor produced a Field.
type FieldSource string

const (
	SourceLocalPattern FieldSource = "local_pattern"
	SourceNLEntity     FieldSource = "nl_entity"
	SourceLLM          FieldSource = "llm"
	SourceFused        FieldSource = "fused"
)
