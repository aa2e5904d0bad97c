package classify

import (
	"doclens/internal/domain"
)

// Classifier resolves a document category from OCR text and known fields.
// It holds no mutable state; any number of documents may be classified
// concurrently on one instance.
type Classifier struct {
	diag Diagnostics
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithDiagnostics injects a diagnostics sink. Diagnostics are disabled by
// default.
func WithDiagnostics(d Diagnostics) Option {
	return func(c *Classifier) {
		if d != nil {
			c.diag = d
		}
	}
}

// NewClassifier creates a Classifier.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{diag: NopDiagnostics{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify resolves exactly one category for the document. It is total and
// deterministic: no input errors, no randomness, and when nothing fires the
// caller-supplied default (or generic) is returned.
//
// Detector order is load-bearing. Promotional runs first and its result is
// threaded into the receipt and letter detectors: marketing intent always
// pre-empts weaker structural matches. High-specificity categories
// (insurance, credit card) are resolved before loosely-signaled ones so a
// single weak keyword cannot steal the classification. Receipt takes
// precedence over bill statement when both fire, as completed-transaction
// evidence is stronger than open-balance language.
func (c *Classifier) Classify(
	text string,
	fields []domain.Field,
	hint domain.DocumentCategory,
	defaultCategory domain.DocumentCategory,
) (domain.DocumentCategory, float64, domain.Signals) {
	if defaultCategory == "" || !defaultCategory.IsValid() {
		defaultCategory = domain.CategoryGeneric
	}

	haystack := BuildHaystack(text, fields)
	keys := fieldKeys(fields)
	values := fieldValues(fields)

	promotionalHit, promoDetail := IsPromotional(haystack)
	insuranceHit, insuranceDetail := IsInsuranceCard(haystack)
	creditHit, creditDetail := IsCreditCard(haystack, values, keys)
	receiptHit, receiptDetail := IsReceipt(haystack, promotionalHit)
	billHit, billDetail := IsBillStatement(haystack)
	letterHit, letterDetail := IsLetter(haystack, promotionalHit)

	signals := domain.Signals{
		Promotional:   promotionalHit,
		Receipt:       receiptHit,
		Bill:          billHit,
		InsuranceCard: insuranceHit,
		CreditCard:    creditHit,
		Letter:        letterHit,
		Details: map[string]map[string]any{
			"promotional":    promoDetail,
			"insurance_card": insuranceDetail,
			"credit_card":    creditDetail,
			"receipt":        receiptDetail,
			"bill":           billDetail,
			"letter":         letterDetail,
		},
	}

	var category domain.DocumentCategory
	var confidence float64

	switch {
	case promotionalHit:
		category = domain.CategoryPromotional
		confidence = signalConfidence(detailInt(promoDetail, "signal_count"), 5)

	case insuranceHit:
		category = domain.CategoryInsuranceCard
		confidence = signalConfidence(detailInt(insuranceDetail, "signal_count"), 4)
		if detailBool(insuranceDetail, "has_rx_bin") {
			confidence = 0.95
		}

	case creditHit:
		category = domain.CategoryCreditCard
		confidence = 0.75
		if detailBool(creditDetail, "has_issuer_name") {
			confidence = 0.9
		}

	case receiptHit:
		category = domain.CategoryReceipt
		switch receiptDetail["rule"] {
		case ReceiptRuleStrong:
			confidence = 0.95
		case ReceiptRuleMerchant:
			confidence = 0.85
		default:
			confidence = 0.70
		}

	case billHit:
		category = domain.CategoryBillStatement
		confidence = 0.75
		if detailBool(billDetail, "has_billing_term") {
			confidence = 0.9
		}

	case letterHit:
		category = domain.CategoryLetter
		confidence = 0.80

	default:
		// The hint never outvotes the detectors; it only informs the
		// fallback when nothing fires.
		if hint.IsValid() && hint != domain.CategoryGeneric {
			category = hint
		} else {
			category = defaultCategory
		}
		confidence = 0.30
	}

	c.diag.RecordClassification(category, confidence, signals)
	return category, confidence, signals
}

// signalConfidence maps how many signal families fired to a confidence
// score.
func signalConfidence(count, max int) float64 {
	switch {
	case count >= max:
		return 0.95
	case count >= max-1:
		return 0.85
	case count >= 2:
		return 0.75
	default:
		return 0.60
	}
}

func detailInt(d Detail, key string) int {
	if v, ok := d[key].(int); ok {
		return v
	}
	return 0
}

func detailBool(d Detail, key string) bool {
	v, ok := d[key].(bool)
	return ok && v
}
