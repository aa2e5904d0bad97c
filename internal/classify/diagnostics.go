package classify

import (
	"log"

	"doclens/internal/domain"
)

// Diagnostics receives the per-category signal breakdown of every
// classification. The default sink discards everything; callers inject a
// real one to trace decisions.
type Diagnostics interface {
	RecordClassification(category domain.DocumentCategory, confidence float64, signals domain.Signals)
}

// NopDiagnostics discards all diagnostics.
type NopDiagnostics struct{}

func (NopDiagnostics) RecordClassification(domain.DocumentCategory, float64, domain.Signals) {}

// LogDiagnostics writes a one-line signal summary per classification to the
// standard logger.
type LogDiagnostics struct{}

func (LogDiagnostics) RecordClassification(category domain.DocumentCategory, confidence float64, s domain.Signals) {
	log.Printf("classify.Classifier: result=%s confidence=%.2f promotional=%t insurance=%t credit=%t receipt=%t bill=%t letter=%t",
		category, confidence, s.Promotional, s.InsuranceCard, s.CreditCard, s.Receipt, s.Bill, s.Letter)
}
