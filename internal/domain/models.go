package domain

import (
	"github.com/google/uuid"
)

// Field is a single extracted key/value pair. Keys are not unique across
// the raw extraction phase; uniqueness is enforced by fusion. Confidence is
// always clamped to [0,1].
type Field struct {
	Key        string      `json:"key"`
	Value      string      `json:"value"`
	Confidence float64     `json:"confidence"`
	Source     FieldSource `json:"source"`
}

// NewField builds a Field with confidence clamped into [0,1].
func NewField(key, value string, confidence float64, source FieldSource) Field {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return Field{Key: key, Value: value, Confidence: confidence, Source: source}
}

// Signals records which detectors fired during classification, plus
// per-detector detail maps for diagnostics.
type Signals struct {
	Promotional   bool                      `json:"promotional"`
	Receipt       bool                      `json:"receipt"`
	Bill          bool                      `json:"bill"`
	InsuranceCard bool                      `json:"insurance_card"`
	CreditCard    bool                      `json:"credit_card"`
	Letter        bool                      `json:"letter"`
	Details       map[string]map[string]any `json:"details,omitempty"`
}

// AnalysisResult is the complete output of one analysis call: classified
// category plus the fused field set. It is created fresh per call, owned by
// the caller, and immutable once returned. After fusion every Field key is
// unique and restricted to the category's schema allowlist (generic is
// unrestricted).
type AnalysisResult struct {
	ID         uuid.UUID        `json:"id"`
	RawText    string           `json:"raw_text"`
	Category   DocumentCategory `json:"category"`
	Confidence float64          `json:"confidence"`
	Signals    Signals          `json:"signals"`
	Fields     []Field          `json:"fields"`
}

// CardDetails is a derived, ephemeral read-only view of payment-card fields.
// It is never persisted independently of Field data.
type CardDetails struct {
	PAN    string `json:"pan,omitempty"`
	Expiry string `json:"expiry,omitempty"`
	Holder string `json:"holder,omitempty"`
	Issuer string `json:"issuer,omitempty"`
}

// IsEmpty reports whether no card detail was extracted.
func (c CardDetails) IsEmpty() bool {
	return c.PAN == "" && c.Expiry == "" && c.Holder == "" && c.Issuer == ""
}

// Hint carries optional caller-supplied context from the OCR/vision
// collaborator.
type Hint struct {
	SuggestedCategory DocumentCategory
	PersonName        string
}
