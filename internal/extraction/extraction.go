// Package extraction defines the narrow port to the external vision
// collaborator that turns raw document bytes into structured fields, and
// the resilience wrappers (retry, circuit breaker) around it. The decision
// core never calls a live service through anything but this port, so tests
// run entirely on synthetic results.
package extraction

import (
	"context"

	"kycgate/pkg/domain"
)

// Well-known field names produced by the collaborator. The evaluator and
// consistency checker key off these.
const (
	FieldHolderName  = "holder_name"
	FieldIDNumber    = "id_number"
	FieldDateOfBirth = "dob"
	FieldAddress     = "address"
	FieldFatherName  = "father_name"
	FieldNationality = "nationality"
	FieldExpiryDate  = "expiry_date"
	FieldEmployer    = "employer_name"
	FieldAmount      = "amount"
	FieldPeriod      = "period"
	FieldBillDate    = "bill_date"
)

// Upload is one submitted file prior to classification.
type Upload struct {
	Filename string
	Content  []byte
}

// Result is the collaborator's structured output for one document.
type Result struct {
	// Kind is the detected document kind; empty when the collaborator
	// could not classify the document.
	Kind domain.DocumentKind
	// Fields maps field names to raw extracted string values.
	Fields map[string]string
	// TamperSignals are forgery indicator tags flagged upstream. The
	// decision core interprets them; it never computes them.
	TamperSignals []string
	// Confidence is the collaborator's raw confidence in [0,1].
	Confidence float64
}

// Extractor is the universal interface any classification source must
// implement.
type Extractor interface {
	// Extract classifies one upload and extracts its fields.
	Extract(ctx context.Context, upload Upload) (*Result, error)
}
