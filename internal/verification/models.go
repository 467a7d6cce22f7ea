// Package verification orchestrates one submission end to end: requirement
// resolution, concurrent extraction and evaluation, cross-document
// consistency, final adjudication, and audit trail assembly.
package verification

import (
	"time"

	"kycgate/internal/consistency"
	"kycgate/internal/decision"
	"kycgate/internal/evaluation"
	"kycgate/internal/extraction"
	"kycgate/pkg/domain"
)

// Request is one verification call: a purpose and the submitted files.
type Request struct {
	Purpose domain.Purpose
	Uploads []extraction.Upload
}

// RequiredDocument is one checklist row in the result.
type RequiredDocument struct {
	Kind          domain.DocumentKind `json:"kind"`
	Mandatory     bool                `json:"mandatory"`
	MinConfidence float64             `json:"min_confidence"`
	Fulfilled     bool                `json:"fulfilled"`
}

// DocumentResult is the externally reported evaluation of one upload.
type DocumentResult struct {
	Filename             string              `json:"filename"`
	Kind                 domain.DocumentKind `json:"detected_kind,omitempty"`
	Fields               map[string]string   `json:"fields,omitempty"`
	TamperSignals        []string            `json:"tamper_signals,omitempty"`
	ExtractionConfidence float64             `json:"extraction_confidence"`
	Completeness         float64             `json:"completeness_score"`
	ValidityPenalty      float64             `json:"validity_penalty"`
	TamperPenalty        float64             `json:"tamper_penalty"`
	Confidence           float64             `json:"confidence"`
	Status               evaluation.Status   `json:"status"`
	Notes                []string            `json:"notes,omitempty"`
}

// Step is one timestamped audit trail entry.
type Step struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Trail is the internal-only audit block: processing steps plus the
// consistency observations with their unredacted compared values. It is
// retained for compliance review and stripped from external output.
type Trail struct {
	Steps       []Step               `json:"steps"`
	CrossChecks []consistency.Result `json:"cross_checks"`
}

// Result is the top-level verification outcome. Constructed fresh per
// call and immutable once returned; re-verification mints a new request id.
type Result struct {
	RequestID         string             `json:"request_id"`
	Timestamp         time.Time          `json:"timestamp"`
	Purpose           domain.Purpose     `json:"purpose"`
	RequiredDocuments []RequiredDocument `json:"required_documents"`
	Uploads           []DocumentResult   `json:"uploads"`
	CrossChecks       map[string]string  `json:"cross_checks"`
	Decision          decision.Outcome   `json:"decision"`
	OverallScore      float64            `json:"overall_score"`
	DecisionReasons   []string           `json:"decision_reasons"`
	NextActions       []string           `json:"next_actions"`
	EscalateToHuman   bool               `json:"escalate_to_human"`
	Audit             *Trail             `json:"audit,omitempty"`
}
