// Package evaluation scores one classified document against its kind's
// field schema and the submission's catalog requirement. Evaluation is a
// pure computation over the collaborator's output; independent documents
// are safe to evaluate concurrently.
package evaluation

import (
	"fmt"
	"time"

	"kycgate/internal/catalog"
	"kycgate/internal/extraction"
	"kycgate/internal/policy"
	"kycgate/pkg/domain"
)

// Status classifies a single evaluated document.
type Status string

const (
	StatusAccepted   Status = "ACCEPTED"
	StatusWeak       Status = "WEAK"
	StatusRejected   Status = "REJECTED"
	StatusUnreadable Status = "UNREADABLE"
)

// Document is the evaluated form of one upload. Immutable once returned.
type Document struct {
	Filename             string
	Kind                 domain.DocumentKind
	Fields               map[string]string
	TamperSignals        []string
	ExtractionConfidence float64
	Completeness         float64
	ValidityPenalty      float64
	TamperPenalty        float64
	// Confidence is the final per-document score. Invariant: never above
	// ExtractionConfidence; the evaluator only discounts upstream trust.
	Confidence   float64
	Status       Status
	SevereTamper bool
	// Notes records every check outcome for the audit trail.
	Notes []string
}

// Evaluator applies schema, format, and tamper rules to classified
// documents. Construct once per policy; safe for concurrent use.
type Evaluator struct {
	policy policy.Policy
}

// New builds an evaluator with the given policy.
func New(p policy.Policy) *Evaluator {
	return &Evaluator{policy: p}
}

// Evaluate scores one classified document. req is the catalog requirement
// for the detected kind under the submission's purpose, or nil when the
// purpose does not list the kind. Deterministic for identical inputs.
func (e *Evaluator) Evaluate(filename string, res extraction.Result, req *catalog.Requirement, now time.Time) Document {
	doc := Document{
		Filename:             filename,
		Kind:                 res.Kind,
		Fields:               res.Fields,
		TamperSignals:        res.TamperSignals,
		ExtractionConfidence: res.Confidence,
	}

	doc.Completeness, doc.Notes = completeness(res.Kind, res.Fields)

	failures := validityFailures(res.Kind, res.Fields, now)
	doc.Notes = append(doc.Notes, failures...)
	doc.ValidityPenalty = clamp01(float64(len(failures)) * e.policy.Evaluator.ValidityPenalty)

	doc.TamperPenalty = clamp01(float64(len(res.TamperSignals)) * e.policy.Evaluator.TamperPenalty)
	for _, signal := range res.TamperSignals {
		if e.policy.IsSevere(signal) {
			doc.SevereTamper = true
			doc.Notes = append(doc.Notes, "tamper: severe signal "+signal)
		} else {
			doc.Notes = append(doc.Notes, "tamper: signal "+signal)
		}
	}

	factor := 1 - doc.ValidityPenalty - doc.TamperPenalty
	if factor < 0 {
		factor = 0
	}
	doc.Confidence = clamp01(res.Confidence * doc.Completeness * factor)

	minConfidence := e.policy.Evaluator.DefaultMinConfidence
	if req != nil {
		minConfidence = req.MinConfidence
	}
	doc.Status = e.status(doc, minConfidence)

	return doc
}

// Unreadable builds the degraded document for an upload whose extraction
// failed after bounded retries. It contributes to decisions only as a
// missing document.
func Unreadable(filename string, err error) Document {
	return Document{
		Filename: filename,
		Status:   StatusUnreadable,
		Notes:    []string{fmt.Sprintf("extraction failed: %v", err)},
	}
}

// status applies the acceptance band: at or above the minimum is ACCEPTED,
// within the weak margin below it is WEAK, anything lower is REJECTED.
// A severe tamper signal rejects regardless of score.
func (e *Evaluator) status(doc Document, minConfidence float64) Status {
	if doc.SevereTamper {
		return StatusRejected
	}
	switch {
	case doc.Confidence >= minConfidence:
		return StatusAccepted
	case doc.Confidence >= minConfidence-e.policy.Evaluator.WeakMargin:
		return StatusWeak
	default:
		return StatusRejected
	}
}

// completeness returns the fraction of schema fields present and non-empty
// plus notes naming the missing ones. Kinds with an empty schema (e.g.
// photographs) are complete by definition.
func completeness(kind domain.DocumentKind, fields map[string]string) (float64, []string) {
	schema := schemaFor(kind)
	if len(schema) == 0 {
		return 1, nil
	}

	var notes []string
	present := 0
	for _, field := range schema {
		if v, ok := fields[field]; ok && v != "" {
			present++
			continue
		}
		notes = append(notes, "missing field: "+field)
	}
	return float64(present) / float64(len(schema)), notes
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
