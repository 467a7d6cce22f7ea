// Package consistency compares identity fields across the documents of one
// submission. A mismatch across issuing authorities is the canonical fraud
// signal this system exists to catch, so results feed the decision engine
// as hard gates rather than score adjustments.
package consistency

import (
	"kycgate/internal/evaluation"
	"kycgate/internal/extraction"
	"kycgate/internal/policy"
	"kycgate/pkg/domain"
	pstrings "kycgate/pkg/platform/strings"
)

// Verdict is the outcome of comparing one field across documents.
type Verdict string

const (
	VerdictMatch            Verdict = "MATCH"
	VerdictMismatch         Verdict = "MISMATCH"
	VerdictInsufficientData Verdict = "INSUFFICIENT_DATA"
)

// Field names the identity attributes tracked across documents.
type Field string

const (
	FieldName    Field = "name"
	FieldDOB     Field = "dob"
	FieldAddress Field = "address"
)

// TrackedFields is the comparison order. Stable so reports and reason codes
// are deterministic.
var TrackedFields = []Field{FieldName, FieldDOB, FieldAddress}

// Observation is one document's raw and normalized value for a field.
// Raw values are pre-redaction and must only reach the audit trail.
type Observation struct {
	Filename   string
	Kind       domain.DocumentKind
	Raw        string
	Normalized string
}

// Result is the verdict for one tracked field with the compared values.
type Result struct {
	Field   Field
	Verdict Verdict
	// Observations holds every compared value, for audit.
	Observations []Observation
	// Disagreeing names the documents that diverge from the first
	// observation. Empty unless Verdict is MISMATCH.
	Disagreeing []string
}

// Checker performs normalized cross-document comparison. Construct once per
// policy; safe for concurrent use.
type Checker struct {
	policy policy.Policy
}

// New builds a checker with the given policy.
func New(p policy.Policy) *Checker {
	return &Checker{policy: p}
}

// Check compares each tracked field across the admissible documents.
// ACCEPTED documents always participate; WEAK ones participate when policy
// admits them. Fewer than two observations yields INSUFFICIENT_DATA.
func (c *Checker) Check(docs []evaluation.Document) []Result {
	results := make([]Result, 0, len(TrackedFields))
	for _, field := range TrackedFields {
		results = append(results, c.checkField(field, docs))
	}
	return results
}

func (c *Checker) checkField(field Field, docs []evaluation.Document) Result {
	result := Result{Field: field, Verdict: VerdictInsufficientData}

	for _, doc := range docs {
		if !c.admissible(doc) {
			continue
		}
		raw, ok := doc.Fields[sourceField(field)]
		if !ok || raw == "" {
			continue
		}
		result.Observations = append(result.Observations, Observation{
			Filename:   doc.Filename,
			Kind:       doc.Kind,
			Raw:        raw,
			Normalized: normalize(field, raw),
		})
	}

	if len(result.Observations) < 2 {
		return result
	}

	result.Verdict = VerdictMatch
	reference := result.Observations[0]
	for _, obs := range result.Observations[1:] {
		if c.equivalent(field, reference.Normalized, obs.Normalized) {
			continue
		}
		result.Verdict = VerdictMismatch
		result.Disagreeing = append(result.Disagreeing, obs.Filename)
	}
	return result
}

func (c *Checker) admissible(doc evaluation.Document) bool {
	switch doc.Status {
	case evaluation.StatusAccepted:
		return true
	case evaluation.StatusWeak:
		return c.policy.Consistency.IncludeWeak
	default:
		return false
	}
}

// sourceField maps a tracked field to the collaborator's field name.
func sourceField(field Field) string {
	switch field {
	case FieldName:
		return extraction.FieldHolderName
	case FieldDOB:
		return extraction.FieldDateOfBirth
	default:
		return extraction.FieldAddress
	}
}

// normalize canonicalizes a value before comparison. Raw strings are never
// compared directly; formatting differs across issuing authorities.
func normalize(field Field, raw string) string {
	if field == FieldDOB {
		if t, ok := evaluation.ParseDate(raw); ok {
			return t.Format("2006-01-02")
		}
	}
	return pstrings.FoldValue(raw)
}

// equivalent compares two normalized values. Names tolerate transliteration
// and spacing differences via token similarity; other fields require
// normalized equality.
func (c *Checker) equivalent(field Field, a, b string) bool {
	if a == b {
		return true
	}
	if field == FieldName {
		return nameSimilarity(a, b) >= c.policy.Consistency.NameSimilarity
	}
	return false
}
