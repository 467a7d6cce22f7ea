package decision

import (
	"kycgate/internal/catalog"
	"kycgate/internal/consistency"
	"kycgate/internal/evaluation"
	"kycgate/internal/policy"
	pstrings "kycgate/pkg/platform/strings"
)

// Engine evaluates requirement coverage, document scores, and consistency
// verdicts to produce the final decision.
type Engine struct {
	policy policy.Policy
}

// NewEngine builds an engine with the given policy.
func NewEngine(p policy.Policy) *Engine {
	return &Engine{policy: p}
}

// Decide applies the adjudication rule chain.
// Rule priority (hard gates first):
//  1. Mandatory coverage - every mandatory kind needs an ACCEPTED document
//  2. Severe tamper - forged evidence invalidates the submission
//  3. Consistency - identity mismatch across documents is the canonical
//     fraud signal, a hard gate rather than a score adjustment
//  4. Weighted score against the approve/review thresholds
func (e *Engine) Decide(requirements []catalog.Requirement, docs []evaluation.Document, checks []consistency.Result) Decision {
	var gates []string

	// Rule 1: Mandatory coverage, in catalog order.
	for _, req := range requirements {
		if !req.Mandatory {
			continue
		}
		if !hasAccepted(docs, req) {
			gates = append(gates, ReasonMissingMandatory+":"+req.Kind.String())
		}
	}

	// Rule 2: Severe tamper on any document.
	for _, doc := range docs {
		if doc.SevereTamper {
			gates = append(gates, ReasonTamperDetected)
			break
		}
	}

	// Rule 3: Cross-document consistency, in tracked-field order.
	for _, check := range checks {
		if check.Verdict == consistency.VerdictMismatch {
			gates = append(gates, ReasonConsistencyFailure+":"+string(check.Field))
		}
	}

	// Rule 4: Weighted aggregate of contributing documents. Computed even
	// when gated so audit shows the would-be score.
	score, weakKinds := e.aggregate(docs)

	d := Decision{OverallScore: score}
	switch {
	case len(gates) > 0:
		d.Outcome = OutcomeRejected
		d.Reasons = gates
	case score >= e.policy.Decision.ApproveThreshold:
		d.Outcome = OutcomeApproved
		d.Reasons = []string{ReasonAllChecksPassed}
	case score >= e.policy.Decision.ReviewThreshold:
		d.Outcome = OutcomeReviewRequired
		d.Reasons = []string{ReasonBelowApproval}
	default:
		d.Outcome = OutcomeRejected
		d.Reasons = []string{ReasonBelowReview}
	}

	// Unreadable uploads are worth reporting even when another rule
	// already decided the outcome.
	for _, doc := range docs {
		if doc.Status == evaluation.StatusUnreadable {
			d.Reasons = append(d.Reasons, ReasonUnreadableDocument+":"+doc.Filename)
		}
	}

	// A borderline accept always gets a human glance.
	weakContributed := len(weakKinds) > 0
	if d.Outcome == OutcomeApproved && weakContributed {
		for _, kind := range weakKinds {
			d.Reasons = append(d.Reasons, ReasonWeakDocument+":"+kind)
		}
	}
	d.EscalateToHuman = d.Outcome != OutcomeApproved || weakContributed

	d.Reasons = pstrings.DedupeAndTrim(d.Reasons)
	d.NextActions = nextActions(d.Reasons)
	return d
}

// aggregate computes the weighted average confidence over ACCEPTED and
// WEAK documents, and returns the kinds of WEAK contributors.
func (e *Engine) aggregate(docs []evaluation.Document) (float64, []string) {
	var weightedSum, totalWeight float64
	var weakKinds []string

	for _, doc := range docs {
		switch doc.Status {
		case evaluation.StatusAccepted:
		case evaluation.StatusWeak:
			weakKinds = append(weakKinds, doc.Kind.String())
		default:
			continue
		}
		weight := e.policy.WeightFor(doc.Kind)
		weightedSum += weight * doc.Confidence
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0, weakKinds
	}
	return weightedSum / totalWeight, weakKinds
}

func hasAccepted(docs []evaluation.Document, req catalog.Requirement) bool {
	for _, doc := range docs {
		if doc.Kind == req.Kind && doc.Status == evaluation.StatusAccepted {
			return true
		}
	}
	return false
}
