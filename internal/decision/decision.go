// Package decision aggregates requirement coverage, per-document scores,
// tamper flags, and consistency verdicts into the final verdict. The goal
// is to keep the rules centralized and testable: a Decision is a pure
// function of its inputs with no internal transitions after construction,
// enabling deterministic replay.
package decision

// Outcome enumerates the possible final verdicts.
type Outcome string

const (
	OutcomeApproved       Outcome = "APPROVED"
	OutcomeReviewRequired Outcome = "REVIEW_REQUIRED"
	OutcomeRejected       Outcome = "REJECTED"
)

// Reason code constants. Parameterized codes append ":{detail}".
const (
	ReasonMissingMandatory   = "MISSING_MANDATORY_DOCUMENT"
	ReasonTamperDetected     = "TAMPER_DETECTED"
	ReasonConsistencyFailure = "CONSISTENCY_FAILURE"
	ReasonUnreadableDocument = "UNREADABLE_DOCUMENT"
	ReasonWeakDocument       = "WEAK_DOCUMENT"
	ReasonBelowReview        = "SCORE_BELOW_REVIEW_THRESHOLD"
	ReasonBelowApproval      = "SCORE_BELOW_APPROVAL_THRESHOLD"
	ReasonAllChecksPassed    = "ALL_CHECKS_PASSED"
)

// Decision is the engine's verdict. This package exclusively owns its
// construction; no other component sets OverallScore or EscalateToHuman.
type Decision struct {
	Outcome Outcome
	// OverallScore is the weighted aggregate of contributing document
	// confidences, recorded even when a hard gate forces rejection so the
	// audit trail shows what the submission would have scored.
	OverallScore float64
	// Reasons is the ordered list of reason codes behind the outcome.
	Reasons []string
	// NextActions is the ordered customer guidance derived from Reasons.
	NextActions []string
	// EscalateToHuman marks the result for mandatory human review.
	EscalateToHuman bool
}
