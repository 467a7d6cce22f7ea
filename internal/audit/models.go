package audit

import "time"

// Category classifies audit events by their primary purpose, enabling
// different retention policies and routing downstream.
type Category string

const (
	// CategoryCompliance covers events with legal/regulatory significance.
	// These retain unredacted values and require long retention.
	CategoryCompliance Category = "compliance"

	// CategoryOperations covers events useful for debugging and
	// operational visibility; can be sampled with shorter retention.
	CategoryOperations Category = "operations"
)

// Action names for verification events.
const (
	ActionVerificationStarted = "verification_started"
	ActionDocumentEvaluated   = "document_evaluated"
	ActionDocumentUnreadable  = "document_unreadable"
	ActionDecisionMade        = "decision_made"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out. Detail may carry
// unredacted values; events never cross the external boundary.
type Event struct {
	Category  Category
	Timestamp time.Time
	RequestID string
	Purpose   string
	Action    string
	Subject   string // document filename or compared field
	Decision  string
	Reason    string
	Detail    string
}
