package decision

import (
	"strings"

	pstrings "kycgate/pkg/platform/strings"
)

// nextActions derives the ordered customer guidance from reason codes.
// Deterministic: same reasons, same actions, same order.
func nextActions(reasons []string) []string {
	var actions []string
	for _, reason := range reasons {
		code, detail, _ := strings.Cut(reason, ":")
		switch code {
		case ReasonMissingMandatory:
			actions = append(actions, "Please resubmit "+detail)
		case ReasonTamperDetected:
			actions = append(actions, "Submit original unaltered documents")
		case ReasonConsistencyFailure:
			actions = append(actions, "Manual review of identity fields required")
		case ReasonUnreadableDocument:
			actions = append(actions, "Re-upload a clearer copy of "+detail)
		case ReasonBelowApproval:
			actions = append(actions, "Await manual review of your submission")
		case ReasonBelowReview:
			actions = append(actions, "Resubmit clearer document images")
		case ReasonWeakDocument:
			actions = append(actions, "Await manual review of your submission")
		}
	}
	return pstrings.DedupeAndTrim(actions)
}
