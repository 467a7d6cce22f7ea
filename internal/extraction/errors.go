package extraction

import (
	"errors"
	"fmt"
)

// ErrorCategory defines the normalized failure taxonomy for the
// classification collaborator.
type ErrorCategory string

const (
	// ErrorTimeout indicates the collaborator took too long to respond.
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the collaborator returned invalid/malformed data.
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorOutage indicates the collaborator is unavailable.
	ErrorOutage ErrorCategory = "outage"

	// ErrorRateLimited indicates too many requests.
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorMalformedUpload indicates the submitted bytes are not a readable
	// document. Never retried; the file will not get better.
	ErrorMalformedUpload ErrorCategory = "malformed_upload"

	// ErrorInternal indicates an unexpected internal error.
	ErrorInternal ErrorCategory = "internal"
)

// Error wraps collaborator failures with normalized categorization.
type Error struct {
	Category   ErrorCategory
	Message    string
	Underlying error
	Retryable  bool
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("extraction [%s]: %s: %v", e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("extraction [%s]: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewError creates a normalized extraction error. Transient categories are
// marked retryable.
func NewError(category ErrorCategory, message string, underlying error) *Error {
	retryable := category == ErrorTimeout ||
		category == ErrorOutage ||
		category == ErrorRateLimited

	return &Error{
		Category:   category,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Retryable
	}
	return false
}

// CategoryOf extracts the error category from an error.
func CategoryOf(err error) ErrorCategory {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Category
	}
	return ErrorInternal
}
