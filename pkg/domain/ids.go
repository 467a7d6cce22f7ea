package domain

import "github.com/google/uuid"

// RequestID identifies one verification request. A fresh ID is minted per
// call; re-verification of the same bundle gets a new ID.
type RequestID uuid.UUID

// NewRequestID mints a random request ID.
func NewRequestID() RequestID {
	return RequestID(uuid.New())
}

// ParseRequestID parses a request ID from its string form.
func ParseRequestID(s string) (RequestID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return RequestID{}, err
	}
	return RequestID(u), nil
}

// String returns the canonical UUID string.
func (r RequestID) String() string {
	return uuid.UUID(r).String()
}

// IsNil reports whether the ID is the zero value.
func (r RequestID) IsNil() bool {
	return uuid.UUID(r) == uuid.Nil
}
