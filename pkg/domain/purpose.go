package domain

import dErrors "kycgate/pkg/domain-errors"

// Purpose is a domain value that identifies the banking transaction a
// customer is submitting documents for.
// Invariant: the value must be one of the supported purposes.
//
// Usage: construct via ParsePurpose at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Purpose string

// Supported purposes.
const (
	PurposeAccountOpeningSavings Purpose = "account_opening_savings"
	PurposeAccountOpeningSalary  Purpose = "account_opening_salary"
	PurposeAddressUpdate         Purpose = "address_update"
	PurposeLoanApplication       Purpose = "loan_application"
	PurposeCreditCardKYC         Purpose = "credit_card_kyc"
	PurposeBusinessAccount       Purpose = "business_account"
)

// validPurposes is the single source of truth for valid purposes.
var validPurposes = map[Purpose]bool{
	PurposeAccountOpeningSavings: true,
	PurposeAccountOpeningSalary:  true,
	PurposeAddressUpdate:         true,
	PurposeLoanApplication:       true,
	PurposeCreditCardKYC:         true,
	PurposeBusinessAccount:       true,
}

// purposeDisplayNames maps purposes to human-readable labels for
// customer-facing copy.
var purposeDisplayNames = map[Purpose]string{
	PurposeAccountOpeningSavings: "Open Savings Account",
	PurposeAccountOpeningSalary:  "Open Salary Account",
	PurposeAddressUpdate:         "Update Address",
	PurposeLoanApplication:       "Loan Application",
	PurposeCreditCardKYC:         "Credit Card KYC",
	PurposeBusinessAccount:       "Open Business Account",
}

// ParsePurpose constructs a Purpose from external input.
// Returns a coded error when the purpose is not registered.
func ParsePurpose(s string) (Purpose, error) {
	p := Purpose(s)
	if !validPurposes[p] {
		return "", dErrors.New(dErrors.CodeUnknownPurpose, "unknown purpose: "+s)
	}
	return p, nil
}

// String returns the wire representation.
func (p Purpose) String() string {
	return string(p)
}

// DisplayName returns the human-readable label for the purpose.
func (p Purpose) DisplayName() string {
	if name, ok := purposeDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

// Purposes returns all supported purposes in a stable order.
func Purposes() []Purpose {
	return []Purpose{
		PurposeAccountOpeningSavings,
		PurposeAccountOpeningSalary,
		PurposeAddressUpdate,
		PurposeLoanApplication,
		PurposeCreditCardKYC,
		PurposeBusinessAccount,
	}
}
