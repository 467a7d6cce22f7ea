package evaluation

import (
	"regexp"
	"time"

	"kycgate/internal/extraction"
	"kycgate/pkg/domain"
	pstrings "kycgate/pkg/platform/strings"
)

// fieldSchemas lists the fields the collaborator is expected to extract per
// document kind. Completeness is the fraction of these present and
// non-empty.
var fieldSchemas = map[domain.DocumentKind][]string{
	domain.KindAadhaar:           {extraction.FieldHolderName, extraction.FieldIDNumber, extraction.FieldDateOfBirth, extraction.FieldAddress},
	domain.KindPAN:               {extraction.FieldHolderName, extraction.FieldIDNumber, extraction.FieldDateOfBirth},
	domain.KindPassport:          {extraction.FieldHolderName, extraction.FieldIDNumber, extraction.FieldDateOfBirth, extraction.FieldNationality, extraction.FieldExpiryDate},
	domain.KindVoterID:           {extraction.FieldHolderName, extraction.FieldIDNumber, extraction.FieldDateOfBirth},
	domain.KindDrivingLicense:    {extraction.FieldHolderName, extraction.FieldIDNumber, extraction.FieldDateOfBirth},
	domain.KindUtilityBill:       {extraction.FieldHolderName, extraction.FieldAddress, extraction.FieldBillDate},
	domain.KindBankStatement:     {extraction.FieldHolderName, extraction.FieldAddress},
	domain.KindSalarySlip:        {extraction.FieldHolderName, extraction.FieldEmployer, extraction.FieldAmount, extraction.FieldPeriod},
	domain.KindForm16:            {extraction.FieldHolderName, extraction.FieldAmount, extraction.FieldPeriod},
	domain.KindITR:               {extraction.FieldHolderName, extraction.FieldAmount, extraction.FieldPeriod},
	domain.KindPhotograph:        {},
	domain.KindGSTCertificate:    {extraction.FieldHolderName, extraction.FieldIDNumber},
	domain.KindIncorporationCert: {extraction.FieldHolderName, extraction.FieldIDNumber},
}

// genericSchema covers documents the collaborator could not classify into
// the closed set. Such documents can never satisfy a catalog requirement
// but are still scored and reported.
var genericSchema = []string{extraction.FieldHolderName}

// schemaFor returns the expected field list for a kind.
func schemaFor(kind domain.DocumentKind) []string {
	if schema, ok := fieldSchemas[kind]; ok {
		return schema
	}
	return genericSchema
}

// Identifier format patterns per issuing authority.
var (
	panPattern      = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	passportPattern = regexp.MustCompile(`^[A-Z][0-9]{7}$`)
)

// dateLayouts are the formats issuing authorities print dates in.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2 Jan 2006",
}

// ParseDate parses a document date in any accepted layout.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// maxPersonAge bounds date-of-birth sanity checking.
const maxPersonAge = 120

// checkIDNumber validates identifier format for kinds with a known scheme.
// Returns the failed-check description, or "" when the value passes.
func checkIDNumber(kind domain.DocumentKind, value string) string {
	switch kind {
	case domain.KindPAN:
		if !panPattern.MatchString(value) {
			return "id_number: invalid PAN format"
		}
	case domain.KindAadhaar:
		if len(pstrings.DigitsOnly(value)) != 12 {
			return "id_number: Aadhaar must have 12 digits"
		}
	case domain.KindPassport:
		if !passportPattern.MatchString(value) {
			return "id_number: invalid passport format"
		}
	}
	return ""
}

// checkDateOfBirth validates that a DOB parses, is not in the future, and
// is not absurdly old.
func checkDateOfBirth(value string, now time.Time) string {
	dob, ok := ParseDate(value)
	if !ok {
		return "dob: unparseable date"
	}
	if dob.After(now) {
		return "dob: date in the future"
	}
	if dob.Before(now.AddDate(-maxPersonAge, 0, 0)) {
		return "dob: implausibly old"
	}
	return ""
}

// checkPlainDate validates dates that only need to parse (bill dates,
// expiries are checked separately for being current).
func checkPlainDate(field, value string) string {
	if _, ok := ParseDate(value); !ok {
		return field + ": unparseable date"
	}
	return ""
}

// validityFailures runs every applicable format check for the document and
// returns the descriptions of failed checks, in schema order.
func validityFailures(kind domain.DocumentKind, fields map[string]string, now time.Time) []string {
	var failures []string
	appendIf := func(msg string) {
		if msg != "" {
			failures = append(failures, msg)
		}
	}

	if v, ok := fields[extraction.FieldIDNumber]; ok && v != "" {
		appendIf(checkIDNumber(kind, v))
	}
	if v, ok := fields[extraction.FieldDateOfBirth]; ok && v != "" {
		appendIf(checkDateOfBirth(v, now))
	}
	if v, ok := fields[extraction.FieldExpiryDate]; ok && v != "" {
		if exp, parsed := ParseDate(v); !parsed {
			appendIf("expiry_date: unparseable date")
		} else if exp.Before(now) {
			appendIf("expiry_date: document expired")
		}
	}
	if v, ok := fields[extraction.FieldBillDate]; ok && v != "" {
		appendIf(checkPlainDate("bill_date", v))
	}

	return failures
}
