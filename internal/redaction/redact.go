// Package redaction produces the external-safe copy of a verification
// result. Masking is total and recursive: every raw field value in every
// nested structure is masked, and the internal audit block is stripped.
// Redaction is idempotent; masking a masked value changes nothing.
package redaction

import (
	"strings"

	"kycgate/internal/extraction"
	"kycgate/internal/verification"
	"kycgate/pkg/domain"
	pstrings "kycgate/pkg/platform/strings"
)

// Redact returns an external-safe copy of the result. The input is not
// mutated; the unredacted original remains internal for compliance review.
func Redact(r *verification.Result) *verification.Result {
	if r == nil {
		return nil
	}

	out := *r
	out.Audit = nil

	out.Uploads = make([]verification.DocumentResult, len(r.Uploads))
	for i, doc := range r.Uploads {
		masked := doc
		if len(doc.Fields) > 0 {
			masked.Fields = make(map[string]string, len(doc.Fields))
			for field, value := range doc.Fields {
				masked.Fields[field] = MaskField(doc.Kind, field, value)
			}
		}
		out.Uploads[i] = masked
	}

	return &out
}

// MaskField masks one extracted value. Identifier numbers use the issuing
// authority's masking convention; everything else keeps only the last four
// characters.
func MaskField(kind domain.DocumentKind, field, value string) string {
	if value == "" {
		return value
	}
	if field == extraction.FieldIDNumber {
		return maskIdentifier(kind, value)
	}
	return maskGeneric(value)
}

func maskIdentifier(kind domain.DocumentKind, value string) string {
	switch kind {
	case domain.KindAadhaar:
		return maskAadhaar(value)
	case domain.KindPAN:
		return maskPAN(value)
	case domain.KindPassport:
		return maskPassport(value)
	default:
		return maskGeneric(value)
	}
}

// maskAadhaar renders "xxxx-xxxx-1234", keeping the last four digits.
func maskAadhaar(value string) string {
	digits := pstrings.DigitsOnly(value)
	if len(digits) < 4 {
		return maskGeneric(value)
	}
	return "xxxx-xxxx-" + digits[len(digits)-4:]
}

// maskPAN renders "AB***1234C": first two characters, masked middle, last
// five kept.
func maskPAN(value string) string {
	runes := []rune(value)
	if len(runes) != 10 {
		return maskGeneric(value)
	}
	return string(runes[:2]) + "***" + string(runes[5:])
}

// maskPassport renders "A****567": first character, masked middle, last
// three kept.
func maskPassport(value string) string {
	runes := []rune(value)
	if len(runes) != 8 {
		return maskGeneric(value)
	}
	return string(runes[:1]) + "****" + string(runes[5:])
}

// maskGeneric keeps the last four characters and masks the rest,
// preserving length so repeated masking is a no-op.
func maskGeneric(value string) string {
	runes := []rune(value)
	if len(runes) <= 4 {
		return strings.Repeat("x", len(runes))
	}
	return strings.Repeat("x", len(runes)-4) + string(runes[len(runes)-4:])
}
