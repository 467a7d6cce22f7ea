package catalog

import "kycgate/pkg/domain"

// Default confidence floors. Identity documents carry the strictest floor
// because they anchor every downstream consistency check.
const (
	defaultIdentityMin   = 0.75
	defaultSupportingMin = 0.60
)

// Default returns the built-in catalog. Operators override it with a YAML
// file (see Load); the built-in mapping mirrors the bank's standard KYC
// checklists per purpose.
func Default() *Catalog {
	c, err := New(map[domain.Purpose][]Requirement{
		domain.PurposeAccountOpeningSavings: {
			{Kind: domain.KindPAN, Mandatory: true, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindAadhaar, Mandatory: true, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindPhotograph, Mandatory: false, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindUtilityBill, Mandatory: false, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindBankStatement, Mandatory: false, MinConfidence: defaultSupportingMin},
		},
		domain.PurposeAccountOpeningSalary: {
			{Kind: domain.KindPAN, Mandatory: true, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindAadhaar, Mandatory: true, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindSalarySlip, Mandatory: true, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindPhotograph, Mandatory: false, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindUtilityBill, Mandatory: false, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindBankStatement, Mandatory: false, MinConfidence: defaultSupportingMin},
		},
		domain.PurposeAddressUpdate: {
			{Kind: domain.KindAadhaar, Mandatory: false, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindPAN, Mandatory: false, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindUtilityBill, Mandatory: false, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindBankStatement, Mandatory: false, MinConfidence: defaultSupportingMin},
		},
		domain.PurposeLoanApplication: {
			{Kind: domain.KindPAN, Mandatory: true, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindAadhaar, Mandatory: true, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindSalarySlip, Mandatory: false, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindForm16, Mandatory: false, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindITR, Mandatory: false, MinConfidence: defaultSupportingMin},
		},
		domain.PurposeCreditCardKYC: {
			{Kind: domain.KindPAN, Mandatory: true, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindAadhaar, Mandatory: true, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindSalarySlip, Mandatory: false, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindForm16, Mandatory: false, MinConfidence: defaultSupportingMin},
		},
		domain.PurposeBusinessAccount: {
			{Kind: domain.KindPAN, Mandatory: true, MinConfidence: defaultIdentityMin},
			{Kind: domain.KindGSTCertificate, Mandatory: true, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindIncorporationCert, Mandatory: true, MinConfidence: defaultSupportingMin},
			{Kind: domain.KindAadhaar, Mandatory: true, MinConfidence: defaultIdentityMin},
		},
	})
	if err != nil {
		// The built-in mapping is covered by tests; reaching this is a bug.
		panic(err)
	}
	return c
}
