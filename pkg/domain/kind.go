package domain

import dErrors "kycgate/pkg/domain-errors"

// DocumentKind is the category of a submitted document. Kinds are a closed
// set validated at catalog load time, so an unrecognized kind is a
// configuration error rather than a runtime surprise mid-decision.
type DocumentKind string

// Supported document kinds.
const (
	KindAadhaar           DocumentKind = "aadhaar"
	KindPAN               DocumentKind = "pan"
	KindPassport          DocumentKind = "passport"
	KindVoterID           DocumentKind = "voter_id"
	KindDrivingLicense    DocumentKind = "driving_license"
	KindUtilityBill       DocumentKind = "utility_bill"
	KindBankStatement     DocumentKind = "bank_statement"
	KindSalarySlip        DocumentKind = "salary_slip"
	KindForm16            DocumentKind = "form16"
	KindITR               DocumentKind = "itr"
	KindPhotograph        DocumentKind = "photograph"
	KindGSTCertificate    DocumentKind = "gst_certificate"
	KindIncorporationCert DocumentKind = "incorporation_certificate"
)

// KindCategory groups document kinds by the claim they substantiate.
type KindCategory string

const (
	CategoryIdentity   KindCategory = "identity"
	CategoryAddress    KindCategory = "address_proof"
	CategoryIncome     KindCategory = "income_proof"
	CategoryBusiness   KindCategory = "business_doc"
	CategorySupporting KindCategory = "supporting"
)

// kindCategories is the single source of truth for valid kinds.
var kindCategories = map[DocumentKind]KindCategory{
	KindAadhaar:           CategoryIdentity,
	KindPAN:               CategoryIdentity,
	KindPassport:          CategoryIdentity,
	KindVoterID:           CategoryIdentity,
	KindDrivingLicense:    CategoryIdentity,
	KindUtilityBill:       CategoryAddress,
	KindBankStatement:     CategoryAddress,
	KindSalarySlip:        CategoryIncome,
	KindForm16:            CategoryIncome,
	KindITR:               CategoryIncome,
	KindPhotograph:        CategorySupporting,
	KindGSTCertificate:    CategoryBusiness,
	KindIncorporationCert: CategoryBusiness,
}

// ParseDocumentKind constructs a DocumentKind from external input.
func ParseDocumentKind(s string) (DocumentKind, error) {
	k := DocumentKind(s)
	if _, ok := kindCategories[k]; !ok {
		return "", dErrors.New(dErrors.CodeBadRequest, "unknown document kind: "+s)
	}
	return k, nil
}

// IsValid reports whether the kind belongs to the closed set.
func (k DocumentKind) IsValid() bool {
	_, ok := kindCategories[k]
	return ok
}

// Category returns the claim group the kind belongs to. Unknown kinds map
// to CategorySupporting so they never stand in for identity evidence.
func (k DocumentKind) Category() KindCategory {
	if c, ok := kindCategories[k]; ok {
		return c
	}
	return CategorySupporting
}

// String returns the wire representation.
func (k DocumentKind) String() string {
	return string(k)
}
