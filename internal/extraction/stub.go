package extraction

import (
	"context"
	"strings"

	"kycgate/pkg/domain"
)

// Stub is a deterministic in-process extractor for local runs and demos.
// It classifies by filename hints and fabricates plausible fields, so the
// server binary exercises the full pipeline without a live vision service.
type Stub struct {
	fixtures map[string]Result
}

// NewStub creates a stub extractor. Fixtures registered by filename take
// precedence over the filename-hint heuristic.
func NewStub() *Stub {
	return &Stub{fixtures: make(map[string]Result)}
}

// Register pins an exact result for a filename.
func (s *Stub) Register(filename string, result Result) {
	s.fixtures[filename] = result
}

var filenameHints = []struct {
	hint string
	kind domain.DocumentKind
}{
	{"aadhaar", domain.KindAadhaar},
	{"pan", domain.KindPAN},
	{"passport", domain.KindPassport},
	{"voter", domain.KindVoterID},
	{"license", domain.KindDrivingLicense},
	{"utility", domain.KindUtilityBill},
	{"statement", domain.KindBankStatement},
	{"salary", domain.KindSalarySlip},
	{"form16", domain.KindForm16},
	{"itr", domain.KindITR},
	{"photo", domain.KindPhotograph},
	{"gst", domain.KindGSTCertificate},
	{"incorporation", domain.KindIncorporationCert},
}

// Extract classifies by registered fixture, then by filename hint. Empty
// uploads fail with a malformed-upload error, the same way a real
// collaborator rejects unreadable bytes.
func (s *Stub) Extract(_ context.Context, upload Upload) (*Result, error) {
	if len(upload.Content) == 0 {
		return nil, NewError(ErrorMalformedUpload, "empty upload: "+upload.Filename, nil)
	}

	if fixture, ok := s.fixtures[upload.Filename]; ok {
		out := fixture
		return &out, nil
	}

	lower := strings.ToLower(upload.Filename)
	for _, h := range filenameHints {
		if strings.Contains(lower, h.hint) {
			result := syntheticResult(h.kind)
			return &result, nil
		}
	}

	return nil, NewError(ErrorBadData, "could not classify: "+upload.Filename, nil)
}

// syntheticResult fabricates a complete field set for a kind. Values are
// fixed so repeated runs are reproducible.
func syntheticResult(kind domain.DocumentKind) Result {
	fields := map[string]string{FieldHolderName: "A Kumar"}

	switch kind {
	case domain.KindAadhaar:
		fields[FieldIDNumber] = "123412341234"
		fields[FieldDateOfBirth] = "1990-01-15"
		fields[FieldAddress] = "12 MG Road, Bengaluru"
	case domain.KindPAN:
		fields[FieldIDNumber] = "ABCDE1234F"
		fields[FieldDateOfBirth] = "1990-01-15"
		fields[FieldFatherName] = "R Kumar"
	case domain.KindPassport:
		fields[FieldIDNumber] = "A1234567"
		fields[FieldDateOfBirth] = "1990-01-15"
		fields[FieldNationality] = "Indian"
		fields[FieldExpiryDate] = "2030-06-01"
	case domain.KindVoterID, domain.KindDrivingLicense:
		fields[FieldIDNumber] = "XYZ1234567"
		fields[FieldDateOfBirth] = "1990-01-15"
	case domain.KindGSTCertificate, domain.KindIncorporationCert:
		fields[FieldIDNumber] = "29ABCDE1234F1Z5"
	case domain.KindUtilityBill, domain.KindBankStatement:
		fields[FieldAddress] = "12 MG Road, Bengaluru"
		fields[FieldBillDate] = "2026-08-02"
	case domain.KindSalarySlip:
		fields[FieldEmployer] = "Acme Industries"
		fields[FieldAmount] = "85000"
		fields[FieldPeriod] = "2026-07"
	case domain.KindForm16, domain.KindITR:
		fields[FieldAmount] = "1020000"
		fields[FieldPeriod] = "2025-26"
	}

	return Result{
		Kind:       kind,
		Fields:     fields,
		Confidence: 0.92,
	}
}
