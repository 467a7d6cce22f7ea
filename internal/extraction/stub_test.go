package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycgate/pkg/domain"
)

func TestStub_ClassifiesByFilenameHint(t *testing.T) {
	s := NewStub()

	tests := []struct {
		filename string
		kind     domain.DocumentKind
	}{
		{"pan_card.jpg", domain.KindPAN},
		{"Aadhaar-front.png", domain.KindAadhaar},
		{"passport.pdf", domain.KindPassport},
		{"bank_statement_july.pdf", domain.KindBankStatement},
		{"salary_slip.pdf", domain.KindSalarySlip},
		{"gst_cert.pdf", domain.KindGSTCertificate},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			result, err := s.Extract(context.Background(), Upload{Filename: tt.filename, Content: []byte("bytes")})
			require.NoError(t, err)
			assert.Equal(t, tt.kind, result.Kind)
			assert.NotEmpty(t, result.Fields)
			assert.Greater(t, result.Confidence, 0.0)
		})
	}
}

func TestStub_EmptyUploadIsMalformed(t *testing.T) {
	s := NewStub()

	_, err := s.Extract(context.Background(), Upload{Filename: "pan.jpg"})
	require.Error(t, err)
	assert.Equal(t, ErrorMalformedUpload, CategoryOf(err))
	assert.False(t, IsRetryable(err))
}

func TestStub_UnclassifiableFilename(t *testing.T) {
	s := NewStub()

	_, err := s.Extract(context.Background(), Upload{Filename: "scan001.jpg", Content: []byte("bytes")})
	require.Error(t, err)
	assert.Equal(t, ErrorBadData, CategoryOf(err))
}

func TestStub_FixtureOverridesHint(t *testing.T) {
	s := NewStub()
	s.Register("pan.jpg", Result{
		Kind:          domain.KindAadhaar,
		Fields:        map[string]string{FieldHolderName: "B Singh"},
		TamperSignals: []string{"photo_substitution"},
		Confidence:    0.42,
	})

	result, err := s.Extract(context.Background(), Upload{Filename: "pan.jpg", Content: []byte("bytes")})
	require.NoError(t, err)
	assert.Equal(t, domain.KindAadhaar, result.Kind)
	assert.Equal(t, []string{"photo_substitution"}, result.TamperSignals)
	assert.InDelta(t, 0.42, result.Confidence, 1e-9)
}
