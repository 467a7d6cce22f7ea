package verification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kycgate/internal/audit"
	"kycgate/internal/catalog"
	"kycgate/internal/consistency"
	"kycgate/internal/decision"
	"kycgate/internal/evaluation"
	"kycgate/internal/extraction"
	"kycgate/internal/extraction/mocks"
	"kycgate/internal/policy"
	"kycgate/pkg/domain"
	"kycgate/pkg/requestcontext"
)

func cleanPAN() *extraction.Result {
	return &extraction.Result{
		Kind: domain.KindPAN,
		Fields: map[string]string{
			extraction.FieldHolderName:  "A Kumar",
			extraction.FieldIDNumber:    "ABCDE1234F",
			extraction.FieldDateOfBirth: "1990-01-15",
		},
		Confidence: 0.95,
	}
}

func cleanAadhaar() *extraction.Result {
	return &extraction.Result{
		Kind: domain.KindAadhaar,
		Fields: map[string]string{
			extraction.FieldHolderName:  "Anand Kumar",
			extraction.FieldIDNumber:    "123412341234",
			extraction.FieldDateOfBirth: "15/01/1990",
			extraction.FieldAddress:     "12 MG Road, Bengaluru",
		},
		Confidence: 0.93,
	}
}

func newTestService(t *testing.T, extractor extraction.Extractor) *Service {
	t.Helper()
	return NewService(catalog.Default(), extractor, policy.Default(), nil, nil, nil)
}

func uploadByName(t *testing.T, r *Result, filename string) DocumentResult {
	t.Helper()
	for _, doc := range r.Uploads {
		if doc.Filename == filename {
			return doc
		}
	}
	t.Fatalf("no upload named %q", filename)
	return DocumentResult{}
}

func TestVerify_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)
	extractor.EXPECT().
		Extract(gomock.Any(), extraction.Upload{Filename: "pan.jpg", Content: []byte("pan")}).
		Return(cleanPAN(), nil)
	extractor.EXPECT().
		Extract(gomock.Any(), extraction.Upload{Filename: "aadhaar.jpg", Content: []byte("aadhaar")}).
		Return(cleanAadhaar(), nil)

	svc := newTestService(t, extractor)

	result, err := svc.Verify(context.Background(), Request{
		Purpose: domain.PurposeAccountOpeningSavings,
		Uploads: []extraction.Upload{
			{Filename: "pan.jpg", Content: []byte("pan")},
			{Filename: "aadhaar.jpg", Content: []byte("aadhaar")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, decision.OutcomeApproved, result.Decision)
	assert.False(t, result.EscalateToHuman)
	assert.NotEmpty(t, result.RequestID)
	assert.Equal(t, domain.PurposeAccountOpeningSavings, result.Purpose)

	// Results land in upload order regardless of completion order.
	require.Len(t, result.Uploads, 2)
	assert.Equal(t, "pan.jpg", result.Uploads[0].Filename)
	assert.Equal(t, "aadhaar.jpg", result.Uploads[1].Filename)

	// Both mandatory rows fulfilled, optional ones not.
	for _, row := range result.RequiredDocuments {
		if row.Mandatory {
			assert.True(t, row.Fulfilled, "kind %s", row.Kind)
		} else {
			assert.False(t, row.Fulfilled, "kind %s", row.Kind)
		}
	}

	assert.Equal(t, string(consistency.VerdictMatch), result.CrossChecks["name"])
	assert.Equal(t, string(consistency.VerdictMatch), result.CrossChecks["dob"])

	// Unredacted result keeps the audit trail; redaction strips it later.
	require.NotNil(t, result.Audit)
	assert.NotEmpty(t, result.Audit.Steps)
}

func TestVerify_UnknownPurpose(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)

	svc := newTestService(t, extractor)

	_, err := svc.Verify(context.Background(), Request{
		Purpose: domain.Purpose("crypto_wallet"),
		Uploads: []extraction.Upload{{Filename: "pan.jpg", Content: []byte("pan")}},
	})
	require.Error(t, err)
}

func TestVerify_ExtractionFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)
	extractor.EXPECT().
		Extract(gomock.Any(), extraction.Upload{Filename: "pan.jpg", Content: []byte("pan")}).
		Return(cleanPAN(), nil)
	extractor.EXPECT().
		Extract(gomock.Any(), extraction.Upload{Filename: "blurry.jpg", Content: []byte("blur")}).
		Return(nil, extraction.NewError(extraction.ErrorTimeout, "gave up after retries", nil))

	svc := newTestService(t, extractor)

	result, err := svc.Verify(context.Background(), Request{
		Purpose: domain.PurposeAccountOpeningSavings,
		Uploads: []extraction.Upload{
			{Filename: "pan.jpg", Content: []byte("pan")},
			{Filename: "blurry.jpg", Content: []byte("blur")},
		},
	})
	require.NoError(t, err, "per-document failure must not abort the submission")

	blurry := uploadByName(t, result, "blurry.jpg")
	assert.Equal(t, evaluation.StatusUnreadable, blurry.Status)

	// Aadhaar never arrived, so the submission is rejected, and the
	// unreadable upload is reported alongside.
	assert.Equal(t, decision.OutcomeRejected, result.Decision)
	assert.Contains(t, result.DecisionReasons, "MISSING_MANDATORY_DOCUMENT:aadhaar")
	assert.Contains(t, result.DecisionReasons, "UNREADABLE_DOCUMENT:blurry.jpg")
	assert.True(t, result.EscalateToHuman)
}

func TestVerify_TamperRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)

	tampered := cleanAadhaar()
	tampered.TamperSignals = []string{"photo_substitution"}

	extractor.EXPECT().
		Extract(gomock.Any(), extraction.Upload{Filename: "pan.jpg", Content: []byte("pan")}).
		Return(cleanPAN(), nil)
	extractor.EXPECT().
		Extract(gomock.Any(), extraction.Upload{Filename: "aadhaar.jpg", Content: []byte("aadhaar")}).
		Return(tampered, nil)

	svc := newTestService(t, extractor)

	result, err := svc.Verify(context.Background(), Request{
		Purpose: domain.PurposeAccountOpeningSavings,
		Uploads: []extraction.Upload{
			{Filename: "pan.jpg", Content: []byte("pan")},
			{Filename: "aadhaar.jpg", Content: []byte("aadhaar")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, decision.OutcomeRejected, result.Decision)
	assert.Contains(t, result.DecisionReasons, decision.ReasonTamperDetected)
}

func TestVerify_AuditEventsEmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)
	extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(cleanPAN(), nil)

	inbox := make(chan audit.Event, 16)
	svc := NewService(catalog.Default(), extractor, policy.Default(), nil, nil, audit.NewPublisher(inbox))

	result, err := svc.Verify(context.Background(), Request{
		Purpose: domain.PurposeAccountOpeningSavings,
		Uploads: []extraction.Upload{{Filename: "pan.jpg", Content: []byte("pan")}},
	})
	require.NoError(t, err)

	var actions []string
	for len(inbox) > 0 {
		e := <-inbox
		actions = append(actions, e.Action)
		assert.Equal(t, result.RequestID, e.RequestID)
	}
	assert.Contains(t, actions, audit.ActionVerificationStarted)
	assert.Contains(t, actions, audit.ActionDocumentEvaluated)
	assert.Contains(t, actions, audit.ActionDecisionMade)
}

func TestVerify_InjectedClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)
	extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(cleanPAN(), nil)

	svc := newTestService(t, extractor)

	frozen := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), frozen)

	result, err := svc.Verify(ctx, Request{
		Purpose: domain.PurposeAccountOpeningSavings,
		Uploads: []extraction.Upload{{Filename: "pan.jpg", Content: []byte("pan")}},
	})
	require.NoError(t, err)
	assert.Equal(t, frozen, result.Timestamp)
}

func TestVerify_FreshRequestIDPerCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)
	extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(cleanPAN(), nil).Times(2)

	svc := newTestService(t, extractor)
	req := Request{
		Purpose: domain.PurposeAccountOpeningSavings,
		Uploads: []extraction.Upload{{Filename: "pan.jpg", Content: []byte("pan")}},
	}

	first, err := svc.Verify(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Verify(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)
}
