package extraction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycgate/pkg/domain"
)

// scriptedExtractor returns canned outcomes in order, recording call count.
type scriptedExtractor struct {
	calls    int
	outcomes []error
	result   *Result
}

func (s *scriptedExtractor) Extract(_ context.Context, _ Upload) (*Result, error) {
	idx := s.calls
	s.calls++
	if idx >= len(s.outcomes) || s.outcomes[idx] == nil {
		if s.result != nil {
			out := *s.result
			return &out, nil
		}
		return &Result{Kind: domain.KindPAN, Confidence: 0.9}, nil
	}
	return nil, s.outcomes[idx]
}

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{Attempts: attempts, Backoff: time.Millisecond, Timeout: time.Second}
}

func TestResilient_RetriesTransientFailures(t *testing.T) {
	inner := &scriptedExtractor{outcomes: []error{
		NewError(ErrorTimeout, "slow", nil),
		NewError(ErrorOutage, "down", nil),
		nil,
	}}
	r := NewResilient(inner, fastRetryConfig(3), nil)

	result, err := r.Extract(context.Background(), Upload{Filename: "pan.jpg", Content: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, domain.KindPAN, result.Kind)
	assert.Equal(t, 3, inner.calls)
}

func TestResilient_DoesNotRetryPermanentFailures(t *testing.T) {
	inner := &scriptedExtractor{outcomes: []error{
		NewError(ErrorMalformedUpload, "not a document", nil),
	}}
	r := NewResilient(inner, fastRetryConfig(3), nil)

	_, err := r.Extract(context.Background(), Upload{Filename: "noise.bin", Content: []byte("x")})
	require.Error(t, err)
	assert.Equal(t, ErrorMalformedUpload, CategoryOf(err))
	assert.Equal(t, 1, inner.calls)
}

func TestResilient_ExhaustsAttempts(t *testing.T) {
	inner := &scriptedExtractor{outcomes: []error{
		NewError(ErrorTimeout, "slow", nil),
		NewError(ErrorTimeout, "slow", nil),
		NewError(ErrorTimeout, "slow", nil),
	}}
	r := NewResilient(inner, fastRetryConfig(3), nil)

	_, err := r.Extract(context.Background(), Upload{Filename: "pan.jpg", Content: []byte("x")})
	require.Error(t, err)
	assert.Equal(t, ErrorTimeout, CategoryOf(err))
	assert.Equal(t, 3, inner.calls)
}

func TestResilient_StopsOnContextCancel(t *testing.T) {
	inner := &scriptedExtractor{outcomes: []error{
		NewError(ErrorTimeout, "slow", nil),
		NewError(ErrorTimeout, "slow", nil),
	}}
	cfg := RetryConfig{Attempts: 3, Backoff: time.Minute, Timeout: time.Second}
	r := NewResilient(inner, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Extract(ctx, Upload{Filename: "pan.jpg", Content: []byte("x")})
	require.Error(t, err)
	assert.Equal(t, ErrorTimeout, CategoryOf(err))
	assert.Equal(t, 1, inner.calls)
}

func TestResilient_FailsFastWhenBreakerOpen(t *testing.T) {
	breaker := NewCircuitBreaker(1, time.Hour)
	breaker.RecordFailure()
	require.True(t, breaker.IsOpen())

	inner := &scriptedExtractor{}
	r := NewResilient(inner, fastRetryConfig(3), breaker)

	_, err := r.Extract(context.Background(), Upload{Filename: "pan.jpg", Content: []byte("x")})
	require.Error(t, err)
	assert.Equal(t, ErrorOutage, CategoryOf(err))
	assert.True(t, IsRetryable(err))
	assert.Equal(t, 0, inner.calls, "open breaker must not reach upstream")
}

func TestNewError_RetryableCategories(t *testing.T) {
	assert.True(t, IsRetryable(NewError(ErrorTimeout, "", nil)))
	assert.True(t, IsRetryable(NewError(ErrorOutage, "", nil)))
	assert.True(t, IsRetryable(NewError(ErrorRateLimited, "", nil)))
	assert.False(t, IsRetryable(NewError(ErrorBadData, "", nil)))
	assert.False(t, IsRetryable(NewError(ErrorMalformedUpload, "", nil)))
	assert.False(t, IsRetryable(NewError(ErrorInternal, "", nil)))
	assert.False(t, IsRetryable(context.Canceled))
}
