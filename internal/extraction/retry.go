package extraction

import (
	"context"
	"time"

	"kycgate/pkg/platform/sentinel"
)

// RetryConfig bounds the resilience wrapper around the collaborator.
type RetryConfig struct {
	// Attempts is the total number of tries, including the first.
	Attempts int
	// Backoff is the delay before the first retry; it doubles per attempt.
	Backoff time.Duration
	// Timeout caps each individual attempt.
	Timeout time.Duration
}

// DefaultRetryConfig matches the bounded-retry contract: a handful of tries
// with short doubling backoff, then give up and mark the document unreadable.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts: 3,
		Backoff:  200 * time.Millisecond,
		Timeout:  15 * time.Second,
	}
}

// Resilient wraps an Extractor with bounded retries and a circuit breaker.
// Only transient failures are retried; malformed uploads and other
// permanent failures surface immediately.
type Resilient struct {
	inner   Extractor
	cfg     RetryConfig
	breaker *CircuitBreaker
}

// NewResilient builds the resilience wrapper. A nil breaker disables
// circuit breaking.
func NewResilient(inner Extractor, cfg RetryConfig, breaker *CircuitBreaker) *Resilient {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}
	return &Resilient{inner: inner, cfg: cfg, breaker: breaker}
}

// Extract classifies one upload, retrying transient collaborator failures
// with doubling backoff. When the breaker is open the call fails fast with
// a retryable outage error so the document degrades to UNREADABLE without
// hammering the upstream.
func (r *Resilient) Extract(ctx context.Context, upload Upload) (*Result, error) {
	if r.breaker != nil && !r.breaker.Allow() {
		return nil, NewError(ErrorOutage, "collaborator circuit open", sentinel.ErrUnavailable)
	}

	var lastErr error
	backoff := r.cfg.Backoff

	for attempt := 0; attempt < r.cfg.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, NewError(ErrorTimeout, "context cancelled during backoff", ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		result, err := r.extractOnce(ctx, upload)
		if err == nil {
			if r.breaker != nil {
				r.breaker.RecordSuccess()
			}
			return result, nil
		}

		lastErr = err
		if r.breaker != nil {
			r.breaker.RecordFailure()
		}
		if !IsRetryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (r *Resilient) extractOnce(ctx context.Context, upload Upload) (*Result, error) {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}
	return r.inner.Extract(ctx, upload)
}
