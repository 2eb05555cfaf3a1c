package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider re-sends a request after transient failures, sleeping
// between attempts with capped exponential backoff.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p. MaxAttempts below one is treated as a single attempt.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		verdict retryVerdict
		err     error
	)
	for attempt := 1; ; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt >= r.cfg.MaxAttempts || !verdict.again(err) {
			return nil, err
		}

		t := time.NewTimer(r.cfg.wait(attempt-1, err))
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

// retryVerdict remembers what has been retried across one Generate call.
type retryVerdict struct {
	invalidSeen bool
}

// again reports whether err deserves another attempt. Cancellation and
// truncation are final. A response that broke the schema gets one more
// chance since models often comply on the second try.
func (v *retryVerdict) again(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return false
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if v.invalidSeen {
			return false
		}
		v.invalidSeen = true
	}
	return true
}

// wait is the pause after the given zero-based failed attempt. A server
// Retry-After wins; otherwise InitialWait grows by Multiplier up to
// MaxWait, with up to 20% jitter either way.
func (c RetryConfig) wait(attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}
	base := min(float64(c.InitialWait)*math.Pow(c.Multiplier, float64(attempt)), float64(c.MaxWait))
	jitter := 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(max(base*jitter, 0))
}
