package llmclient

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// LoggingMiddleware logs every completion attempt with a per-call ID so
// concurrent invocations can be told apart.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(ctx context.Context, req Request, next func(context.Context, Request) (*ChatResponse, error)) (*ChatResponse, error) {
		id := uuid.NewString()[:8]
		structured := req.Schema != nil

		logger.Debug("completion attempt", "call_id", id, "model", req.Model, "structured", structured)
		start := time.Now()

		resp, err := next(ctx, req)
		if err != nil {
			logger.Warn("completion failed",
				"call_id", id,
				"model", req.Model,
				"elapsed", time.Since(start),
				"error", err,
			)
			return nil, err
		}

		logger.Debug("completion succeeded",
			"call_id", id,
			"model", req.Model,
			"elapsed", time.Since(start),
			"total_tokens", resp.Usage.TotalTokens,
		)
		return resp, nil
	}
}

// RetryPolicy configures retry behavior with exponential backoff.
type RetryPolicy struct {
	MaxRetries        int     // total retry attempts (not counting initial)
	BaseDelay         float64 // initial delay in seconds
	MaxDelay          float64 // maximum delay between retries
	BackoffMultiplier float64 // exponential backoff factor
	Jitter            bool    // add random jitter to prevent thundering herd
	OnRetry           func(err error, attempt int, delay time.Duration)
}

// DefaultRetryPolicy returns a conservative policy for collaborator use.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:        2,
		BaseDelay:         1.0,
		MaxDelay:          60.0,
		BackoffMultiplier: 2.0,
		Jitter:            true,
	}
}

// Delay calculates the delay for attempt n (0-indexed).
func (p RetryPolicy) Delay(attempt int) time.Duration {
	delay := math.Min(p.BaseDelay*math.Pow(p.BackoffMultiplier, float64(attempt)), p.MaxDelay)
	if p.Jitter {
		// +/- 50% jitter
		delay = delay * (0.5 + rand.Float64())
	}
	return time.Duration(delay * float64(time.Second))
}

// RetryMiddleware retries retryable failures with exponential backoff.
//
// The recovery resolver never installs this: its contract is exactly one
// backend attempt per recovery. It exists for callers that layer their own
// retry policy on a Client used outside the resolver path.
func RetryMiddleware(policy RetryPolicy) Middleware {
	return func(ctx context.Context, req Request, next func(context.Context, Request) (*ChatResponse, error)) (*ChatResponse, error) {
		resp, err := next(ctx, req)
		if err == nil {
			return resp, nil
		}

		for attempt := 0; attempt < policy.MaxRetries; attempt++ {
			if !IsRetryable(err) {
				return nil, err
			}

			delay := policy.Delay(attempt)
			if policy.OnRetry != nil {
				policy.OnRetry(err, attempt+1, delay)
			}

			select {
			case <-ctx.Done():
				return nil, &NetworkError{SDKError: SDKError{
					Message: "request cancelled during retry",
					Cause:   ctx.Err(),
				}}
			case <-time.After(delay):
			}

			resp, err = next(ctx, req)
			if err == nil {
				return resp, nil
			}
		}

		return nil, err
	}
}
