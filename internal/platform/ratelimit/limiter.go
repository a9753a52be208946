package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Budget is a token bucket shared by every caller of one upstream, so parallel
// gateway requests draw from a single per-minute quota.
type Budget struct {
	limiter *rate.Limiter
}

// NewBudget allows perMinute requests per minute with the given burst. A non-positive
// perMinute disables pacing.
func NewBudget(perMinute int, burst int) *Budget {
	if perMinute <= 0 {
		return &Budget{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst <= 0 {
		burst = 1
	}
	every := time.Minute / time.Duration(perMinute)
	return &Budget{limiter: rate.NewLimiter(rate.Every(every), burst)}
}

// Wait blocks until a request token is available or ctx is done.
func (b *Budget) Wait(ctx context.Context) error {
	if b == nil || b.limiter == nil {
		return nil
	}
	return b.limiter.Wait(ctx)
}

// Acquire takes a token for one upstream request. It waits like Wait unless ctx was
// marked with WithoutWait, in which case it takes a free token if there is one and
// never blocks.
func (b *Budget) Acquire(ctx context.Context) error {
	if skipWait(ctx) {
		b.Allow()
		return ctx.Err()
	}
	return b.Wait(ctx)
}

// Allow reports whether a token is available right now, consuming it if so.
func (b *Budget) Allow() bool {
	if b == nil || b.limiter == nil {
		return true
	}
	return b.limiter.Allow()
}

// Drain empties the bucket, used when the upstream reports its quota is exhausted.
func (b *Budget) Drain() {
	if b == nil || b.limiter == nil || b.limiter.Limit() == rate.Inf {
		return
	}
	now := time.Now()
	b.limiter.ReserveN(now, int(b.limiter.TokensAt(now)))
}

type noWaitKey struct{}

// WithoutWait marks ctx for callers that already pace themselves, such as a retry loop
// sleeping on its own backoff schedule.
func WithoutWait(ctx context.Context) context.Context {
	return context.WithValue(ctx, noWaitKey{}, true)
}

func skipWait(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	skip, _ := ctx.Value(noWaitKey{}).(bool)
	return skip
}
