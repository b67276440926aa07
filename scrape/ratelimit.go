package scrape

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter provides per-domain rate limiting for outbound fetches using
// token buckets. Catalog sources and user-supplied URLs usually share
// a handful of domains, so each domain gets its own limiter with a
// burst of 1.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewLimiter creates a Limiter allowing rps requests per second per
// domain.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the domain's rate limit allows another request, or
// returns the context's error if it is canceled first.
func (l *Limiter) Wait(ctx context.Context, domain string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[domain] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
