package search

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ProviderThrottle enforces a minimum inter-request delay per provider.
// Each provider gets its own rate.Limiter, so waiting on one provider never
// delays dispatch to another. Safe for concurrent use across searches.
type ProviderThrottle struct {
	minDelay time.Duration
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewProviderThrottle creates a throttle with the given minimum delay
// between requests to the same provider
func NewProviderThrottle(minDelay time.Duration) *ProviderThrottle {
	if minDelay <= 0 {
		minDelay = time.Second
	}
	return &ProviderThrottle{
		minDelay: minDelay,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to the provider is allowed or the context is
// canceled
func (t *ProviderThrottle) Wait(ctx context.Context, provider string) error {
	return t.limiter(provider).Wait(ctx)
}

func (t *ProviderThrottle) limiter(provider string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	if l, ok := t.limiters[provider]; ok {
		return l
	}

	// Burst of 1: the first request goes through immediately, subsequent
	// ones wait out the minimum delay.
	l := rate.NewLimiter(rate.Every(t.minDelay), 1)
	t.limiters[provider] = l
	return l
}
