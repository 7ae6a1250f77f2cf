package search

import (
	"sync"
	"time"
)

// CircuitBreaker guards calls to a single flaky provider. Two states:
// Closed (calls pass through) and Open (calls short-circuited until the
// cooldown window elapses). State is in-memory only and owned by the
// aggregator instance; nothing survives a process restart.
type CircuitBreaker struct {
	threshold int
	cooldown  time.Duration

	mu           sync.Mutex
	failureCount int
	openedAt     time.Time // zero while the circuit is closed
}

// NewCircuitBreaker creates a closed breaker with the given trip threshold
// and cooldown window
func NewCircuitBreaker(threshold int, cooldown time.Duration) *CircuitBreaker {
	if threshold <= 0 {
		threshold = 3
	}
	if cooldown <= 0 {
		cooldown = 60 * time.Second
	}
	return &CircuitBreaker{
		threshold: threshold,
		cooldown:  cooldown,
	}
}

// RecordSuccess resets the failure count and closes the circuit from any state
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failureCount = 0
	cb.openedAt = time.Time{}
}

// RecordFailure increments the failure count and opens the circuit once the
// threshold is reached
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failureCount++
	if cb.failureCount >= cb.threshold && cb.openedAt.IsZero() {
		cb.openedAt = time.Now()
	}
}

// IsOpen reports whether calls are currently short-circuited. The cooldown
// expiry check happens lazily here: once the window has elapsed the circuit
// closes and the failure count resets to 0.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.openedAt.IsZero() {
		return false
	}

	if time.Since(cb.openedAt) > cb.cooldown {
		cb.openedAt = time.Time{}
		cb.failureCount = 0
		return false
	}

	return true
}

// FailureCount returns the current consecutive failure count
func (cb *CircuitBreaker) FailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failureCount
}
