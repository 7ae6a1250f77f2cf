package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreakerStartsClosed(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Minute)

	assert.False(t, cb.IsOpen())
	assert.Equal(t, 0, cb.FailureCount())
}

func TestCircuitBreakerOpensAtThreshold(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Minute)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.False(t, cb.IsOpen(), "circuit should stay closed below the threshold")

	cb.RecordFailure()
	assert.True(t, cb.IsOpen(), "circuit should open after exactly threshold failures")
	assert.Equal(t, 3, cb.FailureCount())
}

func TestCircuitBreakerSuccessResetsFromAnyState(t *testing.T) {
	cb := NewCircuitBreaker(2, time.Minute)

	cb.RecordFailure()
	cb.RecordFailure()
	require.True(t, cb.IsOpen())

	cb.RecordSuccess()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 0, cb.FailureCount())
}

func TestCircuitBreakerCooldownExpiry(t *testing.T) {
	cb := NewCircuitBreaker(2, 30*time.Millisecond)

	cb.RecordFailure()
	cb.RecordFailure()
	require.True(t, cb.IsOpen())

	time.Sleep(50 * time.Millisecond)

	// IsOpen performs the lazy Open->Closed transition
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 0, cb.FailureCount(), "failure count resets when the cooldown elapses")
}

func TestCircuitBreakerReopensAfterExpiry(t *testing.T) {
	cb := NewCircuitBreaker(2, 20*time.Millisecond)

	cb.RecordFailure()
	cb.RecordFailure()
	require.True(t, cb.IsOpen())

	time.Sleep(40 * time.Millisecond)
	require.False(t, cb.IsOpen())

	// A fresh run of failures trips the breaker again
	cb.RecordFailure()
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreakerDefaults(t *testing.T) {
	cb := NewCircuitBreaker(0, 0)

	for i := 0; i < 2; i++ {
		cb.RecordFailure()
	}
	assert.False(t, cb.IsOpen(), "default threshold is 3")

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
}
