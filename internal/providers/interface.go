package providers

import (
	"context"

	"jobradar/pkg/models"
)

// Provider defines the interface all job-board adapters implement.
// Search never returns a Go error: upstream failures, timeouts and malformed
// payloads are converted into a SearchResult with Success=false so the
// aggregator can record them against the provider's circuit breaker.
type Provider interface {
	// Key returns the stable provider identifier, e.g. "adzuna"
	Key() string

	// Search queries the provider and returns normalized jobs
	Search(ctx context.Context, params models.SearchParams) models.SearchResult
}

// Config describes a single registered job-board provider. Static, loaded
// once at startup. Priority is sort order only and is not required unique.
type Config struct {
	Key               string
	Name              string
	BaseURL           string
	RequestsPerMinute int
	RequiresAuth      bool
	Priority          int
}
