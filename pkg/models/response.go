package models

import "time"

// SearchResponse represents the response from a job search request
type SearchResponse struct {
	Success          bool            `json:"success"`
	Jobs             []NormalizedJob `json:"jobs"`
	Total            int             `json:"total"`
	ProvidersQueried []string        `json:"providers_queried"`
	ProcessingTime   time.Duration   `json:"processing_time"`
	RequestID        string          `json:"request_id"`
}

// MatchResponse represents the response from a single match request
type MatchResponse struct {
	Success   bool                 `json:"success"`
	Result    *AdvancedMatchResult `json:"result,omitempty"`
	RequestID string               `json:"request_id"`
}

// BatchMatchResponse represents the response from a batch match request,
// sorted by descending fit score
type BatchMatchResponse struct {
	Success   bool                   `json:"success"`
	Results   []*AdvancedMatchResult `json:"results"`
	RequestID string                 `json:"request_id"`
}

// ProviderStatus describes one registered provider for the status endpoint
type ProviderStatus struct {
	Key               string `json:"key"`
	Name              string `json:"name"`
	Priority          int    `json:"priority"`
	RequiresAuth      bool   `json:"requires_auth"`
	Enabled           bool   `json:"enabled"`
	CircuitOpen       bool   `json:"circuit_open"`
	RequestsPerMinute int    `json:"requests_per_minute"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
