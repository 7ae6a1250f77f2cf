package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"jobradar/internal/cache"
	"jobradar/internal/config"
	"jobradar/internal/logging"
	"jobradar/internal/logging/types"
	"jobradar/internal/providers"
	"jobradar/pkg/models"
)

// Service fans a search out to all enabled providers, isolates their
// failures behind per-provider circuit breakers, and merges the survivors
// into one deduplicated, relevance-ranked result list.
//
// Breaker and throttle state are instance fields constructed once per
// process; there is no package-level mutable state.
type Service struct {
	cfg      *config.Config
	registry *providers.Registry
	throttle *ProviderThrottle
	cache    *cache.SearchCache
	logger   types.Logger

	mu       sync.RWMutex
	breakers map[string]*CircuitBreaker
}

// NewService creates a new search service. searchCache may be nil to
// disable response caching.
func NewService(cfg *config.Config, registry *providers.Registry, searchCache *cache.SearchCache) *Service {
	return &Service{
		cfg:      cfg,
		registry: registry,
		throttle: NewProviderThrottle(cfg.Search.MinProviderDelay),
		cache:    searchCache,
		logger:   logging.GetGlobalLogger(),
		breakers: make(map[string]*CircuitBreaker),
	}
}

// EnabledProviders returns the enabled provider entries in priority order
func (s *Service) EnabledProviders() []providers.Entry {
	return s.registry.Enabled()
}

// Providers returns every registered provider entry
func (s *Service) Providers() []providers.Entry {
	return s.registry.All()
}

// Breaker returns the circuit breaker for a provider, creating it on first use
func (s *Service) Breaker(provider string) *CircuitBreaker {
	s.mu.RLock()
	cb, ok := s.breakers[provider]
	s.mu.RUnlock()
	if ok {
		return cb
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cb, ok := s.breakers[provider]; ok {
		return cb
	}
	cb = NewCircuitBreaker(s.cfg.Search.FailureThreshold, s.cfg.Search.CircuitCooldown)
	s.breakers[provider] = cb
	return cb
}

// SearchJobs queries every enabled, circuit-closed provider concurrently
// and returns the merged results. It never returns an error: a total
// provider outage yields an empty slice, since partial data beats no data.
func (s *Service) SearchJobs(ctx context.Context, params models.SearchParams) []models.NormalizedJob {
	params.Limit = s.clampLimit(params.Limit)

	enabled := s.registry.Enabled()

	// Drop providers whose circuit is currently open
	callable := make([]providers.Entry, 0, len(enabled))
	for _, entry := range enabled {
		if s.Breaker(entry.Config.Key).IsOpen() {
			s.logger.Warn("Skipping provider: circuit open", map[string]interface{}{
				"provider": entry.Config.Key,
			})
			continue
		}
		callable = append(callable, entry)
	}

	if len(callable) == 0 {
		s.logger.Warn("No providers available for search", map[string]interface{}{
			"query": params.Query,
		})
		return []models.NormalizedJob{}
	}

	// Fan out. Results land in a fixed slot per provider so the merge
	// order is deterministic regardless of completion timing, and one
	// provider's failure or timeout never touches its siblings.
	results := make([]models.SearchResult, len(callable))
	var wg sync.WaitGroup
	for i, entry := range callable {
		wg.Add(1)
		go func(i int, entry providers.Entry) {
			defer wg.Done()
			results[i] = s.callProvider(ctx, entry, params)
		}(i, entry)
	}
	wg.Wait()

	var merged []models.NormalizedJob
	var failures []string
	for _, res := range results {
		if !res.Success {
			failures = append(failures, res.Err)
			continue
		}
		merged = append(merged, res.Jobs...)
	}

	// Provider failures degrade the result set, never the call
	if len(failures) > 0 {
		s.logger.Warn("Some providers failed during search", map[string]interface{}{
			"failed": len(failures),
			"errors": strings.Join(failures, "; "),
		})
	}

	merged = Deduplicate(merged)
	merged = s.applyFilters(merged, params)
	merged = SortJobsByRelevance(merged, params.Query, s.priorities())

	if len(merged) > params.Limit {
		merged = merged[:params.Limit]
	}

	return merged
}

// callProvider runs one provider call end to end: throttle, cache lookup,
// the adapter call under its own timeout, and the breaker update.
func (s *Service) callProvider(ctx context.Context, entry providers.Entry, params models.SearchParams) models.SearchResult {
	key := entry.Config.Key

	if err := s.throttle.Wait(ctx, key); err != nil {
		return models.SearchResult{
			Success: false,
			Err:     key + ": canceled while waiting for dispatch slot",
			Source:  key,
		}
	}

	if jobs, ok := s.cache.Get(ctx, key, params); ok {
		s.logger.Debug("Provider response served from cache", map[string]interface{}{
			"provider": key,
			"jobs":     len(jobs),
		})
		return models.SearchResult{
			Success:    true,
			Jobs:       jobs,
			TotalFound: len(jobs),
			Source:     key,
		}
	}

	// One timeout per call; cancellation stays local to this provider
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Search.RequestTimeout)
	defer cancel()

	start := time.Now()
	result := entry.Provider.Search(callCtx, params)

	cb := s.Breaker(key)
	if result.Success {
		cb.RecordSuccess()
		s.cache.Set(ctx, key, params, result.Jobs)
	} else {
		cb.RecordFailure()
		s.logger.Warn("Provider search failed", map[string]interface{}{
			"provider": key,
			"error":    result.Err,
			"failures": cb.FailureCount(),
			"duration": time.Since(start).String(),
		})
	}

	return result
}

// applyFilters applies the optional post-aggregation filters
func (s *Service) applyFilters(jobs []models.NormalizedJob, params models.SearchParams) []models.NormalizedJob {
	cutoff := datePostedCutoff(params.DatePosted)

	out := make([]models.NormalizedJob, 0, len(jobs))
	for _, job := range jobs {
		if params.Remote && !job.Remote {
			continue
		}
		if params.ExperienceLevel != "" && !matchesExperienceLevel(job.Experience, params.ExperienceLevel) {
			continue
		}
		if params.JobType != "" && job.JobType != "" && !strings.EqualFold(job.JobType, params.JobType) {
			continue
		}
		// Salary bounds only exclude jobs whose known band falls outside
		// the requested range; unknown salaries are kept.
		if job.Salary != nil {
			if params.SalaryMin > 0 && job.Salary.Max > 0 && job.Salary.Max < params.SalaryMin {
				continue
			}
			if params.SalaryMax > 0 && job.Salary.Min > params.SalaryMax {
				continue
			}
		}
		if !cutoff.IsZero() && !job.PostedDate.IsZero() && job.PostedDate.Before(cutoff) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// matchesExperienceLevel maps the experience_level filter to a years band
// against the job's stated requirement. Jobs with no stated requirement are
// kept, like unknown salaries under the salary filters, and an unrecognized
// level filters nothing.
func matchesExperienceLevel(years int, level string) bool {
	if years <= 0 {
		return true
	}
	switch strings.ToLower(level) {
	case "junior", "entry":
		return years <= 2
	case "mid", "intermediate":
		return years >= 3 && years <= 5
	case "senior":
		return years >= 6 && years <= 9
	case "lead", "principal":
		return years >= 10
	default:
		return true
	}
}

// datePostedCutoff maps the date_posted filter value to an absolute cutoff
func datePostedCutoff(datePosted string) time.Time {
	switch datePosted {
	case "day":
		return time.Now().AddDate(0, 0, -1)
	case "week":
		return time.Now().AddDate(0, 0, -7)
	case "month":
		return time.Now().AddDate(0, -1, 0)
	default:
		return time.Time{}
	}
}

// priorities maps provider key to its registry priority for rank tie-breaks
func (s *Service) priorities() map[string]int {
	out := make(map[string]int)
	for _, entry := range s.registry.All() {
		out[entry.Config.Key] = entry.Config.Priority
	}
	return out
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.Search.DefaultLimit
	}
	if limit > s.cfg.Search.MaxLimit {
		return s.cfg.Search.MaxLimit
	}
	return limit
}
