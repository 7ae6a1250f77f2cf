package providers

import (
	"sort"

	"jobradar/internal/config"
	"jobradar/internal/logging"
)

// Entry pairs a provider adapter with its static configuration and the
// enabled flag computed at startup (auth-required providers are disabled
// when no credentials are configured).
type Entry struct {
	Provider Provider
	Config   Config
	Enabled  bool
}

// Registry holds the static provider set. Built once at startup and
// read-only afterwards.
type Registry struct {
	entries []Entry
}

// NewRegistry builds the provider registry from configuration
func NewRegistry(cfg *config.Config) *Registry {
	logger := logging.GetGlobalLogger()

	entries := []Entry{
		{
			Provider: NewAdzunaProvider(cfg),
			Config: Config{
				Key:               "adzuna",
				Name:              "Adzuna",
				BaseURL:           cfg.Providers.Adzuna.BaseURL,
				RequestsPerMinute: 25,
				RequiresAuth:      true,
				Priority:          8,
			},
			Enabled: cfg.Providers.Adzuna.AppID != "" && cfg.Providers.Adzuna.AppKey != "",
		},
		{
			Provider: NewJoobleProvider(cfg),
			Config: Config{
				Key:               "jooble",
				Name:              "Jooble",
				BaseURL:           cfg.Providers.Jooble.BaseURL,
				RequestsPerMinute: 60,
				RequiresAuth:      true,
				Priority:          6,
			},
			Enabled: cfg.Providers.Jooble.APIKey != "",
		},
		{
			Provider: NewRemotiveProvider(cfg),
			Config: Config{
				Key:               "remotive",
				Name:              "Remotive",
				BaseURL:           cfg.Providers.Remotive.BaseURL,
				RequestsPerMinute: 60,
				RequiresAuth:      false,
				Priority:          5,
			},
			Enabled: true,
		},
		{
			Provider: NewArbeitnowProvider(cfg),
			Config: Config{
				Key:               "arbeitnow",
				Name:              "Arbeitnow",
				BaseURL:           cfg.Providers.Arbeitnow.BaseURL,
				RequestsPerMinute: 30,
				RequiresAuth:      false,
				Priority:          3,
			},
			Enabled: true,
		},
	}

	for _, e := range entries {
		if e.Config.RequiresAuth && !e.Enabled {
			logger.Warn("Provider disabled: credentials not configured", map[string]interface{}{
				"provider": e.Config.Key,
			})
		}
	}

	return &Registry{entries: entries}
}

// NewStaticRegistry builds a registry from pre-built entries. Useful for
// callers that manage their own provider set, and for tests.
func NewStaticRegistry(entries []Entry) *Registry {
	return &Registry{entries: entries}
}

// All returns every registered provider entry
func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Enabled returns the enabled provider entries sorted by descending priority
func (r *Registry) Enabled() []Entry {
	var enabled []Entry
	for _, e := range r.entries {
		if e.Enabled {
			enabled = append(enabled, e)
		}
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Config.Priority > enabled[j].Config.Priority
	})

	return enabled
}

// Get returns the entry for the given provider key
func (r *Registry) Get(key string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Config.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}
