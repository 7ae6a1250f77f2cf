package models

import "time"

// JobPosting represents a structured job posting as returned by a provider.
// Immutable once fetched; ownership flows adapter -> aggregator -> caller.
type JobPosting struct {
	ID          string       `json:"id" validate:"required"`
	Title       string       `json:"title" validate:"required"`
	Company     string       `json:"company" validate:"required"`
	Location    string       `json:"location"`
	Remote      bool         `json:"remote"`
	Salary      *SalaryRange `json:"salary,omitempty"`
	Skills      []string     `json:"skills"`
	Experience  int          `json:"experience_years"`
	Education   []string     `json:"education"`
	Industry    string       `json:"industry"`
	Description string       `json:"description"`
	JobType     string       `json:"job_type"`
	PostedDate  time.Time    `json:"posted_date"`
}

// SalaryRange represents the salary information for a job posting
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// NormalizedJob is the common shape every provider adapter produces: a
// JobPosting plus the source provider tag and the original apply URL.
type NormalizedJob struct {
	JobPosting
	Source   string `json:"source"`
	ApplyURL string `json:"apply_url"`
}

// SearchParams describes a job search across all enabled providers
type SearchParams struct {
	Query           string `json:"query"`
	Location        string `json:"location"`
	Remote          bool   `json:"remote"`
	Limit           int    `json:"limit"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	SalaryMin       int    `json:"salary_min,omitempty"`
	SalaryMax       int    `json:"salary_max,omitempty"`
	JobType         string `json:"job_type,omitempty"`
	DatePosted      string `json:"date_posted,omitempty"` // "day", "week", "month"
}

// SearchResult is what a single provider adapter returns. Adapters never
// return a raw error across their boundary; failures come back as
// Success=false with a descriptive Err.
type SearchResult struct {
	Success    bool
	Jobs       []NormalizedJob
	TotalFound int
	Err        string
	Source     string
}
