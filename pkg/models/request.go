package models

// SearchRequest represents the request payload for a multi-provider job search
type SearchRequest struct {
	Query           string `json:"query" validate:"required,min=1"`
	Location        string `json:"location,omitempty"`
	Remote          bool   `json:"remote,omitempty"`
	Limit           int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	SalaryMin       int    `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax       int    `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	JobType         string `json:"job_type,omitempty"`
	DatePosted      string `json:"date_posted,omitempty" validate:"omitempty,oneof=day week month"`
}

// Params converts the API request into aggregator search parameters
func (r *SearchRequest) Params() SearchParams {
	return SearchParams{
		Query:           r.Query,
		Location:        r.Location,
		Remote:          r.Remote,
		Limit:           r.Limit,
		ExperienceLevel: r.ExperienceLevel,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		JobType:         r.JobType,
		DatePosted:      r.DatePosted,
	}
}

// MatchRequest represents the request payload for scoring a single job
// against a candidate profile
type MatchRequest struct {
	Job     JobPosting       `json:"job" validate:"required"`
	Profile CandidateProfile `json:"profile" validate:"required"`
}

// BatchMatchRequest scores a list of jobs against one profile
type BatchMatchRequest struct {
	Jobs    []JobPosting     `json:"jobs" validate:"required,min=1,max=100,dive"`
	Profile CandidateProfile `json:"profile" validate:"required"`
}
