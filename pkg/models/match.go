package models

// MatchFeatures holds the ten normalized [0,1] compatibility sub-scores
// computed per (job, profile) pair. Transient, never persisted.
type MatchFeatures struct {
	SkillSimilarity     float64 `json:"skill_similarity"`
	ExperienceMatch     float64 `json:"experience_match"`
	LocationPreference  float64 `json:"location_preference"`
	SalaryAlignment     float64 `json:"salary_alignment"`
	IndustryFit         float64 `json:"industry_fit"`
	EducationMatch      float64 `json:"education_match"`
	CultureFit          float64 `json:"culture_fit"`
	GrowthPotential     float64 `json:"growth_potential"`
	WorkLifeBalance     float64 `json:"work_life_balance"`
	RemoteCompatibility float64 `json:"remote_compatibility"`
}

// Values returns the sub-scores in weight order, used for aggregate
// statistics like the confidence spread.
func (f MatchFeatures) Values() []float64 {
	return []float64{
		f.SkillSimilarity,
		f.ExperienceMatch,
		f.LocationPreference,
		f.SalaryAlignment,
		f.IndustryFit,
		f.EducationMatch,
		f.CultureFit,
		f.GrowthPotential,
		f.WorkLifeBalance,
		f.RemoteCompatibility,
	}
}

// SalaryTrend is a derived market direction, not live market data
type SalaryTrend string

const (
	SalaryTrendRising    SalaryTrend = "rising"
	SalaryTrendStable    SalaryTrend = "stable"
	SalaryTrendDeclining SalaryTrend = "declining"
)

// MarketInsights bundles the static per-industry/per-location market signals
type MarketInsights struct {
	Demand      float64     `json:"demand"`
	Competition float64     `json:"competition"`
	SalaryTrend SalaryTrend `json:"salary_trend"`
}

// Recommendations groups the templated guidance generated per match
type Recommendations struct {
	SkillDevelopment    []string `json:"skill_development"`
	Networking          []string `json:"networking"`
	ApplicationStrategy []string `json:"application_strategy"`
}

// AdvancedMatchResult is the full output of the match scorer. Produced fresh
// on every call; this core never caches it.
type AdvancedMatchResult struct {
	JobID           string          `json:"job_id"`
	FitScore        float64         `json:"fit_score"`
	Confidence      float64         `json:"confidence"`
	Features        MatchFeatures   `json:"features"`
	Reasoning       []string        `json:"reasoning"`
	Improvements    []string        `json:"improvements"`
	SkillGaps       []string        `json:"skill_gaps"`
	Strengths       []string        `json:"strengths"`
	MarketInsights  MarketInsights  `json:"market_insights"`
	Recommendations Recommendations `json:"recommendations"`
}
