package match

import (
	"fmt"
	"math"
	"strings"

	"jobradar/pkg/models"
	"jobradar/pkg/utils"
)

// Fixed aggregation weights, summing to 1.0. Skill similarity and
// experience dominate; the four text-derived signals stay low impact.
const (
	weightSkills     = 0.25
	weightExperience = 0.20
	weightLocation   = 0.12
	weightSalary     = 0.10
	weightIndustry   = 0.08
	weightEducation  = 0.08
	weightCulture    = 0.05
	weightGrowth     = 0.05
	weightWorkLife   = 0.04
	weightRemote     = 0.03
)

const confidenceCeiling = 0.95

// Matcher computes the advanced fit score between a job and a candidate
// profile. Stateless and safe for concurrent use.
type Matcher struct{}

// NewMatcher creates a new matcher instance
func NewMatcher() *Matcher {
	return &Matcher{}
}

// GenerateAdvancedMatch scores a job against a profile. Deterministic for
// identical inputs: no randomness, no hidden state, no network calls.
func (m *Matcher) GenerateAdvancedMatch(job models.JobPosting, profile models.CandidateProfile) *models.AdvancedMatchResult {
	features := ExtractFeatures(job, profile)

	score := features.SkillSimilarity*weightSkills +
		features.ExperienceMatch*weightExperience +
		features.LocationPreference*weightLocation +
		features.SalaryAlignment*weightSalary +
		features.IndustryFit*weightIndustry +
		features.EducationMatch*weightEducation +
		features.CultureFit*weightCulture +
		features.GrowthPotential*weightGrowth +
		features.WorkLifeBalance*weightWorkLife +
		features.RemoteCompatibility*weightRemote

	gaps := skillGaps(job.Skills, profile.Skills)
	strengths := skillStrengths(job.Skills, profile.Skills)

	return &models.AdvancedMatchResult{
		JobID:           job.ID,
		FitScore:        round2(score),
		Confidence:      m.confidence(job, profile, features),
		Features:        features,
		Reasoning:       m.reasoning(features),
		Improvements:    m.improvements(features, gaps),
		SkillGaps:       gaps,
		Strengths:       strengths,
		MarketInsights:  m.marketInsights(job),
		Recommendations: m.recommendations(job, features, gaps),
	}
}

// confidence estimates how much data backed the score: 0.5 base, fixed
// increments per present input, and a bonus for internally consistent
// sub-scores, clamped to the 0.95 ceiling.
func (m *Matcher) confidence(job models.JobPosting, profile models.CandidateProfile, features models.MatchFeatures) float64 {
	confidence := 0.5

	if len(job.Skills) > 0 {
		confidence += 0.10
	}
	if len(profile.Skills) > 0 {
		confidence += 0.05
	}
	if job.Salary != nil {
		confidence += 0.05
	}
	if profile.SalaryExpectation != nil {
		confidence += 0.05
	}
	if job.Experience > 0 {
		confidence += 0.05
	}
	if profile.ExperienceYears > 0 {
		confidence += 0.05
	}

	// Consistent signals across features raise confidence
	confidence += (1.0 - stdDev(features.Values())) * 0.1

	if confidence > confidenceCeiling {
		confidence = confidenceCeiling
	}
	return round2(confidence)
}

// reasoning generates the positive explanation strings via per-feature
// threshold rules
func (m *Matcher) reasoning(f models.MatchFeatures) []string {
	var reasons []string

	if f.SkillSimilarity > 0.8 {
		reasons = append(reasons, "Excellent skill alignment with the role requirements")
	} else if f.SkillSimilarity > 0.6 {
		reasons = append(reasons, "Good skill overlap with the role requirements")
	}
	if f.ExperienceMatch >= 0.9 {
		reasons = append(reasons, "Experience level meets or exceeds the requirement")
	}
	if f.LocationPreference >= 1.0 {
		reasons = append(reasons, "Job is located in one of your preferred areas")
	}
	if f.SalaryAlignment >= 0.9 {
		reasons = append(reasons, "Salary band aligns with your expectation")
	}
	if f.IndustryFit >= 1.0 {
		reasons = append(reasons, "Industry matches your stated preferences")
	}
	if f.RemoteCompatibility >= 1.0 {
		reasons = append(reasons, "Work arrangement matches your remote preference")
	}
	if f.GrowthPotential >= 0.8 {
		reasons = append(reasons, "Role signals strong growth and development opportunities")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Partial match across the evaluated factors")
	}
	return reasons
}

// improvements generates suggestions via the complementary low-threshold
// rules, naming up to three missing skills
func (m *Matcher) improvements(f models.MatchFeatures, gaps []string) []string {
	var improvements []string

	if f.SkillSimilarity < 0.5 && len(gaps) > 0 {
		named := gaps
		if len(named) > 3 {
			named = named[:3]
		}
		improvements = append(improvements, "Develop the missing skills: "+strings.Join(named, ", "))
	}
	if f.ExperienceMatch < 0.5 {
		improvements = append(improvements, "Gain more hands-on experience before applying to this level")
	}
	if f.EducationMatch < 1.0 {
		improvements = append(improvements, "Review the required credentials; some are not on your profile")
	}
	if f.SalaryAlignment < 0.7 {
		improvements = append(improvements, "Salary band may not meet your expectation; verify before investing time")
	}
	if f.RemoteCompatibility < 0.7 {
		improvements = append(improvements, "Work arrangement differs from your preference")
	}

	return improvements
}

// marketInsights derives the static market signals for the job
func (m *Matcher) marketInsights(job models.JobPosting) models.MarketInsights {
	demand := industryDemandScore(job.Industry)
	competition := locationCompetitionScore(job.Location)

	trend := models.SalaryTrendDeclining
	if demand > 0.8 {
		trend = models.SalaryTrendRising
	} else if demand > 0.6 {
		trend = models.SalaryTrendStable
	}

	return models.MarketInsights{
		Demand:      demand,
		Competition: competition,
		SalaryTrend: trend,
	}
}

func locationCompetitionScore(location string) float64 {
	loc := strings.ToLower(location)
	for key, competition := range locationCompetition {
		if strings.Contains(loc, key) {
			return competition
		}
	}
	return defaultLocationCompetition
}

// recommendations builds the templated guidance bundle
func (m *Matcher) recommendations(job models.JobPosting, f models.MatchFeatures, gaps []string) models.Recommendations {
	rec := models.Recommendations{}

	for i, gap := range gaps {
		if i == 3 {
			break
		}
		rec.SkillDevelopment = append(rec.SkillDevelopment,
			fmt.Sprintf("Prioritize learning %s; it is required for this role", gap))
	}
	if len(rec.SkillDevelopment) == 0 {
		rec.SkillDevelopment = append(rec.SkillDevelopment,
			"Keep deepening your current stack; no required skills are missing")
	}

	company := utils.GetStringOrDefault(job.Company, "the company")
	rec.Networking = append(rec.Networking,
		fmt.Sprintf("Connect with current employees at %s before applying", company))
	if job.Industry != "" {
		rec.Networking = append(rec.Networking,
			fmt.Sprintf("Join %s industry groups and communities", job.Industry))
	}

	avg := average(f.Values())
	switch {
	case avg >= 0.8:
		rec.ApplicationStrategy = append(rec.ApplicationStrategy,
			"Strong match: apply promptly with a resume tailored to the listed requirements")
	case avg >= 0.6:
		rec.ApplicationStrategy = append(rec.ApplicationStrategy,
			"Decent match: emphasize your overlapping skills and quantify relevant wins")
	default:
		rec.ApplicationStrategy = append(rec.ApplicationStrategy,
			"Stretch role: address the gaps directly in your cover letter")
	}

	return rec
}

// skillGaps returns the job's required skills missing from the candidate,
// compared case-insensitively
func skillGaps(required, candidate []string) []string {
	var gaps []string
	for _, s := range required {
		if !utils.ContainsFold(candidate, strings.TrimSpace(s)) {
			gaps = append(gaps, s)
		}
	}
	return gaps
}

// skillStrengths returns the candidate's skills that the job requires
func skillStrengths(required, candidate []string) []string {
	var strengths []string
	for _, s := range candidate {
		if utils.ContainsFold(required, strings.TrimSpace(s)) {
			strengths = append(strengths, s)
		}
	}
	return strengths
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := average(values)
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
