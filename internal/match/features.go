package match

import (
	"strings"

	"jobradar/pkg/models"
)

// ExtractFeatures computes the ten normalized [0,1] compatibility sub-scores
// for a (job, profile) pair. Pure function: no I/O, no shared state.
func ExtractFeatures(job models.JobPosting, profile models.CandidateProfile) models.MatchFeatures {
	return models.MatchFeatures{
		SkillSimilarity:     SkillSimilarity(job.Skills, profile.Skills),
		ExperienceMatch:     ExperienceMatch(profile.ExperienceYears, job.Experience),
		LocationPreference:  LocationPreference(job.Location, preferredLocations(profile)),
		SalaryAlignment:     SalaryAlignment(job.Salary, profile.SalaryExpectation),
		IndustryFit:         IndustryFit(job.Industry, profile.PreferredIndustries),
		EducationMatch:      EducationMatch(job.Education, profile.Education),
		CultureFit:          keywordScore(job.Title+" "+job.Description, cultureKeywords),
		GrowthPotential:     keywordScore(job.Title+" "+job.Description, growthKeywords),
		WorkLifeBalance:     keywordScore(job.Title+" "+job.Description, workLifeKeywords),
		RemoteCompatibility: RemoteCompatibility(job.Remote, profile.RemotePreference),
	}
}

// preferredLocations falls back to the candidate's home location when no
// explicit preference list is set
func preferredLocations(profile models.CandidateProfile) []string {
	if len(profile.PreferredLocations) > 0 {
		return profile.PreferredLocations
	}
	if profile.Location != "" {
		return []string{profile.Location}
	}
	return nil
}

// SkillSimilarity computes a weighted Jaccard-style overlap between the
// job's required skills and the candidate's skills. A job with no listed
// requirements scores a neutral 0.5: absence of requirements should not
// penalize the candidate.
func SkillSimilarity(jobSkills, candidateSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 0.5
	}

	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		candidateSet[strings.ToLower(strings.TrimSpace(s))] = true
	}

	jobSet := make(map[string]bool, len(jobSkills))
	var overlap, denominator float64
	for _, s := range jobSkills {
		key := strings.ToLower(strings.TrimSpace(s))
		if jobSet[key] {
			continue
		}
		jobSet[key] = true

		w := skillWeight(key)
		denominator += w
		if candidateSet[key] {
			overlap += w
		}
	}

	// Candidate-only skills dilute the overlap slightly
	for key := range candidateSet {
		if !jobSet[key] {
			denominator += candidateOnlyWeight * skillWeight(key)
		}
	}

	if denominator == 0 {
		return 0.5
	}
	return clamp01(overlap / denominator)
}

func skillWeight(skill string) float64 {
	if w, ok := skillWeights[skill]; ok {
		return w
	}
	return defaultSkillWeight
}

// ExperienceMatch discretizes the ratio of candidate years to required
// years. No requirement means full score; negative inputs are clamped.
func ExperienceMatch(candidateYears, requiredYears int) float64 {
	if requiredYears <= 0 {
		return 1.0
	}
	if candidateYears < 0 {
		candidateYears = 0
	}

	ratio := float64(candidateYears) / float64(requiredYears)
	switch {
	case ratio >= 1.0:
		return 1.0
	case ratio >= 0.8:
		return 0.9
	case ratio >= 0.6:
		return 0.7
	case ratio >= 0.4:
		return 0.5
	default:
		return 0.3
	}
}

// LocationPreference scores the job location against the candidate's
// preferred locations. No preference at all is a mild 0.8 default.
func LocationPreference(jobLocation string, preferred []string) float64 {
	if len(preferred) == 0 {
		return 0.8
	}

	jobLoc := strings.ToLower(jobLocation)
	for _, p := range preferred {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" && strings.Contains(jobLoc, p) {
			return 1.0
		}
	}

	for hub, multiplier := range locationMultipliers {
		if strings.Contains(jobLoc, hub) {
			return multiplier
		}
	}
	return defaultLocationMultiplier
}

// SalaryAlignment compares the candidate's expected salary (upper bound of
// the expectation range) to the midpoint of the job's band. Missing data on
// either side is neutral, not a penalty.
func SalaryAlignment(jobSalary, expectation *models.SalaryRange) float64 {
	if jobSalary == nil || expectation == nil {
		return 0.7
	}
	midpoint := float64(jobSalary.Min+jobSalary.Max) / 2.0
	expected := float64(expectation.Max)
	if midpoint <= 0 || expected <= 0 {
		return 0.7
	}

	ratio := expected / midpoint
	diff := ratio - 1.0
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff <= 0.1:
		return 1.0
	case diff <= 0.2:
		return 0.9
	case diff <= 0.3:
		return 0.8
	default:
		return 0.6
	}
}

// IndustryFit scores the job's industry against the candidate's preferred
// industries, falling back to the static demand table.
func IndustryFit(industry string, preferred []string) float64 {
	if len(preferred) == 0 {
		return 0.8
	}

	ind := strings.ToLower(industry)
	for _, p := range preferred {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.Contains(ind, p) || (ind != "" && strings.Contains(p, ind)) {
			return 1.0
		}
	}

	return industryDemandScore(industry)
}

func industryDemandScore(industry string) float64 {
	ind := strings.ToLower(industry)
	for key, demand := range industryDemand {
		if strings.Contains(ind, key) {
			return demand
		}
	}
	return defaultIndustryDemand
}

// EducationMatch returns the fraction of required credentials present in
// the candidate's education history. No requirement gives a full score.
func EducationMatch(required, education []string) float64 {
	if len(required) == 0 {
		return 1.0
	}

	matched := 0
	for _, req := range required {
		reqLower := strings.ToLower(strings.TrimSpace(req))
		for _, edu := range education {
			eduLower := strings.ToLower(edu)
			if strings.Contains(eduLower, reqLower) || strings.Contains(reqLower, eduLower) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(required))
}

// keywordScore derives a bounded score from keyword presence in the job
// text: 0.5 base plus 0.1 per matched keyword, capped at 1.0
func keywordScore(text string, keywords []string) float64 {
	lower := strings.ToLower(text)
	score := 0.5
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			score += 0.1
			if score >= 1.0 {
				return 1.0
			}
		}
	}
	return score
}

// RemoteCompatibility compares the job's work arrangement with the
// candidate's preference: exact match 1.0, flexible 0.9, mismatch 0.6.
func RemoteCompatibility(jobRemote bool, pref models.RemotePreference) float64 {
	switch pref {
	case models.RemotePreferenceRemote:
		if jobRemote {
			return 1.0
		}
		return 0.6
	case models.RemotePreferenceOffice:
		if !jobRemote {
			return 1.0
		}
		return 0.6
	default:
		// "flexible" or unspecified
		return 0.9
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
