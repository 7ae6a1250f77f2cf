package search

import (
	"sort"
	"strings"

	"jobradar/pkg/models"
)

// Relevance bonuses for query matches against each job field
const (
	titleMatchBonus   = 10.0
	companyMatchBonus = 5.0
	skillMatchBonus   = 3.0
)

// dedupeKey builds the case-insensitive identity used for deduplication
func dedupeKey(job models.NormalizedJob) string {
	return strings.ToLower(job.Title) + "|" + strings.ToLower(job.Company) + "|" + strings.ToLower(job.Location)
}

// Deduplicate removes duplicate listings that multiple boards carry for the
// same (title, company, location), keeping the first occurrence. Idempotent.
func Deduplicate(jobs []models.NormalizedJob) []models.NormalizedJob {
	seen := make(map[string]bool, len(jobs))
	out := make([]models.NormalizedJob, 0, len(jobs))

	for _, job := range jobs {
		key := dedupeKey(job)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, job)
	}

	return out
}

// relevanceScore computes the query relevance of a single job plus the
// provider-priority tie-break bonus
func relevanceScore(job models.NormalizedJob, query string, priority int) float64 {
	score := float64(priority) / 10.0
	if query == "" {
		return score
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(job.Title), q) {
		score += titleMatchBonus
	}
	if strings.Contains(strings.ToLower(job.Company), q) {
		score += companyMatchBonus
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), q) {
			score += skillMatchBonus
			break
		}
	}

	return score
}

// SortJobsByRelevance orders jobs by descending relevance score. The sort is
// stable, so equally-scored jobs keep their input order and the output is
// deterministic regardless of provider completion timing.
func SortJobsByRelevance(jobs []models.NormalizedJob, query string, priorities map[string]int) []models.NormalizedJob {
	scored := make([]float64, len(jobs))
	for i, job := range jobs {
		scored[i] = relevanceScore(job, query, priorities[job.Source])
	}

	idx := make([]int, len(jobs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scored[idx[a]] > scored[idx[b]]
	})

	out := make([]models.NormalizedJob, len(jobs))
	for i, j := range idx {
		out[i] = jobs[j]
	}
	return out
}
