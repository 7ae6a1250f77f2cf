package providers

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"jobradar/pkg/models"
)

// failureResult builds the SearchResult for a failed provider call. Error
// text is composed here so upstream URLs and API keys never end up in it.
func failureResult(source, detail string) models.SearchResult {
	return models.SearchResult{
		Success: false,
		Err:     fmt.Sprintf("%s: %s", source, detail),
		Source:  source,
	}
}

// describeCallError maps a transport error to a safe description. The raw
// error from net/http embeds the full request URL, which for authenticated
// providers contains credentials, so it is never echoed verbatim.
func describeCallError(ctx context.Context, err error, timeout time.Duration) string {
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Sprintf("request timed out after %s", timeout)
	}
	if ctx.Err() == context.Canceled {
		return "request canceled"
	}
	return "upstream request failed"
}

// matchesQuery reports whether the free-text query matches the job's title,
// company or skills, case-insensitively. An empty query matches everything.
func matchesQuery(job models.NormalizedJob, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(job.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(job.Company), q) {
		return true
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

// filterByQuery applies the client-side free-text filter for adapters whose
// upstream has no native search capability.
func filterByQuery(jobs []models.NormalizedJob, query string) []models.NormalizedJob {
	if query == "" {
		return jobs
	}
	filtered := make([]models.NormalizedJob, 0, len(jobs))
	for _, job := range jobs {
		if matchesQuery(job, query) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

var salaryNumberRe = regexp.MustCompile(`(\d[\d,.]*)\s*([kK])?`)

// parseSalaryText extracts a salary range from free-text upstream salary
// strings like "$60,000 - $80,000 / year" or "50k-70k EUR". Returns nil
// when no usable numbers are present.
func parseSalaryText(text string) *models.SalaryRange {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var amounts []int
	for _, m := range salaryNumberRe.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		// Drop trailing decimal part; salaries are whole units here
		if idx := strings.Index(raw, "."); idx >= 0 {
			raw = raw[:idx]
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if m[2] != "" {
			n *= 1000
		}
		// Ignore stray small numbers (hours, percentages)
		if n < 1000 {
			continue
		}
		amounts = append(amounts, n)
	}

	if len(amounts) == 0 {
		return nil
	}

	salary := &models.SalaryRange{
		Min:      amounts[0],
		Max:      amounts[0],
		Currency: detectCurrency(text),
	}
	if len(amounts) > 1 && amounts[1] >= amounts[0] {
		salary.Max = amounts[1]
	}
	return salary
}

func detectCurrency(text string) string {
	switch {
	case strings.Contains(text, "$"):
		return "USD"
	case strings.Contains(text, "€") || strings.Contains(strings.ToUpper(text), "EUR"):
		return "EUR"
	case strings.Contains(text, "£") || strings.Contains(strings.ToUpper(text), "GBP"):
		return "GBP"
	default:
		return "USD"
	}
}

// looksRemote reports whether a location string describes a remote position
func looksRemote(location string) bool {
	loc := strings.ToLower(location)
	return strings.Contains(loc, "remote") || strings.Contains(loc, "anywhere") || strings.Contains(loc, "worldwide")
}

// parsePostedDate parses upstream timestamps in the formats the boards
// actually emit, falling back to the zero time.
func parsePostedDate(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
