package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar/pkg/models"
)

func TestParseSalaryText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *models.SalaryRange
	}{
		{"empty", "", nil},
		{"no numbers", "competitive salary", nil},
		{
			"dollar range",
			"$60,000 - $80,000 / year",
			&models.SalaryRange{Min: 60000, Max: 80000, Currency: "USD"},
		},
		{
			"k suffix",
			"50k-70k EUR",
			&models.SalaryRange{Min: 50000, Max: 70000, Currency: "EUR"},
		},
		{
			"single value",
			"up to £85,000",
			&models.SalaryRange{Min: 85000, Max: 85000, Currency: "GBP"},
		},
		{
			"small numbers ignored",
			"40 hours per week, $95,000",
			&models.SalaryRange{Min: 95000, Max: 95000, Currency: "USD"},
		},
		{"only small numbers", "40 hours, 5 days", nil},
		{
			"decimal dropped",
			"$72,500.50 per year",
			&models.SalaryRange{Min: 72500, Max: 72500, Currency: "USD"},
		},
		{
			"reversed range keeps first as both bounds",
			"$90,000 - $70,000",
			&models.SalaryRange{Min: 90000, Max: 90000, Currency: "USD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSalaryText(tt.text))
		})
	}
}

func TestMatchesQuery(t *testing.T) {
	job := models.NormalizedJob{
		JobPosting: models.JobPosting{
			Title:   "Senior Go Developer",
			Company: "Initech",
			Skills:  []string{"Kubernetes", "PostgreSQL"},
		},
	}

	assert.True(t, matchesQuery(job, ""))
	assert.True(t, matchesQuery(job, "go developer"))
	assert.True(t, matchesQuery(job, "INITECH"))
	assert.True(t, matchesQuery(job, "kubernetes"))
	assert.False(t, matchesQuery(job, "rust"))
}

func TestFilterByQuery(t *testing.T) {
	jobs := []models.NormalizedJob{
		{JobPosting: models.JobPosting{Title: "React Developer"}},
		{JobPosting: models.JobPosting{Title: "Data Engineer"}},
		{JobPosting: models.JobPosting{Title: "Backend Developer", Skills: []string{"React"}}},
	}

	filtered := filterByQuery(jobs, "react")
	require.Len(t, filtered, 2)
	assert.Equal(t, "React Developer", filtered[0].Title)
	assert.Equal(t, "Backend Developer", filtered[1].Title)

	assert.Len(t, filterByQuery(jobs, ""), 3)
}

func TestLooksRemote(t *testing.T) {
	assert.True(t, looksRemote("Remote"))
	assert.True(t, looksRemote("Remote - Europe"))
	assert.True(t, looksRemote("Anywhere"))
	assert.True(t, looksRemote("Worldwide"))
	assert.False(t, looksRemote("Berlin, Germany"))
	assert.False(t, looksRemote(""))
}

func TestParsePostedDate(t *testing.T) {
	assert.Equal(t, time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC),
		parsePostedDate("2026-08-15T10:30:00Z"))
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		parsePostedDate("2026-08-15"))
	assert.True(t, parsePostedDate("not a date").IsZero())
	assert.True(t, parsePostedDate("").IsZero())
}

func TestDescribeCallErrorNeverEchoesTransportError(t *testing.T) {
	// Transport errors embed the full request URL, which for authenticated
	// boards carries credentials. The description must stay generic.
	leaky := errors.New(`Get "https://api.example.com/search?app_key=sekret-key-123": EOF`)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	desc := describeCallError(ctx, leaky, 5*time.Second)
	assert.Equal(t, "request timed out after 5s", desc)
	assert.NotContains(t, desc, "sekret-key-123")

	canceledCtx, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	assert.Equal(t, "request canceled", describeCallError(canceledCtx, leaky, 5*time.Second))

	assert.Equal(t, "upstream request failed", describeCallError(context.Background(), leaky, 5*time.Second))
}

func TestFailureResultFormat(t *testing.T) {
	res := failureResult("adzuna", "unexpected status 500")

	assert.False(t, res.Success)
	assert.Equal(t, "adzuna", res.Source)
	assert.Equal(t, "adzuna: unexpected status 500", res.Err)
	assert.Empty(t, res.Jobs)
}
