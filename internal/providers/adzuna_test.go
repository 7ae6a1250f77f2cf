package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar/internal/logging"
	"jobradar/pkg/models"
)

func newTestAdzuna(serverURL string) *AdzunaProvider {
	return &AdzunaProvider{
		baseURL: serverURL,
		country: "us",
		appID:   "test-app-id",
		appKey:  "test-app-key",
		timeout: 2 * time.Second,
		client:  &http.Client{Timeout: 2 * time.Second},
		logger:  logging.GetGlobalLogger(),
	}
}

func TestAdzunaSearchNormalizesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/us/search/1", r.URL.Path)
		assert.Equal(t, "test-app-id", r.URL.Query().Get("app_id"))
		assert.Equal(t, "react", r.URL.Query().Get("what"))
		assert.Equal(t, "Berlin", r.URL.Query().Get("where"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 1,
			"results": [{
				"id": "4321",
				"title": "React Developer",
				"description": "Build UIs",
				"company": {"display_name": "Acme"},
				"location": {"display_name": "Berlin, Germany"},
				"category": {"label": "IT Jobs"},
				"salary_min": 60000,
				"salary_max": 80000,
				"contract_time": "full_time",
				"redirect_url": "https://example.com/apply/4321",
				"created": "2026-08-20T09:00:00Z"
			}]
		}`))
	}))
	defer srv.Close()

	p := newTestAdzuna(srv.URL)
	result := p.Search(context.Background(), models.SearchParams{Query: "react", Location: "Berlin", Limit: 10})

	require.True(t, result.Success)
	assert.Equal(t, "adzuna", result.Source)
	assert.Equal(t, 1, result.TotalFound)
	require.Len(t, result.Jobs, 1)

	job := result.Jobs[0]
	assert.Equal(t, "adzuna-4321", job.ID)
	assert.Equal(t, "React Developer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Berlin, Germany", job.Location)
	assert.False(t, job.Remote)
	assert.Equal(t, "IT Jobs", job.Industry)
	assert.Equal(t, "full_time", job.JobType)
	assert.Equal(t, "https://example.com/apply/4321", job.ApplyURL)
	require.NotNil(t, job.Salary)
	assert.Equal(t, 60000, job.Salary.Min)
	assert.Equal(t, 80000, job.Salary.Max)
	assert.Equal(t, time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC), job.PostedDate)
}

func TestAdzunaSearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newTestAdzuna(srv.URL)
	result := p.Search(context.Background(), models.SearchParams{Query: "react"})

	assert.False(t, result.Success)
	assert.Equal(t, "adzuna: unexpected status 500", result.Err)
	assert.Empty(t, result.Jobs)
}

func TestAdzunaSearchMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	p := newTestAdzuna(srv.URL)
	result := p.Search(context.Background(), models.SearchParams{Query: "react"})

	assert.False(t, result.Success)
	assert.Equal(t, "adzuna: malformed response payload", result.Err)
}

func TestAdzunaSearchTimeoutDoesNotLeakCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	p := newTestAdzuna(srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	result := p.Search(ctx, models.SearchParams{Query: "react"})

	assert.False(t, result.Success)
	assert.NotContains(t, result.Err, "test-app-key")
	assert.NotContains(t, result.Err, srv.URL)
	assert.Contains(t, result.Err, "timed out")
}

func TestAdzunaSearchOmitsEmptySalary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 1, "results": [{"id": "1", "title": "Dev", "location": {"display_name": "Remote"}}]}`))
	}))
	defer srv.Close()

	p := newTestAdzuna(srv.URL)
	result := p.Search(context.Background(), models.SearchParams{})

	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)
	assert.Nil(t, result.Jobs[0].Salary)
	assert.True(t, result.Jobs[0].Remote)
}

func TestAdzunaSalaryCurrencyFollowsCountry(t *testing.T) {
	p := newTestAdzuna("http://unused")
	p.country = "gb"

	job := p.normalize(adzunaResult{ID: "1", Title: "Dev", SalaryMin: 40000})
	require.NotNil(t, job.Salary)
	assert.Equal(t, "GBP", job.Salary.Currency)

	p.country = "xx"
	job = p.normalize(adzunaResult{ID: "2", Title: "Dev", SalaryMin: 40000})
	require.NotNil(t, job.Salary)
	assert.Equal(t, "USD", job.Salary.Currency)
}

func TestResultsPerPage(t *testing.T) {
	assert.Equal(t, 50, resultsPerPage(0))
	assert.Equal(t, 50, resultsPerPage(200))
	assert.Equal(t, 10, resultsPerPage(10))
}
