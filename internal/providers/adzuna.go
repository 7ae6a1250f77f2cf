package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobradar/internal/config"
	"jobradar/internal/logging"
	"jobradar/internal/logging/types"
	"jobradar/pkg/models"
)

// AdzunaProvider implements the Provider interface for the Adzuna job API.
// Adzuna requires an app id/key pair and supports native query, location and
// salary filtering.
type AdzunaProvider struct {
	baseURL string
	country string
	appID   string
	appKey  string
	timeout time.Duration
	client  *http.Client
	logger  types.Logger
}

// NewAdzunaProvider creates a new Adzuna provider adapter
func NewAdzunaProvider(cfg *config.Config) *AdzunaProvider {
	return &AdzunaProvider{
		baseURL: cfg.Providers.Adzuna.BaseURL,
		country: cfg.Providers.Adzuna.Country,
		appID:   cfg.Providers.Adzuna.AppID,
		appKey:  cfg.Providers.Adzuna.AppKey,
		timeout: cfg.Search.RequestTimeout,
		client:  &http.Client{Timeout: cfg.Search.RequestTimeout},
		logger:  logging.GetGlobalLogger(),
	}
}

// adzunaResponse mirrors the top-level Adzuna JSON response
type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
	Count   int            `json:"count"`
}

// adzunaResult mirrors a single Adzuna job listing
type adzunaResult struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Category struct {
		Label string `json:"label"`
	} `json:"category"`
	SalaryMin    float64 `json:"salary_min"`
	SalaryMax    float64 `json:"salary_max"`
	ContractTime string  `json:"contract_time"`
	RedirectURL  string  `json:"redirect_url"`
	Created      string  `json:"created"`
}

// Key returns the provider identifier
func (p *AdzunaProvider) Key() string {
	return "adzuna"
}

// Search queries Adzuna and normalizes the response
func (p *AdzunaProvider) Search(ctx context.Context, params models.SearchParams) models.SearchResult {
	endpoint := fmt.Sprintf("%s/%s/search/1", p.baseURL, p.country)

	q := url.Values{}
	q.Set("app_id", p.appID)
	q.Set("app_key", p.appKey)
	q.Set("what", params.Query)
	q.Set("results_per_page", strconv.Itoa(resultsPerPage(params.Limit)))
	q.Set("content-type", "application/json")
	if params.Location != "" {
		q.Set("where", params.Location)
	}
	if params.SalaryMin > 0 {
		q.Set("salary_min", strconv.Itoa(params.SalaryMin))
	}
	if params.SalaryMax > 0 {
		q.Set("salary_max", strconv.Itoa(params.SalaryMax))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return failureResult(p.Key(), "failed to build request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return failureResult(p.Key(), describeCallError(ctx, err, p.timeout))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failureResult(p.Key(), fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failureResult(p.Key(), "failed to read response body")
	}

	var payload adzunaResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return failureResult(p.Key(), "malformed response payload")
	}

	jobs := make([]models.NormalizedJob, 0, len(payload.Results))
	for _, r := range payload.Results {
		jobs = append(jobs, p.normalize(r))
	}

	p.logger.Debug("Adzuna search completed", map[string]interface{}{
		"provider": p.Key(),
		"returned": len(jobs),
		"total":    payload.Count,
	})

	return models.SearchResult{
		Success:    true,
		Jobs:       jobs,
		TotalFound: payload.Count,
		Source:     p.Key(),
	}
}

// normalize converts an Adzuna listing into the common job shape
func (p *AdzunaProvider) normalize(r adzunaResult) models.NormalizedJob {
	job := models.NormalizedJob{
		JobPosting: models.JobPosting{
			ID:          "adzuna-" + r.ID,
			Title:       r.Title,
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			Remote:      looksRemote(r.Location.DisplayName),
			Industry:    r.Category.Label,
			Description: r.Description,
			JobType:     r.ContractTime,
			PostedDate:  parsePostedDate(r.Created),
		},
		Source:   p.Key(),
		ApplyURL: r.RedirectURL,
	}

	if r.SalaryMin > 0 || r.SalaryMax > 0 {
		job.Salary = &models.SalaryRange{
			Min:      int(r.SalaryMin),
			Max:      int(r.SalaryMax),
			Currency: adzunaCurrency(p.country),
		}
	}

	return job
}

// adzunaCurrencies maps the Adzuna country codes to the currency their
// salary figures are quoted in
var adzunaCurrencies = map[string]string{
	"us": "USD",
	"gb": "GBP",
	"ca": "CAD",
	"au": "AUD",
	"in": "INR",
	"de": "EUR",
	"fr": "EUR",
	"nl": "EUR",
	"at": "EUR",
	"it": "EUR",
	"es": "EUR",
	"pl": "PLN",
	"br": "BRL",
	"mx": "MXN",
	"nz": "NZD",
	"sg": "SGD",
	"za": "ZAR",
}

func adzunaCurrency(country string) string {
	if currency, ok := adzunaCurrencies[strings.ToLower(country)]; ok {
		return currency
	}
	return "USD"
}

// resultsPerPage caps the upstream page size to a sane window
func resultsPerPage(limit int) int {
	if limit <= 0 || limit > 50 {
		return 50
	}
	return limit
}
