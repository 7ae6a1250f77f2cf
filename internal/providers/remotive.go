package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobradar/internal/config"
	"jobradar/internal/logging"
	"jobradar/internal/logging/types"
	"jobradar/pkg/models"
)

// RemotiveProvider implements the Provider interface for the Remotive board.
// Remotive is a public remote-only board with native search; every listing
// it returns is a remote position.
type RemotiveProvider struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  types.Logger
}

// NewRemotiveProvider creates a new Remotive provider adapter
func NewRemotiveProvider(cfg *config.Config) *RemotiveProvider {
	return &RemotiveProvider{
		baseURL: cfg.Providers.Remotive.BaseURL,
		timeout: cfg.Search.RequestTimeout,
		client:  &http.Client{Timeout: cfg.Search.RequestTimeout},
		logger:  logging.GetGlobalLogger(),
	}
}

type remotiveResponse struct {
	JobCount int           `json:"job-count"`
	Jobs     []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	ID                        int      `json:"id"`
	URL                       string   `json:"url"`
	Title                     string   `json:"title"`
	CompanyName               string   `json:"company_name"`
	Category                  string   `json:"category"`
	Tags                      []string `json:"tags"`
	JobType                   string   `json:"job_type"`
	PublicationDate           string   `json:"publication_date"`
	CandidateRequiredLocation string   `json:"candidate_required_location"`
	Salary                    string   `json:"salary"`
	Description               string   `json:"description"`
}

// Key returns the provider identifier
func (p *RemotiveProvider) Key() string {
	return "remotive"
}

// Search queries Remotive and normalizes the response
func (p *RemotiveProvider) Search(ctx context.Context, params models.SearchParams) models.SearchResult {
	q := url.Values{}
	if params.Query != "" {
		q.Set("search", params.Query)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	endpoint := p.baseURL + "/remote-jobs"
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
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

	var parsed remotiveResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return failureResult(p.Key(), "malformed response payload")
	}

	jobs := make([]models.NormalizedJob, 0, len(parsed.Jobs))
	for _, j := range parsed.Jobs {
		jobs = append(jobs, p.normalize(j))
	}

	p.logger.Debug("Remotive search completed", map[string]interface{}{
		"provider": p.Key(),
		"returned": len(jobs),
		"total":    parsed.JobCount,
	})

	return models.SearchResult{
		Success:    true,
		Jobs:       jobs,
		TotalFound: parsed.JobCount,
		Source:     p.Key(),
	}
}

// normalize converts a Remotive listing into the common job shape
func (p *RemotiveProvider) normalize(j remotiveJob) models.NormalizedJob {
	return models.NormalizedJob{
		JobPosting: models.JobPosting{
			ID:          "remotive-" + strconv.Itoa(j.ID),
			Title:       j.Title,
			Company:     j.CompanyName,
			Location:    j.CandidateRequiredLocation,
			Remote:      true,
			Salary:      parseSalaryText(j.Salary),
			Skills:      j.Tags,
			Industry:    j.Category,
			Description: j.Description,
			JobType:     j.JobType,
			PostedDate:  parsePostedDate(j.PublicationDate),
		},
		Source:   p.Key(),
		ApplyURL: j.URL,
	}
}
