package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jobradar/internal/config"
	"jobradar/internal/logging"
	"jobradar/internal/logging/types"
	"jobradar/pkg/models"
)

// ArbeitnowProvider implements the Provider interface for the Arbeitnow
// job board API. The upstream endpoint has no query parameter, so the
// free-text filter runs client-side before results are returned.
type ArbeitnowProvider struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  types.Logger
}

// NewArbeitnowProvider creates a new Arbeitnow provider adapter
func NewArbeitnowProvider(cfg *config.Config) *ArbeitnowProvider {
	return &ArbeitnowProvider{
		baseURL: cfg.Providers.Arbeitnow.BaseURL,
		timeout: cfg.Search.RequestTimeout,
		client:  &http.Client{Timeout: cfg.Search.RequestTimeout},
		logger:  logging.GetGlobalLogger(),
	}
}

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Slug        string   `json:"slug"`
	CompanyName string   `json:"company_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Remote      bool     `json:"remote"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	JobTypes    []string `json:"job_types"`
	Location    string   `json:"location"`
	CreatedAt   int64    `json:"created_at"`
}

// Key returns the provider identifier
func (p *ArbeitnowProvider) Key() string {
	return "arbeitnow"
}

// Search fetches the Arbeitnow board and filters it client-side
func (p *ArbeitnowProvider) Search(ctx context.Context, params models.SearchParams) models.SearchResult {
	endpoint := p.baseURL + "/job-board-api"

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

	var parsed arbeitnowResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return failureResult(p.Key(), "malformed response payload")
	}

	jobs := make([]models.NormalizedJob, 0, len(parsed.Data))
	for _, j := range parsed.Data {
		jobs = append(jobs, p.normalize(j))
	}

	// No native filtering upstream
	jobs = filterByQuery(jobs, params.Query)

	p.logger.Debug("Arbeitnow search completed", map[string]interface{}{
		"provider": p.Key(),
		"fetched":  len(parsed.Data),
		"matched":  len(jobs),
	})

	return models.SearchResult{
		Success:    true,
		Jobs:       jobs,
		TotalFound: len(jobs),
		Source:     p.Key(),
	}
}

// normalize converts an Arbeitnow listing into the common job shape
func (p *ArbeitnowProvider) normalize(j arbeitnowJob) models.NormalizedJob {
	jobType := ""
	if len(j.JobTypes) > 0 {
		jobType = strings.ToLower(j.JobTypes[0])
	}

	return models.NormalizedJob{
		JobPosting: models.JobPosting{
			ID:          "arbeitnow-" + j.Slug,
			Title:       j.Title,
			Company:     j.CompanyName,
			Location:    j.Location,
			Remote:      j.Remote || looksRemote(j.Location),
			Skills:      j.Tags,
			Description: j.Description,
			JobType:     jobType,
			PostedDate:  time.Unix(j.CreatedAt, 0).UTC(),
		},
		Source:   p.Key(),
		ApplyURL: j.URL,
	}
}
