package providers

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobradar/internal/config"
	"jobradar/internal/logging"
	"jobradar/internal/logging/types"
	"jobradar/pkg/models"
)

// JoobleProvider implements the Provider interface for the Jooble API.
// Jooble is a POST JSON API keyed by an API token in the URL path; salaries
// come back as free-text strings.
type JoobleProvider struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *http.Client
	logger  types.Logger
}

// NewJoobleProvider creates a new Jooble provider adapter
func NewJoobleProvider(cfg *config.Config) *JoobleProvider {
	return &JoobleProvider{
		baseURL: cfg.Providers.Jooble.BaseURL,
		apiKey:  cfg.Providers.Jooble.APIKey,
		timeout: cfg.Search.RequestTimeout,
		client:  &http.Client{Timeout: cfg.Search.RequestTimeout},
		logger:  logging.GetGlobalLogger(),
	}
}

type joobleRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location,omitempty"`
	Page     string `json:"page,omitempty"`
}

type joobleResponse struct {
	TotalCount int         `json:"totalCount"`
	Jobs       []joobleJob `json:"jobs"`
}

type joobleJob struct {
	ID       json.Number `json:"id"`
	Title    string      `json:"title"`
	Location string      `json:"location"`
	Snippet  string      `json:"snippet"`
	Salary   string      `json:"salary"`
	Company  string      `json:"company"`
	Type     string      `json:"type"`
	Link     string      `json:"link"`
	Updated  string      `json:"updated"`
}

// Key returns the provider identifier
func (p *JoobleProvider) Key() string {
	return "jooble"
}

// Search queries Jooble and normalizes the response
func (p *JoobleProvider) Search(ctx context.Context, params models.SearchParams) models.SearchResult {
	payload := joobleRequest{
		Keywords: params.Query,
		Location: params.Location,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return failureResult(p.Key(), "failed to encode request")
	}

	// API key lives in the URL path; never reproduce the URL in errors
	endpoint := p.baseURL + "/" + p.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return failureResult(p.Key(), "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return failureResult(p.Key(), describeCallError(ctx, err, p.timeout))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failureResult(p.Key(), fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return failureResult(p.Key(), "failed to read response body")
	}

	var parsed joobleResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return failureResult(p.Key(), "malformed response payload")
	}

	jobs := make([]models.NormalizedJob, 0, len(parsed.Jobs))
	for _, j := range parsed.Jobs {
		jobs = append(jobs, p.normalize(j))
	}

	p.logger.Debug("Jooble search completed", map[string]interface{}{
		"provider": p.Key(),
		"returned": len(jobs),
		"total":    parsed.TotalCount,
	})

	return models.SearchResult{
		Success:    true,
		Jobs:       jobs,
		TotalFound: parsed.TotalCount,
		Source:     p.Key(),
	}
}

// normalize converts a Jooble listing into the common job shape. Listings
// without an upstream ID get a stable one derived from their content so
// repeated searches and dedupe see the same job.
func (p *JoobleProvider) normalize(j joobleJob) models.NormalizedJob {
	id := j.ID.String()
	if id == "" {
		sum := sha256.Sum256([]byte(j.Title + "|" + j.Company + "|" + j.Link))
		id = hex.EncodeToString(sum[:8])
	}

	return models.NormalizedJob{
		JobPosting: models.JobPosting{
			ID:          "jooble-" + id,
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			Remote:      looksRemote(j.Location),
			Salary:      parseSalaryText(j.Salary),
			Description: j.Snippet,
			JobType:     j.Type,
			PostedDate:  parsePostedDate(j.Updated),
		},
		Source:   p.Key(),
		ApplyURL: j.Link,
	}
}
