// Package newsapi implements the TheNewsAPI client.
package newsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/benmurrell/scout/internal/common"
	"github.com/benmurrell/scout/internal/interfaces"
	"github.com/benmurrell/scout/internal/upstream"
)

// maxLimit is the ceiling applied to caller-supplied limit values before
// transmission. Larger values are clamped; zero and negative values pass
// through unchanged and are rejected upstream.
const maxLimit = 100

// Client calls TheNewsAPI. The API token is appended to every request as an
// api_token query parameter.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *common.Logger
}

// NewClient creates a TheNewsAPI client from configuration. Credential
// material is captured once at construction, not re-read per call.
func NewClient(cfg common.TheNewsAPIConfig, logger *common.Logger) *Client {
	limit := rate.Inf
	burst := 0
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		burst = cfg.RateLimit
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// SearchNews searches all articles. The tool-facing "query" parameter maps to
// the upstream "search" key.
func (c *Client) SearchNews(ctx context.Context, params interfaces.NewsSearchParams) ([]byte, error) {
	q := url.Values{}
	q.Set("search", params.Query)
	setOptional(q, "locale", params.Locale)
	setOptional(q, "language", params.Language)
	setOptional(q, "categories", params.Categories)
	setOptional(q, "exclude_categories", params.ExcludeCategories)
	setOptional(q, "domains", params.Domains)
	setOptional(q, "published_after", params.PublishedAfter)
	setOptional(q, "published_before", params.PublishedBefore)
	setOptional(q, "sort", params.Sort)
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("limit", strconv.Itoa(clampLimit(params.Limit)))

	return c.get(ctx, "/news/all", q)
}

// TopNews retrieves top stories.
func (c *Client) TopNews(ctx context.Context, params interfaces.TopNewsParams) ([]byte, error) {
	q := url.Values{}
	setOptional(q, "locale", params.Locale)
	setOptional(q, "language", params.Language)
	setOptional(q, "categories", params.Categories)
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("limit", strconv.Itoa(clampLimit(params.Limit)))

	return c.get(ctx, "/news/top", q)
}

// LatestHeadlines retrieves the latest headlines grouped by category.
func (c *Client) LatestHeadlines(ctx context.Context, params interfaces.HeadlinesParams) ([]byte, error) {
	q := url.Values{}
	setOptional(q, "locale", params.Locale)
	setOptional(q, "language", params.Language)
	q.Set("headlines_per_category", strconv.Itoa(clampLimit(params.PerCategory)))

	return c.get(ctx, "/news/headlines", q)
}

// SimilarNews retrieves articles similar to the given article UUID.
func (c *Client) SimilarNews(ctx context.Context, params interfaces.SimilarNewsParams) ([]byte, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("limit", strconv.Itoa(clampLimit(params.Limit)))

	return c.get(ctx, "/news/similar/"+url.PathEscape(params.ArticleUUID), q)
}

// Sources lists the sources available to the account.
func (c *Client) Sources(ctx context.Context, params interfaces.SourcesParams) ([]byte, error) {
	q := url.Values{}
	setOptional(q, "locale", params.Locale)
	setOptional(q, "language", params.Language)
	setOptional(q, "categories", params.Categories)
	q.Set("page", strconv.Itoa(params.Page))

	return c.get(ctx, "/news/sources", q)
}

// get performs a GET request with the api_token credential and returns the
// raw response body. Failures are classified at this boundary.
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, upstream.TransportError(err)
	}

	q.Set("api_token", c.apiToken)
	reqURL := c.baseURL + path + "?" + q.Encode()

	c.logger.Debug().
		Str("method", "GET").
		Str("path", path).
		Msg("TheNewsAPI Request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("TheNewsAPI Request Failed")
		return nil, upstream.TransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, upstream.ReadError(err)
	}

	c.logger.Debug().
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Str("found", gjson.GetBytes(body, "meta.found").String()).
		Msg("TheNewsAPI Response")

	if resp.StatusCode >= 400 {
		return nil, upstream.StatusError(resp.StatusCode, body)
	}

	return body, nil
}

// setOptional adds a query parameter only when the value is non-empty.
// Absent optional parameters are omitted from the request entirely.
func setOptional(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// clampLimit caps a caller-supplied value at maxLimit. No floor is applied.
func clampLimit(v int) int {
	if v > maxLimit {
		return maxLimit
	}
	return v
}
