// Package seoapi implements the DataForSEO client.
package seoapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/benmurrell/scout/internal/common"
	"github.com/benmurrell/scout/internal/interfaces"
	"github.com/benmurrell/scout/internal/upstream"
)

// maxDepth is the ceiling applied to caller-supplied depth and limit values
// before transmission. No floor is applied.
const maxDepth = 100

// Client calls the DataForSEO API. Every request is a POST carrying a
// single-task JSON array and an HTTP Basic auth header.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *common.Logger
}

// BasicAuth builds the Authorization header value from a login/password pair:
// "Basic " + base64(login + ":" + password).
func BasicAuth(login, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(login+":"+password))
}

// NewClient creates a DataForSEO client from configuration. The Basic auth
// header is built once at construction, not re-derived per call.
func NewClient(cfg common.DataForSEOConfig, logger *common.Logger) *Client {
	limit := rate.Inf
	burst := 0
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		burst = cfg.RateLimit
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		authHeader: BasicAuth(cfg.Login, cfg.Password),
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// SERPResults retrieves live Google organic SERP results.
func (c *Client) SERPResults(ctx context.Context, params interfaces.SERPParams) ([]byte, error) {
	task := map[string]any{
		"keyword":       params.Keyword,
		"location_code": params.LocationCode,
		"language_code": params.LanguageCode,
		"depth":         clampDepth(params.Depth),
	}
	if params.Device != "" {
		task["device"] = params.Device
	}
	if params.SEDomain != "" {
		task["se_domain"] = params.SEDomain
	}

	return c.post(ctx, "/serp/google/organic/live/advanced", task)
}

// DomainOverview retrieves ranking overview data for a domain.
func (c *Client) DomainOverview(ctx context.Context, params interfaces.DomainOverviewParams) ([]byte, error) {
	task := map[string]any{
		"target":        params.Target,
		"location_code": params.LocationCode,
		"language_code": params.LanguageCode,
	}

	return c.post(ctx, "/dataforseo_labs/google/domain_rank_overview/live", task)
}

// KeywordSuggestions retrieves keyword suggestions for a seed keyword.
func (c *Client) KeywordSuggestions(ctx context.Context, params interfaces.KeywordSuggestionsParams) ([]byte, error) {
	task := map[string]any{
		"keyword":       params.Keyword,
		"location_code": params.LocationCode,
		"language_code": params.LanguageCode,
		"limit":         clampDepth(params.Limit),
	}

	return c.post(ctx, "/dataforseo_labs/google/keyword_suggestions/live", task)
}

// BacklinksSummary retrieves the backlink profile summary for a target.
func (c *Client) BacklinksSummary(ctx context.Context, params interfaces.BacklinksSummaryParams) ([]byte, error) {
	task := map[string]any{
		"target":             params.Target,
		"include_subdomains": params.IncludeSubdomains,
	}

	return c.post(ctx, "/backlinks/summary/live", task)
}

// post performs a POST request with the task wrapped in a single-element
// array, per the DataForSEO task envelope. Returns the raw response body;
// failures are classified at this boundary.
func (c *Client) post(ctx context.Context, path string, task map[string]any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, upstream.TransportError(err)
	}

	payload, err := json.Marshal([]map[string]any{task})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}

	c.logger.Debug().
		Str("method", "POST").
		Str("path", path).
		Msg("DataForSEO Request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("DataForSEO Request Failed")
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
		Str("status_message", gjson.GetBytes(body, "status_message").String()).
		Msg("DataForSEO Response")

	if resp.StatusCode >= 400 {
		return nil, upstream.StatusError(resp.StatusCode, body)
	}

	return body, nil
}

// clampDepth caps a caller-supplied value at maxDepth. No floor is applied.
func clampDepth(v int) int {
	if v > maxDepth {
		return maxDepth
	}
	return v
}
