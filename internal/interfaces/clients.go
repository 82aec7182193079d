// Package interfaces defines the upstream client contracts for Scout.
package interfaces

import "context"

// NewsClient provides access to TheNewsAPI. Every method performs exactly one
// outbound call and returns the raw JSON response body verbatim; callers who
// need structure parse it themselves.
type NewsClient interface {
	// SearchNews searches all articles. GET /news/all
	SearchNews(ctx context.Context, params NewsSearchParams) ([]byte, error)

	// TopNews retrieves top stories by locale. GET /news/top
	TopNews(ctx context.Context, params TopNewsParams) ([]byte, error)

	// LatestHeadlines retrieves the latest headlines grouped by category.
	// GET /news/headlines
	LatestHeadlines(ctx context.Context, params HeadlinesParams) ([]byte, error)

	// SimilarNews retrieves articles similar to a given article UUID.
	// GET /news/similar/{uuid}
	SimilarNews(ctx context.Context, params SimilarNewsParams) ([]byte, error)

	// Sources lists the sources available to the account. GET /news/sources
	Sources(ctx context.Context, params SourcesParams) ([]byte, error)
}

// NewsSearchParams holds parameters for SearchNews. Optional string fields
// left empty are omitted from the outbound request entirely.
type NewsSearchParams struct {
	Query             string // required; sent as the upstream "search" key
	Locale            string
	Language          string
	Categories        string
	ExcludeCategories string
	Domains           string
	PublishedAfter    string
	PublishedBefore   string
	Sort              string
	Page              int
	Limit             int
}

// TopNewsParams holds parameters for TopNews.
type TopNewsParams struct {
	Locale     string
	Language   string
	Categories string
	Page       int
	Limit      int
}

// HeadlinesParams holds parameters for LatestHeadlines.
type HeadlinesParams struct {
	Locale      string
	Language    string
	PerCategory int // sent as headlines_per_category
}

// SimilarNewsParams holds parameters for SimilarNews.
type SimilarNewsParams struct {
	ArticleUUID string // required; path parameter
	Page        int
	Limit       int
}

// SourcesParams holds parameters for Sources.
type SourcesParams struct {
	Locale     string
	Language   string
	Categories string
	Page       int
}

// SEOClient provides access to the DataForSEO API. Requests are POSTed as a
// single-task JSON array with an HTTP Basic auth header; responses are
// returned verbatim.
type SEOClient interface {
	// SERPResults retrieves live Google organic SERP results.
	// POST /serp/google/organic/live/advanced
	SERPResults(ctx context.Context, params SERPParams) ([]byte, error)

	// DomainOverview retrieves ranking overview data for a domain.
	// POST /dataforseo_labs/google/domain_rank_overview/live
	DomainOverview(ctx context.Context, params DomainOverviewParams) ([]byte, error)

	// KeywordSuggestions retrieves keyword suggestions for a seed keyword.
	// POST /dataforseo_labs/google/keyword_suggestions/live
	KeywordSuggestions(ctx context.Context, params KeywordSuggestionsParams) ([]byte, error)

	// BacklinksSummary retrieves the backlink profile summary for a target.
	// POST /backlinks/summary/live
	BacklinksSummary(ctx context.Context, params BacklinksSummaryParams) ([]byte, error)
}

// SERPParams holds parameters for SERPResults.
type SERPParams struct {
	Keyword      string // required
	LocationCode int
	LanguageCode string
	Depth        int
	Device       string // optional: "desktop" or "mobile"
	SEDomain     string // optional: e.g. "google.com.au"
}

// DomainOverviewParams holds parameters for DomainOverview.
type DomainOverviewParams struct {
	Target       string // required; domain without protocol
	LocationCode int
	LanguageCode string
}

// KeywordSuggestionsParams holds parameters for KeywordSuggestions.
type KeywordSuggestionsParams struct {
	Keyword      string // required
	LocationCode int
	LanguageCode string
	Limit        int
}

// BacklinksSummaryParams holds parameters for BacklinksSummary.
type BacklinksSummaryParams struct {
	Target            string // required; domain, subdomain, or page
	IncludeSubdomains bool
}
