// Package seomcp exposes the DataForSEO client as MCP tools.
package seomcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/benmurrell/scout/internal/common"
	"github.com/benmurrell/scout/internal/interfaces"
)

// RegisterTools registers the SEO tool catalog on the server, wiring each
// tool to a handler that calls DataForSEO via the client.
func RegisterTools(s *server.MCPServer, c interfaces.SEOClient, logger *common.Logger) {
	s.AddTool(createSERPResultsTool(), handleSERPResults(c, logger))
	s.AddTool(createDomainOverviewTool(), handleDomainOverview(c, logger))
	s.AddTool(createKeywordSuggestionsTool(), handleKeywordSuggestions(c, logger))
	s.AddTool(createBacklinksSummaryTool(), handleBacklinksSummary(c, logger))
}

// --- Tool definitions ---

func createSERPResultsTool() mcp.Tool {
	return mcp.NewTool("serp_results",
		mcp.WithDescription("Get live Google organic search results for a keyword. Returns the raw JSON response from DataForSEO."),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("Search keyword or phrase.")),
		mcp.WithNumber("location_code", mcp.Description("DataForSEO location code (default: 2840 for United States).")),
		mcp.WithString("language_code", mcp.Description("ISO language code (default: 'en').")),
		mcp.WithNumber("depth", mcp.Description("Number of results to retrieve (default: 10, max: 100).")),
		mcp.WithString("device", mcp.Description("Device type: 'desktop' or 'mobile'.")),
		mcp.WithString("se_domain", mcp.Description("Search engine domain (e.g., 'google.com.au').")),
	)
}

func createDomainOverviewTool() mcp.Tool {
	return mcp.NewTool("domain_overview",
		mcp.WithDescription("Get ranking and traffic overview data for a domain. Returns the raw JSON response from DataForSEO."),
		mcp.WithString("target", mcp.Required(), mcp.Description("Domain without protocol (e.g., 'example.com').")),
		mcp.WithNumber("location_code", mcp.Description("DataForSEO location code (default: 2840 for United States).")),
		mcp.WithString("language_code", mcp.Description("ISO language code (default: 'en').")),
	)
}

func createKeywordSuggestionsTool() mcp.Tool {
	return mcp.NewTool("keyword_suggestions",
		mcp.WithDescription("Get keyword suggestions for a seed keyword. Returns the raw JSON response from DataForSEO."),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("Seed keyword.")),
		mcp.WithNumber("location_code", mcp.Description("DataForSEO location code (default: 2840 for United States).")),
		mcp.WithString("language_code", mcp.Description("ISO language code (default: 'en').")),
		mcp.WithNumber("limit", mcp.Description("Maximum suggestions to return (default: 20, max: 100).")),
	)
}

func createBacklinksSummaryTool() mcp.Tool {
	return mcp.NewTool("backlinks_summary",
		mcp.WithDescription("Get the backlink profile summary for a domain or page. Returns the raw JSON response from DataForSEO."),
		mcp.WithString("target", mcp.Required(), mcp.Description("Domain, subdomain, or full page URL.")),
		mcp.WithBoolean("include_subdomains", mcp.Description("Include subdomains in the summary (default: true).")),
	)
}
