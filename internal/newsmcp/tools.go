// Package newsmcp exposes the TheNewsAPI client as MCP tools.
package newsmcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/benmurrell/scout/internal/common"
	"github.com/benmurrell/scout/internal/interfaces"
)

// RegisterTools registers the news tool catalog on the server, wiring each
// tool to a handler that calls TheNewsAPI via the client.
func RegisterTools(s *server.MCPServer, c interfaces.NewsClient, logger *common.Logger) {
	s.AddTool(createSearchNewsTool(), handleSearchNews(c, logger))
	s.AddTool(createTopNewsTool(), handleTopNews(c, logger))
	s.AddTool(createLatestHeadlinesTool(), handleLatestHeadlines(c, logger))
	s.AddTool(createSimilarNewsTool(), handleSimilarNews(c, logger))
	s.AddTool(createNewsSourcesTool(), handleNewsSources(c, logger))
	s.AddTool(createListCategoriesTool(), handleListCategories())
	s.AddTool(createListLocalesTool(), handleListLocales())
	s.AddTool(createListLanguagesTool(), handleListLanguages())
}

// --- Tool definitions ---

func createSearchNewsTool() mcp.Tool {
	return mcp.NewTool("search_news",
		mcp.WithDescription("Search news articles across all sources. Returns the raw JSON response from TheNewsAPI."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search phrase. Supports + (AND), | (OR), and - (NOT) operators, e.g. 'crypto + -bitcoin'.")),
		mcp.WithString("locale", mcp.Description("Comma-separated country codes to filter by (e.g., 'us,gb,au'). Use list_locales for the accepted set.")),
		mcp.WithString("language", mcp.Description("Comma-separated ISO language codes (e.g., 'en,de'). Use list_languages for the accepted set.")),
		mcp.WithString("categories", mcp.Description("Comma-separated categories to include (e.g., 'business,tech'). Use list_categories for the accepted set.")),
		mcp.WithString("exclude_categories", mcp.Description("Comma-separated categories to exclude.")),
		mcp.WithString("domains", mcp.Description("Comma-separated source domains to include (e.g., 'bbc.co.uk,cnn.com').")),
		mcp.WithString("published_after", mcp.Description("Only articles published after this date (YYYY-MM-DD).")),
		mcp.WithString("published_before", mcp.Description("Only articles published before this date (YYYY-MM-DD).")),
		mcp.WithString("sort", mcp.Description("Sort order: 'published_at' or 'relevance_score' (default: published_at).")),
		mcp.WithNumber("page", mcp.Description("Page number for pagination (default: 1).")),
		mcp.WithNumber("limit", mcp.Description("Maximum articles to return (default: 5, max: 100).")),
	)
}

func createTopNewsTool() mcp.Tool {
	return mcp.NewTool("top_news",
		mcp.WithDescription("Get the top stories for a locale. Returns the raw JSON response from TheNewsAPI."),
		mcp.WithString("locale", mcp.Description("Comma-separated country codes (default: 'us'). Use list_locales for the accepted set.")),
		mcp.WithString("language", mcp.Description("Comma-separated ISO language codes (e.g., 'en').")),
		mcp.WithString("categories", mcp.Description("Comma-separated categories to include (e.g., 'business,tech').")),
		mcp.WithNumber("page", mcp.Description("Page number for pagination (default: 1).")),
		mcp.WithNumber("limit", mcp.Description("Maximum articles to return (default: 5, max: 100).")),
	)
}

func createLatestHeadlinesTool() mcp.Tool {
	return mcp.NewTool("latest_headlines",
		mcp.WithDescription("Get the latest headlines grouped by category. Returns the raw JSON response from TheNewsAPI."),
		mcp.WithString("locale", mcp.Description("Comma-separated country codes (default: 'us').")),
		mcp.WithString("language", mcp.Description("Comma-separated ISO language codes (e.g., 'en').")),
		mcp.WithNumber("headlines_per_category", mcp.Description("Headlines to return per category (default: 6, max: 100).")),
	)
}

func createSimilarNewsTool() mcp.Tool {
	return mcp.NewTool("similar_news",
		mcp.WithDescription("Find articles similar to a given article. Returns the raw JSON response from TheNewsAPI."),
		mcp.WithString("article_uuid", mcp.Required(), mcp.Description("UUID of the reference article, as returned by search_news or top_news.")),
		mcp.WithNumber("page", mcp.Description("Page number for pagination (default: 1).")),
		mcp.WithNumber("limit", mcp.Description("Maximum articles to return (default: 5, max: 100).")),
	)
}

func createNewsSourcesTool() mcp.Tool {
	return mcp.NewTool("news_sources",
		mcp.WithDescription("List the news sources available to the account. Returns the raw JSON response from TheNewsAPI."),
		mcp.WithString("locale", mcp.Description("Comma-separated country codes to filter by.")),
		mcp.WithString("language", mcp.Description("Comma-separated ISO language codes to filter by.")),
		mcp.WithString("categories", mcp.Description("Comma-separated categories to filter by.")),
		mcp.WithNumber("page", mcp.Description("Page number for pagination (default: 1).")),
	)
}

func createListCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List the article categories accepted by the categories filters. Constant, no upstream call."),
	)
}

func createListLocalesTool() mcp.Tool {
	return mcp.NewTool("list_locales",
		mcp.WithDescription("List the country codes accepted by the locale filter. Constant, no upstream call."),
	)
}

func createListLanguagesTool() mcp.Tool {
	return mcp.NewTool("list_languages",
		mcp.WithDescription("List the ISO language codes accepted by the language filter. Constant, no upstream call."),
	)
}
