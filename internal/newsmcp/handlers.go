package newsmcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/benmurrell/scout/internal/common"
	"github.com/benmurrell/scout/internal/interfaces"
	"github.com/benmurrell/scout/internal/newsapi"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// listResult marshals a constant enumeration under the given key.
func listResult(key string, values []string) *mcp.CallToolResult {
	body, err := json.Marshal(map[string][]string{key: values})
	if err != nil {
		return errorResult(fmt.Sprintf("Error: %v", err))
	}
	return textResult(string(body))
}

// --- Handlers ---

func handleSearchNews(c interfaces.NewsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		query, err := request.RequireString("query")
		if err != nil || query == "" {
			return errorResult("Error: query parameter is required"), nil
		}

		params := interfaces.NewsSearchParams{
			Query:             query,
			Locale:            request.GetString("locale", ""),
			Language:          request.GetString("language", ""),
			Categories:        request.GetString("categories", ""),
			ExcludeCategories: request.GetString("exclude_categories", ""),
			Domains:           request.GetString("domains", ""),
			PublishedAfter:    request.GetString("published_after", ""),
			PublishedBefore:   request.GetString("published_before", ""),
			Sort:              request.GetString("sort", ""),
			Page:              request.GetInt("page", 1),
			Limit:             request.GetInt("limit", 5),
		}

		body, err := c.SearchNews(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("tool", "search_news").Msg("Upstream call failed")
			return errorResult(fmt.Sprintf("Search error: %v", err)), nil
		}
		return textResult(string(body)), nil
	}
}

func handleTopNews(c interfaces.NewsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		params := interfaces.TopNewsParams{
			Locale:     request.GetString("locale", "us"),
			Language:   request.GetString("language", ""),
			Categories: request.GetString("categories", ""),
			Page:       request.GetInt("page", 1),
			Limit:      request.GetInt("limit", 5),
		}

		body, err := c.TopNews(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("tool", "top_news").Msg("Upstream call failed")
			return errorResult(fmt.Sprintf("Top news error: %v", err)), nil
		}
		return textResult(string(body)), nil
	}
}

func handleLatestHeadlines(c interfaces.NewsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		params := interfaces.HeadlinesParams{
			Locale:      request.GetString("locale", "us"),
			Language:    request.GetString("language", ""),
			PerCategory: request.GetInt("headlines_per_category", 6),
		}

		body, err := c.LatestHeadlines(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("tool", "latest_headlines").Msg("Upstream call failed")
			return errorResult(fmt.Sprintf("Headlines error: %v", err)), nil
		}
		return textResult(string(body)), nil
	}
}

func handleSimilarNews(c interfaces.NewsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		articleUUID, err := request.RequireString("article_uuid")
		if err != nil || articleUUID == "" {
			return errorResult("Error: article_uuid parameter is required"), nil
		}

		params := interfaces.SimilarNewsParams{
			ArticleUUID: articleUUID,
			Page:        request.GetInt("page", 1),
			Limit:       request.GetInt("limit", 5),
		}

		body, err := c.SimilarNews(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("tool", "similar_news").Msg("Upstream call failed")
			return errorResult(fmt.Sprintf("Similar news error: %v", err)), nil
		}
		return textResult(string(body)), nil
	}
}

func handleNewsSources(c interfaces.NewsClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		params := interfaces.SourcesParams{
			Locale:     request.GetString("locale", ""),
			Language:   request.GetString("language", ""),
			Categories: request.GetString("categories", ""),
			Page:       request.GetInt("page", 1),
		}

		body, err := c.Sources(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("tool", "news_sources").Msg("Upstream call failed")
			return errorResult(fmt.Sprintf("Sources error: %v", err)), nil
		}
		return textResult(string(body)), nil
	}
}

func handleListCategories() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return listResult("categories", newsapi.Categories()), nil
	}
}

func handleListLocales() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return listResult("locales", newsapi.Locales()), nil
	}
}

func handleListLanguages() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return listResult("languages", newsapi.Languages()), nil
	}
}
