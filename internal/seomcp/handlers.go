package seomcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/benmurrell/scout/internal/common"
	"github.com/benmurrell/scout/internal/interfaces"
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

// --- Handlers ---

func handleSERPResults(c interfaces.SEOClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		keyword, err := request.RequireString("keyword")
		if err != nil || keyword == "" {
			return errorResult("Error: keyword parameter is required"), nil
		}

		params := interfaces.SERPParams{
			Keyword:      keyword,
			LocationCode: request.GetInt("location_code", 2840),
			LanguageCode: request.GetString("language_code", "en"),
			Depth:        request.GetInt("depth", 10),
			Device:       request.GetString("device", ""),
			SEDomain:     request.GetString("se_domain", ""),
		}

		body, err := c.SERPResults(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("tool", "serp_results").Msg("Upstream call failed")
			return errorResult(fmt.Sprintf("SERP error: %v", err)), nil
		}
		return textResult(string(body)), nil
	}
}

func handleDomainOverview(c interfaces.SEOClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		target, err := request.RequireString("target")
		if err != nil || target == "" {
			return errorResult("Error: target parameter is required"), nil
		}

		params := interfaces.DomainOverviewParams{
			Target:       target,
			LocationCode: request.GetInt("location_code", 2840),
			LanguageCode: request.GetString("language_code", "en"),
		}

		body, err := c.DomainOverview(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("tool", "domain_overview").Msg("Upstream call failed")
			return errorResult(fmt.Sprintf("Domain overview error: %v", err)), nil
		}
		return textResult(string(body)), nil
	}
}

func handleKeywordSuggestions(c interfaces.SEOClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		keyword, err := request.RequireString("keyword")
		if err != nil || keyword == "" {
			return errorResult("Error: keyword parameter is required"), nil
		}

		params := interfaces.KeywordSuggestionsParams{
			Keyword:      keyword,
			LocationCode: request.GetInt("location_code", 2840),
			LanguageCode: request.GetString("language_code", "en"),
			Limit:        request.GetInt("limit", 20),
		}

		body, err := c.KeywordSuggestions(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("tool", "keyword_suggestions").Msg("Upstream call failed")
			return errorResult(fmt.Sprintf("Keyword suggestions error: %v", err)), nil
		}
		return textResult(string(body)), nil
	}
}

func handleBacklinksSummary(c interfaces.SEOClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		target, err := request.RequireString("target")
		if err != nil || target == "" {
			return errorResult("Error: target parameter is required"), nil
		}

		params := interfaces.BacklinksSummaryParams{
			Target:            target,
			IncludeSubdomains: request.GetBool("include_subdomains", true),
		}

		body, err := c.BacklinksSummary(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("tool", "backlinks_summary").Msg("Upstream call failed")
			return errorResult(fmt.Sprintf("Backlinks error: %v", err)), nil
		}
		return textResult(string(body)), nil
	}
}
