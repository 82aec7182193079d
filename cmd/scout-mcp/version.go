package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/benmurrell/scout/internal/common"
)

// registerVersionTool registers the get_version connectivity tool.
func registerVersionTool(s *server.MCPServer, serviceName string) {
	tool := mcp.NewTool("get_version",
		mcp.WithDescription("Get the server version and status. Use this to verify connectivity."),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := fmt.Sprintf("%s\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			serviceName, common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(text)},
		}, nil
	})
}
