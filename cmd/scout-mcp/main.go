// The scout-mcp binary serves both the news and SEO tool catalogs from a
// single MCP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/benmurrell/scout/internal/common"
	"github.com/benmurrell/scout/internal/newsapi"
	"github.com/benmurrell/scout/internal/newsmcp"
	"github.com/benmurrell/scout/internal/seoapi"
	"github.com/benmurrell/scout/internal/seomcp"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for desktop clients)")
	configFile := flag.String("config", "scout-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := common.LoadConfig(*configFile, common.NewDefaultConfig("Scout-Suite", "4272"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	newsClient := newsapi.NewClient(cfg.Clients.TheNewsAPI, logger)
	seoClient := seoapi.NewClient(cfg.Clients.DataForSEO, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	registerVersionTool(mcpServer, "Scout Suite MCP")
	newsmcp.RegisterTools(mcpServer, newsClient, logger)
	seomcp.RegisterTools(mcpServer, seoClient, logger)

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Streamable HTTP transport — listens on the configured address
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	addr := cfg.Server.Addr()
	log.Printf("Starting suite MCP Streamable HTTP on %s", addr)

	if err := httpServer.Start(addr); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
