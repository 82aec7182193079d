package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/benmurrell/scout/internal/common"
	"github.com/benmurrell/scout/internal/seoapi"
	"github.com/benmurrell/scout/internal/seomcp"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for desktop clients)")
	configFile := flag.String("config", "seo-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := common.LoadConfig(*configFile, common.NewDefaultConfig("Scout-SEO", "4271"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := seoapi.NewClient(cfg.Clients.DataForSEO, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	registerVersionTool(mcpServer, "Scout SEO MCP")
	seomcp.RegisterTools(mcpServer, client, logger)

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
	log.Printf("Starting SEO MCP Streamable HTTP on %s", addr)

	if err := httpServer.Start(addr); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
