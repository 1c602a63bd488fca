// High Command MCP Server - A Model Context Protocol server for Helldivers 2
// Provides tools for querying galactic war data from the HellHub Collective API
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dataknife/high-command-mcp-server/internal/hellhub"
	"github.com/dataknife/high-command-mcp-server/tools"
	"github.com/dataknife/high-command-mcp-server/tracing"
)

const (
	ServerName    = "high-command-mcp-server"
	ServerVersion = "1.0.0"
)

func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	ctx := context.Background()

	// Initialize tracing (noop unless OTEL_ENABLED=true)
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logger.Warn("Tracing setup failed, continuing without traces", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("Tracing shutdown failed", "error", err)
			}
		}()
	}

	// Load configuration from environment
	config := hellhub.LoadConfig()

	dispatcher, err := tools.NewDispatcher(config, logger, tools.WithTiming(true))
	if err != nil {
		log.Fatalf("Failed to build tool dispatcher: %v", err)
	}

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `High Command MCP Server provides tools for querying Helldivers 2 galactic war data from the HellHub Collective API.

Available tools:
- get_war_status: Get the current galactic war status
- get_planets: Get the list of all planets in the war
- get_statistics: Get global game statistics
- get_campaign_info: Get active campaign information (not available in this API)
- get_planet_status: Get the status of a specific planet by index
- get_biomes: Get the list of planet biomes
- get_factions: Get the list of factions in the war

Configure via environment variables:
- HELLHUB_API_URL: API base URL (default: https://api-hellhub-collective.koyeb.app/api)
- HELLHUB_TIMEOUT: Request timeout in seconds (default: 30)
- X_SUPER_CLIENT / X_SUPER_CONTACT: Client identification headers`,
	})

	// Register all tools
	tools.RegisterAll(server, dispatcher)

	// Run server on stdio transport
	logger.Info("Starting High Command MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"api_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
