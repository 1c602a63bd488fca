// Package tools wires the tool registry, the invocation wrapper, and the
// HellHub client into the MCP server. Tools are defined declaratively;
// the dispatcher registers them, validates arguments, and guarantees a
// uniform response envelope for every call.
package tools

import (
	"github.com/dataknife/high-command-mcp-server/internal/registry"
)

// ToolSpec defines a tool's metadata for declarative registration.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "get_war_status")
	Name string

	// Title is the human-readable tool title for annotations
	Title string

	// Description is the tool description shown to LLMs
	Description string

	// Endpoint is the logical HellHub resource the tool reads,
	// recorded on spans ("" for tools that never reach the network)
	Endpoint string

	// Parameters declares the tool's input schema
	Parameters []registry.ToolParameter
}

// AllTools contains all tool specifications for the High Command MCP
// server. Every tool is a read-only view over the HellHub API; the
// handlers are bound in dispatcher.go.
var AllTools = []ToolSpec{
	{
		Name:        "get_war_status",
		Title:       "Get War Status",
		Description: "Get current war status from HellHub Collective API",
		Endpoint:    "/war",
	},
	{
		Name:        "get_planets",
		Title:       "Get Planets",
		Description: "Get planet information from HellHub Collective API",
		Endpoint:    "/planets",
	},
	{
		Name:        "get_statistics",
		Title:       "Get Statistics",
		Description: "Get global game statistics from HellHub Collective API",
		Endpoint:    "/statistics",
	},
	{
		Name:        "get_campaign_info",
		Title:       "Get Campaign Info",
		Description: "Get campaign information from HellHub Collective API",
	},
	{
		Name:        "get_planet_status",
		Title:       "Get Planet Status",
		Description: "Get status for a specific planet",
		Endpoint:    "/planets/{index}",
		Parameters: []registry.ToolParameter{
			{
				Name:        "planet_index",
				Type:        registry.TypeInteger,
				Description: "The index of the planet",
				Required:    true,
			},
		},
	},
	{
		Name:        "get_biomes",
		Title:       "Get Biomes",
		Description: "Get biome information from HellHub Collective API",
		Endpoint:    "/biomes",
	},
	{
		Name:        "get_factions",
		Title:       "Get Factions",
		Description: "Get faction information from HellHub Collective API",
		Endpoint:    "/factions",
	},
}
