package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dataknife/high-command-mcp-server/internal/invoke"
)

// envelopeSchema describes the uniform result shape every tool returns.
// data and error are both always present; exactly one is null.
func envelopeSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"status": {
				Type:        "string",
				Description: "\"success\" or \"error\"",
				Enum:        []any{invoke.StatusSuccess, invoke.StatusError},
			},
			"data": {
				Description: "Tool payload on success, null on error",
			},
			"error": {
				Types:       []string{"string", "null"},
				Description: "Failure message on error, null on success",
			},
			"metrics": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"elapsed_ms": {Type: "number"},
				},
			},
		},
		Required: []string{"status", "data", "error"},
	}
}

// RegisterAll registers every dispatcher tool onto the MCP server. The
// SDK's schema derivation is bypassed: input schemas come from the
// registry's declared parameters, and all argument validation happens in
// Dispatcher.Call so that rejection messages stay in the envelope.
func RegisterAll(server *mcp.Server, d *Dispatcher) {
	for _, spec := range AllTools {
		spec := spec
		def, _ := d.registry.Get(spec.Name)
		mcp.AddTool(server, &mcp.Tool{
			Name:         spec.Name,
			Description:  spec.Description,
			InputSchema:  def.Schema(),
			OutputSchema: envelopeSchema(),
			Annotations: &mcp.ToolAnnotations{
				Title:         spec.Title,
				ReadOnlyHint:  true,
				OpenWorldHint: ptr(true),
			},
		}, func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, invoke.Result, error) {
			result, err := d.Call(ctx, spec.Name, args)
			if err != nil {
				return nil, invoke.Result{}, err
			}
			return nil, result, nil
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
