package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/dataknife/high-command-mcp-server/internal/hellhub"
	"github.com/dataknife/high-command-mcp-server/internal/invoke"
	"github.com/dataknife/high-command-mcp-server/internal/registry"
	"github.com/dataknife/high-command-mcp-server/metrics"
	"github.com/dataknife/high-command-mcp-server/tracing"
)

// Dispatcher executes tool calls: registry lookup plus argument
// validation, then the invocation wrapper around a HellHub fetch. It is
// the layer the MCP transport talks to, and the last place a tool
// failure can exist as an error rather than an envelope.
type Dispatcher struct {
	registry      *registry.Registry
	config        *hellhub.Config
	logger        *slog.Logger
	includeTiming bool
}

// DispatcherOption configures the Dispatcher
type DispatcherOption func(*Dispatcher)

// WithTiming attaches elapsed_ms metrics to every envelope.
func WithTiming(enabled bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.includeTiming = enabled
	}
}

// NewDispatcher builds a dispatcher with all tools from AllTools
// registered. The registry is fully populated here and read-only
// afterwards.
func NewDispatcher(config *hellhub.Config, logger *slog.Logger, opts ...DispatcherOption) (*Dispatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if config == nil {
		config = hellhub.LoadConfig()
	}

	d := &Dispatcher{
		registry: registry.New(logger),
		config:   config,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(d)
	}

	for _, spec := range AllTools {
		handler, err := d.buildHandler(spec)
		if err != nil {
			return nil, err
		}
		def := &registry.ToolDefinition{
			Name:        spec.Name,
			Description: spec.Description,
			Handler:     handler,
			Parameters:  spec.Parameters,
		}
		if err := d.registry.Register(def); err != nil {
			return nil, fmt.Errorf("registering %s: %w", spec.Name, err)
		}
	}
	return d, nil
}

// buildHandler binds a spec to its client operation. Each invocation
// opens its own client and closes it on every exit path; connections are
// never shared across concurrent tool calls.
func (d *Dispatcher) buildHandler(spec ToolSpec) (registry.Handler, error) {
	switch spec.Name {
	case "get_war_status":
		return d.fetch(func(ctx context.Context, c *hellhub.Client, _ map[string]any) (json.RawMessage, error) {
			return c.WarStatus(ctx)
		}), nil
	case "get_planets":
		return d.fetch(func(ctx context.Context, c *hellhub.Client, _ map[string]any) (json.RawMessage, error) {
			return c.Planets(ctx)
		}), nil
	case "get_statistics":
		return d.fetch(func(ctx context.Context, c *hellhub.Client, _ map[string]any) (json.RawMessage, error) {
			return c.Statistics(ctx)
		}), nil
	case "get_campaign_info":
		return d.fetch(func(ctx context.Context, c *hellhub.Client, _ map[string]any) (json.RawMessage, error) {
			return c.CampaignInfo(ctx)
		}), nil
	case "get_planet_status":
		return d.fetch(func(ctx context.Context, c *hellhub.Client, args map[string]any) (json.RawMessage, error) {
			return c.PlanetStatus(ctx, intArg(args, "planet_index"))
		}), nil
	case "get_biomes":
		return d.fetch(func(ctx context.Context, c *hellhub.Client, _ map[string]any) (json.RawMessage, error) {
			return c.Biomes(ctx)
		}), nil
	case "get_factions":
		return d.fetch(func(ctx context.Context, c *hellhub.Client, _ map[string]any) (json.RawMessage, error) {
			return c.Factions(ctx)
		}), nil
	default:
		return nil, fmt.Errorf("no handler for tool %q", spec.Name)
	}
}

// fetch wraps a client operation in the per-invocation open/close
// lifecycle.
func (d *Dispatcher) fetch(op func(context.Context, *hellhub.Client, map[string]any) (json.RawMessage, error)) registry.Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		client := hellhub.NewClient(d.config, hellhub.WithLogger(d.logger))
		if err := client.Open(); err != nil {
			return nil, err
		}
		defer client.Close()

		data, err := op(ctx, client, args)
		if err != nil {
			return nil, err
		}
		return data, nil
	}
}

// Call dispatches a tool by name. Every outcome is an envelope; the
// returned error is non-nil only for programming errors (a nil handler
// wired into the registry), which must surface rather than be swallowed.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (result invoke.Result, err error) {
	ctx, span := tracing.StartSpan(ctx, "mcp.tool."+name)
	defer span.End()
	tracing.AddToolAttributes(span, name, endpointFor(name))

	metrics.RequestInFlight.WithLabelValues(name).Inc()
	defer metrics.RequestInFlight.WithLabelValues(name).Dec()

	defer func() {
		if rec := recover(); rec != nil {
			metrics.PanicsRecovered.WithLabelValues(name).Inc()
			d.logger.Error("Panic recovered",
				"tool", name,
				"panic", rec,
				"stack", string(debug.Stack()))
			result = invoke.ErrorResult(fmt.Sprintf("panic: %v", rec))
			err = nil
		}
	}()

	start := time.Now()

	tool, verr := d.registry.ValidateAndGet(name, args)
	if verr != nil {
		duration := time.Since(start).Seconds()
		span.SetStatus(codes.Error, verr.Error())
		metrics.RecordRequest(name, duration, false)
		d.logger.Warn("Tool call rejected", "tool", name, "error", verr)
		return invoke.ErrorResult(verr.Error()), nil
	}

	result, err = invoke.Run(ctx, func(ctx context.Context) (any, error) {
		return tool.Handler(ctx, args)
	}, d.includeTiming)
	duration := time.Since(start).Seconds()
	span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

	if err != nil {
		// Wiring bug: surface it, don't envelope it.
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.RecordRequest(name, duration, false)
		return invoke.Result{}, err
	}

	if result.OK() {
		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(name, duration, true)
		d.logger.Info("Tool executed", "tool", name)
		return result, nil
	}

	span.RecordError(errors.New(*result.Error))
	span.SetStatus(codes.Error, *result.Error)
	metrics.RecordRequest(name, duration, false)
	d.logger.Warn("Tool failed", "tool", name, "error", *result.Error)
	return result, nil
}

// ToolInfo is one entry of the listing boundary.
type ToolInfo struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"input_schema"`
}

// ListTools returns every registered tool with its derived input schema.
func (d *Dispatcher) ListTools() []ToolInfo {
	defs := d.registry.ListAll()
	infos := make([]ToolInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, ToolInfo{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.Schema(),
		})
	}
	return infos
}

// endpointFor returns the logical endpoint for a tool name, for span
// attribution.
func endpointFor(name string) string {
	for _, spec := range AllTools {
		if spec.Name == name {
			return spec.Endpoint
		}
	}
	return ""
}

// intArg extracts an integer argument already vetted by validation.
func intArg(args map[string]any, name string) int {
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return 0
}
