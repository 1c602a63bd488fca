// Package registry provides the tool registry: declarative tool
// definitions with typed parameters, argument validation, and
// dispatch-by-name lookup. The registry is populated once at startup and
// read-only afterwards, so it carries no locking.
package registry

import (
	"context"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
)

// ParamType is the declared JSON type of a tool parameter.
type ParamType string

const (
	TypeInteger ParamType = "integer"
	TypeString  ParamType = "string"
	TypeBoolean ParamType = "boolean"
)

// ToolParameter describes one parameter of a tool. Immutable once
// constructed.
type ToolParameter struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// Handler executes a tool with already-validated arguments.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// ToolDefinition pairs a tool's metadata and parameter schema with its
// handler. Created once at startup and never mutated.
type ToolDefinition struct {
	Name        string
	Description string
	Handler     Handler
	Parameters  []ToolParameter
}

// Schema derives the JSON Schema for the tool's input. It is a pure view
// over Parameters; nothing is stored.
func (d *ToolDefinition) Schema() *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(d.Parameters))
	required := []string{}

	for _, param := range d.Parameters {
		properties[param.Name] = &jsonschema.Schema{
			Type:        string(param.Type),
			Description: param.Description,
		}
		if param.Required {
			required = append(required, param.Name)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// ValidateArguments checks args against the declared parameters, in
// declaration order. Arguments not declared in the schema pass through
// untouched; this leniency is deliberate.
func (d *ToolDefinition) ValidateArguments(args map[string]any) error {
	for _, param := range d.Parameters {
		value, present := args[param.Name]
		if param.Required && !present {
			return &MissingParameterError{Name: param.Name}
		}
		if !present {
			continue
		}
		if got := jsonKind(value); !kindMatches(param.Type, got) {
			return &TypeMismatchError{Parameter: param.Name, Want: param.Type, Got: got}
		}
	}
	return nil
}

// Registry maps tool names to definitions. Safe for a single initializing
// goroutine followed by read-only use.
type Registry struct {
	tools  map[string]*ToolDefinition
	order  []string
	logger *slog.Logger
}

// New creates an empty registry.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		tools:  make(map[string]*ToolDefinition),
		logger: logger,
	}
}

// Register inserts a tool. Registering a name twice fails with a
// DuplicateToolError and leaves the existing entry untouched.
func (r *Registry) Register(tool *ToolDefinition) error {
	if _, exists := r.tools[tool.Name]; exists {
		return &DuplicateToolError{Name: tool.Name}
	}
	r.tools[tool.Name] = tool
	r.order = append(r.order, tool.Name)
	r.logger.Info("Tool registered", "tool", tool.Name)
	return nil
}

// Get returns the tool with the given name.
func (r *Registry) Get(name string) (*ToolDefinition, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// ListAll returns every registered tool in registration order.
func (r *Registry) ListAll() []*ToolDefinition {
	tools := make([]*ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// ValidateAndGet looks up a tool and validates args against its
// parameters. It is the sole entry point dispatch should use; lookup and
// validation are fused so callers cannot skip validation.
func (r *Registry) ValidateAndGet(name string, args map[string]any) (*ToolDefinition, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}
	if err := tool.ValidateArguments(args); err != nil {
		return nil, err
	}
	return tool, nil
}

// Clear empties the registry. Intended for test isolation.
func (r *Registry) Clear() {
	r.tools = make(map[string]*ToolDefinition)
	r.order = nil
}
