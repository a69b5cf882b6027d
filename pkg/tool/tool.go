package tool

import (
	"context"
	"encoding/json"
	"sync"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	server "github.com/mutablelogic/go-server/pkg/types"
	tinyagent "github.com/mutablelogic/go-tinyagent"
	schema "github.com/mutablelogic/go-tinyagent/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is an interface for a tool with a name, description and JSON schema
type Tool interface {
	// Return the name of the tool
	Name() string

	// Return the description of the tool
	Description() string

	// Return the JSON schema for the tool input
	Schema() (*jsonschema.Schema, error)

	// Run the tool with the given input as JSON (may be nil)
	Run(ctx context.Context, input json.RawMessage) (any, error)
}

// inputValidator is implemented by tools which validate their own input
// against their schema, so the toolkit does not validate it again
type inputValidator interface {
	validatesInput()
}

// Toolkit is a collection of tools with unique names, kept in the order
// they were registered. Once sealed, no more tools can be registered.
type Toolkit struct {
	sync.RWMutex
	tools  map[string]Tool
	order  []string
	sealed bool
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns all tools in the toolkit, in registration order
func (tk *Toolkit) Tools() []Tool {
	tk.RLock()
	defer tk.RUnlock()
	result := make([]Tool, 0, len(tk.order))
	for _, name := range tk.order {
		result = append(result, tk.tools[name])
	}
	return result
}

// Specs returns the tool specs advertised to the model, in registration
// order. A tool whose schema cannot be generated is skipped.
func (tk *Toolkit) Specs() []schema.ToolSpec {
	tools := tk.Tools()
	result := make([]schema.ToolSpec, 0, len(tools))
	for _, t := range tools {
		if spec, err := Spec(t); err == nil {
			result = append(result, spec)
		}
	}
	return result
}

// Register adds one or more tools to the toolkit. Returns an error if any
// tool has an invalid or duplicate name, in which case none of the tools
// are registered.
func (tk *Toolkit) Register(tools ...Tool) error {
	tk.Lock()
	defer tk.Unlock()

	if tk.sealed {
		return tinyagent.ErrConflict.With("toolkit is sealed")
	}

	// Check all the names first
	names := make(map[string]bool, len(tools))
	for _, t := range tools {
		if t == nil {
			return tinyagent.ErrBadParameter.With("tool cannot be nil")
		}
		name := t.Name()
		if !server.IsIdentifier(name) {
			return tinyagent.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists || names[name] {
			return tinyagent.ErrConflict.Withf("duplicate tool name: %q", name)
		}
		names[name] = true
	}

	// Add the tools
	for _, t := range tools {
		tk.tools[t.Name()] = t
		tk.order = append(tk.order, t.Name())
	}

	// Return success
	return nil
}

// Seal prevents any further tools from being registered
func (tk *Toolkit) Seal() {
	tk.Lock()
	defer tk.Unlock()
	tk.sealed = true
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	tk.RLock()
	defer tk.RUnlock()
	return tk.tools[name]
}

// Run executes a tool by name with the given input.
// Returns an error if the tool is not found, the input does not match the schema,
// or the tool execution fails.
func (tk *Toolkit) Run(ctx context.Context, name string, input json.RawMessage) (any, error) {
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, tinyagent.ErrNotFound.With(name)
	}
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}

	// Validate input against schema
	if _, ok := tool.(inputValidator); !ok {
		if schema, err := tool.Schema(); err != nil {
			return nil, tinyagent.ErrInternalServerError.Withf("schema generation failed: %v", err)
		} else if err := validate(schema, input); err != nil {
			return nil, err
		}
	}

	// Run the tool with raw JSON
	return tool.Run(ctx, input)
}

// Spec returns the spec for a tool
func Spec(t Tool) (schema.ToolSpec, error) {
	params, err := t.Schema()
	if err != nil {
		return schema.ToolSpec{}, err
	}
	if params == nil {
		params = &jsonschema.Schema{Type: "object"}
	}
	return schema.ToolSpec{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters:  params,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	return server.Stringify(tk.Specs())
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// validate the input against the schema, which may be nil
func validate(s *jsonschema.Schema, input json.RawMessage) error {
	if s == nil {
		return nil
	}

	// Unmarshal into a map for validation
	var mapInput map[string]any
	if err := json.Unmarshal(input, &mapInput); err != nil {
		return tinyagent.ErrBadParameter.Withf("failed to unmarshal JSON input: %v", err)
	}

	// Validate against schema
	resolved, err := s.Resolve(nil)
	if err != nil {
		return tinyagent.ErrInternalServerError.Withf("schema resolution failed: %v", err)
	}
	if err := resolved.Validate(mapInput); err != nil {
		return tinyagent.ErrBadParameter.Withf("input validation failed: %v", err)
	}

	// Return success
	return nil
}
