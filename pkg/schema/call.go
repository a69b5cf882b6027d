package schema

import (
	"bytes"
	"encoding/json"
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	tinyagent "github.com/mutablelogic/go-tinyagent"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolCall represents a tool invocation requested by the model. Arguments
// is the raw JSON text produced by the model and has not been validated.
type ToolCall struct {
	ID        string `json:"id,omitempty"` // Provider-assigned call ID
	Name      string `json:"name"`         // Tool function name
	Arguments string `json:"arguments"`    // JSON-encoded arguments
}

// ToolResult is the outcome of running a single tool call: either a value
// or an error message
type ToolResult struct {
	Name  string `json:"tool_name"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error_message,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolResult returns a successful result
func NewToolResult(name string, value any) *ToolResult {
	return &ToolResult{Name: name, Value: value}
}

// NewToolError returns a failed result
func NewToolError(name string, err error) *ToolResult {
	result := &ToolResult{Name: name, Error: "unknown error"}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Decode returns the arguments as a JSON object. Empty arguments decode
// to an empty object.
func (c ToolCall) Decode() (json.RawMessage, error) {
	args := strings.TrimSpace(c.Arguments)
	if args == "" {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid([]byte(args)) {
		return nil, tinyagent.ErrBadParameter.Withf("malformed arguments for %q", c.Name)
	}
	if !bytes.HasPrefix([]byte(args), []byte("{")) {
		return nil, tinyagent.ErrBadParameter.Withf("arguments for %q are not a JSON object", c.Name)
	}
	return json.RawMessage(args), nil
}

// IsError returns true if the result is an error
func (r *ToolResult) IsError() bool {
	return r.Error != ""
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c ToolCall) String() string {
	return types.Stringify(c)
}

func (r ToolResult) String() string {
	return types.Stringify(r)
}
