package schema

import (
	"time"

	// Packages
	uuid "github.com/google/uuid"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Request is a single prompt sent to a model, with the tools it may call
type Request struct {
	Model      string     `json:"model"`
	Prompt     string     `json:"prompt"`
	Tools      []ToolSpec `json:"tools,omitempty"`
	ToolChoice string     `json:"tool_choice,omitempty"`
}

// Response is the model reply, which is either text content or a list
// of tool calls in the order the model emitted them
type Response struct {
	Content   string     `json:"content,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Result    ResultType `json:"result"`
	Usage     *Usage     `json:"usage,omitempty"`
}

// Usage reports token counts for a response
type Usage struct {
	InputTokens  uint `json:"input_tokens"`
	OutputTokens uint `json:"output_tokens"`
}

// Turn is one user query and the model reply to it
type Turn struct {
	ID       uuid.UUID `json:"id"`
	Created  time.Time `json:"created"`
	Request  *Request  `json:"request"`
	Response *Response `json:"response,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ToolChoiceAuto = "auto"
	ToolChoiceNone = "none"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTurn returns a new turn for the prompt, advertising the given tools
// with automatic tool choice
func NewTurn(model, prompt string, tools ...ToolSpec) *Turn {
	req := &Request{
		Model:  model,
		Prompt: prompt,
		Tools:  tools,
	}
	if len(tools) > 0 {
		req.ToolChoice = ToolChoiceAuto
	}
	return &Turn{
		ID:      uuid.New(),
		Created: time.Now(),
		Request: req,
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// HasToolCalls returns true if the model requested at least one tool call
func (r *Response) HasToolCalls() bool {
	return r != nil && len(r.ToolCalls) > 0
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Request) String() string {
	return types.Stringify(r)
}

func (r Response) String() string {
	return types.Stringify(r)
}

func (t Turn) String() string {
	return types.Stringify(t)
}
