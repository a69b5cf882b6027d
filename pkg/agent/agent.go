package agent

import (
	"context"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
	opt "github.com/mutablelogic/go-tinyagent/pkg/opt"
	schema "github.com/mutablelogic/go-tinyagent/pkg/schema"
	tool "github.com/mutablelogic/go-tinyagent/pkg/tool"
	zerolog "github.com/rs/zerolog"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Generator sends a single request to a language model and returns the
// model response, which is either text or a list of tool calls
type Generator interface {
	// Return the name of the generator
	Name() string

	// Generate a response for the request. Options can set the system prompt,
	// the maximum number of tokens and the temperature.
	Generate(ctx context.Context, req *schema.Request, opts ...opt.Opt) (*schema.Response, error)
}

// Agent holds the generator and the sealed toolkit, and is constructed
// once at startup
type Agent struct {
	generator     Generator
	toolkit       *tool.Toolkit
	model         string
	summarize     bool
	summaryTokens uint
	logger        zerolog.Logger
	tracer        trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultModel         = "gpt-4o-mini"
	DefaultSummaryTokens = 300
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates an agent with a generator and toolkit. The toolkit is sealed,
// so no further tools can be registered.
func New(generator Generator, toolkit *tool.Toolkit, opts ...Opt) (*Agent, error) {
	if generator == nil {
		return nil, tinyagent.ErrBadParameter.With("missing generator")
	}
	if toolkit == nil {
		return nil, tinyagent.ErrBadParameter.With("missing toolkit")
	}

	self := &Agent{
		generator:     generator,
		toolkit:       toolkit,
		model:         DefaultModel,
		summarize:     true,
		summaryTokens: DefaultSummaryTokens,
		logger:        zerolog.Nop(),
		tracer:        noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		if err := opt(self); err != nil {
			return nil, err
		}
	}

	// Seal the toolkit
	toolkit.Seal()

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Toolkit returns the tools available to the agent
func (a *Agent) Toolkit() *tool.Toolkit {
	return a.toolkit
}

// Model returns the model name used for requests
func (a *Agent) Model() string {
	return a.model
}

// Run sends the prompt to the model, runs any tool calls and returns the
// final text
func (a *Agent) Run(ctx context.Context, prompt string) (string, error) {
	turn, err := a.Invoke(ctx, prompt)
	if err != nil {
		return "", err
	}
	return a.Dispatch(ctx, turn), nil
}
