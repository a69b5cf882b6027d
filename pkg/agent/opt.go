package agent

import (
	"strings"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
	zerolog "github.com/rs/zerolog"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is an option for creating an agent
type Opt func(*Agent) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithModel sets the model name
func WithModel(model string) Opt {
	return func(a *Agent) error {
		if model = strings.TrimSpace(model); model == "" {
			return tinyagent.ErrBadParameter.With("missing model")
		}
		a.model = model
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Opt {
	return func(a *Agent) error {
		a.logger = logger
		return nil
	}
}

// WithTracer sets the tracer for dispatch spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(a *Agent) error {
		if tracer != nil {
			a.tracer = tracer
		}
		return nil
	}
}

// WithoutSummary returns raw tool results without a summarization request
func WithoutSummary() Opt {
	return func(a *Agent) error {
		a.summarize = false
		return nil
	}
}

// WithSummaryTokens sets the maximum number of tokens for a summary
func WithSummaryTokens(tokens uint) Opt {
	return func(a *Agent) error {
		if tokens == 0 {
			return tinyagent.ErrBadParameter.With("summary tokens must be greater than zero")
		}
		a.summaryTokens = tokens
		return nil
	}
}
