package agent

import (
	"context"
	"fmt"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	tinyagent "github.com/mutablelogic/go-tinyagent"
	schema "github.com/mutablelogic/go-tinyagent/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	resultSeparator = " → "
	errorPrefix     = "Error: "
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Dispatch runs the tool calls of a turn in order and returns one line per
// call. If the model made no tool calls, its text is returned unchanged.
// A failing call is reported on its own line and does not affect the others.
func (a *Agent) Dispatch(ctx context.Context, turn *schema.Turn) string {
	if turn == nil || turn.Response == nil {
		return ""
	}
	if !turn.Response.HasToolCalls() {
		return turn.Response.Content
	}

	lines := make([]string, 0, len(turn.Response.ToolCalls))
	for _, call := range turn.Response.ToolCalls {
		result := a.dispatch(ctx, turn, call)
		lines = append(lines, a.line(ctx, turn.Request.Prompt, result))
	}
	return strings.Join(lines, "\n")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// dispatch a single tool call, catching every error
func (a *Agent) dispatch(ctx context.Context, turn *schema.Turn, call schema.ToolCall) (result *schema.ToolResult) {
	ctx, endSpan := otel.StartSpan(a.tracer, ctx, "tool."+call.Name,
		attribute.String("turn", turn.ID.String()),
		attribute.String("call", call.ID),
	)
	var err error
	defer func() { endSpan(err) }()

	log := a.logger.With().Str("turn", turn.ID.String()).Str("tool", call.Name).Logger()
	log.Debug().Str("arguments", call.Arguments).Msg("dispatch")

	defer func() {
		if r := recover(); r != nil {
			err = tinyagent.ErrInternalServerError.Withf("panic: %v", r)
			result = schema.NewToolError(call.Name, err)
		}
	}()

	// Decode the arguments
	input, err := call.Decode()
	if err != nil {
		log.Debug().Err(err).Msg("decode failed")
		return schema.NewToolError(call.Name, err)
	}

	// Run the tool, which validates the input
	value, err := a.toolkit.Run(ctx, call.Name, input)
	if err != nil {
		log.Debug().Err(err).Msg("run failed")
		return schema.NewToolError(call.Name, err)
	}

	// Return success
	return schema.NewToolResult(call.Name, value)
}

// line formats a result, summarizing successful values
func (a *Agent) line(ctx context.Context, prompt string, result *schema.ToolResult) string {
	if result.IsError() {
		return fmt.Sprint(result.Name, resultSeparator, errorPrefix, result.Error)
	}
	return fmt.Sprint(result.Name, resultSeparator, a.Summarize(ctx, prompt, result.Name, result.Value))
}
