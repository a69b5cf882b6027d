package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	opt "github.com/mutablelogic/go-tinyagent/pkg/opt"
	schema "github.com/mutablelogic/go-tinyagent/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const summaryPrompt = `The user asked: %q

The tool %q returned this result:
%s

Please provide a concise, human-friendly summary of this information.
Focus on the most important details that answer the user's question.
Use natural language and avoid technical jargon.`

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Summarize asks the model for a short natural-language summary of a tool
// result. On any failure, or if summaries are disabled, the stringified
// result is returned instead.
func (a *Agent) Summarize(ctx context.Context, query, name string, value any) string {
	raw := Stringify(value)
	if !a.summarize {
		return raw
	}

	req := &schema.Request{
		Model:  a.model,
		Prompt: fmt.Sprintf(summaryPrompt, query, name, raw),
	}
	response, err := a.generator.Generate(ctx, req, opt.WithMaxTokens(a.summaryTokens))
	if err != nil {
		a.logger.Warn().Err(err).Str("tool", name).Msg("summarization failed")
		return raw
	}

	summary := ""
	if response != nil {
		summary = strings.TrimSpace(response.Content)
	}
	if summary == "" {
		a.logger.Warn().Str("tool", name).Msg("summarization returned no text")
		return raw
	}
	return summary
}

// Stringify returns a string value unchanged, and any other value as
// JSON indented with two spaces
func Stringify(value any) string {
	if v, ok := value.(string); ok {
		return v
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(data)
}
