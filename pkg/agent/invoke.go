package agent

import (
	"context"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
	schema "github.com/mutablelogic/go-tinyagent/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Invoke sends the prompt to the model with every registered tool and
// automatic tool choice. The model is called exactly once and errors are
// returned to the caller.
func (a *Agent) Invoke(ctx context.Context, prompt string) (*schema.Turn, error) {
	turn := schema.NewTurn(a.model, prompt, a.toolkit.Specs()...)

	a.logger.Debug().
		Str("turn", turn.ID.String()).
		Str("model", a.model).
		Int("tools", len(turn.Request.Tools)).
		Msg("invoke")

	response, err := a.generator.Generate(ctx, turn.Request)
	if err != nil {
		return nil, err
	} else if response == nil {
		return nil, tinyagent.ErrInternalServerError.With("empty response from ", a.generator.Name())
	}
	turn.Response = response

	// Return success
	return turn, nil
}
