package openai

import (
	"context"
	"errors"
	"net/http"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
	opt "github.com/mutablelogic/go-tinyagent/pkg/opt"
	schema "github.com/mutablelogic/go-tinyagent/pkg/schema"
	openai "github.com/openai/openai-go"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Generate sends a single chat completion request and returns either the
// text content or the tool calls of the first choice
func (c *Client) Generate(ctx context.Context, req *schema.Request, opts ...opt.Opt) (*schema.Response, error) {
	if req == nil {
		return nil, tinyagent.ErrBadParameter.With("missing request")
	}
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Build the request
	params, err := chatRequest(req, o)
	if err != nil {
		return nil, err
	}

	// Request -> Response
	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, apiError(err)
	}

	// Return the response
	return chatResponse(response)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// apiError maps an API error status onto the error taxonomy
func apiError(err error) error {
	var apierr *openai.Error
	if !errors.As(err, &apierr) {
		return err
	}
	switch apierr.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return tinyagent.ErrBadParameter.Withf("openai: %v", apierr.Message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return tinyagent.ErrConfig.Withf("openai: %v", apierr.Message)
	case http.StatusNotFound:
		return tinyagent.ErrNotFound.Withf("openai: %v", apierr.Message)
	default:
		return tinyagent.ErrInternalServerError.Withf("openai: %d %v", apierr.StatusCode, apierr.Message)
	}
}
