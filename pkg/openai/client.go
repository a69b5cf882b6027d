/*
openai implements a generator for the OpenAI chat completions API,
or any compatible API when a base URL is set.
https://platform.openai.com/docs/api-reference/chat
*/
package openai

import (
	"strings"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
	agent "github.com/mutablelogic/go-tinyagent/pkg/agent"
	openai "github.com/openai/openai-go"
	option "github.com/openai/openai-go/option"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	client openai.Client
}

var _ agent.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	providerName = "openai"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new OpenAI client with the given API key. Requests are not
// retried, and nil options are ignored.
func New(apiKey string, opts ...option.RequestOption) (*Client, error) {
	if apiKey = strings.TrimSpace(apiKey); apiKey == "" {
		return nil, tinyagent.ErrConfig.With("OPENAI_API_KEY not set")
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	for _, opt := range opts {
		if opt != nil {
			options = append(options, opt)
		}
	}
	return &Client{
		client: openai.NewClient(options...),
	}, nil
}

// WithEndpoint returns an option to set the base URL for a compatible API.
// An empty endpoint returns nil.
func WithEndpoint(endpoint string) option.RequestOption {
	if endpoint = strings.TrimSpace(endpoint); endpoint == "" {
		return nil
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	return option.WithBaseURL(endpoint)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return providerName
}
