package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	tinyagent "github.com/mutablelogic/go-tinyagent"
	openai "github.com/mutablelogic/go-tinyagent/pkg/openai"
	opt "github.com/mutablelogic/go-tinyagent/pkg/opt"
	schema "github.com/mutablelogic/go-tinyagent/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

// newServer returns a test server which records the request body and
// replies with the given status and body
func newServer(t *testing.T, status int, reply string, body *map[string]any, requests *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		data, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if body != nil {
			assert.NoError(t, json.Unmarshal(data, body))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)
	return server
}

func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	_, err := openai.New("")
	assert.ErrorIs(err, tinyagent.ErrConfig)
	assert.Contains(err.Error(), "OPENAI_API_KEY")

	client, err := openai.New("test-key", nil, openai.WithEndpoint(""))
	assert.NoError(err)
	assert.Equal("openai", client.Name())
}

func Test_generate_001(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var body map[string]any
	var requests int
	server := newServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4o-mini",
		"choices": [{
			"index": 0,
			"finish_reason": "tool_calls",
			"message": {
				"role": "assistant",
				"content": null,
				"tool_calls": [
					{"id": "call_1", "type": "function", "function": {"name": "get_budgets", "arguments": "{}"}},
					{"id": "call_2", "type": "function", "function": {"name": "get_accounts", "arguments": "{\"budget_id\":\"b1\"}"}}
				]
			}
		}],
		"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
	}`, &body, &requests)

	client, err := openai.New("test-key", openai.WithEndpoint(server.URL))
	require.NoError(err)

	turn := schema.NewTurn("gpt-4o-mini", "What budgets do I have?", schema.ToolSpec{
		Name:        "get_budgets",
		Description: "List budgets",
		Parameters:  &jsonschema.Schema{Type: "object"},
	})
	response, err := client.Generate(context.Background(), turn.Request, opt.WithSystemPrompt("Be brief"))
	require.NoError(err)
	assert.Equal(1, requests)

	// Request
	assert.Equal("gpt-4o-mini", body["model"])
	assert.Equal("auto", body["tool_choice"])
	messages, ok := body["messages"].([]any)
	require.True(ok)
	require.Len(messages, 2)
	assert.Equal("system", messages[0].(map[string]any)["role"])
	assert.Equal("user", messages[1].(map[string]any)["role"])
	assert.Equal("What budgets do I have?", messages[1].(map[string]any)["content"])
	tools, ok := body["tools"].([]any)
	require.True(ok)
	require.Len(tools, 1)
	function := tools[0].(map[string]any)["function"].(map[string]any)
	assert.Equal("get_budgets", function["name"])
	assert.Equal("List budgets", function["description"])
	assert.Equal("object", function["parameters"].(map[string]any)["type"])

	// Response
	assert.Equal(schema.ResultToolCall, response.Result)
	require.Len(response.ToolCalls, 2)
	assert.Equal("call_1", response.ToolCalls[0].ID)
	assert.Equal("get_budgets", response.ToolCalls[0].Name)
	assert.Equal(`{"budget_id":"b1"}`, response.ToolCalls[1].Arguments)
	assert.Equal(uint(10), response.Usage.InputTokens)
	assert.Equal(uint(5), response.Usage.OutputTokens)
}

func Test_generate_002(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var body map[string]any
	var requests int
	server := newServer(t, http.StatusOK, `{
		"id": "chatcmpl-2",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4o-mini",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "You have two budgets."}}]
	}`, &body, &requests)

	client, err := openai.New("test-key", openai.WithEndpoint(server.URL))
	require.NoError(err)

	response, err := client.Generate(context.Background(), &schema.Request{Model: "gpt-4o-mini", Prompt: "Summarize"}, opt.WithMaxTokens(300))
	require.NoError(err)
	assert.Equal("You have two budgets.", response.Content)
	assert.Equal(schema.ResultStop, response.Result)
	assert.Empty(response.ToolCalls)

	// No tools means no tool choice
	assert.NotContains(body, "tools")
	assert.NotContains(body, "tool_choice")
	assert.EqualValues(300, body["max_tokens"])
}

func Test_generate_003(t *testing.T) {
	tests := []struct {
		status int
		err    error
	}{
		{http.StatusBadRequest, tinyagent.ErrBadParameter},
		{http.StatusUnauthorized, tinyagent.ErrConfig},
		{http.StatusNotFound, tinyagent.ErrNotFound},
		{http.StatusInternalServerError, tinyagent.ErrInternalServerError},
	}
	for _, test := range tests {
		t.Run(http.StatusText(test.status), func(t *testing.T) {
			assert := assert.New(t)
			var requests int
			server := newServer(t, test.status, `{"error": {"message": "nope", "type": "invalid_request_error"}}`, nil, &requests)
			client, err := openai.New("test-key", openai.WithEndpoint(server.URL))
			assert.NoError(err)

			_, err = client.Generate(context.Background(), &schema.Request{Model: "gpt-4o-mini", Prompt: "hi"})
			assert.ErrorIs(err, test.err)

			// No retries
			assert.Equal(1, requests)
		})
	}
}

func Test_generate_004(t *testing.T) {
	assert := assert.New(t)
	var requests int
	server := newServer(t, http.StatusOK, `{"id": "x", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`, nil, &requests)
	client, err := openai.New("test-key", openai.WithEndpoint(server.URL))
	assert.NoError(err)

	_, err = client.Generate(context.Background(), &schema.Request{Model: "m", Prompt: "hi"})
	assert.ErrorIs(err, tinyagent.ErrInternalServerError)

	_, err = client.Generate(context.Background(), nil)
	assert.ErrorIs(err, tinyagent.ErrBadParameter)

	_, err = client.Generate(context.Background(), &schema.Request{Model: "m", Prompt: "hi"}, opt.WithTemperature(5))
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
	assert.Equal(1, requests)
}
