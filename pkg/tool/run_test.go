package tool

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	tinyagent "github.com/mutablelogic/go-tinyagent"
	assert "github.com/stretchr/testify/assert"
)

type countingTool struct {
	schemas, runs int
}

func (c *countingTool) Name() string        { return "counting" }
func (c *countingTool) Description() string { return "Counts calls" }
func (c *countingTool) Schema() (*jsonschema.Schema, error) {
	c.schemas++
	return &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{"n": {Type: "integer"}},
		Required:   []string{"n"},
	}, nil
}
func (c *countingTool) Run(_ context.Context, _ json.RawMessage) (any, error) {
	c.runs++
	return c.runs, nil
}

func Test_run_001(t *testing.T) {
	// Function tools validate their own input, so the toolkit does not
	assert := assert.New(t)
	echo := MustNew("echo", "Echo a word", func(_ context.Context, req struct {
		Word string `json:"word"`
	}) (string, error) {
		return req.Word, nil
	})
	_, ok := echo.(inputValidator)
	assert.True(ok)

	tk, err := NewToolkit(echo)
	assert.NoError(err)
	result, err := tk.Run(context.Background(), "echo", json.RawMessage(`{"word":"hi"}`))
	assert.NoError(err)
	assert.Equal("hi", result)
	_, err = tk.Run(context.Background(), "echo", json.RawMessage(`{}`))
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
}

func Test_run_002(t *testing.T) {
	// Other tools are validated once by the toolkit before they run
	assert := assert.New(t)
	counting := new(countingTool)
	_, ok := any(counting).(inputValidator)
	assert.False(ok)

	tk, err := NewToolkit(counting)
	assert.NoError(err)
	counting.schemas = 0

	_, err = tk.Run(context.Background(), "counting", json.RawMessage(`{"n":"one"}`))
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
	assert.Equal(0, counting.runs)
	assert.Equal(1, counting.schemas)

	result, err := tk.Run(context.Background(), "counting", json.RawMessage(`{"n":1}`))
	assert.NoError(err)
	assert.Equal(1, result)
	assert.Equal(2, counting.schemas)
}
