package tool_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
	tool "github.com/mutablelogic/go-tinyagent/pkg/tool"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

type addRequest struct {
	A    float64 `json:"a" jsonschema:"The first number"`
	B    float64 `json:"b" jsonschema:"The second number"`
	Note string  `json:"note,omitempty" jsonschema:"An optional note"`
}

func (r addRequest) Validate() error {
	if r.Note == "forbidden" {
		return errors.New("note is forbidden")
	}
	return nil
}

type modeRequest struct {
	Mode  string `json:"mode"`
	Count int    `json:"count,omitempty"`
}

func add(_ context.Context, req addRequest) (float64, error) {
	return req.A + req.B, nil
}

func Test_func_001(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	add, err := tool.New("add", "Add two numbers", add)
	require.NoError(err)
	assert.Equal("add", add.Name())
	assert.Equal("Add two numbers", add.Description())

	s, err := add.Schema()
	require.NoError(err)
	assert.Equal("object", s.Type)
	assert.ElementsMatch([]string{"a", "b"}, s.Required)
	assert.Contains(s.Properties, "note")
	assert.Equal("The first number", s.Properties["a"].Description)
}

func Test_func_002(t *testing.T) {
	tk, err := tool.NewToolkit(tool.MustNew("add", "Add two numbers", add))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	tests := []struct {
		name  string
		input string
		want  float64
		err   error
	}{
		{"ok", `{"a":1,"b":2}`, 3, nil},
		{"optional", `{"a":1.5,"b":2,"note":"hi"}`, 3.5, nil},
		{"missing_required", `{"a":1}`, 0, tinyagent.ErrBadParameter},
		{"wrong_type", `{"a":"one","b":2}`, 0, tinyagent.ErrBadParameter},
		{"unknown_field", `{"a":1,"b":2,"c":3}`, 0, tinyagent.ErrBadParameter},
		{"validator", `{"a":1,"b":2,"note":"forbidden"}`, 0, tinyagent.ErrBadParameter},
		{"not_object", `[1,2]`, 0, tinyagent.ErrBadParameter},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			result, err := tk.Run(context.Background(), "add", json.RawMessage(test.input))
			if test.err != nil {
				assert.ErrorIs(err, test.err)
				assert.Nil(result)
			} else {
				assert.NoError(err)
				assert.Equal(test.want, result)
			}
		})
	}
}

func Test_func_003(t *testing.T) {
	assert := assert.New(t)
	called := false
	fn := func(_ context.Context, req modeRequest) (string, error) {
		called = true
		return req.Mode, nil
	}

	mode, err := tool.New("mode", "Pick a mode", fn, tool.WithEnum("mode", "fast", "slow"), tool.WithRange("count", 1, 10))
	assert.NoError(err)

	result, err := mode.Run(context.Background(), json.RawMessage(`{"mode":"fast","count":2}`))
	assert.NoError(err)
	assert.Equal("fast", result)
	assert.True(called)

	called = false
	_, err = mode.Run(context.Background(), json.RawMessage(`{"mode":"medium"}`))
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
	_, err = mode.Run(context.Background(), json.RawMessage(`{"mode":"fast","count":11}`))
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
	assert.False(called)

	// Unknown property in option
	_, err = tool.New("mode", "Pick a mode", fn, tool.WithEnum("other", "x"))
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
}

func Test_func_004(t *testing.T) {
	assert := assert.New(t)
	boom, err := tool.New("boom", "Panics", func(_ context.Context, _ struct{}) (any, error) {
		panic("kaboom")
	})
	assert.NoError(err)
	_, err = boom.Run(context.Background(), nil)
	assert.ErrorIs(err, tinyagent.ErrInternalServerError)
	assert.Contains(err.Error(), "kaboom")
}

func Test_func_005(t *testing.T) {
	assert := assert.New(t)

	// Non-object parameters are rejected
	_, err := tool.New("bad", "Bad", func(_ context.Context, _ string) (string, error) { return "", nil })
	assert.ErrorIs(err, tinyagent.ErrBadParameter)

	// Nil function is rejected
	_, err = tool.New[struct{}, string]("bad", "Bad", nil)
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
}
