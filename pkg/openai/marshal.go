package openai

import (
	"encoding/json"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
	opt "github.com/mutablelogic/go-tinyagent/pkg/opt"
	schema "github.com/mutablelogic/go-tinyagent/pkg/schema"
	openai "github.com/openai/openai-go"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// optionReader is the set of applied options
type optionReader interface {
	GetString(string) string
	GetUint(string) uint
	GetFloat64(string) float64
	Has(string) bool
}

// chatRequest converts a request into chat completion parameters
func chatRequest(req *schema.Request, o optionReader) (openai.ChatCompletionNewParams, error) {
	params := openai.ChatCompletionNewParams{
		Model: req.Model,
	}

	// Messages
	if system := o.GetString(opt.SystemPromptKey); system != "" {
		params.Messages = append(params.Messages, openai.SystemMessage(system))
	}
	params.Messages = append(params.Messages, openai.UserMessage(req.Prompt))

	// Tools
	for _, spec := range req.Tools {
		tool, err := toolParam(spec)
		if err != nil {
			return params, err
		}
		params.Tools = append(params.Tools, tool)
	}
	if len(params.Tools) > 0 && req.ToolChoice != "" {
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String(req.ToolChoice),
		}
	}

	// Options
	if o.Has(opt.MaxTokensKey) {
		params.MaxTokens = openai.Int(int64(o.GetUint(opt.MaxTokensKey)))
	}
	if o.Has(opt.TemperatureKey) {
		params.Temperature = openai.Float(o.GetFloat64(opt.TemperatureKey))
	}

	// Return success
	return params, nil
}

// toolParam converts a tool spec, passing the schema through as a map
func toolParam(spec schema.ToolSpec) (openai.ChatCompletionToolParam, error) {
	var parameters map[string]any
	if spec.Parameters != nil {
		data, err := json.Marshal(spec.Parameters)
		if err != nil {
			return openai.ChatCompletionToolParam{}, tinyagent.ErrBadParameter.Withf("%s: %v", spec.Name, err)
		}
		if err := json.Unmarshal(data, &parameters); err != nil {
			return openai.ChatCompletionToolParam{}, tinyagent.ErrBadParameter.Withf("%s: %v", spec.Name, err)
		}
	}
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        spec.Name,
			Description: openai.String(spec.Description),
			Parameters:  openai.FunctionParameters(parameters),
		},
	}, nil
}

// chatResponse converts the first choice of a completion
func chatResponse(response *openai.ChatCompletion) (*schema.Response, error) {
	if response == nil || len(response.Choices) == 0 {
		return nil, tinyagent.ErrInternalServerError.With("openai: no choices in response")
	}
	choice := response.Choices[0]
	result := &schema.Response{
		Content: choice.Message.Content,
		Result:  resultType(string(choice.FinishReason)),
		Usage: &schema.Usage{
			InputTokens:  uint(response.Usage.PromptTokens),
			OutputTokens: uint(response.Usage.CompletionTokens),
		},
	}
	for _, call := range choice.Message.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, schema.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	if choice.Message.Refusal != "" && result.Content == "" {
		result.Content = choice.Message.Refusal
		result.Result = schema.ResultBlocked
	}
	return result, nil
}

func resultType(reason string) schema.ResultType {
	switch reason {
	case "stop":
		return schema.ResultStop
	case "length":
		return schema.ResultMaxTokens
	case "tool_calls", "function_call":
		return schema.ResultToolCall
	case "content_filter":
		return schema.ResultBlocked
	default:
		return schema.ResultOther
	}
}
