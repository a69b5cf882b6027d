package schema

import (
	"encoding/json"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Why the model stopped generating
type ResultType uint

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	ResultStop      ResultType = iota // Normal completion
	ResultMaxTokens                   // Truncated due to max tokens
	ResultBlocked                     // Blocked by a content filter
	ResultToolCall                    // Model requested one or more tool calls
	ResultError                       // Generation error
	ResultOther                       // Other/unknown finish reason
)

var resultTypes = []string{"stop", "max_tokens", "blocked", "tool_call", "error", "other"}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ParseResultType returns the result type for a name
func ParseResultType(s string) (ResultType, error) {
	for i, name := range resultTypes {
		if name == s {
			return ResultType(i), nil
		}
	}
	return ResultOther, fmt.Errorf("unknown result type: %q", s)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ResultType) String() string {
	if int(r) < len(resultTypes) {
		return resultTypes[r]
	}
	return "unknown"
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (r ResultType) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *ResultType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseResultType(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
