package schema

import (
	"sort"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolSpec is the description of a tool which is advertised to the model.
// Parameters is a JSON schema of type object.
type ToolSpec struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Required returns the names of the required parameters
func (t ToolSpec) Required() []string {
	if t.Parameters == nil {
		return nil
	}
	return t.Parameters.Required
}

// ParameterNames returns the names of all parameters, sorted
func (t ToolSpec) ParameterNames() []string {
	if t.Parameters == nil {
		return nil
	}
	result := make([]string, 0, len(t.Parameters.Properties))
	for name := range t.Parameters.Properties {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t ToolSpec) String() string {
	return types.Stringify(t)
}
