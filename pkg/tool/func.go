package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	tinyagent "github.com/mutablelogic/go-tinyagent"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Validator is implemented by parameter records which check their own
// values after decoding
type Validator interface {
	Validate() error
}

// Opt modifies the schema of a tool created with New
type Opt func(*jsonschema.Schema) error

type funcTool[T, R any] struct {
	name        string
	description string
	fn          func(context.Context, T) (R, error)
	schema      *jsonschema.Schema
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a tool which decodes its arguments into T and calls fn.
// The parameter schema is reflected from T, using the jsonschema struct tag
// for descriptions. Fields without omitempty are required.
func New[T, R any](name, description string, fn func(ctx context.Context, args T) (R, error), opts ...Opt) (Tool, error) {
	if fn == nil {
		return nil, tinyagent.ErrBadParameter.Withf("missing function for %q", name)
	}

	// Reflect the schema
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, tinyagent.ErrBadParameter.Withf("%s: %v", name, err)
	} else if schema.Type != "object" {
		return nil, tinyagent.ErrBadParameter.Withf("%s: parameters must be an object, got %q", name, schema.Type)
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(schema); err != nil {
			return nil, tinyagent.ErrBadParameter.Withf("%s: %v", name, err)
		}
	}

	// Make sure the schema resolves
	if _, err := schema.Resolve(nil); err != nil {
		return nil, tinyagent.ErrBadParameter.Withf("%s: %v", name, err)
	}

	return &funcTool[T, R]{
		name:        name,
		description: description,
		fn:          fn,
		schema:      schema,
	}, nil
}

// MustNew is like New but panics on error, for tools declared at init time
func MustNew[T, R any](name, description string, fn func(ctx context.Context, args T) (R, error), opts ...Opt) Tool {
	tool, err := New(name, description, fn, opts...)
	if err != nil {
		panic(err)
	}
	return tool
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithEnum restricts a property to a set of values
func WithEnum(property string, values ...any) Opt {
	return func(s *jsonschema.Schema) error {
		prop, err := propertyOf(s, property)
		if err != nil {
			return err
		}
		prop.Enum = values
		return nil
	}
}

// WithRange sets the inclusive minimum and maximum of a numeric property
func WithRange(property string, min, max float64) Opt {
	return func(s *jsonschema.Schema) error {
		prop, err := propertyOf(s, property)
		if err != nil {
			return err
		}
		prop.Minimum = &min
		prop.Maximum = &max
		return nil
	}
}

// WithPattern restricts a string property to a regular expression
func WithPattern(property, pattern string) Opt {
	return func(s *jsonschema.Schema) error {
		prop, err := propertyOf(s, property)
		if err != nil {
			return err
		}
		prop.Pattern = pattern
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (t *funcTool[T, R]) Name() string {
	return t.name
}

func (t *funcTool[T, R]) Description() string {
	return t.description
}

func (t *funcTool[T, R]) Schema() (*jsonschema.Schema, error) {
	return t.schema, nil
}

func (t *funcTool[T, R]) validatesInput() {}

// Run validates and decodes the input, then calls the function. A panic in
// the function is returned as an error.
func (t *funcTool[T, R]) Run(ctx context.Context, input json.RawMessage) (result any, err error) {
	args, err := Decode[T](t.schema, input)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, tinyagent.ErrInternalServerError.Withf("%s: panic: %v", t.name, r)
		}
	}()
	return t.fn(ctx, args)
}

// Decode validates the input against the schema and decodes it into T,
// rejecting unknown fields. If T implements Validator, it is called last.
func Decode[T any](s *jsonschema.Schema, input json.RawMessage) (T, error) {
	var args T
	if len(bytes.TrimSpace(input)) == 0 {
		input = json.RawMessage("{}")
	}
	if err := validate(s, input); err != nil {
		return args, err
	}

	dec := json.NewDecoder(bytes.NewReader(input))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&args); err != nil {
		return args, tinyagent.ErrBadParameter.Withf("failed to decode input: %v", err)
	}
	if v, ok := any(&args).(Validator); ok {
		if err := v.Validate(); err != nil {
			return args, tinyagent.ErrBadParameter.With(err)
		}
	}
	return args, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func propertyOf(s *jsonschema.Schema, name string) (*jsonschema.Schema, error) {
	if prop, exists := s.Properties[name]; exists && prop != nil {
		return prop, nil
	}
	return nil, fmt.Errorf("unknown property %q", name)
}
