package tool

import (
	"fmt"

	// Packages
	multierror "github.com/hashicorp/go-multierror"
	tinyagent "github.com/mutablelogic/go-tinyagent"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Provider constructs a group of tools, usually a connector with the tools
// which wrap it
type Provider struct {
	Name string
	New  func() ([]Tool, error)
}

// ProviderError is returned for each provider which failed to load
type ProviderError struct {
	Provider string
	Err      error
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Load constructs each provider and registers its tools. A provider which
// fails does not prevent the others from loading; all failures are returned
// together as a multierror of ProviderError values.
func (tk *Toolkit) Load(providers ...Provider) error {
	var result error
	for _, provider := range providers {
		if err := tk.load(provider); err != nil {
			result = multierror.Append(result, &ProviderError{Provider: provider.Name, Err: err})
		}
	}
	return result
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (tk *Toolkit) load(provider Provider) error {
	if provider.New == nil {
		return tinyagent.ErrBadParameter.With("missing constructor")
	}
	tools, err := provider.New()
	if err != nil {
		return err
	}
	return tk.Register(tools...)
}
