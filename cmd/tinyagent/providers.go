package main

import (
	"errors"
	"os"
	"path/filepath"

	// Packages
	multierror "github.com/hashicorp/go-multierror"
	client "github.com/mutablelogic/go-client"
	calendar "github.com/mutablelogic/go-tinyagent/pkg/calendar"
	rowstore "github.com/mutablelogic/go-tinyagent/pkg/rowstore"
	tool "github.com/mutablelogic/go-tinyagent/pkg/tool"
	ynab "github.com/mutablelogic/go-tinyagent/pkg/ynab"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const calendarFile = "calendar.yaml"

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// providers returns the connectors which supply tools, in the order their
// tools are advertised to the model
func (g *Globals) providers() []tool.Provider {
	return []tool.Provider{
		{Name: "calendar", New: func() ([]tool.Tool, error) {
			return calendar.NewTools(g.calendarPath())
		}},
		{Name: "ynab", New: func() ([]tool.Tool, error) {
			return ynab.NewTools(g.YNABToken, g.clientOpts()...)
		}},
		{Name: "rowstore", New: func() ([]tool.Tool, error) {
			return rowstore.NewTools(g.Data)
		}},
	}
}

// clientOpts returns the options for connector HTTP clients
func (g *Globals) clientOpts() []client.ClientOpt {
	result := []client.ClientOpt{}
	if g.Timeout > 0 {
		result = append(result, client.OptTimeout(g.Timeout))
	}
	if g.Debug || g.Verbose {
		result = append(result, client.OptTrace(os.Stderr, g.Verbose))
	}
	return result
}

func (g *Globals) calendarPath() string {
	if g.Calendar != "" {
		return g.Calendar
	}
	return filepath.Join(g.Data, calendarFile)
}

// loadErrors returns the provider errors within a load error
func loadErrors(err error) []*tool.ProviderError {
	var result []*tool.ProviderError
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return nil
	}
	for _, err := range merr.Errors {
		var perr *tool.ProviderError
		if errors.As(err, &perr) {
			result = append(result, perr)
		}
	}
	return result
}
