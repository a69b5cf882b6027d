package rowstore

import (
	"context"

	// Packages
	tool "github.com/mutablelogic/go-tinyagent/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ReadRequest struct {
	Collection string `json:"collection" jsonschema:"The name of the collection, starting with a letter, then letters, digits, underscores or hyphens"`
}

type WriteRequest struct {
	Collection string `json:"collection" jsonschema:"The name of the collection, starting with a letter, then letters, digits, underscores or hyphens"`
	Row        Row    `json:"row" jsonschema:"The row to append, as column name to value"`
}

type WriteResponse struct {
	Collection string `json:"collection"`
	Written    bool   `json:"written"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the row store tools for a directory
func NewTools(dir string) ([]tool.Tool, error) {
	store, err := New(dir)
	if err != nil {
		return nil, err
	}
	return store.Tools()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns the tools which wrap the store
func (s *Store) Tools() ([]tool.Tool, error) {
	list, err := tool.New("list_collections", "List the names of the local data collections", s.listCollections)
	if err != nil {
		return nil, err
	}
	read, err := tool.New("read_rows", "Read all rows from a local data collection", s.readRows)
	if err != nil {
		return nil, err
	}
	write, err := tool.New("write_row", "Append a row to a local data collection, creating it if needed", s.writeRow)
	if err != nil {
		return nil, err
	}
	return []tool.Tool{list, read, write}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Store) listCollections(_ context.Context, _ struct{}) ([]string, error) {
	return s.Collections()
}

func (s *Store) readRows(_ context.Context, req ReadRequest) ([]Row, error) {
	return s.Read(req.Collection)
}

func (s *Store) writeRow(_ context.Context, req WriteRequest) (WriteResponse, error) {
	if err := s.Write(req.Collection, req.Row); err != nil {
		return WriteResponse{}, err
	}
	return WriteResponse{Collection: req.Collection, Written: true}, nil
}
