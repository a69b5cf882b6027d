/*
rowstore implements a local store of named collections, each of which is a
CSV file with a header line. Rows are appended and never rewritten.
*/
package rowstore

import (
	"path/filepath"
	"sort"
	"strings"

	// Packages
	server "github.com/mutablelogic/go-server/pkg/types"
	tinyagent "github.com/mutablelogic/go-tinyagent"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Store is a directory of collections
type Store struct {
	dir string
}

// Row maps column names to values
type Row map[string]string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const DefaultDir = "mem"

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a store in the given directory, which is created if needed
func New(dir string) (*Store, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Dir returns the store directory
func (s *Store) Dir() string {
	return s.dir
}

// Collections returns the names of all collections, sorted
func (s *Store) Collections() ([]string, error) {
	names, err := readCSVDir(s.dir)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(names))
	for _, name := range names {
		if server.IsIdentifier(name) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result, nil
}

// Read returns all rows in a collection in file order. A collection which
// does not exist has no rows.
func (s *Store) Read(collection string) ([]Row, error) {
	path, err := s.path(collection)
	if err != nil {
		return nil, err
	}
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	result := make([]Row, 0, len(records))
	if len(records) == 0 {
		return result, nil
	}
	header := records[0]
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, column := range header {
			row[column] = record[i]
		}
		result = append(result, row)
	}
	return result, nil
}

// Write appends a row to a collection. The first write creates the
// collection with a header of the sorted column names. Later writes must
// only use columns in the header, and missing columns are empty.
func (s *Store) Write(collection string, row Row) error {
	path, err := s.path(collection)
	if err != nil {
		return err
	}
	if len(row) == 0 {
		return tinyagent.ErrBadParameter.With("row has no columns")
	}
	for column := range row {
		if strings.TrimSpace(column) == "" {
			return tinyagent.ErrBadParameter.With("empty column name")
		}
	}

	// Read the header
	header, err := readHeader(path)
	if err != nil {
		return err
	}

	// New collection
	if header == nil {
		header = make([]string, 0, len(row))
		for column := range row {
			header = append(header, column)
		}
		sort.Strings(header)
		return appendCSV(path, header, record(header, row))
	}

	// Existing collection
	columns := make(map[string]bool, len(header))
	for _, column := range header {
		columns[column] = true
	}
	var unknown []string
	for column := range row {
		if !columns[column] {
			unknown = append(unknown, column)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return tinyagent.ErrBadParameter.Withf("unknown columns for %q: %s", collection, strings.Join(unknown, ", "))
	}
	return appendCSV(path, record(header, row))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Store) path(collection string) (string, error) {
	if !server.IsIdentifier(collection) {
		return "", tinyagent.ErrBadParameter.Withf("invalid collection name: %q", collection)
	}
	return filepath.Join(s.dir, collection+csvExt), nil
}

func record(header []string, row Row) []string {
	result := make([]string, len(header))
	for i, column := range header {
		result[i] = row[column]
	}
	return result
}
