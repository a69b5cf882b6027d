package rowstore

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	csvExt               = ".csv"
	emptyRecord          = "\"\"\n"
	DirPerm  os.FileMode = 0o700 // Directory permission for the store
	FilePerm os.FileMode = 0o600 // File permission for collections
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS - FILE UTILITIES

// ensureDir validates that dir is non-empty and creates it if needed.
func ensureDir(dir string) error {
	if dir == "" {
		return tinyagent.ErrBadParameter.With("directory is required")
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return tinyagent.ErrInternalServerError.Withf("mkdir: %v", err)
	}
	return nil
}

// readCSV returns all records in a file, or nil if the file does not exist.
// Records with a different number of fields to the header are an error.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, tinyagent.ErrInternalServerError.Withf("open: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, tinyagent.ErrInternalServerError.Withf("%s: %v", filepath.Base(path), err)
	}
	return records, nil
}

// readHeader returns the first record in a file, or nil if the file does
// not exist or is empty
func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, tinyagent.ErrInternalServerError.Withf("open: %v", err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, tinyagent.ErrInternalServerError.Withf("%s: %v", filepath.Base(path), err)
	}
	return header, nil
}

// appendCSV appends records to a file, creating it if needed
func appendCSV(path string, records ...[]string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, FilePerm)
	if err != nil {
		return tinyagent.ErrInternalServerError.Withf("open: %v", err)
	}
	if err := writeCSV(f, records); err != nil {
		f.Close()
		return tinyagent.ErrInternalServerError.Withf("write: %v", err)
	}
	if err := f.Close(); err != nil {
		return tinyagent.ErrInternalServerError.Withf("close: %v", err)
	}
	return nil
}

// writeCSV writes records to w. A record with a single empty field is
// written as a quoted empty string, since a blank line is skipped on read.
func writeCSV(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	for _, record := range records {
		if len(record) == 1 && record[0] == "" {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			if _, err := io.WriteString(w, emptyRecord); err != nil {
				return err
			}
			continue
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readCSVDir returns the names (filenames without .csv extension) of all
// CSV files in dir, skipping subdirectories and other files. A missing
// directory has no collections.
func readCSVDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, tinyagent.ErrInternalServerError.Withf("readdir: %v", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), csvExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), csvExt))
	}
	return names, nil
}
