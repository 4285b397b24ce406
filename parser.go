package publisher

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is a single searchable document. No schema is enforced here;
// the search service decides which fields it requires (typically objectID).
type Record map[string]any

// fileExists reports whether a regular file exists at path.
// A missing path or a directory is reported as false, nil.
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %q: %w", path, err)
	}

	return info.Mode().IsRegular(), nil
}

// readRecords reads an index file and parses it as an array of records.
// Files ending in .yml or .yaml are parsed as YAML, everything else as JSON.
func readRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	var records []Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		records, err = parseYAMLRecords(data)
	default:
		records, err = parseJSONRecords(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrMalformedIndexFile, path, err)
	}

	return records, nil
}

// parseJSONRecords decodes a JSON array of objects. Numbers are kept as
// json.Number so they are forwarded exactly as written.
func parseJSONRecords(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("unmarshaling JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level array")
	}

	return checkRecords(records)
}

// parseYAMLRecords decodes a YAML sequence of mappings.
func parseYAMLRecords(data []byte) ([]Record, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}

	var records []Record
	if raw != nil {
		records = make([]Record, 0, len(raw))
		for _, r := range raw {
			records = append(records, Record(r))
		}
	}

	return checkRecords(records)
}

// checkRecords rejects a missing top-level array and null elements.
func checkRecords(records []Record) ([]Record, error) {
	if records == nil {
		return nil, errors.New("top-level value is not an array")
	}

	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("element %d is not an object", i)
		}
	}

	return records, nil
}
