// =============================================================================
// Compute Sales - JSON Loader
// =============================================================================
//
// This module reads the two JSON inputs (price catalogue and sales records)
// into generic values. The catalogue indexer and sales aggregator interpret
// their shape; the loader only guarantees that each file exists, is readable
// and holds exactly one well-formed JSON document.
//
// NUMBERS:
//   Numbers are decoded as json.Number so that quantities keep their textual
//   form ("-3" stays "-3", "2.50" stays "2.50") when echoed in error messages.
//
// =============================================================================

package loader

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidShape is returned when an input parses as JSON but does not have
// the top-level shape its consumer expects.
var ErrInvalidShape = errors.New("unexpected JSON shape")

// Inputs holds both parsed documents of a run.
type Inputs struct {
	// CataloguePath is the path the catalogue was read from.
	CataloguePath string

	// Catalogue is the parsed price catalogue document.
	Catalogue any

	// SalesPath is the path the sales records were read from.
	SalesPath string

	// Sales is the parsed sales records document.
	Sales any
}

// LoadInputs reads the catalogue and the sales records. If either file fails
// to load, no partial Inputs is returned.
func LoadInputs(cataloguePath, salesPath string) (*Inputs, error) {
	catalogue, err := LoadJSON(cataloguePath)
	if err != nil {
		return nil, err
	}

	sales, err := LoadJSON(salesPath)
	if err != nil {
		return nil, err
	}

	return &Inputs{
		CataloguePath: cataloguePath,
		Catalogue:     catalogue,
		SalesPath:     salesPath,
		Sales:         sales,
	}, nil
}

// LoadJSON reads a UTF-8 JSON file and decodes it into a generic value.
//
// PARAMETERS:
//   - path: The path to the JSON file.
//
// RETURNS:
//   - The decoded value (map[string]any, []any, string, json.Number, bool or nil).
//   - An error naming the path if the file is missing, unreadable or malformed.
func LoadJSON(path string) (any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer file.Close()

	value, err := Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return value, nil
}

// Decode reads exactly one JSON document from r.
func Decode(r io.Reader) (any, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", io.ErrUnexpectedEOF)
		}
		return nil, err
	}

	// Anything but whitespace after the document is malformed input.
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level JSON value")
	}

	return value, nil
}
