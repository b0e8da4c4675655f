// Package source reads input CSV tables from disk.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/huangsam/concord/schema"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVReader reads comma-separated source files. A leading UTF-8 BOM is dropped,
// quoted fields are honored and rows may have any number of fields.
type CSVReader struct {
	Comma rune // Field separator, ',' when zero
}

// NewCSVReader returns a reader for comma-separated files.
func NewCSVReader() *CSVReader {
	return &CSVReader{Comma: ','}
}

// ReadTable implements contract.SourceReader.
func (r *CSVReader) ReadTable(path string) (schema.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return schema.RawTable{}, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	table, err := r.Read(f)
	if err != nil {
		return schema.RawTable{}, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return table, nil
}

// Read parses a table from any reader. Empty input yields an empty table.
func (r *CSVReader) Read(in io.Reader) (schema.RawTable, error) {
	decoded := transform.NewReader(in, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	if r.Comma != 0 {
		reader.Comma = r.Comma
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var table schema.RawTable
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return schema.RawTable{}, err
		}
		if table.Headers == nil {
			table.Headers = record
			continue
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}
