// Package dialect reads and writes the project CSV dialect.
//
// Columns are separated by a comma and values are never quoted. A comma inside a
// value is replaced by a private delimiter, which also joins list values. The
// replacement is one-way: a value that already contained the delimiter cannot be
// told apart from one that contained a comma.
package dialect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Dialect describes the separator and the private delimiter of a CSV flavor.
type Dialect struct {
	Separator rune // Column separator
	Delimiter rune // Replaces Separator inside values and joins list elements
}

// Default is the dialect every concord report is written in.
var Default = Dialect{Separator: ',', Delimiter: '⋮'}

// RowLengthError reports a positional row whose length differs from the header.
type RowLengthError struct {
	Row     int // 0-based index among the data rows
	Got     int
	Headers int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("row %d has %d values, header has %d", e.Row, e.Got, e.Headers)
}

// Cell renders one value as a dialect cell.
// nil renders as "", NaN floats as "", and lists are joined with the delimiter.
func (d Dialect) Cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return d.sanitize(val)
	case []string:
		parts := make([]string, len(val))
		for i, s := range val {
			parts[i] = d.sanitize(s)
		}
		return strings.Join(parts, string(d.Delimiter))
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = d.Cell(item)
		}
		return strings.Join(parts, string(d.Delimiter))
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return d.Cell(float64(val))
	case fmt.Stringer:
		return d.sanitize(val.String())
	default:
		return d.sanitize(fmt.Sprint(val))
	}
}

func (d Dialect) sanitize(s string) string {
	return strings.ReplaceAll(s, string(d.Separator), string(d.Delimiter))
}

// NormalizeRow converts a row into cells in header order. A row is either a
// positional slice with exactly one value per header, or a map keyed by header
// where missing keys render as "".
func (d Dialect) NormalizeRow(row any, headers []string) ([]string, error) {
	out := make([]string, len(headers))
	switch r := row.(type) {
	case map[string]any:
		for i, h := range headers {
			out[i] = d.Cell(r[h])
		}
	case map[string]string:
		for i, h := range headers {
			out[i] = d.sanitize(r[h])
		}
	case []string:
		if len(r) != len(headers) {
			return nil, &RowLengthError{Got: len(r), Headers: len(headers)}
		}
		for i, v := range r {
			out[i] = d.sanitize(v)
		}
	case []any:
		if len(r) != len(headers) {
			return nil, &RowLengthError{Got: len(r), Headers: len(headers)}
		}
		for i, v := range r {
			out[i] = d.Cell(v)
		}
	default:
		return nil, fmt.Errorf("unsupported row type %T, expected slice or map", row)
	}
	return out, nil
}

// Write writes the header line and one line per row, each terminated by "\n".
func (d Dialect) Write(w io.Writer, headers []string, rows []any) error {
	sep := string(d.Separator)

	var buf bytes.Buffer
	header := make([]string, len(headers))
	for i, h := range headers {
		header[i] = d.sanitize(h)
	}
	buf.WriteString(strings.Join(header, sep))
	buf.WriteByte('\n')

	for i, row := range rows {
		cells, err := d.NormalizeRow(row, headers)
		if err != nil {
			var lenErr *RowLengthError
			if errors.As(err, &lenErr) {
				lenErr.Row = i
			}
			return err
		}
		buf.WriteString(strings.Join(cells, sep))
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Render returns the dialect text for headers and rows.
func (d Dialect) Render(headers []string, rows []any) (string, error) {
	var sb strings.Builder
	if err := d.Write(&sb, headers, rows); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteFile renders the table and writes it to path in UTF-8 without a BOM.
// Nothing is written when a row is invalid.
func (d Dialect) WriteFile(path string, headers []string, rows []any) error {
	text, err := d.Render(headers, rows)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// Parse reads dialect text back into a header and rows. Lines end in "\n", and a
// trailing "\r" is dropped. Empty text yields no header and no rows.
func (d Dialect) Parse(text string) ([]string, [][]string) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	sep := string(d.Separator)

	headers := strings.Split(strings.TrimSuffix(lines[0], "\r"), sep)
	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, strings.Split(strings.TrimSuffix(line, "\r"), sep))
	}
	return headers, rows
}

// SplitList splits a cell that holds a delimiter-joined list.
func (d Dialect) SplitList(cell string) []string {
	if cell == "" {
		return nil
	}
	return strings.Split(cell, string(d.Delimiter))
}
