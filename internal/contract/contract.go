// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/huangsam/concord/schema"
)

// SourceReader loads one source table from a path.
// This allows the aggregation logic to be tested without files on disk.
type SourceReader interface {
	// ReadTable returns the header row and data rows of the table at path.
	// A file without a header row yields a RawTable with no headers and no error.
	ReadTable(path string) (schema.RawTable, error)
}

// ReportWriter persists the products of an aggregation run.
type ReportWriter interface {
	// WriteReports writes both reports and any requested exports, returning the
	// absolute paths written. Either every file is written or none is.
	WriteReports(result *schema.AggregateResult, cfg *Config) ([]string, error)

	// PrintTable renders the weighted report to the terminal.
	PrintTable(result *schema.AggregateResult, cfg *Config) error
}
