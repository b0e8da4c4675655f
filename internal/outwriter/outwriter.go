// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/internal/dialect"
	"github.com/huangsam/concord/schema"
)

// Report file suffixes appended to the configured prefix.
const (
	MeanSuffix            = "_mean.csv"
	WeightedSuffix        = "_weighted.csv"
	JSONSuffix            = "_report.json"
	MeanParquetSuffix     = "_mean.parquet"
	WeightedParquetSuffix = "_weighted.parquet"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct {
	Dialect dialect.Dialect
	Out     io.Writer // Destination for path lines and tables
}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{Dialect: dialect.Default, Out: os.Stdout}
}

// WriteReports writes both dialect reports plus any requested exports into the
// output directory, then prints the absolute path of each file. Files are staged
// next to their targets and only renamed into place once all were written.
func (ow *OutWriter) WriteReports(result *schema.AggregateResult, cfg *contract.Config) ([]string, error) {
	if err := os.MkdirAll(cfg.OutputDirectory, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	s := newStager(cfg.OutputDirectory)
	steps := []struct {
		suffix string
		write  func(io.Writer) error
		want   bool
	}{
		{MeanSuffix, func(w io.Writer) error { return ow.writeSimpleCSV(w, result.Simple) }, true},
		{WeightedSuffix, func(w io.Writer) error { return ow.writeWeightedCSV(w, result.Weighted) }, true},
		{JSONSuffix, func(w io.Writer) error { return writeJSON(w, NewJSONReport(result)) }, cfg.HasExport(schema.JSONOut)},
		{MeanParquetSuffix, func(w io.Writer) error { return writeMeanParquet(w, result) }, cfg.HasExport(schema.ParquetOut)},
		{WeightedParquetSuffix, func(w io.Writer) error { return writeWeightedParquet(w, result) }, cfg.HasExport(schema.ParquetOut)},
	}
	for _, step := range steps {
		if !step.want {
			continue
		}
		if err := s.stage(cfg.OutputPrefix+step.suffix, step.write); err != nil {
			s.discard()
			return nil, err
		}
	}

	paths, err := s.commit()
	if err != nil {
		return nil, err
	}

	for i, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		paths[i] = abs
	}
	return paths, ow.printPaths(paths, cfg)
}

// PrintTable renders the weighted report as a terminal table.
func (ow *OutWriter) PrintTable(result *schema.AggregateResult, cfg *contract.Config) error {
	return writeWeightedTable(ow.Out, result, cfg)
}

// printPaths prints one "<label>: <path>" line per written file.
func (ow *OutWriter) printPaths(paths []string, cfg *contract.Config) error {
	for _, p := range paths {
		label := contract.GetColorLabel(labelForPath(p), cfg.UseColors)
		if _, err := fmt.Fprintf(ow.Out, "%s: %s\n", label, p); err != nil {
			return err
		}
	}
	return nil
}

// labelForPath names a written file by its suffix.
func labelForPath(p string) string {
	switch {
	case strings.HasSuffix(p, MeanSuffix):
		return "Mean report"
	case strings.HasSuffix(p, WeightedSuffix):
		return "Weighted report"
	case strings.HasSuffix(p, JSONSuffix):
		return "JSON report"
	default:
		return "Parquet export"
	}
}
