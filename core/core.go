// Package core has core logic for column discovery, alignment and weighting.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/internal/dialect"
	"github.com/huangsam/concord/schema"
)

// ExecutorFunc defines the function signature for executing a run.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, reader contract.SourceReader, writer contract.ReportWriter) error

// ExecuteAggregate computes both reports and hands them to the writer.
// It serves as the main entry point for the 'aggregate' command.
func ExecuteAggregate(ctx context.Context, cfg *contract.Config, reader contract.SourceReader, writer contract.ReportWriter) error {
	result, err := GetAggregateResults(ctx, cfg, reader)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	reportWarnings(result)

	if cfg.Table {
		if err := writer.PrintTable(result, cfg); err != nil {
			return fmt.Errorf("printing table: %w", err)
		}
	}

	if _, err := writer.WriteReports(result, cfg); err != nil {
		return fmt.Errorf("writing reports: %w", err)
	}
	return nil
}

// GetAggregateResults reads and normalizes the three sources, aligns them and
// builds both report row sets without writing anything.
// Weights are computed first so invalid years fail before any file is opened.
func GetAggregateResults(ctx context.Context, cfg *contract.Config, reader contract.SourceReader) (*schema.AggregateResult, error) {
	weights, err := ComputeWeights(WeightingFor(cfg.Years(), cfg.Adjustments), cfg.ReferenceYear)
	if err != nil {
		return nil, err
	}

	result := &schema.AggregateResult{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now(),
		ReferenceYear: cfg.ReferenceYear,
		Weights:       weights,
	}

	var records [3][]schema.SourceRecord
	for i, src := range cfg.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		recs, mapping, warnings, err := loadSource(src, cfg.Columns, reader)
		if err != nil {
			return nil, err
		}
		records[i] = recs
		result.Mappings[i] = mapping
		result.Warnings = append(result.Warnings, warnings...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	al := Align(records[0], records[1], records[2])
	result.Countries = al.Countries
	result.Method = MethodDescription(weights, dialect.Default.Delimiter)
	result.Simple, result.Weighted = BuildReports(al, weights, result.Method)
	return result, nil
}

// GetWeights resolves the normalized weights and method description from config alone.
func GetWeights(cfg *contract.Config) (schema.WeightTriple, string, error) {
	weights, err := ComputeWeights(WeightingFor(cfg.Years(), cfg.Adjustments), cfg.ReferenceYear)
	if err != nil {
		return schema.WeightTriple{}, "", err
	}
	return weights, MethodDescription(weights, dialect.Default.Delimiter), nil
}

// loadSource reads one source file and normalizes its rows. A file without
// data rows is an EmptySourceError.
func loadSource(src contract.SourceConfig, cands schema.ColumnCandidates, reader contract.SourceReader) ([]schema.SourceRecord, schema.ColumnMapping, []schema.ParseWarning, error) {
	table, err := reader.ReadTable(src.Path)
	if err != nil {
		return nil, schema.ColumnMapping{}, nil, fmt.Errorf("reading %s: %w", src.Key, err)
	}

	if len(table.Rows) == 0 {
		return nil, schema.ColumnMapping{}, nil, &EmptySourceError{Source: src.Key, Path: src.Path}
	}

	mapping, err := MapColumns(table.Headers, cands)
	if err != nil {
		var emptyErr *EmptySourceError
		if errors.As(err, &emptyErr) {
			emptyErr.Source = src.Key
			emptyErr.Path = src.Path
		}
		return nil, schema.ColumnMapping{}, nil, err
	}

	records, warnings := NormalizeRecords(src.Key, table.Rows, mapping)
	return records, mapping, warnings, nil
}

// reportWarnings logs first-header fallbacks and unparsable scores to stderr.
func reportWarnings(result *schema.AggregateResult) {
	for i, m := range result.Mappings {
		src := schema.AllSources[i]
		if m.CountryFallback {
			contract.LogWarn(string(src), fmt.Errorf("no country column matched, using first header %q", m.Country))
		}
		if m.ScoreFallback {
			contract.LogWarn(string(src), fmt.Errorf("no score column matched, using first header %q", m.Score))
		}
	}
	for _, w := range result.Warnings {
		contract.LogWarn("parse", w)
	}
}
