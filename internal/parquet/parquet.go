// Package parquet provides data structures and functions for exporting concord
// reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/concord/schema"
	"github.com/parquet-go/parquet-go"
)

// MeanRow is one row of the simple-mean report.
// Scores that are NaN in the report are stored as nulls.
type MeanRow struct {
	// RunID identifies the aggregation run that produced the row
	RunID string `parquet:"run_id,snappy"`

	// GeneratedAt is when the run finished (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	Country string   `parquet:"country,snappy"`
	Score1  *float64 `parquet:"score1,optional,snappy"`
	Score2  *float64 `parquet:"score2,optional,snappy"`
	Score3  *float64 `parquet:"score3,optional,snappy"`
	Mean    *float64 `parquet:"mean,optional,snappy"`
	URL1    string   `parquet:"url1,snappy"`
	URL2    string   `parquet:"url2,snappy"`
	URL3    string   `parquet:"url3,snappy"`
}

// WeightedRow is one row of the weighted report.
type WeightedRow struct {
	RunID       string    `parquet:"run_id,snappy"`
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	Country  string   `parquet:"country,snappy"`
	Score1   *float64 `parquet:"score1,optional,snappy"`
	Score2   *float64 `parquet:"score2,optional,snappy"`
	Score3   *float64 `parquet:"score3,optional,snappy"`
	Mean     *float64 `parquet:"mean,optional,snappy"`
	Weighted *float64 `parquet:"weighted,optional,snappy"`

	// W1, W2 and W3 are the normalized source weights, rounded to six places
	W1 float64 `parquet:"w1,snappy"`
	W2 float64 `parquet:"w2,snappy"`
	W3 float64 `parquet:"w3,snappy"`

	URL1   string `parquet:"url1,snappy"`
	URL2   string `parquet:"url2,snappy"`
	URL3   string `parquet:"url3,snappy"`
	Method string `parquet:"method,snappy"`
}

// WriteMeanRows writes the rows as a Parquet file to w.
func WriteMeanRows(w io.Writer, data []MeanRow) error {
	return writeRows(w, data)
}

// WriteWeightedRows writes the rows as a Parquet file to w.
func WriteWeightedRows(w io.Writer, data []WeightedRow) error {
	return writeRows(w, data)
}

// WriteMeanRowsParquet writes a slice of MeanRow structs to a Parquet file.
func WriteMeanRowsParquet(data []MeanRow, outputPath string) error {
	return writeFile(outputPath, func(w io.Writer) error { return WriteMeanRows(w, data) })
}

// WriteWeightedRowsParquet writes a slice of WeightedRow structs to a Parquet file.
func WriteWeightedRowsParquet(data []WeightedRow, outputPath string) error {
	return writeFile(outputPath, func(w io.Writer) error { return WriteWeightedRows(w, data) })
}

func writeFile(outputPath string, write func(io.Writer) error) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// writeRows uses struct schema inference; the schema is derived from the struct tags.
func writeRows[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// ConvertMeanRows converts the simple report of a run for Parquet export.
// Scores and means are rounded to report precision.
func ConvertMeanRows(result *schema.AggregateResult) []MeanRow {
	out := make([]MeanRow, len(result.Simple))
	for i, r := range result.Simple {
		out[i] = MeanRow{
			RunID:       result.RunID,
			GeneratedAt: result.GeneratedAt,
			Country:     r.Country,
			Score1:      schema.RoundedPtr(r.Score1, schema.ScorePrecision),
			Score2:      schema.RoundedPtr(r.Score2, schema.ScorePrecision),
			Score3:      schema.RoundedPtr(r.Score3, schema.ScorePrecision),
			Mean:        schema.RoundedPtr(r.Mean, schema.ScorePrecision),
			URL1:        r.URL1,
			URL2:        r.URL2,
			URL3:        r.URL3,
		}
	}
	return out
}

// ConvertWeightedRows converts the weighted report of a run for Parquet export.
func ConvertWeightedRows(result *schema.AggregateResult) []WeightedRow {
	out := make([]WeightedRow, len(result.Weighted))
	for i, r := range result.Weighted {
		out[i] = WeightedRow{
			RunID:       result.RunID,
			GeneratedAt: result.GeneratedAt,
			Country:     r.Country,
			Score1:      schema.RoundedPtr(r.Score1, schema.ScorePrecision),
			Score2:      schema.RoundedPtr(r.Score2, schema.ScorePrecision),
			Score3:      schema.RoundedPtr(r.Score3, schema.ScorePrecision),
			Mean:        schema.RoundedPtr(r.Mean, schema.ScorePrecision),
			Weighted:    schema.RoundedPtr(r.Weighted, schema.ScorePrecision),
			W1:          schema.Round(r.W1, schema.WeightPrecision),
			W2:          schema.Round(r.W2, schema.WeightPrecision),
			W3:          schema.Round(r.W3, schema.WeightPrecision),
			URL1:        r.URL1,
			URL2:        r.URL2,
			URL3:        r.URL3,
			Method:      r.Method,
		}
	}
	return out
}
