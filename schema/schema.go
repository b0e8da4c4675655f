// Package schema has the models and constants shared by every part of concord.
package schema

import (
	"fmt"
	"time"
)

// RawTable is one source file as read from disk: its header row and data rows.
// Rows may be shorter or longer than Headers.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// SourceRecord is one normalized row of a source.
type SourceRecord struct {
	Source    SourceKey // Owning source
	Country   string    // Country identifier, copied verbatim (may be empty)
	Score     float64   // Parsed score, NaN when the cell could not be parsed
	SourceURL string    // Provenance URL, empty when the source has no URL column
}

// ColumnCandidates lists accepted header spellings for each logical column, in priority order.
type ColumnCandidates struct {
	Country []string `mapstructure:"country" yaml:"country" json:"country"`
	Score   []string `mapstructure:"score" yaml:"score" json:"score"`
	URL     []string `mapstructure:"url" yaml:"url" json:"url"`
}

// DefaultColumnCandidates returns the built-in header spellings.
func DefaultColumnCandidates() ColumnCandidates {
	return ColumnCandidates{
		Country: []string{"country", "pais"},
		Score:   []string{"score", "iq"},
		URL:     []string{"url", "source_url", "fuente_url"},
	}
}

// WithDefaults fills every nil candidate list from the built-in defaults.
func (c ColumnCandidates) WithDefaults() ColumnCandidates {
	defaults := DefaultColumnCandidates()
	if c.Country == nil {
		c.Country = defaults.Country
	}
	if c.Score == nil {
		c.Score = defaults.Score
	}
	if c.URL == nil {
		c.URL = defaults.URL
	}
	return c
}

// ColumnMapping is the resolved column layout of one source.
type ColumnMapping struct {
	Country      string
	Score        string
	URL          string // Empty when no URL column matched
	CountryIndex int
	ScoreIndex   int
	URLIndex     int // -1 when no URL column matched

	// CountryFallback and ScoreFallback report that no candidate matched and
	// the first header was used instead.
	CountryFallback bool
	ScoreFallback   bool
}

// SourceIndex maps a country to its record within one source.
type SourceIndex map[string]SourceRecord

// Alignment is the set of countries covered by all three sources together with
// each source's index restricted to that set.
type Alignment struct {
	Countries []string       // Sorted ascending
	Indexes   [3]SourceIndex // One per source, in AllSources order
}

// WeightTriple holds the normalized per-source weights of the weighted report.
type WeightTriple struct {
	W1 float64 `json:"w1"`
	W2 float64 `json:"w2"`
	W3 float64 `json:"w3"`
}

// Values returns the weights in source order.
func (w WeightTriple) Values() [3]float64 {
	return [3]float64{w.W1, w.W2, w.W3}
}

// Sum returns W1+W2+W3.
func (w WeightTriple) Sum() float64 {
	return w.W1 + w.W2 + w.W3
}

// SimpleRow is one row of the simple-mean report.
type SimpleRow struct {
	Country string
	Score1  float64
	Score2  float64
	Score3  float64
	Mean    float64
	URL1    string
	URL2    string
	URL3    string
}

// WeightedRow is one row of the weighted report.
type WeightedRow struct {
	Country  string
	Score1   float64
	Score2   float64
	Score3   float64
	Mean     float64
	Weighted float64
	W1       float64
	W2       float64
	W3       float64
	URL1     string
	URL2     string
	URL3     string
	Method   string
}

// ParseWarning records a score cell that could not be parsed. It never aborts a run.
type ParseWarning struct {
	Source SourceKey
	Row    int // 1-based line number in the source file, header included
	Column string
	Value  string
}

// Error implements the error interface so warnings can be logged like errors.
func (w ParseWarning) Error() string {
	return fmt.Sprintf("%s line %d: cannot parse %s value %q, using NaN", w.Source, w.Row, w.Column, w.Value)
}

// AggregateResult is everything one aggregation run produces.
type AggregateResult struct {
	RunID         string
	GeneratedAt   time.Time
	ReferenceYear int
	Mappings      [3]ColumnMapping
	Countries     []string
	Weights       WeightTriple
	Method        string
	Simple        []SimpleRow
	Weighted      []WeightedRow
	Warnings      []ParseWarning
}
