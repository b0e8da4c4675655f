package outwriter

import (
	"io"
	"time"

	"github.com/huangsam/concord/internal/parquet"
	"github.com/huangsam/concord/schema"
)

// writeSimpleCSV renders the simple-mean report in the project dialect.
func (ow *OutWriter) writeSimpleCSV(w io.Writer, rows []schema.SimpleRow) error {
	fmtScore, _ := createFormatters(schema.ScorePrecision, schema.WeightPrecision)
	records := make([]any, len(rows))
	for i, r := range rows {
		record := make([]string, 0, len(schema.SimpleHeaders))
		record = append(record, r.Country)
		for _, s := range r.Scores() {
			record = append(record, fmtScore(s))
		}
		record = append(record, fmtScore(r.Mean))
		urls := r.URLs()
		records[i] = append(record, urls[:]...)
	}
	return ow.Dialect.Write(w, schema.SimpleHeaders, records)
}

// writeWeightedCSV renders the weighted report in the project dialect.
func (ow *OutWriter) writeWeightedCSV(w io.Writer, rows []schema.WeightedRow) error {
	fmtScore, fmtWeight := createFormatters(schema.ScorePrecision, schema.WeightPrecision)
	records := make([]any, len(rows))
	for i, r := range rows {
		record := make([]string, 0, len(schema.WeightedHeaders))
		record = append(record, r.Country)
		for _, s := range r.Scores() {
			record = append(record, fmtScore(s))
		}
		record = append(record, fmtScore(r.Mean), fmtScore(r.Weighted))
		for _, wt := range r.Weights().Values() {
			record = append(record, fmtWeight(wt))
		}
		records[i] = append(record, r.URL1, r.URL2, r.URL3, r.Method)
	}
	return ow.Dialect.Write(w, schema.WeightedHeaders, records)
}

func writeMeanParquet(w io.Writer, result *schema.AggregateResult) error {
	return parquet.WriteMeanRows(w, parquet.ConvertMeanRows(result))
}

func writeWeightedParquet(w io.Writer, result *schema.AggregateResult) error {
	return parquet.WriteWeightedRows(w, parquet.ConvertWeightedRows(result))
}

// JSONSimpleRow is a simple report row with NaN values encoded as null.
type JSONSimpleRow struct {
	Country string   `json:"country"`
	Score1  *float64 `json:"score1"`
	Score2  *float64 `json:"score2"`
	Score3  *float64 `json:"score3"`
	Mean    *float64 `json:"mean"`
	URL1    string   `json:"url1"`
	URL2    string   `json:"url2"`
	URL3    string   `json:"url3"`
}

// JSONWeightedRow is a weighted report row with NaN values encoded as null.
// Weights are carried once at the report level.
type JSONWeightedRow struct {
	Country  string   `json:"country"`
	Score1   *float64 `json:"score1"`
	Score2   *float64 `json:"score2"`
	Score3   *float64 `json:"score3"`
	Mean     *float64 `json:"mean"`
	Weighted *float64 `json:"weighted"`
	URL1     string   `json:"url1"`
	URL2     string   `json:"url2"`
	URL3     string   `json:"url3"`
}

// JSONWarning is a parse warning as exported.
type JSONWarning struct {
	Source string `json:"source"`
	Row    int    `json:"row"`
	Column string `json:"column"`
	Value  string `json:"value"`
}

// JSONReport is the JSON form of an aggregation run.
type JSONReport struct {
	RunID         string              `json:"run_id"`
	GeneratedAt   time.Time           `json:"generated_at"`
	ReferenceYear int                 `json:"reference_year"`
	Weights       schema.WeightTriple `json:"weights"`
	Method        string              `json:"method"`
	Countries     []string            `json:"countries"`
	Simple        []JSONSimpleRow     `json:"simple"`
	Weighted      []JSONWeightedRow   `json:"weighted"`
	Warnings      []JSONWarning       `json:"warnings"`
}

// NewJSONReport converts a run into its JSON form, rounding values the same way
// the CSV reports do.
func NewJSONReport(result *schema.AggregateResult) JSONReport {
	report := JSONReport{
		RunID:         result.RunID,
		GeneratedAt:   result.GeneratedAt,
		ReferenceYear: result.ReferenceYear,
		Weights: schema.WeightTriple{
			W1: schema.Round(result.Weights.W1, schema.WeightPrecision),
			W2: schema.Round(result.Weights.W2, schema.WeightPrecision),
			W3: schema.Round(result.Weights.W3, schema.WeightPrecision),
		},
		Method:    result.Method,
		Countries: append([]string{}, result.Countries...),
		Simple:    make([]JSONSimpleRow, len(result.Simple)),
		Weighted:  make([]JSONWeightedRow, len(result.Weighted)),
		Warnings:  make([]JSONWarning, len(result.Warnings)),
	}

	score := func(v float64) *float64 { return schema.RoundedPtr(v, schema.ScorePrecision) }
	for i, r := range result.Simple {
		report.Simple[i] = JSONSimpleRow{
			Country: r.Country,
			Score1:  score(r.Score1),
			Score2:  score(r.Score2),
			Score3:  score(r.Score3),
			Mean:    score(r.Mean),
			URL1:    r.URL1,
			URL2:    r.URL2,
			URL3:    r.URL3,
		}
	}
	for i, r := range result.Weighted {
		report.Weighted[i] = JSONWeightedRow{
			Country:  r.Country,
			Score1:   score(r.Score1),
			Score2:   score(r.Score2),
			Score3:   score(r.Score3),
			Mean:     score(r.Mean),
			Weighted: score(r.Weighted),
			URL1:     r.URL1,
			URL2:     r.URL2,
			URL3:     r.URL3,
		}
	}
	for i, w := range result.Warnings {
		report.Warnings[i] = JSONWarning{
			Source: string(w.Source),
			Row:    w.Row,
			Column: w.Column,
			Value:  w.Value,
		}
	}
	return report
}
