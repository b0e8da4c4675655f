package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/concord/schema"
)

// NormalizeRecord turns one raw row into a SourceRecord using the resolved mapping.
// A score that does not parse becomes NaN and is reported through the returned
// warning, whose Row field is left for the caller to fill in.
func NormalizeRecord(src schema.SourceKey, row []string, m schema.ColumnMapping) (schema.SourceRecord, *schema.ParseWarning) {
	rec := schema.SourceRecord{
		Source:    src,
		Country:   cell(row, m.CountryIndex),
		SourceURL: cell(row, m.URLIndex),
	}

	raw := cell(row, m.ScoreIndex)
	score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		rec.Score = math.NaN()
		return rec, &schema.ParseWarning{Source: src, Column: m.Score, Value: raw}
	}
	rec.Score = score
	return rec, nil
}

// NormalizeRecords normalizes every data row of a table. Warnings carry the
// 1-based line number of the row in its file, counting the header as line 1.
func NormalizeRecords(src schema.SourceKey, rows [][]string, m schema.ColumnMapping) ([]schema.SourceRecord, []schema.ParseWarning) {
	records := make([]schema.SourceRecord, 0, len(rows))
	var warnings []schema.ParseWarning
	for i, row := range rows {
		rec, warn := NormalizeRecord(src, row, m)
		if warn != nil {
			warn.Row = i + 2
			warnings = append(warnings, *warn)
		}
		records = append(records, rec)
	}
	return records, warnings
}

// cell returns row[idx], or "" when the row is too short or idx is negative.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
