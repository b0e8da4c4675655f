package core

import (
	"github.com/huangsam/concord/schema"
)

// MapColumns resolves which headers hold the country, score and URL of a source.
// Each logical column takes the first candidate present in headers. Country and
// score fall back to the first header when no candidate matches; URL resolves to
// no column at all.
func MapColumns(headers []string, cands schema.ColumnCandidates) (schema.ColumnMapping, error) {
	if len(headers) == 0 {
		return schema.ColumnMapping{}, &EmptySourceError{}
	}
	cands = cands.WithDefaults()

	m := schema.ColumnMapping{URLIndex: -1}

	if idx, ok := pickColumn(headers, cands.Country); ok {
		m.CountryIndex = idx
	} else {
		m.CountryFallback = true
	}
	m.Country = headers[m.CountryIndex]

	if idx, ok := pickColumn(headers, cands.Score); ok {
		m.ScoreIndex = idx
	} else {
		m.ScoreFallback = true
	}
	m.Score = headers[m.ScoreIndex]

	if idx, ok := pickColumn(headers, cands.URL); ok {
		m.URLIndex = idx
		m.URL = headers[idx]
	}
	return m, nil
}

// pickColumn returns the index of the first candidate found among headers.
// Candidates are tried in priority order; header names must match exactly.
func pickColumn(headers []string, candidates []string) (int, bool) {
	for _, c := range candidates {
		for i, h := range headers {
			if h == c {
				return i, true
			}
		}
	}
	return 0, false
}
