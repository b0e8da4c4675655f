package core

import (
	"slices"

	"github.com/huangsam/concord/schema"
)

// buildIndex keys records by country. A later record replaces an earlier one
// with the same country.
func buildIndex(records []schema.SourceRecord) schema.SourceIndex {
	idx := make(schema.SourceIndex, len(records))
	for _, r := range records {
		idx[r.Country] = r
	}
	return idx
}

// Align intersects the three sources by country. Only non-empty countries present
// in every source survive, sorted ascending, and each returned index holds exactly
// those countries.
func Align(s1, s2, s3 []schema.SourceRecord) schema.Alignment {
	full := [3]schema.SourceIndex{buildIndex(s1), buildIndex(s2), buildIndex(s3)}

	var countries []string
	for country := range full[0] {
		if country == "" {
			continue
		}
		_, in2 := full[1][country]
		_, in3 := full[2][country]
		if in2 && in3 {
			countries = append(countries, country)
		}
	}
	slices.Sort(countries)

	var al schema.Alignment
	al.Countries = countries
	for i := range full {
		al.Indexes[i] = make(schema.SourceIndex, len(countries))
		for _, c := range countries {
			al.Indexes[i][c] = full[i][c]
		}
	}
	return al
}
