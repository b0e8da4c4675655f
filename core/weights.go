package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/huangsam/concord/schema"
)

// SourceWeighting carries the inputs that determine one source's raw weight.
type SourceWeighting struct {
	Source     schema.SourceKey
	Year       int     // Publication year of the source data
	Adjustment float64 // Independence adjustment, usually in [0,1]
}

// Recency returns 1/(1+gap) where gap is the number of years between the source
// and the reference year. The caller must ensure gap >= 0.
func Recency(sourceYear, referenceYear int) float64 {
	return 1.0 / (1.0 + float64(referenceYear-sourceYear))
}

// ComputeWeights derives the normalized weight of each source from its recency and
// independence adjustment. Weights are returned in source order and sum to 1.
func ComputeWeights(params [3]SourceWeighting, referenceYear int) (schema.WeightTriple, error) {
	var raw [3]float64
	sum := 0.0
	for i, p := range params {
		if p.Year > referenceYear {
			return schema.WeightTriple{}, &InvalidYearError{
				Source:        p.Source,
				SourceYear:    p.Year,
				ReferenceYear: referenceYear,
			}
		}
		raw[i] = Recency(p.Year, referenceYear) * p.Adjustment
		if raw[i] < 0 || math.IsNaN(raw[i]) || math.IsInf(raw[i], 0) {
			return schema.WeightTriple{}, &DegenerateWeightError{Source: p.Source, Sum: raw[i]}
		}
		sum += raw[i]
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return schema.WeightTriple{}, &DegenerateWeightError{Sum: sum}
	}
	return schema.WeightTriple{
		W1: raw[0] / sum,
		W2: raw[1] / sum,
		W3: raw[2] / sum,
	}, nil
}

// WeightingFor builds the weighting inputs of all three sources from years and
// adjustments keyed by source.
func WeightingFor(years map[schema.SourceKey]int, adjustments map[schema.SourceKey]float64) [3]SourceWeighting {
	var params [3]SourceWeighting
	for i, key := range schema.AllSources {
		params[i] = SourceWeighting{Source: key, Year: years[key], Adjustment: adjustments[key]}
	}
	return params
}

// MethodDescription renders the weighting method and its weights as a single
// report cell. Parts are joined with delim so the value never contains a comma.
func MethodDescription(w schema.WeightTriple, delim rune) string {
	sep := string(delim)
	values := w.Values()
	parts := make([]string, len(values))
	for i, key := range schema.AllSources {
		parts[i] = fmt.Sprintf("%s=%.*f", key, schema.MethodPrecision, values[i])
	}
	return "recency" + sep + "independence weighting: " + strings.Join(parts, sep)
}
