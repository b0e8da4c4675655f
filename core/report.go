package core

import (
	"math"

	"github.com/huangsam/concord/schema"
)

// Mean returns the arithmetic mean of the non-NaN values, or NaN when every value is NaN.
func Mean(values ...float64) float64 {
	sum := 0.0
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// WeightedScore returns w1*s1 + w2*s2 + w3*s3. Any NaN score makes the result NaN.
func WeightedScore(w schema.WeightTriple, s1, s2, s3 float64) float64 {
	return w.W1*s1 + w.W2*s2 + w.W3*s3
}

// BuildReports produces both report row sets from an alignment. Rows follow the
// alignment's country order, so the two reports always line up. Values are not
// rounded here.
func BuildReports(al schema.Alignment, w schema.WeightTriple, method string) ([]schema.SimpleRow, []schema.WeightedRow) {
	simple := make([]schema.SimpleRow, 0, len(al.Countries))
	weighted := make([]schema.WeightedRow, 0, len(al.Countries))

	for _, country := range al.Countries {
		r1 := al.Indexes[0][country]
		r2 := al.Indexes[1][country]
		r3 := al.Indexes[2][country]

		mean := Mean(r1.Score, r2.Score, r3.Score)

		simple = append(simple, schema.SimpleRow{
			Country: country,
			Score1:  r1.Score,
			Score2:  r2.Score,
			Score3:  r3.Score,
			Mean:    mean,
			URL1:    r1.SourceURL,
			URL2:    r2.SourceURL,
			URL3:    r3.SourceURL,
		})
		weighted = append(weighted, schema.WeightedRow{
			Country:  country,
			Score1:   r1.Score,
			Score2:   r2.Score,
			Score3:   r3.Score,
			Mean:     mean,
			Weighted: WeightedScore(w, r1.Score, r2.Score, r3.Score),
			W1:       w.W1,
			W2:       w.W2,
			W3:       w.W3,
			URL1:     r1.SourceURL,
			URL2:     r2.SourceURL,
			URL3:     r3.SourceURL,
			Method:   method,
		})
	}
	return simple, weighted
}
