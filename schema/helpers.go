package schema

import "math"

// Round rounds v half away from zero to the given number of decimal places.
// NaN and infinities are returned unchanged.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// RoundedPtr rounds v and returns a pointer to it, or nil when v is NaN.
// It is used by exports that cannot carry NaN, such as JSON.
func RoundedPtr(v float64, places int) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	r := Round(v, places)
	return &r
}

// Scores returns the three source scores of a simple row in source order.
func (r SimpleRow) Scores() [3]float64 {
	return [3]float64{r.Score1, r.Score2, r.Score3}
}

// URLs returns the three source URLs of a simple row in source order.
func (r SimpleRow) URLs() [3]string {
	return [3]string{r.URL1, r.URL2, r.URL3}
}

// Scores returns the three source scores of a weighted row in source order.
func (r WeightedRow) Scores() [3]float64 {
	return [3]float64{r.Score1, r.Score2, r.Score3}
}

// Weights returns the three weights of a weighted row as a WeightTriple.
func (r WeightedRow) Weights() WeightTriple {
	return WeightTriple{W1: r.W1, W2: r.W2, W3: r.W3}
}
