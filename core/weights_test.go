package core

import (
	"math"
	"testing"

	"github.com/huangsam/concord/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultWeighting() [3]SourceWeighting {
	return WeightingFor(
		map[schema.SourceKey]int{schema.Source1: 2019, schema.Source2: 2025, schema.Source3: 2024},
		schema.DefaultAdjustments(),
	)
}

func TestRecency(t *testing.T) {
	tests := []struct {
		year, ref int
		want      float64
	}{
		{2025, 2025, 1.0},
		{2024, 2025, 0.5},
		{2019, 2025, 1.0 / 7.0},
		{2000, 2000, 1.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Recency(tt.year, tt.ref), 1e-12, "Recency(%d, %d)", tt.year, tt.ref)
	}
}

func TestComputeWeightsDefaults(t *testing.T) {
	w, err := ComputeWeights(defaultWeighting(), 2025)
	require.NoError(t, err)

	// raw weights 0.1, 1.0 and 0.3 sum to 1.4
	assert.InDelta(t, 0.1/1.4, w.W1, 1e-12)
	assert.InDelta(t, 1.0/1.4, w.W2, 1e-12)
	assert.InDelta(t, 0.3/1.4, w.W3, 1e-12)
	assert.InDelta(t, 1.0, w.Sum(), 1e-12)
	assert.Greater(t, w.W2, w.W3)
	assert.Greater(t, w.W3, w.W1)
}

func TestComputeWeightsSameYearEqualAdjustments(t *testing.T) {
	params := WeightingFor(
		map[schema.SourceKey]int{schema.Source1: 2020, schema.Source2: 2020, schema.Source3: 2020},
		map[schema.SourceKey]float64{schema.Source1: 0.5, schema.Source2: 0.5, schema.Source3: 0.5},
	)
	w, err := ComputeWeights(params, 2024)
	require.NoError(t, err)
	for _, v := range w.Values() {
		assert.InDelta(t, 1.0/3.0, v, 1e-12)
	}
}

func TestComputeWeightsZeroAdjustmentDropsSource(t *testing.T) {
	params := defaultWeighting()
	params[0].Adjustment = 0
	w, err := ComputeWeights(params, 2025)
	require.NoError(t, err)
	assert.Zero(t, w.W1)
	assert.InDelta(t, 1.0, w.Sum(), 1e-12)
}

func TestComputeWeightsInvalidYear(t *testing.T) {
	tests := []struct {
		name   string
		offset int // source3 year relative to the reference year
	}{
		{"one year ahead", 1},
		{"far ahead", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := defaultWeighting()
			params[2].Year = 2025 + tt.offset

			_, err := ComputeWeights(params, 2025)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidYear)

			var yearErr *InvalidYearError
			require.ErrorAs(t, err, &yearErr)
			assert.Equal(t, schema.Source3, yearErr.Source)
			assert.Equal(t, 2025+tt.offset, yearErr.SourceYear)
			assert.Equal(t, 2025, yearErr.ReferenceYear)
		})
	}
}

func TestComputeWeightsDegenerate(t *testing.T) {
	tests := []struct {
		name        string
		adjustments [3]float64
		source      schema.SourceKey
	}{
		{"all zero", [3]float64{0, 0, 0}, ""},
		{"negative", [3]float64{0.7, -1, 0.6}, schema.Source2},
		{"nan", [3]float64{math.NaN(), 1, 0.6}, schema.Source1},
		{"infinite", [3]float64{0.7, 1, math.Inf(1)}, schema.Source3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := defaultWeighting()
			for i := range params {
				params[i].Adjustment = tt.adjustments[i]
			}

			_, err := ComputeWeights(params, 2025)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDegenerateWeight)

			var degErr *DegenerateWeightError
			require.ErrorAs(t, err, &degErr)
			assert.Equal(t, tt.source, degErr.Source)
		})
	}
}

func TestMethodDescription(t *testing.T) {
	w, err := ComputeWeights(defaultWeighting(), 2025)
	require.NoError(t, err)

	got := MethodDescription(w, '⋮')
	assert.Equal(t, "recency⋮independence weighting: source1=0.071⋮source2=0.714⋮source3=0.214", got)
	assert.NotContains(t, got, ",")
}

func FuzzComputeWeights(f *testing.F) {
	f.Add(2019, 2025, 2024, 2025, 0.7, 1.0, 0.6)
	f.Add(2000, 2000, 2000, 2000, 0.0, 0.0, 1.0)
	f.Add(2030, 2020, 2020, 2025, 1.0, 1.0, 1.0)

	f.Fuzz(func(t *testing.T, y1, y2, y3, ref int, a1, a2, a3 float64) {
		params := [3]SourceWeighting{
			{Source: schema.Source1, Year: y1, Adjustment: a1},
			{Source: schema.Source2, Year: y2, Adjustment: a2},
			{Source: schema.Source3, Year: y3, Adjustment: a3},
		}
		w, err := ComputeWeights(params, ref)
		if err != nil {
			return
		}
		for _, v := range w.Values() {
			if math.IsNaN(v) || v < 0 || v > 1 {
				t.Fatalf("weight out of range: %v", w)
			}
		}
		if math.Abs(w.Sum()-1) > 1e-9 {
			t.Fatalf("weights do not sum to 1: %v", w)
		}
	})
}
