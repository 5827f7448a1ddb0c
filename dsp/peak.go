package dsp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Peak returns the index and value of the largest element of values.
// An empty slice yields (-1, NaN).
func Peak(values []float64) (int, float64) {
	if len(values) == 0 {
		return -1, math.NaN()
	}

	idx := floats.MaxIdx(values)
	return idx, values[idx]
}

// Median returns the median of values without modifying them.
// An empty slice yields NaN.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
