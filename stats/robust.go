package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// MADConstant is the consistency constant that makes the median absolute
// deviation an unbiased estimator of the standard deviation for normally
// distributed data.
const MADConstant = 1.4826

// Median calculates the median of a slice.
func Median(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// RawMAD calculates the unscaled median absolute deviation:
// median(|x_i - median(x)|).
func RawMAD(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	center := Median(data)
	absDevs := make([]float64, len(data))
	for i, v := range data {
		absDevs[i] = math.Abs(v - center)
	}
	return Median(absDevs)
}

// MAD calculates the median absolute deviation scaled by MADConstant,
// a robust drop-in replacement for the standard deviation.
func MAD(data []float64) float64 {
	return MADConstant * RawMAD(data)
}

// TQuantile returns the quantile of the Student's-t distribution with df
// degrees of freedom at probability p (the inverse CDF). p must lie in
// (0, 1) and df must be positive.
func TQuantile(p, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return dist.Quantile(p)
}
