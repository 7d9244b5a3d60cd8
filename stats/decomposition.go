package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goanomaly/timeseries"
)

// STLResult represents the result of a seasonal-trend decomposition.
// Components are additive: Original = Trend + Seasonal + Residual at
// every index.
type STLResult struct {
	Original *timeseries.Series
	Trend    *timeseries.Series
	Seasonal *timeseries.Series
	Residual *timeseries.Series
	Period   int
}

// DefaultRobustIters is the number of robustness iterations used by STL
// when the caller does not specify one.
const DefaultRobustIters = 2

// STL performs Seasonal and Trend decomposition using Loess-style smoothing
// with a periodic seasonal window. Robustness iterations downweight
// outlying points via Tukey's biweight so that anomalies do not distort
// the seasonal and trend estimates.
//
// The series must be free of missing and non-finite values and at least
// two full periods long.
func STL(series *timeseries.Series, period int, robustIters int) (*STLResult, error) {
	n := series.Len()
	if period < 1 {
		return nil, errors.New("stl: period must be positive")
	}
	if n < 2*period {
		return nil, errors.New("stl: series must span at least two full periods")
	}
	for _, v := range series.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New("stl: series contains non-finite values")
		}
	}

	if robustIters < 1 {
		robustIters = DefaultRobustIters
	}

	trend := make([]float64, n)
	seasonal := make([]float64, n)
	residual := make([]float64, n)
	weights := make([]float64, n)

	for i := range weights {
		weights[i] = 1.0
	}

	detrended := make([]float64, n)
	deseasonalized := make([]float64, n)

	for iter := 0; iter < robustIters; iter++ {
		// Step 1: Detrend
		floats.SubTo(detrended, series.Values, trend)

		// Step 2: Periodic seasonal window. Each cycle position gets the
		// median of its values, constant across all cycles, so a single
		// outlier cannot leak into its position's seasonal estimate.
		seasonalPattern := make([]float64, period)
		cycleValues := make([]float64, 0, n/period+1)
		for pos := 0; pos < period; pos++ {
			cycleValues = cycleValues[:0]
			for i := pos; i < n; i += period {
				cycleValues = append(cycleValues, detrended[i])
			}
			seasonalPattern[pos] = Median(cycleValues)
		}

		// Center seasonal so it carries no level
		meanSeasonal := floats.Sum(seasonalPattern) / float64(period)
		for i := range seasonalPattern {
			seasonalPattern[i] -= meanSeasonal
		}

		for i := 0; i < n; i++ {
			seasonal[i] = seasonalPattern[i%period]
		}

		// Step 3: Deseasonalize and smooth for trend
		floats.SubTo(deseasonalized, series.Values, seasonal)

		trendWindow := period
		if trendWindow%2 == 0 {
			trendWindow++
		}
		halfWindow := trendWindow / 2

		for i := 0; i < n; i++ {
			sum := 0.0
			weightSum := 0.0
			for j := -halfWindow; j <= halfWindow; j++ {
				idx := i + j
				if idx >= 0 && idx < n {
					w := weights[idx] * (1 - math.Abs(float64(j))/float64(halfWindow+1))
					sum += deseasonalized[idx] * w
					weightSum += w
				}
			}
			if weightSum > 0 {
				trend[i] = sum / weightSum
			}
		}

		// Step 4: Residual
		for i := 0; i < n; i++ {
			residual[i] = series.Values[i] - trend[i] - seasonal[i]
		}

		// Update biweight robustness weights for the next pass
		if iter < robustIters-1 {
			absResiduals := make([]float64, n)
			for i, r := range residual {
				absResiduals[i] = math.Abs(r)
			}
			h := 6 * Median(absResiduals)
			if h > 0 {
				for i := 0; i < n; i++ {
					u := math.Abs(residual[i]) / h
					if u < 1 {
						weights[i] = (1 - u*u) * (1 - u*u)
					} else {
						weights[i] = 0
					}
				}
			}
		}
	}

	return &STLResult{
		Original: series,
		Trend: &timeseries.Series{
			Timestamps:  series.Timestamps,
			Values:      trend,
			Name:        "trend",
			DateIndexed: series.DateIndexed,
		},
		Seasonal: &timeseries.Series{
			Timestamps:  series.Timestamps,
			Values:      seasonal,
			Name:        "seasonal",
			DateIndexed: series.DateIndexed,
		},
		Residual: &timeseries.Series{
			Timestamps:  series.Timestamps,
			Values:      residual,
			Name:        "residual",
			DateIndexed: series.DateIndexed,
		},
		Period: period,
	}, nil
}
