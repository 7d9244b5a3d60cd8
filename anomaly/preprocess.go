package anomaly

import (
	"fmt"
	"math"

	"github.com/sartorproj/goanomaly/stats"
	"github.com/sartorproj/goanomaly/timeseries"
)

// preprocessed is the Preprocessor's output: the deseasonalized residual
// the ESD tester operates on, the NA-free observed series it indexes into,
// and the expected-value series for downstream interpretation.
type preprocessed struct {
	residual *timeseries.Series
	observed *timeseries.Series
	expected *timeseries.Series
	labels   []string
}

// preprocess validates the input series and reduces it to a deseasonalized
// residual. Missing (NaN) values may only form a single leading and/or
// trailing run; they are dropped, never imputed.
func preprocess(series *timeseries.Series, opts *Options) (*preprocessed, error) {
	if opts.Period < 1 {
		return nil, fmt.Errorf("%w: period must be a positive number of observations per cycle", ErrInvalidInput)
	}

	if interiorMissing(series.MissingMask()) {
		return nil, fmt.Errorf("%w: series contains non-leading/non-trailing missing values", ErrInvalidInput)
	}
	clean := series.DropMissing()

	if clean.Len() < 2*opts.Period {
		return nil, fmt.Errorf("%w: need at least %d observations (two periods), got %d",
			ErrInvalidInput, 2*opts.Period, clean.Len())
	}

	globalMedian := stats.Median(clean.Values)

	if !opts.UseDecomp {
		residual := make([]float64, clean.Len())
		for i, v := range clean.Values {
			residual[i] = v - globalMedian
		}
		return &preprocessed{
			residual: &timeseries.Series{
				Timestamps:  clean.Timestamps,
				Values:      residual,
				Name:        "residual",
				DateIndexed: clean.DateIndexed,
			},
			observed: clean,
		}, nil
	}

	decomp, err := stats.STL(clean, opts.Period, stats.DefaultRobustIters)
	if err != nil {
		return nil, err
	}

	residual := make([]float64, clean.Len())
	expected := make([]float64, clean.Len())
	for i, v := range clean.Values {
		residual[i] = v - decomp.Seasonal.Values[i] - globalMedian
		expected[i] = math.Trunc(decomp.Trend.Values[i] + decomp.Seasonal.Values[i])
	}

	pre := &preprocessed{
		residual: &timeseries.Series{
			Timestamps:  clean.Timestamps,
			Values:      residual,
			Name:        "residual",
			DateIndexed: clean.DateIndexed,
		},
		observed: clean,
		expected: &timeseries.Series{
			Timestamps:  clean.Timestamps,
			Values:      expected,
			Name:        "expected",
			DateIndexed: clean.DateIndexed,
		},
	}
	if clean.DateIndexed {
		pre.labels = pre.expected.FormatTimestamps()
	}
	return pre, nil
}

// interiorMissing reports whether missing values occur anywhere but a
// single leading and/or trailing run. Bracketing the mask with synthetic
// missing sentinels makes the test a run count: three or fewer maximal
// runs means the pattern is one of none, leading, trailing, or both.
func interiorMissing(mask []bool) bool {
	runs := 1
	prev := true // leading sentinel
	for _, m := range mask {
		if m != prev {
			runs++
			prev = m
		}
	}
	if !prev { // trailing sentinel
		runs++
	}
	return runs > 3
}
