package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goanomaly/timeseries"
)

// ACF calculates the autocorrelation function for the given series.
// Returns ACF values for lags 0 to maxLag.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := stat.Mean(series.Values, nil)
	variance := 0.0
	for _, v := range series.Values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (series.Values[i] - mean) * (series.Values[i-k] - mean)
		}
		acf[k] = sum / variance
	}

	return acf
}

// minPeriodACF is the autocorrelation a lag must reach before it is
// considered a plausible seasonal period.
const minPeriodACF = 0.2

// EstimatePeriod suggests a seasonal period for the series by locating the
// strongest local peak of the autocorrelation function. maxLag bounds the
// search; a maxLag <= 0 searches up to half the series length. Returns an
// error when the series shows no usable periodic structure.
//
// The suggestion is a starting point for exploration. Detection still
// requires an explicit period from the caller.
func EstimatePeriod(series *timeseries.Series, maxLag int) (int, error) {
	n := series.Len()
	if maxLag <= 0 {
		maxLag = n / 2
	}
	if maxLag < 2 {
		return 0, errors.New("period: series too short to estimate a period")
	}

	acf := ACF(series, maxLag)
	if acf == nil {
		return 0, errors.New("period: series has zero variance")
	}

	best := 0
	bestVal := minPeriodACF
	for lag := 2; lag < len(acf)-1; lag++ {
		// Local peak of the ACF
		if acf[lag] > acf[lag-1] && acf[lag] >= acf[lag+1] && acf[lag] > bestVal {
			best = lag
			bestVal = acf[lag]
		}
	}

	if best == 0 {
		return 0, errors.New("period: no significant periodicity found")
	}
	return best, nil
}
