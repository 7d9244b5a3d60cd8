package anomaly

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/goanomaly/stats"
	"github.com/sartorproj/goanomaly/timeseries"
)

// esdTest runs the iterative generalized ESD test on the residual series
// and returns the indices of confirmed anomalies in removal order.
//
// Each iteration removes the point with the largest robust deviation from
// the shrinking working set, then compares the iteration's test statistic
// against a Student's-t critical value. The confirmed count is the largest
// iteration index whose statistic exceeded its critical value: a late
// confirmation retroactively validates every earlier removal, so the loop
// never breaks on a single insignificant iteration. The only early exit is
// a zero MAD, which means the remaining residual carries no signal.
func esdTest(residual *timeseries.Series, opts *Options) ([]int, error) {
	n := residual.Len()

	maxOutliers := int(float64(n) * opts.K)
	if maxOutliers == 0 {
		return nil, fmt.Errorf("%w: outlier budget floor(%d*%g) is zero; not enough observations for k=%g",
			ErrInvalidConfiguration, n, opts.K, opts.K)
	}

	log := opts.logger()

	// Shrinking working set: residual values with their original indices
	values := make([]float64, n)
	copy(values, residual.Values)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	removed := make([]int, 0, maxOutliers)
	confirmed := 0

	for i := 1; i <= maxOutliers; i++ {
		center := stats.Median(values)

		ares := make([]float64, len(values))
		for j, v := range values {
			switch {
			case opts.OneTail && opts.UpperTail:
				ares[j] = v - center
			case opts.OneTail:
				ares[j] = center - v
			default:
				ares[j] = math.Abs(v - center)
			}
		}

		scale := stats.MAD(values)
		if scale == 0 {
			// Flat residual: no scale left to test against
			if log != nil {
				log.WithField("iteration", i).Info("zero residual scale, stopping early")
			}
			break
		}

		// First occurrence wins ties: strict > keeps the earliest index
		maxIdx := 0
		r := ares[0] / scale
		for j := 1; j < len(ares); j++ {
			if a := ares[j] / scale; a > r {
				r = a
				maxIdx = j
			}
		}

		removed = append(removed, indices[maxIdx])
		values = append(values[:maxIdx], values[maxIdx+1:]...)
		indices = append(indices[:maxIdx], indices[maxIdx+1:]...)

		var p float64
		if opts.OneTail {
			p = 1 - opts.Alpha/float64(n-i+1)
		} else {
			p = 1 - opts.Alpha/float64(2*(n-i+1))
		}

		df := float64(n - i - 1)
		if df < 1 {
			break
		}
		t := stats.TQuantile(p, df)
		lambda := t * float64(n-i) / math.Sqrt((float64(n-i-1)+t*t)*float64(n-i+1))

		if r > lambda {
			confirmed = i
		}

		if log != nil {
			log.WithFields(logrus.Fields{
				"iteration": i,
				"max":       maxOutliers,
				"R":         r,
				"lambda":    lambda,
				"confirmed": confirmed,
			}).Info("esd iteration")
		}
	}

	return removed[:confirmed], nil
}
