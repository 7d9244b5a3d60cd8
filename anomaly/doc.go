// Package anomaly implements Seasonal-Hybrid ESD point-anomaly detection.
//
// S-H-ESD combines a robust seasonal-trend decomposition with an iterative
// generalized Extreme Studentized Deviate test. The decomposition removes
// periodic structure; the test then repeatedly removes the most extreme
// residual point and compares its robust deviation statistic (median/MAD)
// against a Student's-t critical value. The anomaly count is the largest
// iteration index whose statistic exceeded its critical value, so a late
// significant iteration validates all earlier removals.
//
// # Usage
//
// Detect upper-tail anomalies in an hourly series with daily seasonality:
//
//	opts := anomaly.DefaultOptions()
//	opts.Period = 24
//	result, err := anomaly.Detect(series, opts)
//	if err != nil {
//	    // errors.Is(err, anomaly.ErrInvalidInput) etc.
//	}
//	for _, a := range result.Anomalies {
//	    fmt.Printf("%s: %.2f\n", a.Timestamp, a.Value)
//	}
//
// Detection direction is configurable:
//
//	opts.SetDirection(anomaly.DirectionBoth)     // two-tailed
//	opts.SetDirection(anomaly.DirectionNegative) // drops only
//
// # Input requirements
//
// The series must hold at least two full seasonal periods of observations.
// Missing values (NaN) may only appear as a single leading and/or trailing
// run; they are dropped before detection, never imputed. Violations return
// ErrInvalidInput before any statistics run.
//
// # Non-seasonal mode
//
// With Options.UseDecomp disabled the test runs on the raw values minus
// their median, skipping decomposition; no expected series is produced.
// A dedicated piecewise-median ESD variant is a possible future extension.
package anomaly
