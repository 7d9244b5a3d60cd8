// Package stats provides robust statistics and decomposition for time series.
//
// This package includes the robust statistical primitives used by the
// S-H-ESD detector (median, median absolute deviation, Student's-t
// quantiles), a robust STL-style seasonal-trend decomposition, and
// autocorrelation-based seasonal period estimation.
//
// # Robust Statistics
//
// Robust location and scale estimators resist distortion by the very
// outliers a detector is hunting for:
//
//	center := stats.Median(values)
//	scale := stats.MAD(values)     // 1.4826 * median(|x - median|)
//	raw := stats.RawMAD(values)    // unscaled form
//
// Student's-t quantiles back the ESD critical values:
//
//	t := stats.TQuantile(0.975, 10) // inverse CDF, 10 degrees of freedom
//
// # Decomposition
//
// Decompose a seasonal series into trend, seasonal, and residual
// components (additive model, periodic seasonal window, biweight
// robustness iterations):
//
//	result, err := stats.STL(series, 24, stats.DefaultRobustIters)
//	// result.Trend, result.Seasonal, result.Residual
//
// # Period Estimation
//
// Suggest a seasonal period from the autocorrelation function:
//
//	period, err := stats.EstimatePeriod(series, 0)
//
//	acf := stats.ACF(series, 48) // raw autocorrelations, lags 0..48
package stats
