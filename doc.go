// Package goanomaly provides Seasonal-Hybrid ESD anomaly detection for time series.
//
// GoAnomaly implements the S-H-ESD (Seasonal-Hybrid Extreme Studentized Deviate)
// method: a robust seasonal-trend decomposition removes periodic structure from
// a univariate series, then an iterative generalized ESD test on the residual
// decides how many and which points are anomalous. The approach follows
// Rosner's generalized ESD test with robust (median/MAD) statistics.
//
// # Features
//
//   - S-H-ESD point-anomaly detection for seasonal univariate series
//   - Robust STL-style decomposition (periodic seasonal window, biweight fitting)
//   - Robust statistics: median, MAD, Student's-t critical values
//   - Directional detection (positive-only, negative-only, or both tails)
//   - Expected-value series (trend + seasonal) for plotting actual vs expected
//   - Autocorrelation-based seasonal period estimation
//   - CSV loading for dated or ordinal series
//
// # Quick Start
//
// Detect anomalies in an hourly series with daily seasonality:
//
//	series := timeseries.New(values)
//	opts := anomaly.DefaultOptions()
//	opts.Period = 24
//	result, err := anomaly.Detect(series, opts)
//	for _, a := range result.Anomalies {
//	    fmt.Println(a.Timestamp, a.Value)
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - anomaly: the S-H-ESD detector (validation, preprocessing, ESD loop)
//   - stats: robust statistics, decomposition, period estimation
//   - timeseries: time series data structures and CSV utilities
//
// # References
//
//   - Rosner, B. (1983). Percentage Points for a Generalized ESD Many-Outlier Procedure
//   - Hochenbaum, Vallis & Kejariwal (2017). Automatic Anomaly Detection in the Cloud
//     via Statistical Learning
//   - Cleveland, R. B. et al. (1990). STL: A Seasonal-Trend Decomposition Procedure
//     Based on Loess
package goanomaly
