// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing univariate time
// series data, along with functions for data loading and basic statistics.
// A math.NaN() value marks a missing observation.
//
// # Creating a Series
//
// Create an ordinal time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Create a date-indexed series with explicit timestamps:
//
//	series, err := timeseries.NewWithTimestamps(timestamps, values)
//
// Date-indexed series report DateIndexed=true, which downstream consumers
// use to decide whether timestamps should be formatted for display.
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("data.csv", "count")
//
//	// Full control over parsing
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "timestamp",
//	    ValueColumn: "count",
//	    DateFormat:  "2006-01-02 15:04:05",
//	    HasHeader:   true,
//	    KeepMissing: true, // NA cells become NaN instead of dropped rows
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	median := series.Median()
//
// # Missing Values
//
// Inspect and remove missing observations:
//
//	if series.HasMissing() {
//	    mask := series.MissingMask()
//	    clean := series.DropMissing()
//	    _ = mask
//	    _ = clean
//	}
package timeseries
