package timeseries

import (
	"errors"
	"math"
	"sort"
	"time"
)

// Epoch is the base timestamp assigned to ordinal series created with New.
// Using a fixed base keeps results reproducible across calls.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultTimestampFormat is the layout used when formatting timestamps of
// date-indexed series for display.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// Series represents a univariate time series with timestamps and values.
// A math.NaN() value marks a missing observation. DateIndexed reports
// whether the timestamps carry real calendar meaning; ordinal series built
// with New use synthetic hourly timestamps from Epoch.
type Series struct {
	Timestamps  []time.Time
	Values      []float64
	Name        string
	DateIndexed bool
}

// New creates an ordinal time series from values. Synthetic hourly
// timestamps starting at Epoch stand in for observation indices.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	for i := range timestamps {
		timestamps[i] = Epoch.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a date-indexed time series with explicit
// timestamps. Timestamps must be strictly increasing.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	for i := 1; i < len(timestamps); i++ {
		if !timestamps[i].After(timestamps[i-1]) {
			return nil, errors.New("timestamps must be strictly increasing")
		}
	}
	return &Series{
		Timestamps:  timestamps,
		Values:      values,
		DateIndexed: true,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// HasMissing reports whether the series contains any missing (NaN) values.
func (s *Series) HasMissing() bool {
	for _, v := range s.Values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// MissingMask returns a boolean mask with true at every missing (NaN) index.
func (s *Series) MissingMask() []bool {
	mask := make([]bool, len(s.Values))
	for i, v := range s.Values {
		mask[i] = math.IsNaN(v)
	}
	return mask
}

// DropMissing returns a copy of the series with all missing (NaN)
// observations removed, timestamps kept in alignment.
func (s *Series) DropMissing() *Series {
	values := make([]float64, 0, len(s.Values))
	timestamps := make([]time.Time, 0, len(s.Values))
	for i, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		values = append(values, v)
		timestamps = append(timestamps, s.Timestamps[i])
	}
	return &Series{
		Timestamps:  timestamps,
		Values:      values,
		Name:        s.Name,
		DateIndexed: s.DateIndexed,
	}
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{DateIndexed: s.DateIndexed, Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps:  timestamps,
		Values:      values,
		Name:        s.Name,
		DateIndexed: s.DateIndexed,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps:  timestamps,
		Values:      values,
		Name:        s.Name,
		DateIndexed: s.DateIndexed,
	}
}

// FormatTimestamp formats a single timestamp for display using
// DefaultTimestampFormat.
func FormatTimestamp(t time.Time) string {
	return t.Format(DefaultTimestampFormat)
}

// FormatTimestamps formats every timestamp in the series for display.
// Only meaningful for date-indexed series; ordinal series format their
// synthetic timestamps, which is rarely what a caller wants.
func (s *Series) FormatTimestamps() []string {
	labels := make([]string, len(s.Timestamps))
	for i, t := range s.Timestamps {
		labels[i] = FormatTimestamp(t)
	}
	return labels
}
