package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	if s.DateIndexed {
		t.Error("Ordinal series should not be date-indexed")
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}

	// Synthetic timestamps are hourly from the fixed epoch
	if !s.Timestamps[0].Equal(Epoch) {
		t.Errorf("Expected first timestamp %v, got %v", Epoch, s.Timestamps[0])
	}
	if !s.Timestamps[1].Equal(Epoch.Add(time.Hour)) {
		t.Errorf("Expected hourly spacing, got %v", s.Timestamps[1])
	}
}

func TestNewDeterministic(t *testing.T) {
	a := New([]float64{1, 2, 3})
	b := New([]float64{1, 2, 3})

	for i := range a.Timestamps {
		if !a.Timestamps[i].Equal(b.Timestamps[i]) {
			t.Errorf("Ordinal timestamps differ at index %d: %v vs %v",
				i, a.Timestamps[i], b.Timestamps[i])
		}
	}
}

func TestNewWithTimestamps(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{base, base.Add(time.Hour), base.Add(2 * time.Hour)}
	values := []float64{1, 2, 3}

	s, err := NewWithTimestamps(timestamps, values)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !s.DateIndexed {
		t.Error("Explicit-timestamp series should be date-indexed")
	}
}

func TestNewWithTimestampsLengthMismatch(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := NewWithTimestamps([]time.Time{base}, []float64{1, 2})
	if err == nil {
		t.Error("Expected error for mismatched lengths")
	}
}

func TestNewWithTimestampsNotIncreasing(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Duplicate timestamp
	_, err := NewWithTimestamps([]time.Time{base, base}, []float64{1, 2})
	if err == nil {
		t.Error("Expected error for duplicate timestamps")
	}

	// Decreasing timestamps
	_, err = NewWithTimestamps(
		[]time.Time{base.Add(time.Hour), base}, []float64{1, 2})
	if err == nil {
		t.Error("Expected error for decreasing timestamps")
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestVarianceStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	if math.Abs(s.Variance()-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, s.Variance())
	}
	if math.Abs(s.Std()-math.Sqrt(expected)) > 1e-10 {
		t.Errorf("Expected std %f, got %f", math.Sqrt(expected), s.Std())
	}
}

func TestMinMax(t *testing.T) {
	s := New([]float64{5, 2, 8, 1, 9, 3})

	if s.Min() != 1 {
		t.Errorf("Expected min 1, got %f", s.Min())
	}
	if s.Max() != 9 {
		t.Errorf("Expected max 9, got %f", s.Max())
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"odd", []float64{1, 3, 5}, 3.0},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{5}, 5.0},
		{"unsorted", []float64{5, 1, 3}, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Median()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected median %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestMissing(t *testing.T) {
	s := New([]float64{math.NaN(), 1, 2, 3, math.NaN()})

	if !s.HasMissing() {
		t.Error("Expected HasMissing to be true")
	}

	mask := s.MissingMask()
	expected := []bool{true, false, false, false, true}
	for i, m := range mask {
		if m != expected[i] {
			t.Errorf("Expected mask %v at index %d, got %v", expected[i], i, m)
		}
	}

	clean := s.DropMissing()
	if clean.Len() != 3 {
		t.Fatalf("Expected 3 values after DropMissing, got %d", clean.Len())
	}
	for i, v := range []float64{1, 2, 3} {
		if clean.Values[i] != v {
			t.Errorf("Expected value %f at index %d, got %f", v, i, clean.Values[i])
		}
	}

	// Timestamps stay aligned with their values
	if !clean.Timestamps[0].Equal(s.Timestamps[1]) {
		t.Error("DropMissing did not keep timestamps aligned")
	}

	if New([]float64{1, 2}).HasMissing() {
		t.Error("Expected HasMissing to be false for complete series")
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})

	sub := s.Slice(1, 4)
	if sub.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", sub.Len())
	}
	if sub.Values[0] != 2 || sub.Values[2] != 4 {
		t.Errorf("Unexpected slice values: %v", sub.Values)
	}

	// Out-of-range bounds are clamped
	full := s.Slice(-1, 100)
	if full.Len() != 5 {
		t.Errorf("Expected clamped slice of length 5, got %d", full.Len())
	}

	empty := s.Slice(3, 3)
	if empty.Len() != 0 {
		t.Errorf("Expected empty slice, got length %d", empty.Len())
	}
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	s.Name = "original"

	c := s.Copy()
	c.Values[0] = 99

	if s.Values[0] != 1 {
		t.Error("Copy should not share backing storage")
	}
	if c.Name != "original" {
		t.Errorf("Expected copied name, got %q", c.Name)
	}
}

func TestFormatTimestamps(t *testing.T) {
	base := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	s, err := NewWithTimestamps(
		[]time.Time{base, base.Add(time.Hour)}, []float64{1, 2})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	labels := s.FormatTimestamps()
	if labels[0] != "2024-03-15 10:30:00" {
		t.Errorf("Unexpected label: %q", labels[0])
	}
	if labels[1] != "2024-03-15 11:30:00" {
		t.Errorf("Unexpected label: %q", labels[1])
	}
}
