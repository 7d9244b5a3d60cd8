package stats

import (
	"math"
	"testing"

	"github.com/sartorproj/goanomaly/timeseries"
)

// seasonalSeries builds a sine-seasonal series with a linear trend.
func seasonalSeries(n, period int) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = 10 + 0.05*float64(i) +
			5*math.Sin(2*math.Pi*float64(i)/float64(period))
	}
	return timeseries.New(values)
}

func TestSTLAdditivity(t *testing.T) {
	series := seasonalSeries(96, 24)

	result, err := STL(series, 24, DefaultRobustIters)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i < series.Len(); i++ {
		sum := result.Trend.Values[i] + result.Seasonal.Values[i] + result.Residual.Values[i]
		if math.Abs(sum-series.Values[i]) > 1e-9 {
			t.Errorf("Components do not sum to original at index %d: %f vs %f",
				i, sum, series.Values[i])
		}
	}
}

func TestSTLSeasonalIsPeriodic(t *testing.T) {
	period := 12
	series := seasonalSeries(72, period)

	result, err := STL(series, period, DefaultRobustIters)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Periodic seasonal window: identical value at every cycle position
	for i := period; i < series.Len(); i++ {
		if math.Abs(result.Seasonal.Values[i]-result.Seasonal.Values[i-period]) > 1e-12 {
			t.Errorf("Seasonal component not periodic at index %d", i)
		}
	}
}

func TestSTLSeasonalCentered(t *testing.T) {
	period := 12
	series := seasonalSeries(72, period)

	result, err := STL(series, period, DefaultRobustIters)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sum := 0.0
	for _, v := range result.Seasonal.Values[:period] {
		sum += v
	}
	if math.Abs(sum/float64(period)) > 1e-9 {
		t.Errorf("Seasonal pattern not centered, mean %f", sum/float64(period))
	}
}

func TestSTLCapturesSeasonality(t *testing.T) {
	period := 24
	series := seasonalSeries(120, period)

	result, err := STL(series, period, DefaultRobustIters)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Residual of a clean seasonal+trend series should be small relative
	// to the seasonal amplitude (5.0); edge windows are the loosest fit
	for i, r := range result.Residual.Values {
		if math.Abs(r) > 1.5 {
			t.Errorf("Residual too large at index %d: %f", i, r)
		}
	}
}

func TestSTLRobustToSpike(t *testing.T) {
	period := 24
	series := seasonalSeries(120, period)
	series.Values[60] += 100 // single large spike

	result, err := STL(series, period, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The spike must land in the residual, not the seasonal component
	if math.Abs(result.Residual.Values[60]) < 50 {
		t.Errorf("Spike absorbed by trend/seasonal, residual only %f",
			result.Residual.Values[60])
	}
	for i := 0; i < period; i++ {
		if math.Abs(result.Seasonal.Values[i]) > 20 {
			t.Errorf("Seasonal pattern distorted by spike at position %d: %f",
				i, result.Seasonal.Values[i])
		}
	}
}

func TestSTLTooShort(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3, 4, 5})
	if _, err := STL(series, 4, 2); err == nil {
		t.Error("Expected error for series shorter than two periods")
	}
}

func TestSTLInvalidPeriod(t *testing.T) {
	series := seasonalSeries(48, 12)
	if _, err := STL(series, 0, 2); err == nil {
		t.Error("Expected error for non-positive period")
	}
}

func TestSTLNonFinite(t *testing.T) {
	series := seasonalSeries(48, 12)
	series.Values[10] = math.NaN()
	if _, err := STL(series, 12, 2); err == nil {
		t.Error("Expected error for NaN input")
	}

	series = seasonalSeries(48, 12)
	series.Values[10] = math.Inf(1)
	if _, err := STL(series, 12, 2); err == nil {
		t.Error("Expected error for Inf input")
	}
}

func TestACFLagZero(t *testing.T) {
	series := seasonalSeries(60, 12)
	acf := ACF(series, 10)
	if acf == nil {
		t.Fatal("ACF returned nil")
	}
	if math.Abs(acf[0]-1.0) > 1e-10 {
		t.Errorf("ACF at lag 0 should be 1, got %f", acf[0])
	}
}

func TestACFConstantSeries(t *testing.T) {
	series := timeseries.New([]float64{3, 3, 3, 3, 3})
	if ACF(series, 3) != nil {
		t.Error("Expected nil ACF for zero-variance series")
	}
}

func TestEstimatePeriod(t *testing.T) {
	period := 12
	values := make([]float64, 120)
	for i := range values {
		values[i] = 5 * math.Sin(2*math.Pi*float64(i)/float64(period))
	}
	series := timeseries.New(values)

	got, err := EstimatePeriod(series, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != period {
		t.Errorf("Expected period %d, got %d", period, got)
	}
}

func TestEstimatePeriodNoSeasonality(t *testing.T) {
	// Strictly increasing trend has monotonically decaying ACF, no peak
	values := make([]float64, 60)
	for i := range values {
		values[i] = float64(i)
	}
	if _, err := EstimatePeriod(timeseries.New(values), 0); err == nil {
		t.Error("Expected error for non-seasonal series")
	}
}

func TestEstimatePeriodTooShort(t *testing.T) {
	if _, err := EstimatePeriod(timeseries.New([]float64{1, 2}), 0); err == nil {
		t.Error("Expected error for short series")
	}
}
