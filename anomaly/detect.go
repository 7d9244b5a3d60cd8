package anomaly

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/goanomaly/timeseries"
)

// Anomaly is a single detected point anomaly.
type Anomaly struct {
	// Timestamp identifies the anomalous observation.
	Timestamp time.Time
	// Index is the observation's position in the NA-free input series.
	Index int
	// Value is the observed value at the anomaly.
	Value float64
}

// Result is the output of Detect.
type Result struct {
	// Anomalies lists the confirmed anomalies in removal order. Each
	// timestamp appears at most once.
	Anomalies []Anomaly

	// Expected is the seasonal expectation, trunc(trend + seasonal) per
	// observation, for plotting expected vs actual. Nil when UseDecomp
	// is disabled.
	Expected *timeseries.Series

	// ExpectedLabels holds display-formatted timestamps for Expected.
	// Populated only for date-indexed input.
	ExpectedLabels []string
}

// Timestamps returns the anomaly timestamps in removal order.
func (r *Result) Timestamps() []time.Time {
	ts := make([]time.Time, len(r.Anomalies))
	for i, a := range r.Anomalies {
		ts[i] = a.Timestamp
	}
	return ts
}

// Detect runs S-H-ESD anomaly detection on the series: robust seasonal
// decomposition reduces the series to a deseasonalized residual, then an
// iterative generalized ESD test flags up to floor(n*K) anomalous points.
//
// The call is a pure in-memory transform with no retained state, so
// concurrent calls with distinct series are safe. Callers receive either
// a complete Result or an error, never partial output.
func Detect(series *timeseries.Series, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	pre, err := preprocess(series, opts)
	if err != nil {
		return nil, err
	}

	if log := opts.logger(); log != nil {
		log.WithFields(logrus.Fields{
			"observations": pre.residual.Len(),
			"period":       opts.Period,
			"k":            opts.K,
			"alpha":        opts.Alpha,
		}).Info("starting esd test")
	}

	confirmed, err := esdTest(pre.residual, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Anomalies:      make([]Anomaly, len(confirmed)),
		Expected:       pre.expected,
		ExpectedLabels: pre.labels,
	}
	for i, idx := range confirmed {
		result.Anomalies[i] = Anomaly{
			Timestamp: pre.observed.Timestamps[idx],
			Index:     idx,
			Value:     pre.observed.Values[idx],
		}
	}
	return result, nil
}
