package anomaly

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Direction constrains which side of the expected value counts as anomalous.
type Direction string

const (
	// DirectionPositive flags only values above the seasonal expectation.
	DirectionPositive Direction = "pos"
	// DirectionNegative flags only values below the seasonal expectation.
	DirectionNegative Direction = "neg"
	// DirectionBoth flags deviations on either side.
	DirectionBoth Direction = "both"
)

// Options holds configuration for S-H-ESD detection.
type Options struct {
	// Period is the number of observations per seasonal cycle. Required.
	Period int

	// K is the maximum fraction of the series that may be flagged as
	// anomalous, in (0, 1]. The outlier budget is floor(n*K).
	K float64

	// Alpha is the statistical significance level, in (0, 1).
	Alpha float64

	// UseDecomp controls whether seasonal decomposition runs. When false
	// the test operates on the raw values minus their median and no
	// expected series is produced.
	UseDecomp bool

	// OneTail restricts the test to a single tail; UpperTail selects
	// which one. With OneTail false, UpperTail is ignored and absolute
	// deviations are tested.
	OneTail   bool
	UpperTail bool

	// Verbose enables per-iteration progress logging. It never affects
	// the detection result.
	Verbose bool

	// Logger receives verbose progress output. Defaults to the logrus
	// standard logger when Verbose is set.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the default detection configuration: upper-tail
// one-sided detection with a 49% outlier budget at 5% significance.
// Period has no default and must be set by the caller.
func DefaultOptions() *Options {
	return &Options{
		K:         0.49,
		Alpha:     0.05,
		UseDecomp: true,
		OneTail:   true,
		UpperTail: true,
	}
}

// SetDirection maps a Direction onto the OneTail/UpperTail pair.
func (o *Options) SetDirection(d Direction) error {
	switch d {
	case DirectionPositive:
		o.OneTail = true
		o.UpperTail = true
	case DirectionNegative:
		o.OneTail = true
		o.UpperTail = false
	case DirectionBoth:
		o.OneTail = false
		o.UpperTail = true
	default:
		return fmt.Errorf("unknown direction %q", d)
	}
	return nil
}

// validate checks the purely numeric settings. Period and data-dependent
// constraints are checked against the series during preprocessing.
func (o *Options) validate() error {
	if o.K <= 0 || o.K > 1 {
		return fmt.Errorf("%w: k must be in (0, 1], got %g", ErrInvalidConfiguration, o.K)
	}
	if o.Alpha <= 0 || o.Alpha >= 1 {
		return fmt.Errorf("%w: alpha must be in (0, 1), got %g", ErrInvalidConfiguration, o.Alpha)
	}
	return nil
}

// logger returns the verbose progress sink, or nil when verbose logging
// is disabled.
func (o *Options) logger() logrus.FieldLogger {
	if !o.Verbose {
		return nil
	}
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
