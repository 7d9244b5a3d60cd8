package anomaly

import "errors"

// Sentinel errors returned by Detect. Wrap-aware callers can classify
// failures with errors.Is; everything else is a collaborator failure
// passed through unchanged (for example a decomposition error).
var (
	// ErrInvalidInput marks unusable input data: a missing period, too few
	// observations, or missing values in the interior of the series.
	ErrInvalidInput = errors.New("anomaly: invalid input")

	// ErrInvalidConfiguration marks detection settings the data cannot
	// support, such as a max-outlier budget that rounds to zero.
	ErrInvalidConfiguration = errors.New("anomaly: invalid configuration")
)
