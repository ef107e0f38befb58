package report

import "errors"

// Sentinel errors returned by the report generator.
// Callers should use errors.Is() to check for these.
var (
	// ErrNoData indicates Generate was called with nil report data.
	ErrNoData = errors.New("report: no data")
)
