package metrics

import "errors"

var (
	ErrMetricsExist    = errors.New("metrics for this employee already exist")
	ErrMetricsNotFound = errors.New("metrics not found")
)
