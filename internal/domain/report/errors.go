package report

import "errors"

var (
	ErrInvalidCategory     = errors.New("invalid category, choose from 'employees', 'projects', or 'departments'")
	ErrCategoryUnavailable = errors.New("metrics for this category are not available")
	ErrInvalidCount        = errors.New("count must be a positive integer")
	ErrNoData              = errors.New("no data available")
	ErrDeliveryFailed      = errors.New("failed to send report email")
)
