package metrics

import "context"

type MetricsService interface {
	// Add records metrics for an employee, computing scores before storage.
	Add(ctx context.Context, req AddMetricsRequest) (Metrics, error)
	// GetByEmployee looks up metrics by the external employee id.
	GetByEmployee(ctx context.Context, employeeID string) (Metrics, error)
}
