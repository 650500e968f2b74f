package metrics

import "context"

type MetricsRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Metrics, error)
	// Create inserts a new metrics row; ErrMetricsExist when one is present.
	Create(ctx context.Context, m Metrics) (Metrics, error)
	// Upsert inserts or overwrites the row for m.EmployeeID and reports
	// whether an insert happened (false means an existing row was updated).
	Upsert(ctx context.Context, m Metrics) (inserted bool, err error)
	// List returns metrics joined with employee names in storage order.
	// limit nil means no limit.
	List(ctx context.Context, limit *int) ([]JoinedMetrics, error)
	// ListTopByFinalScore returns metrics ordered by final score descending,
	// ties broken by storage order.
	ListTopByFinalScore(ctx context.Context, limit int) ([]JoinedMetrics, error)
}

// JoinedMetrics is a metrics row carrying its employee's display name,
// the shape every report consumer works with.
type JoinedMetrics struct {
	Metrics
	EmployeeName string
}
