package report

import "context"

// ReportService renders and exports scored metrics.
type ReportService interface {
	// List returns report rows for a category, optionally truncated to the
	// first count rows. Only the employees category is backed by a model;
	// the others return ErrCategoryUnavailable.
	List(ctx context.Context, category Category, count *int) ([]Row, error)

	// Summary aggregates all rows into dashboard averages.
	Summary(ctx context.Context) (Summary, error)

	// Top returns the n highest-scoring employees, storage order on ties.
	Top(ctx context.Context, n int) ([]TopRow, error)

	// RenderPDF renders rows as the category's PDF report document.
	RenderPDF(ctx context.Context, category Category, count *int) ([]byte, error)

	// Deliver renders the PDF and spreadsheet reports and emails both to the
	// recipient. A log entry is appended only after a successful send.
	Deliver(ctx context.Context, req DeliverRequest) error

	// Logs returns the delivery audit trail, most recent first.
	Logs(ctx context.Context) ([]Log, error)
}
