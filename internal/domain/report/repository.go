package report

import (
	"context"
	"time"
)

// LogRepository appends report-delivery audit records.
type LogRepository interface {
	Append(ctx context.Context, email string, category Category, sentAt time.Time) (Log, error)
	List(ctx context.Context) ([]Log, error)
}
