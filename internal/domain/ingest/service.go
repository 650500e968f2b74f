package ingest

import (
	"context"
	"io"
)

// IngestService reconciles a bulk upload against employee and metrics
// storage. Rows are processed strictly in order; the first failing row
// aborts the batch and rows already applied stay committed.
type IngestService interface {
	IngestFile(ctx context.Context, filename string, file io.Reader) (Result, error)
}
