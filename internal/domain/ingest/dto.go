package ingest

import (
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/metrics"
)

// Columns is the required upload header. Uploads may order columns freely,
// but every one of these must be present.
var Columns = []string{
	"employee_id",
	"full_name",
	"department",
	"position",
	"hrs_wrkd_per_week",
	"tasks_completed",
	"sales_made",
	"error_rate",
	"customer_rating",
	"returns_or_complaints",
	"deadlines_met",
	"total_deadlines",
	"project_cmple_times",
	"target_cmple_times",
}

// Row is one parsed upload row. Values keeps the original cells in the
// file's column order so duplicate reports can echo the input back verbatim.
type Row struct {
	EmployeeID string
	FullName   string
	Department string
	Position   string
	Raw        metrics.RawMetrics
	Values     []string
}

// Result reports a completed ingestion. Duplicates holds the original cell
// values of rows whose employee already had metrics, in encounter order.
// DuplicateWorkbook is only rendered when Duplicates is non-empty.
type Result struct {
	Processed         int        `json:"processed"`
	Inserted          int        `json:"inserted"`
	Updated           int        `json:"updated"`
	Columns           []string   `json:"-"`
	Duplicates        [][]string `json:"-"`
	DuplicateCount    int        `json:"duplicate_count"`
	DuplicateWorkbook []byte     `json:"-"`
}

// DuplicateFilename is the attachment name for the duplicates workbook.
const DuplicateFilename = "duplicate_entries.xlsx"
