package ingest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/employee"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/ingest"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/metrics"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/database"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/export"
)

type IngestServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	metricsRepo  metrics.MetricsRepository
}

func NewIngestService(db *database.DB, employeeRepo employee.EmployeeRepository, metricsRepo metrics.MetricsRepository) ingest.IngestService {
	return &IngestServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		metricsRepo:  metricsRepo,
	}
}

// IngestFile implements ingest.IngestService. Rows are applied one by one
// with per-row commits: the first failing row aborts the batch and earlier
// rows stay persisted. The result's counters tell the caller how far a
// failed batch got.
func (s *IngestServiceImpl) IngestFile(ctx context.Context, filename string, file io.Reader) (ingest.Result, error) {
	columns, rows, err := parseFile(filename, file)
	if err != nil {
		return ingest.Result{}, err
	}

	result := ingest.Result{Columns: columns}

	for _, row := range rows {
		emp, _, err := s.employeeRepo.Upsert(ctx, employee.Employee{
			EmployeeID: row.EmployeeID,
			FullName:   row.FullName,
			Department: row.Department,
			Position:   row.Position,
		})
		if err != nil {
			return result, err
		}

		inserted, err := s.metricsRepo.Upsert(ctx, metrics.Metrics{
			EmployeeID: emp.ID,
			Raw:        row.Raw,
			Scores:     metrics.ComputeScores(row.Raw),
		})
		if err != nil {
			return result, err
		}

		result.Processed++
		if inserted {
			result.Inserted++
		} else {
			// Existing metrics record: the later row's values now stand and
			// the original upload values go into the duplicate report.
			result.Updated++
			result.Duplicates = append(result.Duplicates, row.Values)
		}
	}

	result.DuplicateCount = len(result.Duplicates)
	if len(result.Duplicates) > 0 {
		workbook, err := export.DuplicatesWorkbook(result.Columns, result.Duplicates)
		if err != nil {
			return result, fmt.Errorf("render duplicate report: %w", err)
		}
		result.DuplicateWorkbook = workbook
	}

	return result, nil
}

func fileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx:])
}
