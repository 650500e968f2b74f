package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/ingest"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/metrics"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

// parseFile reads an upload into header + rows. Only .csv and .xlsx are
// accepted; anything else is rejected before a byte is parsed.
func parseFile(filename string, file io.Reader) ([]string, []ingest.Row, error) {
	switch fileExtension(filename) {
	case ".csv":
		return parseCSV(file)
	case ".xlsx":
		return parseXLSX(file)
	default:
		return nil, nil, ingest.ErrUnsupportedFormat
	}
}

func parseCSV(file io.Reader) ([]string, []ingest.Row, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return parseRecords(records)
}

func parseXLSX(file io.Reader) ([]string, []ingest.Row, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	// First sheet only, matching the upload contract.
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read worksheet: %w", err)
	}

	return parseRecords(rows)
}

func parseRecords(records [][]string) ([]string, []ingest.Row, error) {
	if len(records) == 0 {
		return nil, nil, ingest.ErrEmptyFile
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	var errs validator.ValidationErrors
	for _, col := range ingest.Columns {
		if _, ok := index[col]; !ok {
			errs = append(errs, validator.ValidationError{
				Field:   col,
				Message: "required column is missing",
			})
		}
	}
	if len(errs) > 0 {
		return nil, nil, errs
	}

	if len(records) == 1 {
		return nil, nil, ingest.ErrEmptyFile
	}

	rows := make([]ingest.Row, 0, len(records)-1)
	for i, record := range records[1:] {
		// Data rows are numbered from 2: row 1 is the header.
		row, err := parseRow(index, record, i+2)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

func parseRow(index map[string]int, record []string, lineNo int) (ingest.Row, error) {
	cell := func(col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var errs validator.ValidationErrors
	field := func(col string) string { return fmt.Sprintf("row %d: %s", lineNo, col) }

	parseInt := func(col string) int {
		v, err := strconv.Atoi(cell(col))
		if err != nil {
			// Spreadsheet tools often render integers as "8.0".
			if f, ferr := strconv.ParseFloat(cell(col), 64); ferr == nil && f == float64(int(f)) {
				return int(f)
			}
			errs = append(errs, validator.ValidationError{
				Field:   field(col),
				Message: "must be an integer",
			})
			return 0
		}
		return v
	}
	parseFloat := func(col string) float64 {
		v, err := strconv.ParseFloat(cell(col), 64)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field(col),
				Message: "must be a number",
			})
			return 0
		}
		return v
	}

	row := ingest.Row{
		EmployeeID: cell("employee_id"),
		FullName:   cell("full_name"),
		Department: cell("department"),
		Position:   cell("position"),
	}

	for _, col := range []struct {
		name  string
		value string
	}{
		{"employee_id", row.EmployeeID},
		{"full_name", row.FullName},
		{"department", row.Department},
		{"position", row.Position},
	} {
		if validator.IsEmpty(col.value) {
			errs = append(errs, validator.ValidationError{
				Field:   field(col.name),
				Message: col.name + " is required",
			})
		}
	}

	row.Raw = metrics.RawMetrics{
		HoursWorkedPerWeek:    parseInt("hrs_wrkd_per_week"),
		TasksCompleted:        parseInt("tasks_completed"),
		SalesMade:             parseInt("sales_made"),
		ErrorRate:             parseInt("error_rate"),
		CustomerRating:        parseFloat("customer_rating"),
		ReturnsOrComplaints:   parseInt("returns_or_complaints"),
		DeadlinesMet:          parseInt("deadlines_met"),
		TotalDeadlines:        parseInt("total_deadlines"),
		ProjectCompletionTime: parseInt("project_cmple_times"),
		TargetCompletionTime:  parseInt("target_cmple_times"),
	}

	if len(errs) > 0 {
		return ingest.Row{}, errs
	}

	for _, rangeErr := range metrics.ValidateRaw(row.Raw) {
		errs = append(errs, validator.ValidationError{
			Field:   fmt.Sprintf("row %d: %s", lineNo, rangeErr.Field),
			Message: rangeErr.Message,
		})
	}
	if len(errs) > 0 {
		return ingest.Row{}, errs
	}

	// Preserve the original cells in the file's column order for the
	// duplicate report.
	row.Values = make([]string, len(record))
	for i, v := range record {
		row.Values[i] = strings.TrimSpace(v)
	}

	return row, nil
}
