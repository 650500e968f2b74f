package export

import (
	"fmt"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// MetricsSheetName is the worksheet reports are written to.
const MetricsSheetName = "Metrics"

// metricsHeader matches the tabular report's field order.
var metricsHeader = []string{
	"employee_name", "productivity_score", "quality_score", "timeliness_score", "total_score",
}

// MetricsWorkbook renders report rows as a single-sheet workbook.
func MetricsWorkbook(rows []report.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MetricsSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeHeader(f, MetricsSheetName, metricsHeader); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		values := []interface{}{
			row.EmployeeName, row.ProductivityScore, row.QualityScore, row.TimelinessScore, row.TotalScore,
		}
		if err := f.SetSheetRow(MetricsSheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("set row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// DuplicatesWorkbook renders duplicate upload rows using the original file's
// column order, one row per duplicate in encounter order.
func DuplicatesWorkbook(columns []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := writeHeader(f, sheet, columns); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("set row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, header []string) error {
	values := make([]interface{}, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return fmt.Errorf("set header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", end, bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	return nil
}
