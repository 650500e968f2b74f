package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/report"
)

// MetricsPDF renders report rows as a tabular PDF document: a title banner,
// the category and record count, then a header row and one line per record
// with percentage-formatted scores. gofpdf's auto page break starts a new
// page whenever a row would cross the bottom margin.
func MetricsPDF(category report.Category, rows []report.Row) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s Metrics Report", category.Title()), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Report Category: %s", category), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Records Count: %d", len(rows)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	colWidths := []float64{70, 40, 40, 40}
	header := []string{"Employee Name", "Productivity", "Quality", "Timeliness"}

	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range header {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(colWidths[0], 7, row.EmployeeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, formatPercent(row.ProductivityScore), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, formatPercent(row.QualityScore), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, formatPercent(row.TimelinessScore), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
