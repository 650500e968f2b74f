package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/report"
)

var sampleRows = []report.Row{
	{EmployeeName: "Ada Lovelace", ProductivityScore: 37.5, QualityScore: 88.33, TimelinessScore: 90, TotalScore: 68.5},
	{EmployeeName: "Grace Hopper", ProductivityScore: 60, QualityScore: 90, TimelinessScore: 80, TotalScore: 75},
}

func TestMetricsPDF(t *testing.T) {
	data, err := MetricsPDF(report.CategoryEmployees, sampleRows)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 500)
}

func TestMetricsPDF_Empty(t *testing.T) {
	data, err := MetricsPDF(report.CategoryEmployees, nil)
	require.NoError(t, err)

	// Still a valid document: banner, count line, header row.
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestMetricsWorkbook(t *testing.T) {
	data, err := MetricsWorkbook(sampleRows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(MetricsSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "employee_name", rows[0][0])
	assert.Equal(t, "total_score", rows[0][4])
	assert.Equal(t, "Ada Lovelace", rows[1][0])
	assert.Equal(t, "75", rows[2][4])
}

func TestDuplicatesWorkbook(t *testing.T) {
	columns := []string{"employee_id", "full_name", "tasks_completed"}
	dupes := [][]string{
		{"EMP001", "Ada Lovelace", "25"},
		{"EMP007", "Grace Hopper", "12"},
	}

	data, err := DuplicatesWorkbook(columns, dupes)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, dupes[0], rows[1])
	assert.Equal(t, dupes[1], rows[2])
}
