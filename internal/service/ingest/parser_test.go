package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/ingest"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/validator"
)

const csvHeader = "employee_id,full_name,department,position,hrs_wrkd_per_week,tasks_completed,sales_made,error_rate,customer_rating,returns_or_complaints,deadlines_met,total_deadlines,project_cmple_times,target_cmple_times"

func TestParseFile_CSV(t *testing.T) {
	data := csvHeader + "\n" +
		"EMP001,Ada Lovelace,Engineering,Analyst,40,20,10,5,4.0,2,8,10,5,5\n" +
		"EMP002,Grace Hopper,Engineering,Lead,38,15,0,2,4.8,0,10,10,4,5\n"

	columns, rows, err := parseFile("metrics.csv", strings.NewReader(data))
	require.NoError(t, err)

	assert.Len(t, columns, 14)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "EMP001", first.EmployeeID)
	assert.Equal(t, "Ada Lovelace", first.FullName)
	assert.Equal(t, "Engineering", first.Department)
	assert.Equal(t, "Analyst", first.Position)
	assert.Equal(t, 40, first.Raw.HoursWorkedPerWeek)
	assert.Equal(t, 20, first.Raw.TasksCompleted)
	assert.Equal(t, 4.0, first.Raw.CustomerRating)
	assert.Equal(t, 5, first.Raw.TargetCompletionTime)
	// Original cells survive in file order for the duplicate report.
	assert.Equal(t, "EMP001", first.Values[0])
	assert.Equal(t, "4.0", first.Values[8])
}

func TestParseFile_CSV_ShuffledColumns(t *testing.T) {
	// Column order is the uploader's choice; only presence is required.
	data := "full_name,employee_id,position,department,tasks_completed,hrs_wrkd_per_week,sales_made,error_rate,customer_rating,returns_or_complaints,deadlines_met,total_deadlines,project_cmple_times,target_cmple_times\n" +
		"Ada Lovelace,EMP001,Analyst,Engineering,20,40,10,5,4.0,2,8,10,5,5\n"

	_, rows, err := parseFile("metrics.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "EMP001", rows[0].EmployeeID)
	assert.Equal(t, "Ada Lovelace", rows[0].FullName)
	assert.Equal(t, 40, rows[0].Raw.HoursWorkedPerWeek)
	assert.Equal(t, 20, rows[0].Raw.TasksCompleted)
}

func TestParseFile_CSV_MissingColumn(t *testing.T) {
	data := "employee_id,full_name,department,position\nEMP001,Ada,Eng,Analyst\n"

	_, _, err := parseFile("metrics.csv", strings.NewReader(data))
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "hrs_wrkd_per_week")
	assert.Contains(t, details, "customer_rating")
	assert.NotContains(t, details, "employee_id")
}

func TestParseFile_CSV_BadNumber(t *testing.T) {
	data := csvHeader + "\n" +
		"EMP001,Ada Lovelace,Engineering,Analyst,forty,20,10,5,4.0,2,8,10,5,5\n"

	_, _, err := parseFile("metrics.csv", strings.NewReader(data))
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "row 2: hrs_wrkd_per_week")
}

func TestParseFile_CSV_OutOfRange(t *testing.T) {
	data := csvHeader + "\n" +
		"EMP001,Ada Lovelace,Engineering,Analyst,200,20,10,5,4.0,2,8,10,5,5\n"

	_, _, err := parseFile("metrics.csv", strings.NewReader(data))
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "row 2: hrs_wrkd_per_week")
}

func TestParseFile_CSV_MissingIdentity(t *testing.T) {
	data := csvHeader + "\n" +
		",Ada Lovelace,Engineering,Analyst,40,20,10,5,4.0,2,8,10,5,5\n"

	_, _, err := parseFile("metrics.csv", strings.NewReader(data))
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "row 2: employee_id")
}

func TestParseFile_CSV_HeaderOnly(t *testing.T) {
	_, _, err := parseFile("metrics.csv", strings.NewReader(csvHeader+"\n"))
	assert.ErrorIs(t, err, ingest.ErrEmptyFile)
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	for _, name := range []string{"metrics.txt", "metrics.pdf", "metrics"} {
		_, _, err := parseFile(name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ingest.ErrUnsupportedFormat, "filename %q", name)
	}
}

func TestParseFile_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := strings.Split(csvHeader, ",")
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &headerRow))

	dataRow := []interface{}{"EMP003", "Mary Jackson", "Aero", "Engineer", 40, 12, 3, 8, 4.2, 1, 7, 9, 6, 5}
	require.NoError(t, f.SetSheetRow(sheet, "A2", &dataRow))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	columns, rows, err := parseFile("metrics.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Len(t, columns, 14)
	require.Len(t, rows, 1)
	assert.Equal(t, "EMP003", rows[0].EmployeeID)
	assert.Equal(t, 40, rows[0].Raw.HoursWorkedPerWeek)
	assert.Equal(t, 4.2, rows[0].Raw.CustomerRating)
	assert.Equal(t, 9, rows[0].Raw.TotalDeadlines)
}
