package ingest

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/employee"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/metrics"
)

type fakeEmployeeRepo struct {
	byExternalID map[string]employee.Employee
	nextID       int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byExternalID: map[string]employee.Employee{}}
}

func (f *fakeEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	e, ok := f.byExternalID[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if _, ok := f.byExternalID[e.EmployeeID]; ok {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	f.nextID++
	e.ID = fmt.Sprintf("uuid-%d", f.nextID)
	f.byExternalID[e.EmployeeID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Upsert(ctx context.Context, e employee.Employee) (employee.Employee, bool, error) {
	if existing, ok := f.byExternalID[e.EmployeeID]; ok {
		e.ID = existing.ID
		f.byExternalID[e.EmployeeID] = e
		return e, false, nil
	}
	f.nextID++
	e.ID = fmt.Sprintf("uuid-%d", f.nextID)
	f.byExternalID[e.EmployeeID] = e
	return e, true, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.byExternalID))
	for _, e := range f.byExternalID {
		out = append(out, e)
	}
	return out, nil
}

type fakeMetricsRepo struct {
	byEmployeeID map[string]metrics.Metrics
	order        []string
	nextID       int64
}

func newFakeMetricsRepo() *fakeMetricsRepo {
	return &fakeMetricsRepo{byEmployeeID: map[string]metrics.Metrics{}}
}

func (f *fakeMetricsRepo) GetByEmployeeID(ctx context.Context, employeeID string) (metrics.Metrics, error) {
	m, ok := f.byEmployeeID[employeeID]
	if !ok {
		return metrics.Metrics{}, metrics.ErrMetricsNotFound
	}
	return m, nil
}

func (f *fakeMetricsRepo) Create(ctx context.Context, m metrics.Metrics) (metrics.Metrics, error) {
	if _, ok := f.byEmployeeID[m.EmployeeID]; ok {
		return metrics.Metrics{}, metrics.ErrMetricsExist
	}
	f.nextID++
	m.ID = f.nextID
	f.byEmployeeID[m.EmployeeID] = m
	f.order = append(f.order, m.EmployeeID)
	return m, nil
}

func (f *fakeMetricsRepo) Upsert(ctx context.Context, m metrics.Metrics) (bool, error) {
	if existing, ok := f.byEmployeeID[m.EmployeeID]; ok {
		m.ID = existing.ID
		f.byEmployeeID[m.EmployeeID] = m
		return false, nil
	}
	f.nextID++
	m.ID = f.nextID
	f.byEmployeeID[m.EmployeeID] = m
	f.order = append(f.order, m.EmployeeID)
	return true, nil
}

func (f *fakeMetricsRepo) List(ctx context.Context, limit *int) ([]metrics.JoinedMetrics, error) {
	out := make([]metrics.JoinedMetrics, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, metrics.JoinedMetrics{Metrics: f.byEmployeeID[id]})
	}
	if limit != nil && *limit < len(out) {
		out = out[:*limit]
	}
	return out, nil
}

func (f *fakeMetricsRepo) ListTopByFinalScore(ctx context.Context, limit int) ([]metrics.JoinedMetrics, error) {
	all, _ := f.List(ctx, nil)
	// Stable selection sort keeps storage order on equal scores.
	for i := 0; i < len(all); i++ {
		best := i
		for j := i + 1; j < len(all); j++ {
			if all[j].Scores.Final > all[best].Scores.Final {
				best = j
			}
		}
		if best != i {
			picked := all[best]
			copy(all[i+1:best+1], all[i:best])
			all[i] = picked
		}
	}
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func ingestCSV(rows ...string) string {
	return csvHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestIngestFile_InsertsAndScores(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	metRepo := newFakeMetricsRepo()
	svc := NewIngestService(nil, empRepo, metRepo)

	data := ingestCSV(
		"EMP001,Ada Lovelace,Engineering,Analyst,40,20,10,5,4.0,2,8,10,5,5",
		"EMP002,Grace Hopper,Engineering,Lead,38,15,0,2,4.8,0,10,10,4,5",
	)

	result, err := svc.IngestFile(context.Background(), "metrics.csv", strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.DuplicateCount)
	assert.Empty(t, result.DuplicateWorkbook)

	emp, err := empRepo.GetByEmployeeID(context.Background(), "EMP001")
	require.NoError(t, err)
	stored, err := metRepo.GetByEmployeeID(context.Background(), emp.ID)
	require.NoError(t, err)

	// Scores are computed at write time from the row's raw values.
	assert.InDelta(t, 37.5, stored.Scores.Productivity, 1e-9)
	assert.InDelta(t, 90.0, stored.Scores.Timeliness, 1e-9)
}

func TestIngestFile_DuplicateWithinBatch(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	metRepo := newFakeMetricsRepo()
	svc := NewIngestService(nil, empRepo, metRepo)

	data := ingestCSV(
		"EMP001,Ada Lovelace,Engineering,Analyst,40,20,10,5,4.0,2,8,10,5,5",
		"EMP001,Ada Lovelace,Engineering,Senior Analyst,40,25,12,3,4.5,1,9,10,5,5",
	)

	result, err := svc.IngestFile(context.Background(), "metrics.csv", strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.DuplicateCount)

	// Later row wins: stored values reflect the second occurrence.
	emp, err := empRepo.GetByEmployeeID(context.Background(), "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "Senior Analyst", emp.Position)

	stored, err := metRepo.GetByEmployeeID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Raw.TasksCompleted)

	// The duplicate report carries the flagged row's original cells.
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "EMP001", result.Duplicates[0][0])
	assert.Equal(t, "Senior Analyst", result.Duplicates[0][3])
}

func TestIngestFile_DuplicateAcrossUploads(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	metRepo := newFakeMetricsRepo()
	svc := NewIngestService(nil, empRepo, metRepo)

	first := ingestCSV("EMP001,Ada Lovelace,Engineering,Analyst,40,20,10,5,4.0,2,8,10,5,5")
	_, err := svc.IngestFile(context.Background(), "metrics.csv", strings.NewReader(first))
	require.NoError(t, err)

	second := ingestCSV("EMP001,Ada Lovelace,Engineering,Analyst,40,30,10,5,4.0,2,8,10,5,5")
	result, err := svc.IngestFile(context.Background(), "metrics.csv", strings.NewReader(second))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.DuplicateCount)
}

func TestIngestFile_DuplicateWorkbookReadable(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	metRepo := newFakeMetricsRepo()
	svc := NewIngestService(nil, empRepo, metRepo)

	data := ingestCSV(
		"EMP001,Ada Lovelace,Engineering,Analyst,40,20,10,5,4.0,2,8,10,5,5",
		"EMP001,Ada Lovelace,Engineering,Analyst,40,25,12,3,4.5,1,9,10,5,5",
	)

	result, err := svc.IngestFile(context.Background(), "metrics.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.NotEmpty(t, result.DuplicateWorkbook)

	f, err := excelize.OpenReader(bytes.NewReader(result.DuplicateWorkbook))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "employee_id", rows[0][0])
	assert.Equal(t, "EMP001", rows[1][0])
	assert.Equal(t, "25", rows[1][5])
}

func TestIngestFile_ParseErrorLeavesNothingApplied(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	metRepo := newFakeMetricsRepo()
	svc := NewIngestService(nil, empRepo, metRepo)

	data := ingestCSV("EMP001,Ada Lovelace,Engineering,Analyst,forty,20,10,5,4.0,2,8,10,5,5")

	_, err := svc.IngestFile(context.Background(), "metrics.csv", strings.NewReader(data))
	require.Error(t, err)

	employees, _ := empRepo.List(context.Background())
	assert.Empty(t, employees)
}
