package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/validator"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func validAddRequest() AddMetricsRequest {
	return AddMetricsRequest{
		EmployeeID:            "EMP001",
		HoursWorkedPerWeek:    intPtr(40),
		TasksCompleted:        intPtr(20),
		SalesMade:             intPtr(10),
		ErrorRate:             intPtr(5),
		CustomerRating:        floatPtr(4.0),
		ReturnsOrComplaints:   intPtr(2),
		DeadlinesMet:          intPtr(8),
		TotalDeadlines:        intPtr(10),
		ProjectCompletionTime: intPtr(5),
		TargetCompletionTime:  intPtr(5),
	}
}

func TestAddMetricsRequest_Validate_Valid(t *testing.T) {
	req := validAddRequest()
	assert.NoError(t, req.Validate())
}

func TestAddMetricsRequest_Validate_MissingFields(t *testing.T) {
	req := validAddRequest()
	req.EmployeeID = ""
	req.CustomerRating = nil
	req.TotalDeadlines = nil

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "employee_id")
	assert.Contains(t, details, "customer_rating")
	assert.Contains(t, details, "total_deadlines")
	assert.NotContains(t, details, "tasks_completed")
}

func TestAddMetricsRequest_Validate_ExplicitZeroIsPresent(t *testing.T) {
	// Zero values are legitimate inputs; only a nil pointer means missing.
	req := validAddRequest()
	req.HoursWorkedPerWeek = intPtr(0)
	req.TasksCompleted = intPtr(0)

	assert.NoError(t, req.Validate())
}

func TestAddMetricsRequest_Validate_Ranges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AddMetricsRequest)
		field  string
	}{
		{"hours above weekly cap", func(r *AddMetricsRequest) { r.HoursWorkedPerWeek = intPtr(169) }, "hrs_wrkd_per_week"},
		{"negative hours", func(r *AddMetricsRequest) { r.HoursWorkedPerWeek = intPtr(-1) }, "hrs_wrkd_per_week"},
		{"error rate above 100", func(r *AddMetricsRequest) { r.ErrorRate = intPtr(101) }, "error_rate"},
		{"rating above 5", func(r *AddMetricsRequest) { r.CustomerRating = floatPtr(5.5) }, "customer_rating"},
		{"negative rating", func(r *AddMetricsRequest) { r.CustomerRating = floatPtr(-0.1) }, "customer_rating"},
		{"negative tasks", func(r *AddMetricsRequest) { r.TasksCompleted = intPtr(-3) }, "tasks_completed"},
		{"negative returns", func(r *AddMetricsRequest) { r.ReturnsOrComplaints = intPtr(-1) }, "returns_or_complaints"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validAddRequest()
			c.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestAddMetricsRequest_Raw(t *testing.T) {
	req := validAddRequest()
	raw := req.Raw()

	assert.Equal(t, 40, raw.HoursWorkedPerWeek)
	assert.Equal(t, 20, raw.TasksCompleted)
	assert.Equal(t, 4.0, raw.CustomerRating)
	assert.Equal(t, 5, raw.TargetCompletionTime)
}
