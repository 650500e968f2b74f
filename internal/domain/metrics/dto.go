package metrics

import (
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/validator"
)

// AddMetricsRequest is the single-add payload. Raw fields are pointers so a
// missing field can be told apart from an explicit zero; error messages name
// the field at fault, never coerce.
type AddMetricsRequest struct {
	EmployeeID            string   `json:"employee_id"`
	HoursWorkedPerWeek    *int     `json:"hrs_wrkd_per_week"`
	TasksCompleted        *int     `json:"tasks_completed"`
	SalesMade             *int     `json:"sales_made"`
	ErrorRate             *int     `json:"error_rate"`
	CustomerRating        *float64 `json:"customer_rating"`
	ReturnsOrComplaints   *int     `json:"returns_or_complaints"`
	DeadlinesMet          *int     `json:"deadlines_met"`
	TotalDeadlines        *int     `json:"total_deadlines"`
	ProjectCompletionTime *int     `json:"project_cmple_times"`
	TargetCompletionTime  *int     `json:"target_cmple_times"`
}

func (r *AddMetricsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	required := []struct {
		field string
		ok    bool
	}{
		{"hrs_wrkd_per_week", r.HoursWorkedPerWeek != nil},
		{"tasks_completed", r.TasksCompleted != nil},
		{"sales_made", r.SalesMade != nil},
		{"error_rate", r.ErrorRate != nil},
		{"customer_rating", r.CustomerRating != nil},
		{"returns_or_complaints", r.ReturnsOrComplaints != nil},
		{"deadlines_met", r.DeadlinesMet != nil},
		{"total_deadlines", r.TotalDeadlines != nil},
		{"project_cmple_times", r.ProjectCompletionTime != nil},
		{"target_cmple_times", r.TargetCompletionTime != nil},
	}
	for _, f := range required {
		if !f.ok {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}

	if errs = append(errs, ValidateRaw(r.Raw())...); len(errs) > 0 {
		return errs
	}

	return nil
}

// Raw converts the request to RawMetrics. Callers must Validate first; nil
// fields are treated as zero here.
func (r *AddMetricsRequest) Raw() RawMetrics {
	return RawMetrics{
		HoursWorkedPerWeek:    deref(r.HoursWorkedPerWeek),
		TasksCompleted:        deref(r.TasksCompleted),
		SalesMade:             deref(r.SalesMade),
		ErrorRate:             deref(r.ErrorRate),
		CustomerRating:        derefFloat(r.CustomerRating),
		ReturnsOrComplaints:   deref(r.ReturnsOrComplaints),
		DeadlinesMet:          deref(r.DeadlinesMet),
		TotalDeadlines:        deref(r.TotalDeadlines),
		ProjectCompletionTime: deref(r.ProjectCompletionTime),
		TargetCompletionTime:  deref(r.TargetCompletionTime),
	}
}

// ValidateRaw applies the declared input ranges: hours 0–168, percentages
// 0–100, rating 0–5, all counts non-negative.
func ValidateRaw(raw RawMetrics) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidHoursWorked(float64(raw.HoursWorkedPerWeek)) {
		errs = append(errs, validator.ValidationError{
			Field:   "hrs_wrkd_per_week",
			Message: "hours worked per week must be between 0 and 168",
		})
	}
	if !validator.IsValidPercentage(float64(raw.ErrorRate)) {
		errs = append(errs, validator.ValidationError{
			Field:   "error_rate",
			Message: "error rate must be between 0 and 100",
		})
	}
	if !validator.IsValidCustomerRating(raw.CustomerRating) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_rating",
			Message: "customer rating must be between 0 and 5",
		})
	}

	counts := []struct {
		field string
		value int
	}{
		{"tasks_completed", raw.TasksCompleted},
		{"sales_made", raw.SalesMade},
		{"returns_or_complaints", raw.ReturnsOrComplaints},
		{"deadlines_met", raw.DeadlinesMet},
		{"total_deadlines", raw.TotalDeadlines},
		{"project_cmple_times", raw.ProjectCompletionTime},
		{"target_cmple_times", raw.TargetCompletionTime},
	}
	for _, c := range counts {
		if !validator.IsNonNegative(float64(c.value)) {
			errs = append(errs, validator.ValidationError{
				Field:   c.field,
				Message: c.field + " must be 0 or greater",
			})
		}
	}

	return errs
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefFloat(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
