package employee

import (
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	fields := []struct {
		name  string
		value string
	}{
		{"employee_id", r.EmployeeID},
		{"full_name", r.FullName},
		{"department", r.Department},
		{"position", r.Position},
	}
	for _, f := range fields {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: f.name + " is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
