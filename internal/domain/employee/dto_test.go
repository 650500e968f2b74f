package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/validator"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	req := CreateEmployeeRequest{
		EmployeeID: "EMP001",
		FullName:   "Ada Lovelace",
		Department: "Engineering",
		Position:   "Analyst",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateEmployeeRequest_Validate_Missing(t *testing.T) {
	req := CreateEmployeeRequest{
		EmployeeID: "EMP001",
		FullName:   "   ",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "full_name")
	assert.Contains(t, details, "department")
	assert.Contains(t, details, "position")
	assert.NotContains(t, details, "employee_id")
}
