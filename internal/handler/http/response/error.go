package response

import (
	"errors"
	"net/http"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/auth"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/employee"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/ingest"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/metrics"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/report"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")

	// Metrics domain errors
	case errors.Is(err, metrics.ErrMetricsExist):
		Conflict(w, "Metrics for this employee already exist")
	case errors.Is(err, metrics.ErrMetricsNotFound):
		NotFound(w, "Metrics for this employee not found")

	// Upload errors
	case errors.Is(err, ingest.ErrNoFile):
		BadRequest(w, "No file uploaded", nil)
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		BadRequest(w, "Invalid file format. Upload CSV or Excel file.", nil)
	case errors.Is(err, ingest.ErrEmptyFile):
		BadRequest(w, "Uploaded file contains no data rows", nil)

	// Report errors
	case errors.Is(err, report.ErrInvalidCategory):
		BadRequest(w, "Invalid category. Choose from 'employees', 'projects', or 'departments'.", nil)
	case errors.Is(err, report.ErrCategoryUnavailable):
		NotFound(w, "Metrics for this category are not available")
	case errors.Is(err, report.ErrInvalidCount):
		BadRequest(w, "Count must be a positive integer.", nil)
	case errors.Is(err, report.ErrNoData):
		NotFound(w, "No data available.")
	case errors.Is(err, report.ErrDeliveryFailed):
		BadGateway(w, "Failed to send email")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
