package report

import (
	"strings"
	"time"

	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/validator"
)

// Category selects the row shape of a report. It is a closed enum: only
// employees is backed by a model today, the other two report as unavailable.
type Category string

const (
	CategoryEmployees   Category = "employees"
	CategoryProjects    Category = "projects"
	CategoryDepartments Category = "departments"
)

// ParseCategory normalizes and checks a category parameter.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryEmployees:
		return CategoryEmployees, nil
	case CategoryProjects:
		return CategoryProjects, nil
	case CategoryDepartments:
		return CategoryDepartments, nil
	default:
		return "", ErrInvalidCategory
	}
}

// Title returns the category name with the leading letter upper-cased, as
// used in report banners and email subjects.
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Row is the tabular report projection. TotalScore aliases the stored
// final score.
type Row struct {
	EmployeeName      string  `json:"employee_name"`
	ProductivityScore float64 `json:"productivity_score"`
	QualityScore      float64 `json:"quality_score"`
	TimelinessScore   float64 `json:"timeliness_score"`
	TotalScore        float64 `json:"total_score"`
}

// Summary is the dashboard aggregate: arithmetic means over all rows,
// zeros when there are none.
type Summary struct {
	AverageTotalScore float64           `json:"average_total_score"`
	CategoryBreakdown CategoryBreakdown `json:"category_breakdown"`
}

type CategoryBreakdown struct {
	Productivity float64 `json:"productivity"`
	Quality      float64 `json:"quality"`
	Timeliness   float64 `json:"timeliness"`
}

// TopRow is the dashboard top-N projection.
type TopRow struct {
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	FinalScore        float64 `json:"final_score"`
	ProductivityScore float64 `json:"productivity_score"`
	QualityScore      float64 `json:"quality_score"`
	TimelinessScore   float64 `json:"timeliness_score"`
}

// Log is one report-email delivery. Append-only: written exactly once per
// successful send, never on failure.
type Log struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Category Category  `json:"category"`
	SentAt   time.Time `json:"sent_at"`
}

// DeliverRequest asks for a report to be rendered and emailed.
type DeliverRequest struct {
	Email    string `json:"email"`
	Category string `json:"category"`
	Count    *int   `json:"count"`
}

// DefaultDeliverCount is how many rows a delivery includes when the caller
// does not say.
const DefaultDeliverCount = 10

func (r *DeliverRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if r.Count != nil && *r.Count <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "count",
			Message: "count must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
