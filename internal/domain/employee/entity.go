package employee

import "time"

// Employee is an identity record. EmployeeID is the externally assigned
// identifier uploads and the API key on; ID is the storage key.
type Employee struct {
	ID         string
	EmployeeID string
	FullName   string
	Department string
	Position   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
