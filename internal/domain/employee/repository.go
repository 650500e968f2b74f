package employee

import "context"

type EmployeeRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	// Create inserts a new employee; ErrEmployeeIDExists on a unique-key hit.
	Create(ctx context.Context, e Employee) (Employee, error)
	// Upsert inserts the employee or overwrites full_name/department/position
	// when employee_id already exists, and reports which happened.
	Upsert(ctx context.Context, e Employee) (Employee, bool, error)
	List(ctx context.Context) ([]Employee, error)
}
