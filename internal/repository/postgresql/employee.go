package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/employee"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, full_name, department, position, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Department, &emp.Position,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (employee_id, full_name, department, position)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, full_name, department, position, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeID, newEmployee.FullName, newEmployee.Department, newEmployee.Position,
	).Scan(
		&created.ID, &created.EmployeeID, &created.FullName, &created.Department, &created.Position,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Upsert implements employee.EmployeeRepository. The xmax = 0 check tells an
// inserted row apart from an updated one within a single round trip.
func (e *employeeRepositoryImpl) Upsert(ctx context.Context, emp employee.Employee) (employee.Employee, bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (employee_id, full_name, department, position)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			department = EXCLUDED.department,
			position = EXCLUDED.position,
			updated_at = NOW()
		RETURNING id, employee_id, full_name, department, position, created_at, updated_at, (xmax = 0) AS inserted
	`

	var upserted employee.Employee
	var inserted bool
	err := q.QueryRow(ctx, query,
		emp.EmployeeID, emp.FullName, emp.Department, emp.Position,
	).Scan(
		&upserted.ID, &upserted.EmployeeID, &upserted.FullName, &upserted.Department, &upserted.Position,
		&upserted.CreatedAt, &upserted.UpdatedAt, &inserted,
	)
	if err != nil {
		return employee.Employee{}, false, fmt.Errorf("failed to upsert employee %s: %w", emp.EmployeeID, err)
	}

	return upserted, inserted, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, full_name, department, position, created_at, updated_at
		FROM employees
		ORDER BY employee_id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Department, &emp.Position,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
