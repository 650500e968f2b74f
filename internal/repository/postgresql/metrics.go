package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/metrics"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/database"
)

type metricsRepositoryImpl struct {
	db *database.DB
}

func NewMetricsRepository(db *database.DB) metrics.MetricsRepository {
	return &metricsRepositoryImpl{db: db}
}

const metricsColumns = `
	id, employee_id,
	hrs_wrkd_per_week, tasks_completed, sales_made,
	error_rate, customer_rating, returns_or_complaints,
	deadlines_met, total_deadlines, project_cmple_times, target_cmple_times,
	productivity_score, quality_score, timeliness_score, final_score,
	created_at, updated_at
`

func scanMetrics(row pgx.Row) (metrics.Metrics, error) {
	var m metrics.Metrics
	err := row.Scan(
		&m.ID, &m.EmployeeID,
		&m.Raw.HoursWorkedPerWeek, &m.Raw.TasksCompleted, &m.Raw.SalesMade,
		&m.Raw.ErrorRate, &m.Raw.CustomerRating, &m.Raw.ReturnsOrComplaints,
		&m.Raw.DeadlinesMet, &m.Raw.TotalDeadlines, &m.Raw.ProjectCompletionTime, &m.Raw.TargetCompletionTime,
		&m.Scores.Productivity, &m.Scores.Quality, &m.Scores.Timeliness, &m.Scores.Final,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// GetByEmployeeID implements metrics.MetricsRepository.
func (r *metricsRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (metrics.Metrics, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + metricsColumns + ` FROM employee_metrics WHERE employee_id = $1`

	m, err := scanMetrics(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return metrics.Metrics{}, metrics.ErrMetricsNotFound
		}
		return metrics.Metrics{}, fmt.Errorf("failed to get metrics for employee %s: %w", employeeID, err)
	}

	return m, nil
}

// Create implements metrics.MetricsRepository.
func (r *metricsRepositoryImpl) Create(ctx context.Context, m metrics.Metrics) (metrics.Metrics, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_metrics (
			employee_id,
			hrs_wrkd_per_week, tasks_completed, sales_made,
			error_rate, customer_rating, returns_or_complaints,
			deadlines_met, total_deadlines, project_cmple_times, target_cmple_times,
			productivity_score, quality_score, timeliness_score, final_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + metricsColumns

	created, err := scanMetrics(q.QueryRow(ctx, query,
		m.EmployeeID,
		m.Raw.HoursWorkedPerWeek, m.Raw.TasksCompleted, m.Raw.SalesMade,
		m.Raw.ErrorRate, m.Raw.CustomerRating, m.Raw.ReturnsOrComplaints,
		m.Raw.DeadlinesMet, m.Raw.TotalDeadlines, m.Raw.ProjectCompletionTime, m.Raw.TargetCompletionTime,
		m.Scores.Productivity, m.Scores.Quality, m.Scores.Timeliness, m.Scores.Final,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return metrics.Metrics{}, metrics.ErrMetricsExist
		}
		return metrics.Metrics{}, fmt.Errorf("failed to create metrics: %w", err)
	}

	return created, nil
}

// Upsert implements metrics.MetricsRepository. All raw fields and all derived
// scores are overwritten together so a stored row can never mix old inputs
// with new scores.
func (r *metricsRepositoryImpl) Upsert(ctx context.Context, m metrics.Metrics) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_metrics (
			employee_id,
			hrs_wrkd_per_week, tasks_completed, sales_made,
			error_rate, customer_rating, returns_or_complaints,
			deadlines_met, total_deadlines, project_cmple_times, target_cmple_times,
			productivity_score, quality_score, timeliness_score, final_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (employee_id) DO UPDATE SET
			hrs_wrkd_per_week = EXCLUDED.hrs_wrkd_per_week,
			tasks_completed = EXCLUDED.tasks_completed,
			sales_made = EXCLUDED.sales_made,
			error_rate = EXCLUDED.error_rate,
			customer_rating = EXCLUDED.customer_rating,
			returns_or_complaints = EXCLUDED.returns_or_complaints,
			deadlines_met = EXCLUDED.deadlines_met,
			total_deadlines = EXCLUDED.total_deadlines,
			project_cmple_times = EXCLUDED.project_cmple_times,
			target_cmple_times = EXCLUDED.target_cmple_times,
			productivity_score = EXCLUDED.productivity_score,
			quality_score = EXCLUDED.quality_score,
			timeliness_score = EXCLUDED.timeliness_score,
			final_score = EXCLUDED.final_score,
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	err := q.QueryRow(ctx, query,
		m.EmployeeID,
		m.Raw.HoursWorkedPerWeek, m.Raw.TasksCompleted, m.Raw.SalesMade,
		m.Raw.ErrorRate, m.Raw.CustomerRating, m.Raw.ReturnsOrComplaints,
		m.Raw.DeadlinesMet, m.Raw.TotalDeadlines, m.Raw.ProjectCompletionTime, m.Raw.TargetCompletionTime,
		m.Scores.Productivity, m.Scores.Quality, m.Scores.Timeliness, m.Scores.Final,
	).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("failed to upsert metrics for employee %s: %w", m.EmployeeID, err)
	}

	return inserted, nil
}

const joinedMetricsQuery = `
	SELECT
		m.id, m.employee_id,
		m.hrs_wrkd_per_week, m.tasks_completed, m.sales_made,
		m.error_rate, m.customer_rating, m.returns_or_complaints,
		m.deadlines_met, m.total_deadlines, m.project_cmple_times, m.target_cmple_times,
		m.productivity_score, m.quality_score, m.timeliness_score, m.final_score,
		m.created_at, m.updated_at,
		e.full_name
	FROM employee_metrics m
	JOIN employees e ON e.id = m.employee_id
`

func (r *metricsRepositoryImpl) queryJoined(ctx context.Context, query string, args ...interface{}) ([]metrics.JoinedMetrics, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}
	defer rows.Close()

	var result []metrics.JoinedMetrics
	for rows.Next() {
		var jm metrics.JoinedMetrics
		err := rows.Scan(
			&jm.ID, &jm.EmployeeID,
			&jm.Raw.HoursWorkedPerWeek, &jm.Raw.TasksCompleted, &jm.Raw.SalesMade,
			&jm.Raw.ErrorRate, &jm.Raw.CustomerRating, &jm.Raw.ReturnsOrComplaints,
			&jm.Raw.DeadlinesMet, &jm.Raw.TotalDeadlines, &jm.Raw.ProjectCompletionTime, &jm.Raw.TargetCompletionTime,
			&jm.Scores.Productivity, &jm.Scores.Quality, &jm.Scores.Timeliness, &jm.Scores.Final,
			&jm.CreatedAt, &jm.UpdatedAt,
			&jm.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metrics row: %w", err)
		}
		result = append(result, jm)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// List implements metrics.MetricsRepository. Storage order is insertion
// order (the serial id).
func (r *metricsRepositoryImpl) List(ctx context.Context, limit *int) ([]metrics.JoinedMetrics, error) {
	query := joinedMetricsQuery + ` ORDER BY m.id ASC`
	if limit != nil {
		return r.queryJoined(ctx, query+` LIMIT $1`, *limit)
	}
	return r.queryJoined(ctx, query)
}

// ListTopByFinalScore implements metrics.MetricsRepository. The secondary
// id ordering keeps ties in storage order, so results are stable.
func (r *metricsRepositoryImpl) ListTopByFinalScore(ctx context.Context, limit int) ([]metrics.JoinedMetrics, error) {
	query := joinedMetricsQuery + ` ORDER BY m.final_score DESC, m.id ASC LIMIT $1`
	return r.queryJoined(ctx, query, limit)
}
