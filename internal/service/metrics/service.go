package metrics

import (
	"context"
	"errors"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/employee"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/metrics"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/database"
	"github.com/scorecard-pro/scorecard-backend-go/internal/repository/postgresql"
)

type MetricsServiceImpl struct {
	db           *database.DB
	metricsRepo  metrics.MetricsRepository
	employeeRepo employee.EmployeeRepository
}

func NewMetricsService(db *database.DB, metricsRepo metrics.MetricsRepository, employeeRepo employee.EmployeeRepository) metrics.MetricsService {
	return &MetricsServiceImpl{
		db:           db,
		metricsRepo:  metricsRepo,
		employeeRepo: employeeRepo,
	}
}

// Add creates the metrics record for an employee via the single-add path.
// Scores are computed here, before anything reaches storage; the storage
// layer never derives values on its own. An employee that already has
// metrics is a conflict, not an overwrite.
func (s *MetricsServiceImpl) Add(ctx context.Context, req metrics.AddMetricsRequest) (metrics.Metrics, error) {
	if err := req.Validate(); err != nil {
		return metrics.Metrics{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return metrics.Metrics{}, err
	}

	raw := req.Raw()
	var created metrics.Metrics

	// The existence check and the insert share a transaction; the unique
	// constraint still backstops concurrent adds.
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.metricsRepo.GetByEmployeeID(ctx, emp.ID); err == nil {
			return metrics.ErrMetricsExist
		} else if !errors.Is(err, metrics.ErrMetricsNotFound) {
			return err
		}

		created, err = s.metricsRepo.Create(ctx, metrics.Metrics{
			EmployeeID: emp.ID,
			Raw:        raw,
			Scores:     metrics.ComputeScores(raw),
		})
		return err
	})
	if err != nil {
		return metrics.Metrics{}, err
	}

	return created, nil
}

// GetByEmployee returns the metrics record for an external employee id.
func (s *MetricsServiceImpl) GetByEmployee(ctx context.Context, employeeID string) (metrics.Metrics, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return metrics.Metrics{}, err
	}
	return s.metricsRepo.GetByEmployeeID(ctx, emp.ID)
}
