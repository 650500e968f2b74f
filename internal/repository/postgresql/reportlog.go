package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/report"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/database"
)

type reportLogRepositoryImpl struct {
	db *database.DB
}

func NewReportLogRepository(db *database.DB) report.LogRepository {
	return &reportLogRepositoryImpl{db: db}
}

// Append implements report.LogRepository.
func (r *reportLogRepositoryImpl) Append(ctx context.Context, email string, category report.Category, sentAt time.Time) (report.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO report_logs (id, email, category, sent_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, category, sent_at
	`

	var entry report.Log
	err := q.QueryRow(ctx, query, uuid.NewString(), email, category, sentAt).Scan(
		&entry.ID, &entry.Email, &entry.Category, &entry.SentAt,
	)
	if err != nil {
		return report.Log{}, fmt.Errorf("failed to append report log: %w", err)
	}

	return entry, nil
}

// List implements report.LogRepository.
func (r *reportLogRepositoryImpl) List(ctx context.Context) ([]report.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, email, category, sent_at FROM report_logs ORDER BY sent_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list report logs: %w", err)
	}
	defer rows.Close()

	var logs []report.Log
	for rows.Next() {
		var entry report.Log
		if err := rows.Scan(&entry.ID, &entry.Email, &entry.Category, &entry.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan report log: %w", err)
		}
		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
