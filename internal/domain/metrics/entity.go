package metrics

import "time"

// RawMetrics holds one employee's raw weekly performance inputs. Field names
// follow the upload file's column vocabulary.
type RawMetrics struct {
	HoursWorkedPerWeek    int
	TasksCompleted        int
	SalesMade             int
	ErrorRate             int
	CustomerRating        float64
	ReturnsOrComplaints   int
	DeadlinesMet          int
	TotalDeadlines        int
	ProjectCompletionTime int
	TargetCompletionTime  int
}

// Scores are derived from RawMetrics by ComputeScores and never set directly.
type Scores struct {
	Productivity float64
	Quality      float64
	Timeliness   float64
	Final        float64
}

// Metrics is the stored record: one per employee, raw inputs plus the scores
// that were computed from them at write time.
type Metrics struct {
	ID         int64
	EmployeeID string
	Raw        RawMetrics
	Scores     Scores
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
