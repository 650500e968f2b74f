package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScores_Worked(t *testing.T) {
	// 40 hours, 20 tasks, 10 sales, 5% errors, 4.0 rating, 2 returns,
	// 8/10 deadlines, project finished right on its 5-day target.
	raw := RawMetrics{
		HoursWorkedPerWeek:    40,
		TasksCompleted:        20,
		SalesMade:             10,
		ErrorRate:             5,
		CustomerRating:        4.0,
		ReturnsOrComplaints:   2,
		DeadlinesMet:          8,
		TotalDeadlines:        10,
		ProjectCompletionTime: 5,
		TargetCompletionTime:  5,
	}

	s := ComputeScores(raw)

	// (20/40*100 + 10/40*100) / 2 = (50 + 25) / 2
	assert.InDelta(t, 37.5, s.Productivity, 1e-9)
	// (95 + 80 + 90) / 3
	assert.InDelta(t, 88.333333333, s.Quality, 1e-6)
	// (80 + 100) / 2
	assert.InDelta(t, 90.0, s.Timeliness, 1e-9)
	// 37.5*0.4 + 88.33*0.3 + 90*0.3
	assert.InDelta(t, 68.5, s.Final, 0.01)
	assert.InDelta(t, 0.4*s.Productivity+0.3*s.Quality+0.3*s.Timeliness, s.Final, 1e-9)
}

func TestComputeScores_ZeroHours(t *testing.T) {
	raw := RawMetrics{
		HoursWorkedPerWeek: 0,
		TasksCompleted:     10,
		SalesMade:          5,
	}

	s := ComputeScores(raw)

	assert.Zero(t, s.Productivity)
}

func TestComputeScores_ZeroTasksComplaintRate(t *testing.T) {
	// No tasks completed: the complaint rate contribution defaults to a
	// full 100 regardless of recorded complaints.
	raw := RawMetrics{
		TasksCompleted:      0,
		ErrorRate:           0,
		CustomerRating:      5,
		ReturnsOrComplaints: 7,
	}

	s := ComputeScores(raw)

	// (100 + 100 + 100) / 3
	assert.InDelta(t, 100.0, s.Quality, 1e-9)
}

func TestComputeScores_ZeroTotalDeadlines(t *testing.T) {
	raw := RawMetrics{
		DeadlinesMet:          5,
		TotalDeadlines:        0,
		ProjectCompletionTime: 10,
		TargetCompletionTime:  10,
	}

	s := ComputeScores(raw)

	// Deadline percentage collapses to 0, efficiency stays 100.
	assert.InDelta(t, 50.0, s.Timeliness, 1e-9)
}

func TestComputeScores_ZeroProjectTime(t *testing.T) {
	raw := RawMetrics{
		DeadlinesMet:          10,
		TotalDeadlines:        10,
		ProjectCompletionTime: 0,
		TargetCompletionTime:  10,
	}

	s := ComputeScores(raw)

	// Completion efficiency defaults to 100 when no time was recorded.
	assert.InDelta(t, 100.0, s.Timeliness, 1e-9)
}

func TestComputeScores_AllZero(t *testing.T) {
	s := ComputeScores(RawMetrics{})

	assert.Zero(t, s.Productivity)
	// (100 + 0 + 100) / 3
	assert.InDelta(t, 66.666666666, s.Quality, 1e-6)
	// (0 + 100) / 2
	assert.InDelta(t, 50.0, s.Timeliness, 1e-9)
	assert.InDelta(t, 0.3*s.Quality+0.3*s.Timeliness, s.Final, 1e-9)
}

func TestComputeScores_NotClamped(t *testing.T) {
	// Scores are raw weighted math: heavy per-hour output pushes
	// productivity well past 100 and nothing caps it.
	raw := RawMetrics{
		HoursWorkedPerWeek: 10,
		TasksCompleted:     50,
		SalesMade:          50,
	}

	s := ComputeScores(raw)

	assert.InDelta(t, 500.0, s.Productivity, 1e-9)
}

func TestComputeScores_Deterministic(t *testing.T) {
	raw := RawMetrics{
		HoursWorkedPerWeek:    37,
		TasksCompleted:        13,
		SalesMade:             4,
		ErrorRate:             11,
		CustomerRating:        3.7,
		ReturnsOrComplaints:   2,
		DeadlinesMet:          6,
		TotalDeadlines:        7,
		ProjectCompletionTime: 9,
		TargetCompletionTime:  8,
	}

	assert.Equal(t, ComputeScores(raw), ComputeScores(raw))
}
