package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	rows := []Row{
		{EmployeeName: "A", ProductivityScore: 40, QualityScore: 80, TimelinessScore: 60, TotalScore: 58},
		{EmployeeName: "B", ProductivityScore: 60, QualityScore: 90, TimelinessScore: 80, TotalScore: 75},
	}

	s := Summarize(rows)

	assert.InDelta(t, 66.5, s.AverageTotalScore, 1e-9)
	assert.InDelta(t, 50.0, s.CategoryBreakdown.Productivity, 1e-9)
	assert.InDelta(t, 85.0, s.CategoryBreakdown.Quality, 1e-9)
	assert.InDelta(t, 70.0, s.CategoryBreakdown.Timeliness, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.AverageTotalScore)
	assert.Zero(t, s.CategoryBreakdown.Productivity)
	assert.Zero(t, s.CategoryBreakdown.Quality)
	assert.Zero(t, s.CategoryBreakdown.Timeliness)
}

func TestSummarize_SingleRow(t *testing.T) {
	s := Summarize([]Row{{TotalScore: 42.5, ProductivityScore: 10, QualityScore: 20, TimelinessScore: 30}})

	assert.InDelta(t, 42.5, s.AverageTotalScore, 1e-9)
	assert.InDelta(t, 10.0, s.CategoryBreakdown.Productivity, 1e-9)
}
