package metrics

// Final score weights.
const (
	ProductivityWeight = 0.4
	QualityWeight      = 0.3
	TimelinessWeight   = 0.3
)

// ComputeScores derives the three category scores and the weighted final
// score from raw weekly metrics. It is pure: same input, same output, no
// side effects. The write path calls it before every persist so stored
// scores can never drift from their raw inputs.
//
// Division is guarded only for exact-zero denominators; scores are not
// rounded or clamped. Range validation happens upstream in the DTOs.
func ComputeScores(raw RawMetrics) Scores {
	var s Scores

	// Productivity: tasks and sales normalized per hour worked.
	if raw.HoursWorkedPerWeek > 0 {
		tasksPerHour := float64(raw.TasksCompleted) / float64(raw.HoursWorkedPerWeek) * 100
		salesEfficiency := float64(raw.SalesMade) / float64(raw.HoursWorkedPerWeek) * 100
		s.Productivity = (tasksPerHour + salesEfficiency) / 2
	}

	// Quality: error rate, customer rating on a 0–100 scale, complaint rate.
	errorScore := 100 - float64(raw.ErrorRate)
	customerFeedback := raw.CustomerRating * 20
	complaintRate := 100.0
	if raw.TasksCompleted != 0 {
		complaintRate = 100 - float64(raw.ReturnsOrComplaints)/float64(raw.TasksCompleted)*100
	}
	s.Quality = (errorScore + customerFeedback + complaintRate) / 3

	// Timeliness: deadline hit rate and completion-time efficiency.
	var deadlinesMetPct float64
	if raw.TotalDeadlines != 0 {
		deadlinesMetPct = float64(raw.DeadlinesMet) / float64(raw.TotalDeadlines) * 100
	}
	completionEfficiency := 100.0
	if raw.ProjectCompletionTime != 0 {
		completionEfficiency = float64(raw.TargetCompletionTime) / float64(raw.ProjectCompletionTime) * 100
	}
	s.Timeliness = (deadlinesMetPct + completionEfficiency) / 2

	s.Final = s.Productivity*ProductivityWeight + s.Quality*QualityWeight + s.Timeliness*TimelinessWeight

	return s
}
