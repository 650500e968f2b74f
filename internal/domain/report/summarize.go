package report

// Summarize reduces scored rows to their dashboard averages. Pure: no
// storage access, no division by zero on an empty input.
func Summarize(rows []Row) Summary {
	if len(rows) == 0 {
		return Summary{}
	}

	var total, productivity, quality, timeliness float64
	for _, row := range rows {
		total += row.TotalScore
		productivity += row.ProductivityScore
		quality += row.QualityScore
		timeliness += row.TimelinessScore
	}

	n := float64(len(rows))
	return Summary{
		AverageTotalScore: total / n,
		CategoryBreakdown: CategoryBreakdown{
			Productivity: productivity / n,
			Quality:      quality / n,
			Timeliness:   timeliness / n,
		},
	}
}
