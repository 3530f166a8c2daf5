package projections

import (
	"math"

	domainStudent "pointsboard/internal/domain/student"
)

// Summary holds floor-wing aggregate statistics.
type Summary struct {
	Count         int
	AveragePoints float64 // rounded to one decimal; 0 when Count is 0
	TopPerformer  *domainStudent.Student
}

// FloorwingSummary aggregates all students.
// The top performer is TopN(students, 1) so ties resolve exactly as on the leaderboard.
// PRE: none
// POST: Input is not modified
func FloorwingSummary(students []domainStudent.Student) Summary {
	summary := Summary{Count: len(students)}
	if summary.Count == 0 {
		return summary
	}

	// Summed as float64 so the total cannot wrap.
	var total float64
	for _, s := range students {
		total += float64(s.Points)
	}
	summary.AveragePoints = math.Round(total/float64(summary.Count)*10) / 10

	top := TopN(students, 1)[0]
	summary.TopPerformer = &top
	return summary
}
