package projections

import (
	"sort"

	domainStudent "pointsboard/internal/domain/student"
)

// LeaderboardRow is one ranked line of the leaderboard.
type LeaderboardRow struct {
	Rank    int // 1-based
	Student domainStudent.Student
}

// TopN returns at most n students ordered by points (highest first).
// Ties are broken by ascending id so the ranking is deterministic.
// PRE: none
// POST: Input slice is not reordered; n <= 0 yields an empty result
func TopN(students []domainStudent.Student, n int) []domainStudent.Student {
	if n <= 0 {
		return []domainStudent.Student{}
	}
	ranked := make([]domainStudent.Student, len(students))
	copy(ranked, students)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Leaderboard ranks the top n students with 1-based positions.
func Leaderboard(students []domainStudent.Student, n int) []LeaderboardRow {
	top := TopN(students, n)
	rows := make([]LeaderboardRow, len(top))
	for i, s := range top {
		rows[i] = LeaderboardRow{Rank: i + 1, Student: s}
	}
	return rows
}
