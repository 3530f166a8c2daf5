package projections

import (
	"pointsboard/internal/domain/badge"
	"pointsboard/internal/domain/milestone"
)

// MilestoneProgressRow is a milestone with the student's progress towards it.
type MilestoneProgressRow struct {
	Name      string
	Threshold int
	Percent   float64 // 0..100
}

// BadgeStatusRow is a badge with its unlock state for one points total.
type BadgeStatusRow struct {
	Name      string
	Icon      string
	Threshold int
	Unlocked  bool
}

// MilestoneProgress computes progress for each milestone, in table order.
// PRE: every milestone threshold is > 0
// POST: Each Percent is min(100, 100*points/threshold) and never negative
func MilestoneProgress(points int, milestones []milestone.Milestone) []MilestoneProgressRow {
	rows := make([]MilestoneProgressRow, len(milestones))
	for i, ms := range milestones {
		rows[i] = MilestoneProgressRow{
			Name:      ms.Name,
			Threshold: ms.Threshold,
			Percent:   ms.Percent(points),
		}
	}
	return rows
}

// BadgeStatus evaluates every badge against a points total, in table order.
// POST: Unlocked is true iff points >= threshold
func BadgeStatus(points int, badges []badge.Badge) []BadgeStatusRow {
	rows := make([]BadgeStatusRow, len(badges))
	for i, b := range badges {
		rows[i] = BadgeStatusRow{
			Name:      b.Name,
			Icon:      b.Icon,
			Threshold: b.Threshold,
			Unlocked:  b.IsUnlocked(points),
		}
	}
	return rows
}
