package projections

import (
	"context"
	"fmt"

	"pointsboard/internal/domain/badge"
	"pointsboard/internal/domain/milestone"
	domainStudent "pointsboard/internal/domain/student"
)

// LeaderboardSize is the number of students shown on the student leaderboard.
const LeaderboardSize = 3

// GetStudentDashboardQuery carries input for the student dashboard projection.
type GetStudentDashboardQuery struct {
	StudentID int // 0 selects the first student in the roster
}

// GetStudentDashboardDeps holds dependencies for the student dashboard projection.
type GetStudentDashboardDeps struct {
	StudentStore  StudentStore
	ActivityStore ActivityStore
	Milestones    []milestone.Milestone
	Badges        []badge.Badge
}

// StudentDashboardResult is the display model for the student view.
type StudentDashboardResult struct {
	HasStudent  bool
	Student     domainStudent.Student
	Welcome     string
	Leaderboard []LeaderboardRow
	Milestones  []MilestoneProgressRow
	Badges      []BadgeStatusRow
	Activity    []string
}

// QueryGetStudentDashboard builds the student view for one student.
// PRE: deps are non-nil
// POST: Returns the display model; HasStudent is false only when the roster is empty
// and no specific student was requested. An unknown StudentID wraps ErrNotFound.
func QueryGetStudentDashboard(ctx context.Context, query GetStudentDashboardQuery, deps GetStudentDashboardDeps) (StudentDashboardResult, error) {
	students, err := deps.StudentStore.List(ctx)
	if err != nil {
		return StudentDashboardResult{}, err
	}

	var current domainStudent.Student
	if query.StudentID == 0 {
		if len(students) == 0 {
			return StudentDashboardResult{Leaderboard: []LeaderboardRow{}}, nil
		}
		current = students[0]
	} else {
		current, err = deps.StudentStore.GetByID(ctx, query.StudentID)
		if err != nil {
			return StudentDashboardResult{}, err
		}
	}

	activity, err := QueryGetActivityLog(ctx, current.ID, deps.ActivityStore)
	if err != nil {
		return StudentDashboardResult{}, err
	}

	return StudentDashboardResult{
		HasStudent:  true,
		Student:     current,
		Welcome:     fmt.Sprintf("Welcome, %s!", current.Name),
		Leaderboard: Leaderboard(students, LeaderboardSize),
		Milestones:  MilestoneProgress(current.Points, deps.Milestones),
		Badges:      BadgeStatus(current.Points, deps.Badges),
		Activity:    activity,
	}, nil
}
