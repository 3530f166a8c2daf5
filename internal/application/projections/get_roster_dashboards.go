package projections

import (
	"context"

	domainStudent "pointsboard/internal/domain/student"
)

// GetRosterDeps holds dependencies for the roster-based dashboards (mentor, floor-wing, admin).
type GetRosterDeps struct {
	StudentStore StudentStore
}

// MentorDashboardResult is the display model for the mentor view.
type MentorDashboardResult struct {
	Students []domainStudent.Student
}

// QueryGetMentorDashboard lists every student for point assignment, in id order.
func QueryGetMentorDashboard(ctx context.Context, deps GetRosterDeps) (MentorDashboardResult, error) {
	students, err := deps.StudentStore.List(ctx)
	if err != nil {
		return MentorDashboardResult{}, err
	}
	return MentorDashboardResult{Students: nonNil(students)}, nil
}

// FloorwingDashboardResult is the display model for the floor-wing view.
type FloorwingDashboardResult struct {
	Summary  Summary
	Students []domainStudent.Student
}

// QueryGetFloorwingDashboard computes aggregate statistics plus the full roster.
// POST: Students stay in id order; only the summary is ranked
func QueryGetFloorwingDashboard(ctx context.Context, deps GetRosterDeps) (FloorwingDashboardResult, error) {
	students, err := deps.StudentStore.List(ctx)
	if err != nil {
		return FloorwingDashboardResult{}, err
	}
	return FloorwingDashboardResult{
		Summary:  FloorwingSummary(students),
		Students: nonNil(students),
	}, nil
}

// AdminDashboardResult is the display model for the admin user-management view.
type AdminDashboardResult struct {
	Students []domainStudent.Student
	NextID   int
}

// QueryGetAdminDashboard lists students and previews the id the next one will receive.
func QueryGetAdminDashboard(ctx context.Context, deps GetRosterDeps) (AdminDashboardResult, error) {
	students, err := deps.StudentStore.List(ctx)
	if err != nil {
		return AdminDashboardResult{}, err
	}
	return AdminDashboardResult{
		Students: nonNil(students),
		NextID:   domainStudent.NextID(students),
	}, nil
}

// nonNil keeps JSON output as [] rather than null for an empty roster.
func nonNil(students []domainStudent.Student) []domainStudent.Student {
	if students == nil {
		return []domainStudent.Student{}
	}
	return students
}
