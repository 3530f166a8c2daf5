package projections

import (
	"math"
	"testing"

	domainStudent "pointsboard/internal/domain/student"
)

// TestFloorwingSummary_Example verifies count, one-decimal average and top performer.
func TestFloorwingSummary_Example(t *testing.T) {
	students := []domainStudent.Student{
		{ID: 1, Name: "A", Points: 75},
		{ID: 2, Name: "B", Points: 120},
		{ID: 3, Name: "C", Points: 40},
	}
	got := FloorwingSummary(students)
	if got.Count != 3 {
		t.Errorf("Count = %d, want 3", got.Count)
	}
	if got.AveragePoints != 78.3 {
		t.Errorf("AveragePoints = %v, want 78.3", got.AveragePoints)
	}
	if got.TopPerformer == nil || got.TopPerformer.Points != 120 {
		t.Errorf("TopPerformer = %+v, want points 120", got.TopPerformer)
	}
	if students[0].ID != 1 || students[1].ID != 2 || students[2].ID != 3 {
		t.Errorf("input reordered: %v", students)
	}
}

// TestFloorwingSummary_Empty verifies zero values for an empty roster.
func TestFloorwingSummary_Empty(t *testing.T) {
	got := FloorwingSummary(nil)
	if got.Count != 0 || got.AveragePoints != 0 || got.TopPerformer != nil {
		t.Errorf("FloorwingSummary(nil) = %+v, want zero summary", got)
	}
}

// TestFloorwingSummary_TopPerformerMatchesTopN verifies ties resolve like the leaderboard.
func TestFloorwingSummary_TopPerformerMatchesTopN(t *testing.T) {
	students := []domainStudent.Student{
		{ID: 5, Name: "E", Points: 90},
		{ID: 3, Name: "C", Points: 90},
	}
	got := FloorwingSummary(students)
	if got.TopPerformer.ID != TopN(students, 1)[0].ID || got.TopPerformer.ID != 3 {
		t.Errorf("TopPerformer.ID = %d, want 3", got.TopPerformer.ID)
	}
}

// TestFloorwingSummary_Rounding verifies half-up rounding to one decimal.
func TestFloorwingSummary_Rounding(t *testing.T) {
	students := []domainStudent.Student{{ID: 1, Points: 1}, {ID: 2, Points: 2}, {ID: 3, Points: 2}, {ID: 4, Points: 2}}
	if got := FloorwingSummary(students).AveragePoints; got != 1.8 {
		t.Errorf("AveragePoints = %v, want 1.8", got)
	}
}

// TestFloorwingSummary_LargeBalancesDoNotWrap verifies the average stays positive near the int limit.
func TestFloorwingSummary_LargeBalancesDoNotWrap(t *testing.T) {
	students := []domainStudent.Student{
		{ID: 1, Name: "A", Points: 75},
		{ID: 2, Name: "B", Points: math.MaxInt - 7},
	}
	got := FloorwingSummary(students)
	if got.AveragePoints <= 0 {
		t.Errorf("AveragePoints = %v, want a positive average", got.AveragePoints)
	}
	if got.TopPerformer == nil || got.TopPerformer.ID != 2 {
		t.Errorf("TopPerformer = %+v, want id 2", got.TopPerformer)
	}
}
