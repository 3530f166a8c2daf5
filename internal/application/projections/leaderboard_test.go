package projections

import (
	"reflect"
	"testing"

	domainStudent "pointsboard/internal/domain/student"
)

// TestTopN_SortedAndBounded verifies at most k entries in descending points order.
func TestTopN_SortedAndBounded(t *testing.T) {
	students := seedStudents()
	for k := 0; k <= len(students)+2; k++ {
		got := TopN(students, k)
		wantLen := k
		if wantLen > len(students) {
			wantLen = len(students)
		}
		if len(got) != wantLen {
			t.Fatalf("TopN(k=%d) len = %d, want %d", k, len(got), wantLen)
		}
		for i := 1; i < len(got); i++ {
			if got[i-1].Points < got[i].Points {
				t.Errorf("TopN(k=%d) not descending at %d: %d < %d", k, i, got[i-1].Points, got[i].Points)
			}
		}
	}
}

// TestTopN_TopThree verifies the seeded leaderboard.
func TestTopN_TopThree(t *testing.T) {
	got := TopN(seedStudents(), 3)
	wantIDs := []int{4, 2, 5}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("TopN[%d].ID = %d, want %d", i, got[i].ID, id)
		}
	}
}

// TestTopN_Idempotent verifies repeated calls give the same answer and leave input untouched.
func TestTopN_Idempotent(t *testing.T) {
	students := seedStudents()
	original := seedStudents()

	first := TopN(students, 3)
	second := TopN(students, 3)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("TopN not idempotent: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(students, original) {
		t.Errorf("TopN reordered its input: %v", students)
	}
}

// TestTopN_TiesBreakByAscendingID verifies deterministic tie handling regardless of input order.
func TestTopN_TiesBreakByAscendingID(t *testing.T) {
	students := []domainStudent.Student{
		{ID: 7, Name: "G", Points: 50},
		{ID: 2, Name: "B", Points: 50},
		{ID: 9, Name: "I", Points: 80},
		{ID: 4, Name: "D", Points: 50},
	}
	got := TopN(students, 4)
	wantIDs := []int{9, 2, 4, 7}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("TopN[%d].ID = %d, want %d", i, got[i].ID, id)
		}
	}
}

// TestLeaderboard_Ranks verifies 1-based ranks.
func TestLeaderboard_Ranks(t *testing.T) {
	rows := Leaderboard(seedStudents(), 3)
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3", len(rows))
	}
	for i, row := range rows {
		if row.Rank != i+1 {
			t.Errorf("rows[%d].Rank = %d, want %d", i, row.Rank, i+1)
		}
	}
	if rows[0].Student.Name != "Harnitha" {
		t.Errorf("rank 1 = %q, want Harnitha", rows[0].Student.Name)
	}
}
