package orchestrators

import (
	"context"
	"errors"
	"testing"

	activityStore "pointsboard/internal/adapters/storage/activity"
	studentStore "pointsboard/internal/adapters/storage/student"
	"pointsboard/internal/domain/activity"
	"pointsboard/internal/domain/student"
)

// seededStores returns memory stores loaded with the demo roster.
func seededStores(t *testing.T) (*studentStore.MemoryStore, *activityStore.MemoryStore) {
	t.Helper()
	students := studentStore.NewMemoryStore()
	activities := activityStore.NewMemoryStore()
	if err := ExecuteSeedStudents(context.Background(), SeedStudentsDeps{StudentStore: students, ActivityStore: activities}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return students, activities
}

type failingActivityStore struct{}

// Append always fails.
func (failingActivityStore) Append(_ context.Context, _ activity.Entry) error {
	return errors.New("activity store down")
}

// TestParsePoints covers accepted and rejected inputs.
func TestParsePoints(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "10", want: 10},
		{raw: " 25 ", want: 25},
		{raw: "-5", want: -5},
		{raw: "0", want: 0},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "12abc", wantErr: true},
		{raw: "1.5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePoints(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, student.ErrInvalidInput) {
					t.Errorf("ParsePoints(%q) error = %v, want ErrInvalidInput", tt.raw, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParsePoints(%q) = %d, %v; want %d", tt.raw, got, err, tt.want)
			}
		})
	}
}

// TestExecuteAssignPoints_AddsAndRecordsActivity verifies 40 + 10 = 50 and the log entry.
func TestExecuteAssignPoints_AddsAndRecordsActivity(t *testing.T) {
	students, activities := seededStores(t)
	ctx := context.Background()

	got, err := ExecuteAssignPoints(ctx, AssignPointsInput{StudentID: 3, RawPoints: "10"},
		AssignPointsDeps{StudentStore: students, ActivityStore: activities})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Points != 50 {
		t.Errorf("Points = %d, want 50", got.Points)
	}

	log, _ := activities.ListByStudentID(ctx, 3)
	if len(log) != 1 || log[0].Text != "Mentor awarded: +10" {
		t.Errorf("activity = %+v", log)
	}
}

// TestExecuteAssignPoints_InvalidInputDoesNotMutate verifies non-numeric input is an explicit error.
func TestExecuteAssignPoints_InvalidInputDoesNotMutate(t *testing.T) {
	students, activities := seededStores(t)
	ctx := context.Background()

	_, err := ExecuteAssignPoints(ctx, AssignPointsInput{StudentID: 3, RawPoints: "lots"},
		AssignPointsDeps{StudentStore: students, ActivityStore: activities})
	if !errors.Is(err, student.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	s, _ := students.GetByID(ctx, 3)
	if s.Points != 40 {
		t.Errorf("Points = %d, want 40", s.Points)
	}
	log, _ := activities.ListByStudentID(ctx, 3)
	if len(log) != 0 {
		t.Errorf("activity recorded on failure: %+v", log)
	}
}

// TestExecuteAssignPoints_UnknownStudent verifies NotFound.
func TestExecuteAssignPoints_UnknownStudent(t *testing.T) {
	students, activities := seededStores(t)
	_, err := ExecuteAssignPoints(context.Background(), AssignPointsInput{StudentID: 999, RawPoints: "10"},
		AssignPointsDeps{StudentStore: students, ActivityStore: activities})
	if !errors.Is(err, student.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

// TestExecuteAssignPoints_RejectsNegativeBalance verifies points never go below zero.
func TestExecuteAssignPoints_RejectsNegativeBalance(t *testing.T) {
	students, _ := seededStores(t)
	ctx := context.Background()
	_, err := ExecuteAssignPoints(ctx, AssignPointsInput{StudentID: 3, RawPoints: "-41"}, AssignPointsDeps{StudentStore: students})
	if !errors.Is(err, student.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	got, err := ExecuteAssignPoints(ctx, AssignPointsInput{StudentID: 3, RawPoints: "-40"}, AssignPointsDeps{StudentStore: students})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Points != 0 {
		t.Errorf("Points = %d, want 0", got.Points)
	}
}

// TestExecuteAssignPoints_ActivityFailureIsNotFatal verifies the award stands when logging fails.
func TestExecuteAssignPoints_ActivityFailureIsNotFatal(t *testing.T) {
	students, _ := seededStores(t)
	got, err := ExecuteAssignPoints(context.Background(), AssignPointsInput{StudentID: 1, RawPoints: "5"},
		AssignPointsDeps{StudentStore: students, ActivityStore: failingActivityStore{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Points != 80 {
		t.Errorf("Points = %d, want 80", got.Points)
	}
}

// TestExecuteCreateStudent table-tests admin creation.
func TestExecuteCreateStudent(t *testing.T) {
	tests := []struct {
		name      string
		input     CreateStudentInput
		wantErr   error
		wantID    int
		wantName  string
		wantPoint int
	}{
		{name: "valid", input: CreateStudentInput{RawName: "Asha", RawPoints: "0"}, wantID: 6, wantName: "Asha"},
		{name: "trims name and points", input: CreateStudentInput{RawName: "  Ravi ", RawPoints: " 30 "}, wantID: 6, wantName: "Ravi", wantPoint: 30},
		{name: "blank name", input: CreateStudentInput{RawName: "   ", RawPoints: "10"}, wantErr: student.ErrInvalidInput},
		{name: "non-numeric points", input: CreateStudentInput{RawName: "Asha", RawPoints: "ten"}, wantErr: student.ErrInvalidInput},
		{name: "empty points", input: CreateStudentInput{RawName: "Asha", RawPoints: ""}, wantErr: student.ErrInvalidInput},
		{name: "negative points", input: CreateStudentInput{RawName: "Asha", RawPoints: "-3"}, wantErr: student.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students, _ := seededStores(t)
			ctx := context.Background()
			got, err := ExecuteCreateStudent(ctx, tt.input, CreateStudentDeps{StudentStore: students})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if n, _ := students.Count(ctx); n != 5 {
					t.Errorf("Count = %d after rejected create, want 5", n)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.wantID || got.Name != tt.wantName || got.Points != tt.wantPoint {
				t.Errorf("created = %+v", got)
			}
			list, _ := students.List(ctx)
			if list[len(list)-1] != got {
				t.Errorf("last listed = %+v, want %+v", list[len(list)-1], got)
			}
		})
	}
}

// TestExecuteSeedStudents_Idempotent verifies a second seed is a no-op.
func TestExecuteSeedStudents_Idempotent(t *testing.T) {
	students, activities := seededStores(t)
	ctx := context.Background()
	if err := ExecuteSeedStudents(ctx, SeedStudentsDeps{StudentStore: students, ActivityStore: activities}); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if n, _ := students.Count(ctx); n != 5 {
		t.Errorf("Count = %d, want 5", n)
	}
	log, _ := activities.ListByStudentID(ctx, 1)
	if len(log) != 2 {
		t.Errorf("student 1 activities = %d, want 2", len(log))
	}
	harnitha, _ := students.GetByID(ctx, 4)
	if harnitha.Name != "Harnitha" || harnitha.Points != 155 {
		t.Errorf("student 4 = %+v", harnitha)
	}
}
