package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pointsboard/internal/domain/student"
)

// StudentStoreForCreate defines the store interface needed by CreateStudent.
type StudentStoreForCreate interface {
	Add(ctx context.Context, name string, points int) (student.Student, error)
}

// CreateStudentInput carries the admin form submission.
type CreateStudentInput struct {
	RawName   string
	RawPoints string
}

// CreateStudentDeps holds dependencies for CreateStudent.
type CreateStudentDeps struct {
	StudentStore StudentStoreForCreate
}

// ExecuteCreateStudent registers a new student from raw form values.
// PRE: none
// POST: Student appended with the next sequential id
// INVARIANT: Blank names and non-integer or negative points are rejected with student.ErrInvalidInput
func ExecuteCreateStudent(ctx context.Context, input CreateStudentInput, deps CreateStudentDeps) (student.Student, error) {
	name := strings.TrimSpace(input.RawName)
	if name == "" {
		return student.Student{}, fmt.Errorf("name is required: %w", student.ErrInvalidInput)
	}

	points, err := ParsePoints(input.RawPoints)
	if err != nil {
		return student.Student{}, err
	}

	created, err := deps.StudentStore.Add(ctx, name, points)
	if err != nil {
		return student.Student{}, err
	}

	slog.Info("student_event", "event", "student_created", "student_id", created.ID, "points", created.Points)
	return created, nil
}
