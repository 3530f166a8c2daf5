package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"pointsboard/internal/domain/activity"
	"pointsboard/internal/domain/student"
)

// StudentStoreForAssign defines the store interface needed by AssignPoints.
type StudentStoreForAssign interface {
	AddPoints(ctx context.Context, id int, delta int) (student.Student, error)
}

// ActivityStoreForMutation defines the activity store interface used to record mutations.
type ActivityStoreForMutation interface {
	Append(ctx context.Context, entry activity.Entry) error
}

// AssignPointsInput carries the mentor form submission.
type AssignPointsInput struct {
	StudentID int
	RawPoints string // as typed into the form
}

// AssignPointsDeps holds dependencies for AssignPoints.
type AssignPointsDeps struct {
	StudentStore  StudentStoreForAssign
	ActivityStore ActivityStoreForMutation // optional: nil skips the activity entry
}

// ParsePoints parses a whole-number points value from a form field.
// PRE: none
// POST: Returns the integer or an error wrapping student.ErrInvalidInput
func ParsePoints(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("points %q is not a whole number: %w", trimmed, student.ErrInvalidInput)
	}
	return n, nil
}

// ExecuteAssignPoints adds a mentor-awarded delta to a student's points.
// PRE: none
// POST: On success the student's points grew by the parsed delta and an activity entry was recorded
// INVARIANT: On ErrInvalidInput or ErrNotFound nothing is mutated
func ExecuteAssignPoints(ctx context.Context, input AssignPointsInput, deps AssignPointsDeps) (student.Student, error) {
	delta, err := ParsePoints(input.RawPoints)
	if err != nil {
		return student.Student{}, err
	}

	updated, err := deps.StudentStore.AddPoints(ctx, input.StudentID, delta)
	if err != nil {
		return student.Student{}, err
	}

	if deps.ActivityStore != nil && delta != 0 {
		entry := activity.Entry{StudentID: updated.ID, Text: fmt.Sprintf("Mentor awarded: %+d", delta)}
		if err := deps.ActivityStore.Append(ctx, entry); err != nil {
			slog.Warn("activity_append_failed", "student_id", updated.ID, "error", err.Error())
		}
	}

	slog.Info("points_event", "event", "points_assigned", "student_id", updated.ID, "delta", delta, "points", updated.Points)
	return updated, nil
}
