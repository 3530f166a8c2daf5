package activity

import (
	"context"

	domain "pointsboard/internal/domain/activity"
)

// Store persists the per-student activity log.
type Store interface {
	// ListByStudentID returns entries oldest first; an unknown student yields an empty slice.
	ListByStudentID(ctx context.Context, studentID int) ([]domain.Entry, error)
	Append(ctx context.Context, entry domain.Entry) error
}
