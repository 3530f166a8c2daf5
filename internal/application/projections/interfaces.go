package projections

import (
	"context"

	domainActivity "pointsboard/internal/domain/activity"
	domainStudent "pointsboard/internal/domain/student"
)

// StudentStore interface for student queries.
type StudentStore interface {
	List(ctx context.Context) ([]domainStudent.Student, error)
	GetByID(ctx context.Context, id int) (domainStudent.Student, error)
}

// ActivityStore interface for activity log queries.
type ActivityStore interface {
	ListByStudentID(ctx context.Context, studentID int) ([]domainActivity.Entry, error)
}
