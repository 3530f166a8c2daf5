package student

import (
	"context"

	domain "pointsboard/internal/domain/student"
)

// Store persists Student state. It is the single owner of the student collection.
type Store interface {
	// List returns every student in insertion (id) order.
	List(ctx context.Context) ([]domain.Student, error)
	GetByID(ctx context.Context, id int) (domain.Student, error)
	// Add allocates the next id and appends a new student.
	Add(ctx context.Context, name string, points int) (domain.Student, error)
	AddPoints(ctx context.Context, id int, delta int) (domain.Student, error)
	Count(ctx context.Context) (int, error)
}
