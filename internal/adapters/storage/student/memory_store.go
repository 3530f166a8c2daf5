package student

import (
	"context"
	"fmt"
	"sync"

	domain "pointsboard/internal/domain/student"
)

// MemoryStore keeps students in a slice guarded by a mutex.
type MemoryStore struct {
	mu       sync.RWMutex
	students []domain.Student
}

// Compile-time check that *MemoryStore satisfies Store.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory student store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns a copy of all students in insertion order.
// PRE: none
// POST: Returned slice is independent of the store's state
func (s *MemoryStore) List(_ context.Context) ([]domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Student, len(s.students))
	copy(out, s.students)
	return out, nil
}

// GetByID retrieves a Student by its ID.
// PRE: none
// POST: Returns the entity or an error wrapping domain.ErrNotFound
func (s *MemoryStore) GetByID(_ context.Context, id int) (domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.students[i], nil
	}
	return domain.Student{}, fmt.Errorf("student %d: %w", id, domain.ErrNotFound)
}

// Add appends a new student with id = max(existing)+1.
// PRE: none
// POST: Student validated and appended, or an error wrapping domain.ErrInvalidInput
func (s *MemoryStore) Add(_ context.Context, name string, points int) (domain.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entity := domain.Student{ID: domain.NextID(s.students), Name: name, Points: points}
	if err := entity.Validate(); err != nil {
		return domain.Student{}, err
	}
	s.students = append(s.students, entity)
	return entity, nil
}

// AddPoints applies a point delta to an existing student.
// PRE: none
// POST: Returns the updated student; state is unchanged on error
func (s *MemoryStore) AddPoints(_ context.Context, id int, delta int) (domain.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Student{}, fmt.Errorf("student %d: %w", id, domain.ErrNotFound)
	}
	updated := s.students[i]
	if err := updated.AddPoints(delta); err != nil {
		return domain.Student{}, err
	}
	s.students[i] = updated
	return updated, nil
}

// Count returns the number of students.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.students), nil
}

// indexOf must be called with the lock held.
func (s *MemoryStore) indexOf(id int) int {
	for i := range s.students {
		if s.students[i].ID == id {
			return i
		}
	}
	return -1
}
