package projections

import (
	"context"
	"errors"
	"fmt"

	domainActivity "pointsboard/internal/domain/activity"
	domainStudent "pointsboard/internal/domain/student"
)

type mockStudentStore struct {
	students []domainStudent.Student
	err      error
}

// List returns the seeded students.
// PRE: none
// POST: Returns the seeded students or the configured error
func (m *mockStudentStore) List(_ context.Context) ([]domainStudent.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.students, nil
}

// GetByID returns a seeded student by ID.
// PRE: none
// POST: Returns the seeded student or ErrNotFound
func (m *mockStudentStore) GetByID(_ context.Context, id int) (domainStudent.Student, error) {
	for _, s := range m.students {
		if s.ID == id {
			return s, nil
		}
	}
	return domainStudent.Student{}, fmt.Errorf("student %d: %w", id, domainStudent.ErrNotFound)
}

type mockActivityStore struct {
	logs map[int][]domainActivity.Entry
}

// ListByStudentID returns the seeded entries for a student.
func (m *mockActivityStore) ListByStudentID(_ context.Context, studentID int) ([]domainActivity.Entry, error) {
	return m.logs[studentID], nil
}

var errStoreDown = errors.New("store down")

func seedStudents() []domainStudent.Student {
	return []domainStudent.Student{
		{ID: 1, Name: "Mohana Priya", Points: 75},
		{ID: 2, Name: "Keerthi Varshini", Points: 120},
		{ID: 3, Name: "Kanimozhi", Points: 40},
		{ID: 4, Name: "Harnitha", Points: 155},
		{ID: 5, Name: "Jaya Nandhini", Points: 95},
	}
}
