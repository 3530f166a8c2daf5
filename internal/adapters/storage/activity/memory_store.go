package activity

import (
	"context"
	"sync"

	domain "pointsboard/internal/domain/activity"
)

// MemoryStore keeps activity logs in a map keyed by student id.
type MemoryStore struct {
	mu   sync.RWMutex
	logs map[int][]domain.Entry
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory activity store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{logs: make(map[int][]domain.Entry)}
}

// ListByStudentID returns a copy of the student's log.
func (s *MemoryStore) ListByStudentID(_ context.Context, studentID int) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.logs[studentID]
	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Append adds an entry to the end of the student's log.
// PRE: none
// POST: Entry validated and appended
func (s *MemoryStore) Append(_ context.Context, entry domain.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[entry.StudentID] = append(s.logs[entry.StudentID], entry)
	return nil
}
