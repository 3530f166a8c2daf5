package activity

import (
	"context"

	"pointsboard/internal/adapters/storage"
	domain "pointsboard/internal/domain/activity"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new activity Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// ListByStudentID returns the student's entries in insertion order.
// PRE: none
// POST: Returns an empty slice when the student has no entries
func (s *SQLiteStore) ListByStudentID(ctx context.Context, studentID int) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT student_id, text FROM activity WHERE student_id = ? ORDER BY seq", studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.Entry{}
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.StudentID, &e.Text); err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// Append inserts an entry.
// PRE: entry.StudentID references an existing student (foreign key)
// POST: Entry validated and persisted
func (s *SQLiteStore) Append(ctx context.Context, entry domain.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, "INSERT INTO activity (student_id, text) VALUES (?, ?)", entry.StudentID, entry.Text)
	return err
}
