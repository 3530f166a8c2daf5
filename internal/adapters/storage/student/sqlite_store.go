package student

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pointsboard/internal/adapters/storage"
	domain "pointsboard/internal/domain/student"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// Compile-time check that *SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new student Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// List returns all students ordered by id.
// PRE: none
// POST: Returns students in insertion order
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Student, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, points FROM student ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Student
	for rows.Next() {
		var entity domain.Student
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Points); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// GetByID retrieves a Student by its ID.
// PRE: none
// POST: Returns the entity or an error wrapping domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int) (domain.Student, error) {
	var entity domain.Student
	err := s.db.QueryRowContext(ctx, "SELECT id, name, points FROM student WHERE id = ?", id).
		Scan(&entity.ID, &entity.Name, &entity.Points)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Student{}, fmt.Errorf("student %d: %w", id, domain.ErrNotFound)
	}
	return entity, err
}

// Add inserts a new student with id = max(existing)+1 inside one transaction.
// PRE: none
// POST: Student validated and persisted, or an error wrapping domain.ErrInvalidInput
func (s *SQLiteStore) Add(ctx context.Context, name string, points int) (domain.Student, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Student{}, err
	}
	defer tx.Rollback()

	entity := domain.Student{Name: name, Points: points}
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) + 1 FROM student").Scan(&entity.ID); err != nil {
		return domain.Student{}, err
	}
	if err := entity.Validate(); err != nil {
		return domain.Student{}, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO student (id, name, points) VALUES (?, ?, ?)",
		entity.ID, entity.Name, entity.Points,
	); err != nil {
		return domain.Student{}, err
	}
	return entity, tx.Commit()
}

// AddPoints applies a point delta to an existing student.
// PRE: none
// POST: Returns the updated student; the row is unchanged on error
func (s *SQLiteStore) AddPoints(ctx context.Context, id int, delta int) (domain.Student, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Student{}, err
	}
	defer tx.Rollback()

	var entity domain.Student
	err = tx.QueryRowContext(ctx, "SELECT id, name, points FROM student WHERE id = ?", id).
		Scan(&entity.ID, &entity.Name, &entity.Points)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Student{}, fmt.Errorf("student %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Student{}, err
	}
	if err := entity.AddPoints(delta); err != nil {
		return domain.Student{}, err
	}
	if _, err := tx.ExecContext(ctx, "UPDATE student SET points = ? WHERE id = ?", entity.Points, entity.ID); err != nil {
		return domain.Student{}, err
	}
	return entity, tx.Commit()
}

// Count returns the number of students.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM student").Scan(&n)
	return n, err
}
