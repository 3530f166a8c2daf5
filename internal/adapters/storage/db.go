package storage

import (
	"database/sql"
	"fmt"
)

// MemoryDSN opens a private in-memory SQLite database with foreign keys enforced.
// Data lives only as long as the single pooled connection.
const MemoryDSN = ":memory:?_pragma=foreign_keys(1)"

// OpenMemoryDB opens an in-memory SQLite database and creates the schema.
// PRE: the "sqlite" driver is registered (import modernc.org/sqlite)
// POST: Returns a ready database limited to one connection, so every query sees the same data
func OpenMemoryDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite", MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each new connection to :memory: would be a fresh, empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := InitDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created
func InitDB(db *sql.DB) error {
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS student (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		points INTEGER NOT NULL DEFAULT 0 CHECK (points >= 0)
	);

	CREATE TABLE IF NOT EXISTS activity (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL,
		text TEXT NOT NULL,
		FOREIGN KEY (student_id) REFERENCES student(id)
	);

	CREATE INDEX IF NOT EXISTS idx_activity_student ON activity(student_id, seq);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
