package activity

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// EmptyLogMessage is shown in place of an activity log with no entries.
const EmptyLogMessage = "No recent activity."

// Max length constants for user-editable fields.
const (
	MaxTextLength = 280
)

// Domain errors
var (
	ErrEmptyText     = errors.New("activity text cannot be empty")
	ErrTextTooLong   = errors.New("activity text cannot exceed 280 characters")
	ErrZeroStudentID = errors.New("activity must reference a student")
)

// Entry is a free-text line in a student's append-only activity log.
type Entry struct {
	StudentID int
	Text      string // e.g. "Won Debate: +50"
}

// Validate checks if the Entry has valid data.
// PRE: Entry struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Entry) Validate() error {
	if e.StudentID <= 0 {
		return ErrZeroStudentID
	}
	if strings.TrimSpace(e.Text) == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(e.Text) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}
