package student

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// MaxPoints bounds a student's balance so aggregates over the roster cannot overflow.
const MaxPoints = 1_000_000_000

// Domain errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("student not found")
)

// Student is a participant in the points program.
type Student struct {
	ID     int
	Name   string
	Points int
}

// Validate checks if the Student has valid data.
// PRE: Student struct is initialized
// POST: Returns an error wrapping ErrInvalidInput if validation fails, nil otherwise
// INVARIANT: Name must not be blank, Points must lie in [0, MaxPoints]
func (s *Student) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: student name cannot be empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(s.Name) > MaxNameLength {
		return fmt.Errorf("%w: student name cannot exceed %d characters", ErrInvalidInput, MaxNameLength)
	}
	if s.Points < 0 {
		return fmt.Errorf("%w: points cannot be negative", ErrInvalidInput)
	}
	if s.Points > MaxPoints {
		return fmt.Errorf("%w: points cannot exceed %d", ErrInvalidInput, MaxPoints)
	}
	return nil
}

// AddPoints applies a point delta.
// PRE: none
// POST: Points increased by delta, or ErrInvalidInput if the result would leave [0, MaxPoints]
func (s *Student) AddPoints(delta int) error {
	// Compare against the remaining headroom so huge deltas cannot wrap.
	if delta > MaxPoints-s.Points {
		return fmt.Errorf("%w: points cannot exceed %d", ErrInvalidInput, MaxPoints)
	}
	if delta < -s.Points {
		return fmt.Errorf("%w: points cannot drop below zero", ErrInvalidInput)
	}
	s.Points += delta
	return nil
}

// NextID returns the id for a new student: one past the highest existing id, or 1.
func NextID(existing []Student) int {
	maxID := 0
	for _, s := range existing {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	return maxID + 1
}
