package badge

import (
	"errors"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("badge name cannot be empty")
	ErrEmptyIcon     = errors.New("badge icon cannot be empty")
	ErrZeroThreshold = errors.New("threshold must be greater than zero")
)

// Badge is a fixed point threshold with an icon and a binary unlocked state.
type Badge struct {
	Name      string
	Icon      string // emoji glyph
	Threshold int
}

// Validate checks if the Badge has valid data.
// PRE: Badge struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Badge) Validate() error {
	if b.Name == "" {
		return ErrEmptyName
	}
	if b.Icon == "" {
		return ErrEmptyIcon
	}
	if b.Threshold <= 0 {
		return ErrZeroThreshold
	}
	return nil
}

// IsUnlocked reports whether a points total earns this badge.
// INVARIANT: Badge fields are not mutated
func (b *Badge) IsUnlocked(points int) bool {
	return points >= b.Threshold
}
