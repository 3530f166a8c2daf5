package milestone

import (
	"errors"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("milestone name cannot be empty")
	ErrZeroThreshold = errors.New("threshold must be greater than zero")
)

// Milestone is a fixed point threshold with a celebratory label (e.g., "Century Scorer").
// Milestones are never locked or unlocked; they are shown with a progress percentage.
type Milestone struct {
	Name      string
	Threshold int
}

// Validate checks if the Milestone has valid data.
// PRE: Milestone struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Milestone) Validate() error {
	if m.Name == "" {
		return ErrEmptyName
	}
	if m.Threshold <= 0 {
		return ErrZeroThreshold
	}
	return nil
}

// Percent returns progress towards the threshold, clamped to [0, 100].
// PRE: Threshold > 0
// POST: Returns min(100, 100*points/threshold), never negative
func (m *Milestone) Percent(points int) float64 {
	if points <= 0 {
		return 0
	}
	p := float64(points) / float64(m.Threshold) * 100
	if p > 100 {
		return 100
	}
	return p
}
