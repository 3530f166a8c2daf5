package milestone

// Defaults returns the milestones every student is measured against.
// A fresh slice is returned on each call so callers cannot alter the table.
func Defaults() []Milestone {
	return []Milestone{
		{Name: "First 50 Points", Threshold: 50},
		{Name: "Century Scorer", Threshold: 100},
		{Name: "Project Pro", Threshold: 150},
	}
}
