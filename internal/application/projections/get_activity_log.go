package projections

import (
	"context"

	"pointsboard/internal/domain/activity"
)

// QueryGetActivityLog returns the activity texts for a student, oldest first.
// PRE: none
// POST: Returns []string{activity.EmptyLogMessage} when the student has no entries
func QueryGetActivityLog(ctx context.Context, studentID int, store ActivityStore) ([]string, error) {
	entries, err := store.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []string{activity.EmptyLogMessage}, nil
	}
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}
	return texts, nil
}
