package orchestrators

import (
	"context"
	"log/slog"

	"pointsboard/internal/domain/activity"
	"pointsboard/internal/domain/student"
)

// StudentStoreForSeed defines the store interface needed by SeedStudents.
type StudentStoreForSeed interface {
	Add(ctx context.Context, name string, points int) (student.Student, error)
	Count(ctx context.Context) (int, error)
}

// SeedStudentsDeps holds dependencies for SeedStudents.
type SeedStudentsDeps struct {
	StudentStore  StudentStoreForSeed
	ActivityStore ActivityStoreForMutation
}

type seedStudent struct {
	Name       string
	Points     int
	Activities []string
}

// demoRoster is the dataset every process starts from.
var demoRoster = []seedStudent{
	{Name: "Mohana Priya", Points: 75, Activities: []string{"Joined Coding Club: +10", "Attended Workshop: +15"}},
	{Name: "Keerthi Varshini", Points: 120, Activities: []string{"Won Debate: +50"}},
	{Name: "Kanimozhi", Points: 40},
	{Name: "Harnitha", Points: 155},
	{Name: "Jaya Nandhini", Points: 95},
}

// ExecuteSeedStudents loads the demo roster and activity log if no students exist.
// PRE: none
// POST: Students 1..5 exist with their seed activities; a no-op when the store is non-empty
func ExecuteSeedStudents(ctx context.Context, deps SeedStudentsDeps) error {
	n, err := deps.StudentStore.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil // Already seeded
	}

	entries := 0
	for _, seed := range demoRoster {
		created, err := deps.StudentStore.Add(ctx, seed.Name, seed.Points)
		if err != nil {
			return err
		}
		for _, text := range seed.Activities {
			if err := deps.ActivityStore.Append(ctx, activity.Entry{StudentID: created.ID, Text: text}); err != nil {
				return err
			}
			entries++
		}
	}

	slog.Info("seed_event", "event", "students_seeded", "students", len(demoRoster), "activities", entries)
	return nil
}
