// Package store persists tasks, routines, and sections as JSON
// documents in a diskv-backed local store, and exposes the snapshot
// repositories the planning core consumes.
package store

import (
	"context"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/section"
	"tableflip.dev/dayplan/pkg/task"
)

// TaskRepository reads and writes persisted task documents. Reads are
// synchronous snapshots; live updates come from Persistence.Watch.
type TaskRepository interface {
	TasksOn(ctx context.Context, date string) []*task.Task
	AllTasks(ctx context.Context) []*task.Task
	SaveTask(t *task.Task) error
	DeleteTask(t *task.Task) error
}

// RoutineRepository reads and writes recurrence definitions.
type RoutineRepository interface {
	Routines(ctx context.Context) []*routine.Routine
	SaveRoutine(r *routine.Routine) error
	DeleteRoutine(r *routine.Routine) error
}

// SectionRepository reads and writes the day's declared bands.
type SectionRepository interface {
	Sections(ctx context.Context) []*section.Section
	SaveSection(s *section.Section) error
	DeleteSection(s *section.Section) error
}

// Persistence is the full persistence contract: the three snapshot
// repositories plus change notification.
type Persistence interface {
	TaskRepository
	RoutineRepository
	SectionRepository
	Watch(ctx context.Context) (<-chan Event, error)
}
