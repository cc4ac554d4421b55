// Package plan merges persisted and routine-derived tasks into a day
// view and provides the high-level operations CLIs and UIs share.
package plan

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/section"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Service wraps persistence with the merge, ordering, and scheduling
// rules. It holds no state between calls: every operation reads a
// fresh snapshot, so it is safe to call on any store state.
type Service struct {
	Persistence store.Persistence

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

var (
	ErrNoPersistence = errors.New("plan: no persistence configured")
	ErrNotFound      = errors.New("plan: task not found")
)

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Sections returns the user's declared sections, or the bundled
// defaults when none are stored.
func (s *Service) Sections(ctx context.Context) ([]*section.Section, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	declared := s.Persistence.Sections(ctx)
	if len(declared) == 0 {
		return section.Defaults(), nil
	}
	return declared, nil
}

// Routines returns the stored recurrence definitions.
func (s *Service) Routines(ctx context.Context) ([]*routine.Routine, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Routines(ctx), nil
}

// MergedTasks combines the date's persisted tasks with one virtual
// instance per firing routine, then drops skipped tombstones from the
// result. Deterministic and write-free: materializing a virtual task
// is a separate, explicit mutation. No two results share an id; the
// expander's dedup contract guarantees it.
func (s *Service) MergedTasks(ctx context.Context, date string) ([]*task.Task, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	real := s.Persistence.TasksOn(ctx, date)

	merged := make([]*task.Task, 0, len(real))
	for _, t := range real {
		if t.Status == task.StatusSkipped {
			// Tombstone: suppresses regeneration, never shown.
			continue
		}
		merged = append(merged, t)
	}
	for _, r := range s.Persistence.Routines(ctx) {
		if v := r.Expand(date, real); v != nil {
			merged = append(merged, v)
		}
	}
	return merged, nil
}

// SectionView is one band of the assembled day.
type SectionView struct {
	Display *section.Display
	Tasks   []*task.Task
}

// Day is the fully assembled view: the partitioned bands, each band's
// tasks in canonical order, and the computed slot per task.
type Day struct {
	Date     string
	Start    time.Time
	Sections []*SectionView
	Slots    map[string]schedule.Slot
}

// orphanBand collects tasks whose section no longer exists and cannot
// be healed. It spans the whole day so its cursor follows "now".
func orphanBand() *section.Display {
	return &section.Display{
		ID:          "orphan",
		Name:        "Unsorted",
		StartMinute: 0,
		EndMinute:   timeutil.MinutesPerDay,
		Synthesized: true,
	}
}

// Day assembles the complete view for a date.
func (s *Service) Day(ctx context.Context, date string) (*Day, error) {
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, err
	}
	declared, err := s.Sections(ctx)
	if err != nil {
		return nil, err
	}
	merged, err := s.MergedTasks(ctx, date)
	if err != nil {
		return nil, err
	}

	display := section.Generate(declared)
	byID := make(map[string]*SectionView, len(display))
	views := make([]*SectionView, 0, len(display)+1)
	for _, d := range display {
		view := &SectionView{Display: d}
		views = append(views, view)
		byID[d.ID] = view
	}

	var orphans *SectionView
	for _, t := range merged {
		view, ok := byID[t.SectionID]
		if !ok {
			// Self-heal a dangling section id via the task's scheduled
			// time; a task with neither lands in the orphan band.
			if healed := section.ForClock(declared, t.ScheduledStart); t.ScheduledStart != "" && healed != "" {
				view, ok = byID[healed]
			}
			if !ok {
				if orphans == nil {
					orphans = &SectionView{Display: orphanBand()}
				}
				view = orphans
			}
		}
		view.Tasks = append(view.Tasks, t)
	}
	if orphans != nil {
		views = append(views, orphans)
	}

	groups := make([]schedule.SectionTasks, 0, len(views))
	for _, view := range views {
		schedule.Sort(view.Tasks)
		groups = append(groups, schedule.SectionTasks{Section: view.Display, Tasks: view.Tasks})
	}

	return &Day{
		Date:     date,
		Start:    day,
		Sections: views,
		Slots:    schedule.Calculate(day, groups, s.now()),
	}, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
