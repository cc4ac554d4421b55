package plan

import (
	"context"
	"fmt"

	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/section"
	"tableflip.dev/dayplan/pkg/task"
)

// find returns the persisted task with the given id on the date, or
// materializes the matching virtual instance so it can be mutated. The
// materialized record keeps the deterministic id, so persisting it is
// a create-or-overwrite and a racing double materialization cannot
// duplicate the occurrence.
func (s *Service) find(ctx context.Context, date, id string) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	for _, t := range s.Persistence.TasksOn(ctx, date) {
		if t.ID == id {
			return t, nil
		}
	}
	if task.IsVirtualID(id) {
		real := s.Persistence.TasksOn(ctx, date)
		for _, r := range s.Persistence.Routines(ctx) {
			v := r.Expand(date, real)
			if v != nil && v.ID == id {
				return v.Materialize(), nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s on %s", ErrNotFound, id, date)
}

// Add creates an open task on the date. An empty sectionID places the
// task in the band the current time falls in; the order lands after
// the section's last explicitly ordered task.
func (s *Service) Add(ctx context.Context, date, sectionID, title string, estimatedMinutes int, scheduledStart string) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	declared, err := s.Sections(ctx)
	if err != nil {
		return nil, err
	}
	if sectionID == "" {
		if scheduledStart != "" {
			sectionID = section.ForClock(declared, scheduledStart)
		} else {
			sectionID = section.ForTime(declared, s.now())
		}
	}

	t := task.New(date, sectionID, title)
	t.EstimatedMinutes = estimatedMinutes
	t.ScheduledStart = scheduledStart
	t.Order = s.tailOrder(ctx, date, sectionID)

	if err := s.Persistence.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

// tailOrder returns an order value after every explicitly ordered task
// in the section.
func (s *Service) tailOrder(ctx context.Context, date, sectionID string) float64 {
	var last *task.Task
	for _, t := range s.Persistence.TasksOn(ctx, date) {
		if t.SectionID != sectionID || t.Order >= task.VirtualOrder {
			continue
		}
		if last == nil || t.Order > last.Order {
			last = t
		}
	}
	return schedule.Between(last, nil)
}

// Start begins the task's timer.
func (s *Service) Start(ctx context.Context, date, id string) (*task.Task, error) {
	t, err := s.find(ctx, date, id)
	if err != nil {
		return nil, err
	}
	t.Start(s.now())
	if err := s.Persistence.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Stop halts the task's timer, accruing actual minutes.
func (s *Service) Stop(ctx context.Context, date, id string) (*task.Task, error) {
	t, err := s.find(ctx, date, id)
	if err != nil {
		return nil, err
	}
	t.Stop(s.now())
	if err := s.Persistence.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Complete finishes the task.
func (s *Service) Complete(ctx context.Context, date, id string) (*task.Task, error) {
	t, err := s.find(ctx, date, id)
	if err != nil {
		return nil, err
	}
	t.Complete(s.now())
	if err := s.Persistence.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Skip dismisses the task, leaving the tombstone that keeps its
// routine occurrence from regenerating.
func (s *Service) Skip(ctx context.Context, date, id string) (*task.Task, error) {
	t, err := s.find(ctx, date, id)
	if err != nil {
		return nil, err
	}
	t.Skip()
	if err := s.Persistence.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Remove deletes a plain task outright. A routine-derived task is
// skipped instead of deleted: a hard delete would let the routine
// regenerate the occurrence on the next merge.
func (s *Service) Remove(ctx context.Context, date, id string) error {
	t, err := s.find(ctx, date, id)
	if err != nil {
		return err
	}
	if t.RoutineID != "" {
		t.Skip()
		return s.Persistence.SaveTask(t)
	}
	return s.Persistence.DeleteTask(t)
}

// Move reorders a task. A non-empty sectionID reassigns the band. An
// empty afterID puts the task at the head of the section; otherwise it
// lands between afterID and that task's current successor, using a
// fractional order so siblings keep their values.
func (s *Service) Move(ctx context.Context, date, id, sectionID, afterID string) (*task.Task, error) {
	t, err := s.find(ctx, date, id)
	if err != nil {
		return nil, err
	}
	if sectionID != "" {
		t.SectionID = sectionID
	}

	siblings := make([]*task.Task, 0)
	merged, err := s.MergedTasks(ctx, date)
	if err != nil {
		return nil, err
	}
	for _, m := range merged {
		if m.ID != t.ID && m.SectionID == t.SectionID {
			siblings = append(siblings, m)
		}
	}
	schedule.Sort(siblings)

	if afterID == "" {
		var head *task.Task
		if len(siblings) > 0 {
			head = siblings[0]
		}
		t.Order = schedule.Between(nil, head)
	} else {
		idx := -1
		for i, m := range siblings {
			if m.ID == afterID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s on %s", ErrNotFound, afterID, date)
		}
		var next *task.Task
		if idx+1 < len(siblings) {
			next = siblings[idx+1]
		}
		t.Order = schedule.Between(siblings[idx], next)
	}

	if err := s.Persistence.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Rename updates the task title.
func (s *Service) Rename(ctx context.Context, date, id, title string) (*task.Task, error) {
	t, err := s.find(ctx, date, id)
	if err != nil {
		return nil, err
	}
	t.Title = title
	if err := s.Persistence.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

// SetEstimate updates the task estimate.
func (s *Service) SetEstimate(ctx context.Context, date, id string, minutes int) (*task.Task, error) {
	t, err := s.find(ctx, date, id)
	if err != nil {
		return nil, err
	}
	t.EstimatedMinutes = minutes
	if err := s.Persistence.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}
