package schedule

import (
	"time"

	"tableflip.dev/dayplan/pkg/section"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Slot is the computed wall-clock interval for one task. Ephemeral:
// recomputed on every tick or edit, never persisted.
type Slot struct {
	Start time.Time
	End   time.Time
}

// SectionTasks pairs a display band with its tasks, already in
// canonical Compare order.
type SectionTasks struct {
	Section *section.Display
	Tasks   []*task.Task
}

// minDuration keeps malformed or missing estimates from producing
// empty or negative intervals.
const minDuration = time.Minute

// Calculate walks the day's sections in order and assigns each task a
// start/end interval. One running cursor per section, initialized to
// the section's start; the section containing "now" starts its cursor
// at "now" instead, so a band that began in the past does not schedule
// untouched tasks into the past.
//
// Delays propagate: any task that runs over pushes every following
// non-done task in its section. "now" may jump forward arbitrarily
// between calls; nothing here assumes small increments.
func Calculate(day time.Time, groups []SectionTasks, now time.Time) map[string]Slot {
	slots := make(map[string]Slot)
	nowMinute := timeutil.MinuteOfDay(now)
	sameDay := timeutil.DateKey(now) == timeutil.DateKey(day)

	for _, group := range groups {
		if group.Section == nil {
			continue
		}
		cursor := timeutil.AtMinute(day, group.Section.StartMinute)
		if sameDay && nowMinute >= group.Section.StartMinute && nowMinute < group.Section.EndMinute && now.After(cursor) {
			cursor = now
		}

		for _, t := range group.Tasks {
			switch t.Status {
			case task.StatusSkipped:
				// Skipped tasks are tombstones; they never reach the
				// calculator through the merge engine, but a direct
				// caller gets no slot rather than a bogus one.
				continue

			case task.StatusDone:
				end := now
				if t.CompletedAt != nil && !t.CompletedAt.IsZero() {
					end = t.CompletedAt.Time
				}
				start := end.Add(-duration(t.ActualMinutes))
				slots[t.ID] = Slot{Start: start, End: end}
				// Historical; does not occupy future capacity.

			case task.StatusInProgress:
				start := now
				if t.StartedAt != nil && !t.StartedAt.IsZero() {
					start = t.StartedAt.Time
				}
				slots[t.ID] = Slot{Start: start, End: start.Add(duration(t.EstimatedMinutes))}
				// The active task occupies "now": everything after it
				// starts no earlier than the current instant.
				if now.After(cursor) {
					cursor = now
				}

			default:
				start := cursor
				if t.ScheduledStart != "" {
					if min, err := timeutil.ParseClock(t.ScheduledStart); err == nil {
						// An explicit time wins even when it collides
						// with the running cursor; the view surfaces
						// the conflict, the calculator just resets
						// forward from the explicit start.
						start = timeutil.AtMinute(day, min)
					}
				}
				end := start.Add(duration(t.EstimatedMinutes))
				slots[t.ID] = Slot{Start: start, End: end}
				cursor = end
			}
		}
	}
	return slots
}

func duration(minutes int) time.Duration {
	d := time.Duration(minutes) * time.Minute
	if d < minDuration {
		return minDuration
	}
	return d
}
