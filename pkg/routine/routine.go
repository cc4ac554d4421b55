// Package routine defines recurrence rules and their pure expansion
// into per-day virtual task instances.
package routine

import (
	"time"

	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Frequency names the recurrence rule family.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Custom  Frequency = "custom"
)

// Routine is a persisted recurrence definition. StartDate is the lower
// bound: a routine never fires before it.
type Routine struct {
	ID               string    `json:"id,omitempty"`
	Title            string    `json:"title"`
	Frequency        Frequency `json:"frequency"`
	DaysOfWeek       []int     `json:"daysOfWeek,omitempty"` // 0=Sunday .. 6=Saturday
	Interval         int       `json:"interval,omitempty"`   // custom: every N days
	StartDate        string    `json:"startDate"`            // "YYYY-MM-DD", inclusive
	StartTime        string    `json:"startTime,omitempty"`  // "HH:MM"
	SectionID        string    `json:"sectionId,omitempty"`
	EstimatedMinutes int       `json:"estimatedMinutes,omitempty"`
	Active           bool      `json:"active"`
	ProjectID        string    `json:"projectId,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	Memo             string    `json:"memo,omitempty"`
}

// OccursOn reports whether the recurrence rule fires on the target
// date. The start date itself is included; dates before it never
// match. Malformed dates never match.
func (r *Routine) OccursOn(date string) bool {
	target, err := timeutil.ParseDate(date)
	if err != nil {
		return false
	}
	start, err := timeutil.ParseDate(r.StartDate)
	if err != nil {
		return false
	}
	diff := timeutil.DaysBetween(start, target)
	if diff < 0 {
		return false
	}

	switch r.Frequency {
	case Daily:
		return true
	case Weekly:
		if len(r.DaysOfWeek) > 0 {
			wd := int(target.Weekday())
			for _, d := range r.DaysOfWeek {
				if d == wd {
					return true
				}
			}
			return false
		}
		return target.Weekday() == start.Weekday()
	case Monthly:
		return monthlyMatch(start, target)
	case Custom:
		interval := r.Interval
		if interval < 1 {
			interval = 1
		}
		return diff%interval == 0
	default:
		return false
	}
}

// monthlyMatch fires on the anchor day of each month, clamped to the
// last day of months too short to hold it: a routine anchored on the
// 31st fires on Feb 28, Apr 30, and so on.
func monthlyMatch(start, target time.Time) bool {
	anchor := start.Day()
	last := timeutil.LastDayOfMonth(target)
	if anchor > last {
		anchor = last
	}
	return target.Day() == anchor
}

// Expand synthesizes the virtual task instance for this routine on the
// target date, or returns nil when the routine does not fire or a real
// task already claims the occurrence. Pure: no I/O, no writes, same
// output for the same inputs.
//
// The dedup contract lives here: an existing task with the
// deterministic instance id, or any task carrying this routine's id,
// suppresses generation regardless of its status. Skipped tombstones
// rely on this to keep dismissed occurrences from coming back.
func (r *Routine) Expand(date string, existing []*task.Task) *task.Task {
	if !r.Active {
		return nil
	}
	if !r.OccursOn(date) {
		return nil
	}

	id := task.InstanceID(r.ID, date)
	for _, t := range existing {
		if t.ID == id || t.RoutineID == r.ID {
			return nil
		}
	}

	virtual := &task.Task{
		ID:               id,
		Title:            r.Title,
		SectionID:        r.SectionID,
		Date:             date,
		Status:           task.StatusOpen,
		EstimatedMinutes: r.EstimatedMinutes,
		ActualMinutes:    0,
		ScheduledStart:   r.StartTime,
		Order:            task.VirtualOrder,
		RoutineID:        r.ID,
		ProjectID:        r.ProjectID,
		Memo:             r.Memo,
		Virtual:          true,
	}
	if len(r.Tags) > 0 {
		virtual.Tags = append([]string(nil), r.Tags...)
	}
	return virtual
}
