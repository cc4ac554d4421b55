// Package schedule holds the canonical task ordering and the slot
// calculator that turns an ordered day into wall-clock intervals.
package schedule

import (
	"sort"
	"strings"

	"tableflip.dev/dayplan/pkg/task"
)

// statusRank surfaces finished work first, then the active task, then
// everything pending.
func statusRank(s task.Status) int {
	switch s {
	case task.StatusDone:
		return 0
	case task.StatusInProgress:
		return 1
	default:
		return 2
	}
}

// Compare is the canonical within-section ordering, shared by the day
// view and the slot calculator so computed times always match list
// positions. It is a strict total order:
//
//  1. status rank (done, in_progress, rest)
//  2. scheduled start, with unscheduled tasks ahead of scheduled ones
//  3. the fractional order field
//  4. id
//
// Returns -1, 0, or 1.
func Compare(a, b *task.Task) int {
	if ra, rb := statusRank(a.Status), statusRank(b.Status); ra != rb {
		return cmpInt(ra, rb)
	}
	if a.ScheduledStart != b.ScheduledStart {
		// Zero-padded fixed-width "HH:MM" compares correctly as a
		// string; the empty string sorts unscheduled tasks first.
		return strings.Compare(a.ScheduledStart, b.ScheduledStart)
	}
	if a.Order != b.Order {
		if a.Order < b.Order {
			return -1
		}
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Sort orders tasks in place by Compare.
func Sort(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Compare(tasks[i], tasks[j]) < 0
	})
}

// Between computes a fractional order value between two neighbors for
// drag-style reinsertion. Either neighbor may be nil at a boundary.
// Fractional indexing lets a task land between any two siblings
// without renumbering the rest of the section.
func Between(before, after *task.Task) float64 {
	switch {
	case before == nil && after == nil:
		return 1
	case before == nil:
		return after.Order - 1
	case after == nil:
		return before.Order + 1
	default:
		return (before.Order + after.Order) / 2
	}
}
