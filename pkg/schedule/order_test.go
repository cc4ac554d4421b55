package schedule

import (
	"fmt"
	"testing"

	"tableflip.dev/dayplan/pkg/task"
)

func TestCompareStatusRank(t *testing.T) {
	done := &task.Task{ID: "a", Status: task.StatusDone}
	running := &task.Task{ID: "b", Status: task.StatusInProgress}
	open := &task.Task{ID: "c", Status: task.StatusOpen}
	if Compare(done, running) >= 0 {
		t.Fatalf("done must sort before in_progress")
	}
	if Compare(running, open) >= 0 {
		t.Fatalf("in_progress must sort before open")
	}
	if Compare(done, open) >= 0 {
		t.Fatalf("done must sort before open")
	}
}

func TestCompareScheduledStart(t *testing.T) {
	early := &task.Task{ID: "a", Status: task.StatusOpen, ScheduledStart: "09:00"}
	late := &task.Task{ID: "b", Status: task.StatusOpen, ScheduledStart: "13:30"}
	if Compare(early, late) >= 0 {
		t.Fatalf("earlier scheduled start must sort first")
	}
}

func TestCompareOrderField(t *testing.T) {
	first := &task.Task{ID: "a", Status: task.StatusOpen, Order: 1.0}
	second := &task.Task{ID: "b", Status: task.StatusOpen, Order: 2.0}
	if Compare(first, second) >= 0 {
		t.Fatalf("lower order must sort first")
	}
}

func TestCompareUnscheduledBeforeScheduled(t *testing.T) {
	unscheduled := &task.Task{ID: "a", Status: task.StatusOpen, Order: 1.0}
	scheduled := &task.Task{ID: "b", Status: task.StatusOpen, Order: 1.0, ScheduledStart: "09:00"}
	if Compare(unscheduled, scheduled) >= 0 {
		t.Fatalf("unscheduled task must sort before scheduled on a dead tie")
	}
}

func TestCompareIDTieBreak(t *testing.T) {
	a := &task.Task{ID: "a", Status: task.StatusOpen, Order: 1.0}
	b := &task.Task{ID: "b", Status: task.StatusOpen, Order: 1.0}
	if Compare(a, b) >= 0 || Compare(b, a) <= 0 {
		t.Fatalf("id must break remaining ties consistently")
	}
}

// TestCompareTotalOrder checks antisymmetry and transitivity across
// every status/time/order combination in a small generated universe.
func TestCompareTotalOrder(t *testing.T) {
	var universe []*task.Task
	statuses := []task.Status{task.StatusOpen, task.StatusInProgress, task.StatusDone}
	starts := []string{"", "09:00", "13:30"}
	orders := []float64{1.0, 2.0, task.VirtualOrder}
	i := 0
	for _, s := range statuses {
		for _, at := range starts {
			for _, o := range orders {
				universe = append(universe, &task.Task{
					ID:             fmt.Sprintf("t%02d", i),
					Status:         s,
					ScheduledStart: at,
					Order:          o,
				})
				i++
			}
		}
	}

	for _, a := range universe {
		if Compare(a, a) != 0 {
			t.Fatalf("compare must be reflexive for %s", a.ID)
		}
		for _, b := range universe {
			if Compare(a, b) != -Compare(b, a) {
				t.Fatalf("compare must be antisymmetric for %s/%s", a.ID, b.ID)
			}
			for _, c := range universe {
				if Compare(a, b) < 0 && Compare(b, c) < 0 && Compare(a, c) >= 0 {
					t.Fatalf("compare must be transitive for %s<%s<%s", a.ID, b.ID, c.ID)
				}
			}
		}
	}
}

func TestSortStable(t *testing.T) {
	build := func() []*task.Task {
		return []*task.Task{
			{ID: "c", Status: task.StatusOpen, Order: 3},
			{ID: "a", Status: task.StatusDone, Order: 9},
			{ID: "b", Status: task.StatusInProgress, Order: 5},
			{ID: "d", Status: task.StatusOpen, Order: 1, ScheduledStart: "08:00"},
		}
	}
	first := build()
	Sort(first)
	Sort(first) // sorting twice must not change the sequence
	second := build()
	Sort(second)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("sort must be deterministic, diverged at %d", i)
		}
	}
	if first[0].ID != "a" || first[1].ID != "b" {
		t.Fatalf("expected done then in_progress first, got %s, %s", first[0].ID, first[1].ID)
	}
}

func TestBetweenMidpoint(t *testing.T) {
	a := &task.Task{ID: "a", Order: 1.0}
	b := &task.Task{ID: "b", Order: 2.0}
	mid := Between(a, b)
	if mid != 1.5 {
		t.Fatalf("expected 1.5, got %v", mid)
	}
	inserted := &task.Task{ID: "m", Order: mid}
	if got := Between(a, inserted); got != 1.25 {
		t.Fatalf("expected 1.25, got %v", got)
	}
}

func TestBetweenBoundaries(t *testing.T) {
	a := &task.Task{ID: "a", Order: 4.0}
	if got := Between(nil, a); got != 3.0 {
		t.Fatalf("expected 3.0 before the head, got %v", got)
	}
	if got := Between(a, nil); got != 5.0 {
		t.Fatalf("expected 5.0 after the tail, got %v", got)
	}
	if got := Between(nil, nil); got != 1.0 {
		t.Fatalf("expected 1.0 in an empty section, got %v", got)
	}
}
