package routine

import (
	"testing"

	"tableflip.dev/dayplan/pkg/task"
)

func daily(id string) *Routine {
	return &Routine{
		ID:               id,
		Title:            "stretch",
		Frequency:        Daily,
		StartDate:        "2026-03-10",
		StartTime:        "07:00",
		SectionID:        "morning",
		EstimatedMinutes: 10,
		Active:           true,
	}
}

func TestDailyStartDateFloor(t *testing.T) {
	r := daily("r1")
	if r.Expand("2026-03-09", nil) != nil {
		t.Fatalf("routine must not fire before its start date")
	}
	if r.Expand("2026-03-10", nil) == nil {
		t.Fatalf("routine must fire on its start date")
	}
	if r.Expand("2026-03-11", nil) == nil {
		t.Fatalf("daily routine must fire after its start date")
	}
}

func TestInactiveNeverFires(t *testing.T) {
	r := daily("r1")
	r.Active = false
	if r.Expand("2026-03-10", nil) != nil {
		t.Fatalf("inactive routine must not fire")
	}
}

func TestWeeklyDaysOfWeek(t *testing.T) {
	r := daily("r1")
	r.Frequency = Weekly
	r.DaysOfWeek = []int{1, 3} // Monday, Wednesday
	// 2026-03-10 is a Tuesday.
	if r.Expand("2026-03-10", nil) != nil {
		t.Fatalf("Tuesday is not in the weekday set")
	}
	if r.Expand("2026-03-11", nil) == nil {
		t.Fatalf("Wednesday is in the weekday set")
	}
}

func TestWeeklyFallsBackToStartWeekday(t *testing.T) {
	r := daily("r1")
	r.Frequency = Weekly
	// Start date 2026-03-10 is a Tuesday; no explicit weekday set.
	if r.Expand("2026-03-17", nil) == nil {
		t.Fatalf("expected match on the start date's weekday")
	}
	if r.Expand("2026-03-18", nil) != nil {
		t.Fatalf("expected no match on other weekdays")
	}
}

func TestMonthlySameDay(t *testing.T) {
	r := daily("r1")
	r.Frequency = Monthly
	r.StartDate = "2026-01-15"
	if r.Expand("2026-02-15", nil) == nil {
		t.Fatalf("expected monthly match on the 15th")
	}
	if r.Expand("2026-02-14", nil) != nil {
		t.Fatalf("expected no match off the anchor day")
	}
}

func TestMonthlyClampsToShortMonths(t *testing.T) {
	r := daily("r1")
	r.Frequency = Monthly
	r.StartDate = "2026-01-31"
	// February 2026 has 28 days; the 31st clamps to the last day.
	if r.Expand("2026-02-28", nil) == nil {
		t.Fatalf("expected clamp to the last day of February")
	}
	if r.Expand("2026-02-27", nil) != nil {
		t.Fatalf("expected no match before the clamped day")
	}
	if r.Expand("2026-03-31", nil) == nil {
		t.Fatalf("expected normal match in a 31-day month")
	}
	if r.Expand("2026-04-30", nil) == nil {
		t.Fatalf("expected clamp to April 30")
	}
}

func TestCustomInterval(t *testing.T) {
	r := daily("r1")
	r.Frequency = Custom
	r.Interval = 3
	if r.Expand("2026-03-10", nil) == nil {
		t.Fatalf("expected match on day zero")
	}
	if r.Expand("2026-03-13", nil) == nil {
		t.Fatalf("expected match on day three")
	}
	if r.Expand("2026-03-12", nil) != nil {
		t.Fatalf("expected no match between intervals")
	}
}

func TestExpandDedupByInstanceID(t *testing.T) {
	r := daily("r1")
	existing := []*task.Task{{ID: task.InstanceID("r1", "2026-03-10"), Status: task.StatusSkipped}}
	if r.Expand("2026-03-10", existing) != nil {
		t.Fatalf("existing instance (even skipped) must suppress generation")
	}
}

func TestExpandDedupByRoutineID(t *testing.T) {
	r := daily("r1")
	existing := []*task.Task{{ID: "abc123", RoutineID: "r1", Status: task.StatusDone}}
	if r.Expand("2026-03-10", existing) != nil {
		t.Fatalf("a real task for the routine must suppress generation")
	}
}

func TestExpandCopiesFields(t *testing.T) {
	r := daily("r1")
	r.ProjectID = "p1"
	r.Tags = []string{"health"}
	r.Memo = "before breakfast"
	v := r.Expand("2026-03-10", nil)
	if v == nil {
		t.Fatalf("expected a virtual task")
	}
	if v.ID != "routine-r1-2026-03-10" {
		t.Fatalf("unexpected id %q", v.ID)
	}
	if !v.Virtual || v.Status != task.StatusOpen {
		t.Fatalf("expected open virtual task, got %+v", v)
	}
	if v.Order != task.VirtualOrder {
		t.Fatalf("expected the virtual order sentinel")
	}
	if v.ScheduledStart != "07:00" || v.SectionID != "morning" || v.EstimatedMinutes != 10 {
		t.Fatalf("expected routine fields copied, got %+v", v)
	}
	if v.ProjectID != "p1" || v.Memo != "before breakfast" || len(v.Tags) != 1 {
		t.Fatalf("expected project/tags/memo carried over")
	}
	v.Tags[0] = "changed"
	if r.Tags[0] != "health" {
		t.Fatalf("expected tag slice copied, not shared")
	}
}

func TestExpandDeterministic(t *testing.T) {
	r := daily("r1")
	a := r.Expand("2026-03-10", nil)
	b := r.Expand("2026-03-10", nil)
	if a == nil || b == nil || a.ID != b.ID || a.Order != b.Order {
		t.Fatalf("expansion must be deterministic")
	}
}
