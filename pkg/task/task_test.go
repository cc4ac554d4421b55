package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestStartSetsTimer(t *testing.T) {
	now := time.Now()
	tk := New("2026-03-10", "work", "write report")
	tk.Start(now)
	if tk.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %s", tk.Status)
	}
	if tk.StartedAt == nil || !tk.StartedAt.Equal(now) {
		t.Fatalf("expected startedAt %v, got %v", now, tk.StartedAt)
	}
	if tk.CompletedAt != nil {
		t.Fatalf("expected no completedAt while running")
	}
}

func TestStopAccruesActualMinutes(t *testing.T) {
	now := time.Now()
	tk := New("2026-03-10", "work", "write report")
	tk.Start(now.Add(-25 * time.Minute))
	tk.Stop(now)
	if tk.Status != StatusOpen {
		t.Fatalf("expected open, got %s", tk.Status)
	}
	if tk.ActualMinutes != 25 {
		t.Fatalf("expected 25 actual minutes, got %d", tk.ActualMinutes)
	}
	if tk.StartedAt != nil {
		t.Fatalf("expected startedAt cleared")
	}
}

func TestStopWithoutTimerIsNoop(t *testing.T) {
	tk := New("2026-03-10", "work", "write report")
	tk.Stop(time.Now())
	if tk.Status != StatusOpen || tk.ActualMinutes != 0 {
		t.Fatalf("expected untouched open task, got %s/%d", tk.Status, tk.ActualMinutes)
	}
}

func TestCompleteFoldsRunningTimer(t *testing.T) {
	now := time.Now()
	tk := New("2026-03-10", "work", "write report")
	tk.Start(now.Add(-40 * time.Minute))
	tk.Complete(now)
	if tk.Status != StatusDone {
		t.Fatalf("expected done, got %s", tk.Status)
	}
	if tk.ActualMinutes != 40 {
		t.Fatalf("expected 40 actual minutes, got %d", tk.ActualMinutes)
	}
	if tk.StartedAt != nil {
		t.Fatalf("expected startedAt cleared on completion")
	}
	if tk.CompletedAt == nil || !tk.CompletedAt.Equal(now) {
		t.Fatalf("expected completedAt stamped")
	}
}

func TestCompleteFallsBackToEstimate(t *testing.T) {
	tk := New("2026-03-10", "work", "write report")
	tk.EstimatedMinutes = 30
	tk.Complete(time.Now())
	if tk.ActualMinutes != 30 {
		t.Fatalf("expected estimate as actual, got %d", tk.ActualMinutes)
	}
}

func TestSkipClearsTimers(t *testing.T) {
	tk := New("2026-03-10", "work", "write report")
	tk.Start(time.Now())
	tk.Skip()
	if tk.Status != StatusSkipped {
		t.Fatalf("expected skipped, got %s", tk.Status)
	}
	if tk.StartedAt != nil || tk.CompletedAt != nil {
		t.Fatalf("expected timers cleared")
	}
}

func TestInstanceID(t *testing.T) {
	id := InstanceID("r1", "2026-03-10")
	if id != "routine-r1-2026-03-10" {
		t.Fatalf("unexpected instance id %q", id)
	}
	if !IsVirtualID(id) {
		t.Fatalf("expected virtual id")
	}
	if IsVirtualID("a1b2c3") {
		t.Fatalf("plain id must not read as virtual")
	}
}

func TestMaterializeCopies(t *testing.T) {
	v := &Task{
		ID:      InstanceID("r1", "2026-03-10"),
		Title:   "stretch",
		Date:    "2026-03-10",
		Status:  StatusOpen,
		Tags:    []string{"health"},
		Virtual: true,
	}
	real := v.Materialize()
	if real.Virtual {
		t.Fatalf("materialized task must not be virtual")
	}
	if real.ID != v.ID || real.Title != v.Title {
		t.Fatalf("expected identical fields")
	}
	real.Tags[0] = "changed"
	if v.Tags[0] != "health" {
		t.Fatalf("expected tags to be copied, not shared")
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	tk := New("2026-03-10", "work", "write report")
	tk.Start(now)
	data, err := json.Marshal(tk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Task
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.StartedAt == nil || !back.StartedAt.Equal(now) {
		t.Fatalf("expected startedAt to survive round trip, got %v", back.StartedAt)
	}
	if back.CompletedAt != nil {
		t.Fatalf("expected nil completedAt")
	}
}
