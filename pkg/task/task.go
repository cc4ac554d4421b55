// Package task defines the persisted task document and the status
// transitions that keep its timer fields consistent.
package task

import (
	"crypto/md5"
	"fmt"
	"time"
)

// Status is the single lifecycle state a task is in.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusSkipped    Status = "skipped"
)

// VirtualOrder is the order sentinel given to routine-derived tasks so
// they sort after every explicitly ordered task in their section.
const VirtualOrder = float64(1 << 30)

// Task is the persisted document shape. Virtual (routine-derived)
// instances share it; they simply have not been written yet.
type Task struct {
	ID               string     `json:"id,omitempty"`
	Title            string     `json:"title"`
	SectionID        string     `json:"sectionId,omitempty"`
	Date             string     `json:"date"`
	Status           Status     `json:"status"`
	EstimatedMinutes int        `json:"estimatedMinutes,omitempty"`
	ActualMinutes    int        `json:"actualMinutes,omitempty"`
	ScheduledStart   string     `json:"scheduledStart,omitempty"`
	StartedAt        *Timestamp `json:"startedAt,omitempty"`
	CompletedAt      *Timestamp `json:"completedAt,omitempty"`
	Order            float64    `json:"order,omitempty"`
	RoutineID        string     `json:"routineId,omitempty"`
	ProjectID        string     `json:"projectId,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	Memo             string     `json:"memo,omitempty"`

	// Virtual marks an instance synthesized by the routine expander
	// that has not been persisted. Never serialized.
	Virtual bool `json:"-"`
}

// New creates an open task for the given date.
func New(date, sectionID, title string) *Task {
	t := &Task{
		Title:            title,
		SectionID:        sectionID,
		Date:             date,
		Status:           StatusOpen,
		EstimatedMinutes: 0,
	}
	t.EnsureID()
	return t
}

// EnsureID assigns a content-derived hex id when none is set.
func (t *Task) EnsureID() {
	if t.ID != "" {
		return
	}
	sum := md5.Sum([]byte(fmt.Sprintf("%s|%s|%s|%d", t.Date, t.Title, t.SectionID, time.Now().UnixNano())))
	t.ID = fmt.Sprintf("%x", sum[:8])
}

// Start moves the task into in_progress and records the timer start.
func (t *Task) Start(now time.Time) {
	t.Status = StatusInProgress
	t.StartedAt = &Timestamp{Time: now}
	t.CompletedAt = nil
}

// Stop halts a running timer, accruing the elapsed whole minutes into
// ActualMinutes, and returns the task to open. A task that is not in
// progress is left untouched.
func (t *Task) Stop(now time.Time) {
	if t.Status != StatusInProgress || t.StartedAt == nil {
		return
	}
	t.ActualMinutes += elapsedMinutes(t.StartedAt.Time, now)
	t.StartedAt = nil
	t.Status = StatusOpen
}

// Complete finishes the task, folding in any running timer, and stamps
// the completion instant.
func (t *Task) Complete(now time.Time) {
	if t.Status == StatusInProgress && t.StartedAt != nil {
		t.ActualMinutes += elapsedMinutes(t.StartedAt.Time, now)
	}
	if t.ActualMinutes <= 0 {
		t.ActualMinutes = t.EstimatedMinutes
	}
	t.StartedAt = nil
	t.CompletedAt = &Timestamp{Time: now}
	t.Status = StatusDone
}

// Skip dismisses the task. For routine instances the skipped record is
// the tombstone that suppresses future virtual generation.
func (t *Task) Skip() {
	t.StartedAt = nil
	t.CompletedAt = nil
	t.Status = StatusSkipped
}

// Reopen returns a done or skipped task to open without clearing the
// accrued actual minutes.
func (t *Task) Reopen() {
	t.StartedAt = nil
	t.CompletedAt = nil
	t.Status = StatusOpen
}

// Materialize returns a copy of a virtual task ready to be persisted
// under its deterministic id. Called before any mutation of a
// routine-derived instance; writing it is a create-or-overwrite, so a
// concurrent double materialization cannot duplicate the task.
func (t *Task) Materialize() *Task {
	clone := *t
	clone.Virtual = false
	if len(t.Tags) > 0 {
		clone.Tags = append([]string(nil), t.Tags...)
	}
	return &clone
}

func elapsedMinutes(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from) / time.Minute)
}
