// Package routines provides the runner logic for listing and editing
// recurrence definitions.
package routines

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Routines lists routines, optionally saving a new one or toggling an
// existing one first.
type Routines struct {
	Add        *routine.Routine
	Deactivate string // routine id
	Activate   string // routine id

	Persistence store.Persistence
	Service     *plan.Service
}

// Do executes the routine operation.
func (n *Routines) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list routines, no service")
	}

	if n.Add != nil {
		if n.Persistence == nil {
			return errors.New("can not add routine, no persistence")
		}
		if n.Add.Title == "" {
			return errors.New("can not add routine, no title")
		}
		if n.Add.ID == "" {
			n.Add.ID = newRoutineID(n.Add)
		}
		if err := n.Persistence.SaveRoutine(n.Add); err != nil {
			return err
		}
	}
	if id := n.Deactivate + n.Activate; id != "" {
		if err := n.toggle(ctx, id, n.Activate != ""); err != nil {
			return err
		}
	}

	all, err := n.Service.Routines(ctx)
	if err != nil {
		return err
	}

	t := color.New(color.Bold, color.Underline)
	f := color.New(color.Faint)
	fmt.Println("")
	_, _ = t.Println("Routines")
	if len(all) == 0 {
		_, _ = f.Println(" none")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range all {
		state := "active"
		if !r.Active {
			state = "inactive"
		}
		tbl.AddRow(r.ID, r.Title, describe(r), r.StartTime, timeutil.FormatMinutes(r.EstimatedMinutes), state)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

func (n *Routines) toggle(ctx context.Context, id string, active bool) error {
	if n.Persistence == nil {
		return errors.New("can not toggle routine, no persistence")
	}
	for _, r := range n.Persistence.Routines(ctx) {
		if r.ID == id {
			r.Active = active
			return n.Persistence.SaveRoutine(r)
		}
	}
	return fmt.Errorf("routine %q not found", id)
}

func newRoutineID(r *routine.Routine) string {
	slug := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return c
		case c >= 'A' && c <= 'Z':
			return c + ('a' - 'A')
		default:
			return -1
		}
	}, r.Title)
	if len(slug) > 12 {
		slug = slug[:12]
	}
	if slug == "" {
		slug = "routine"
	}
	return slug
}

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func describe(r *routine.Routine) string {
	switch r.Frequency {
	case routine.Weekly:
		if len(r.DaysOfWeek) == 0 {
			return "weekly"
		}
		names := make([]string, 0, len(r.DaysOfWeek))
		for _, d := range r.DaysOfWeek {
			if d >= 0 && d < len(weekdayNames) {
				names = append(names, weekdayNames[d])
			}
		}
		return "weekly " + strings.Join(names, ",")
	case routine.Custom:
		interval := r.Interval
		if interval < 1 {
			interval = 1
		}
		return fmt.Sprintf("every %dd", interval)
	default:
		return string(r.Frequency)
	}
}
