// Package add provides the runner logic for creating tasks.
package add

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/printers"
)

// Add creates a task on a date and reprints the day.
type Add struct {
	Date             string
	SectionID        string
	Title            string
	EstimatedMinutes int
	ScheduledStart   string
	ShowID           bool

	Service *plan.Service
}

// Do executes the add operation.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Title == "" {
		return errors.New("can not add, no title")
	}

	if _, err := n.Service.Add(ctx, n.Date, n.SectionID, n.Title, n.EstimatedMinutes, n.ScheduledStart); err != nil {
		return err
	}

	day, err := n.Service.Day(ctx, n.Date)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title(n.Date)
	pp.Day(day)
	return nil
}
