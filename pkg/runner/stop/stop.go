// Package stop provides the runner logic for stopping a task timer.
package stop

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/printers"
)

// Stop halts the timer on a task, accruing its actual minutes.
type Stop struct {
	Date string
	ID   string

	Service *plan.Service
}

// Do executes the stop operation for the configured task ID.
func (n *Stop) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not stop, no service")
	}

	if _, err := n.Service.Stop(ctx, n.Date, n.ID); err != nil {
		return err
	}

	d, err := n.Service.Day(ctx, n.Date)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(n.Date)
	pp.Day(d)
	return nil
}
