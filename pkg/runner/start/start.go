// Package start provides the runner logic for starting a task timer.
package start

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/printers"
)

// Start begins the timer on a task.
type Start struct {
	Date string
	ID   string

	Service *plan.Service
}

// Do executes the start operation for the configured task ID.
func (n *Start) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not start, no service")
	}

	if _, err := n.Service.Start(ctx, n.Date, n.ID); err != nil {
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
