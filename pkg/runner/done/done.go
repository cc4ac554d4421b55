// Package done provides the runner logic for completing tasks.
package done

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/printers"
)

// Done marks a task completed.
type Done struct {
	Date string
	ID   string

	Service *plan.Service
}

// Do executes the completion operation for the configured task ID.
func (n *Done) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	if _, err := n.Service.Complete(ctx, n.Date, n.ID); err != nil {
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
