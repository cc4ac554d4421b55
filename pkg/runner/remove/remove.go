// Package remove provides the runner logic for deleting tasks.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/printers"
)

// Remove deletes a plain task, or skips a routine-derived one so the
// occurrence stays dismissed.
type Remove struct {
	Date string
	ID   string

	Service *plan.Service
}

// Do executes the remove operation for the configured task ID.
func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	if err := n.Service.Remove(ctx, n.Date, n.ID); err != nil {
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
