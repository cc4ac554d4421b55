// Package move provides the runner logic for reordering tasks.
package move

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/printers"
)

// Move reorders a task within its section, optionally reassigning the
// section, using fractional insertion between its new neighbors.
type Move struct {
	Date      string
	ID        string
	SectionID string
	AfterID   string

	Service *plan.Service
}

// Do executes the move operation for the configured task ID.
func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}

	if _, err := n.Service.Move(ctx, n.Date, n.ID, n.SectionID, n.AfterID); err != nil {
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
