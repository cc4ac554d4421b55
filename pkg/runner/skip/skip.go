// Package skip provides the runner logic for dismissing tasks.
package skip

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/printers"
)

// Skip dismisses a task. For routine instances the skipped record
// suppresses regeneration of the occurrence.
type Skip struct {
	Date string
	ID   string

	Service *plan.Service
}

// Do executes the skip operation for the configured task ID.
func (n *Skip) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not skip, no service")
	}

	if _, err := n.Service.Skip(ctx, n.Date, n.ID); err != nil {
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
