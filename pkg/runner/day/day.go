// Package day provides the runner logic for printing a day's plan.
package day

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/printers"
)

// Day prints the assembled plan for a date.
type Day struct {
	Date   string
	ShowID bool

	Service *plan.Service
}

// Do executes the day view.
func (n *Day) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get day, no service")
	}

	d, err := n.Service.Day(ctx, n.Date)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title(n.Date)
	pp.Day(d)
	return nil
}
