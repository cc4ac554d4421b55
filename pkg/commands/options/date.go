// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/timeutil"
)

// DateOptions captures the date selection flag for commands.
type DateOptions struct {
	Date string
}

// AddDateArgs wires the date flag on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "today",
		"Specify the date, YYYY-MM-DD or today, tomorrow, yesterday.")
}

// Resolve turns the flag value into a concrete date key.
func (o *DateOptions) Resolve() (string, error) {
	return timeutil.ResolveDateKey(o.Date, time.Now())
}
