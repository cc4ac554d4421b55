package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/runner/day"
	"tableflip.dev/dayplan/pkg/store"
)

func addDay(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "day [date]",
		Aliases: []string{"get", "today"},
		Short:   "Print the plan for a day",
		Example: `
dayplan day
dayplan day tomorrow
dayplan day 2026-03-10 --show-id
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				do.Date = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := do.Resolve()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := day.Day{
				Date:    date,
				ShowID:  io.ShowID,
				Service: &plan.Service{Persistence: p},
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
