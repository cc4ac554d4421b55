package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/runner/add"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	to := &options.TaskOptions{}
	io := &options.IDOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to a day",
		Example: `
dayplan add write weekly report
dayplan add standup --at 09:30 -e 15m
dayplan add review prs -d tomorrow -s work
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := do.Resolve()
			if err != nil {
				return err
			}
			estimate := 0
			if to.Estimate != "" {
				if estimate, err = timeutil.ParseEstimate(to.Estimate); err != nil {
					return err
				}
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Date:             date,
				SectionID:        to.Section,
				Title:            title,
				EstimatedMinutes: estimate,
				ScheduledStart:   to.At,
				ShowID:           io.ShowID,
				Service:          &plan.Service{Persistence: p},
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddTaskArgs(cmd, to)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
