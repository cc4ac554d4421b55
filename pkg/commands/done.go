package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/runner/done"
	"tableflip.dev/dayplan/pkg/store"
)

func addDone(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done <task id>",
		Aliases: []string{"complete", "finish"},
		Short:   "Complete a task",
		Example: `
dayplan done a1b2c3d4
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")
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
			s := done.Done{
				Date:    date,
				ID:      io.ID,
				Service: &plan.Service{Persistence: p},
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
