package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/runner/move"
	"tableflip.dev/dayplan/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}
	to := &options.TaskOptions{}
	after := ""

	cmd := &cobra.Command{
		Use:   "move <task id>",
		Short: "Reorder a task, or move it to another section",
		Long: "Move places a task after another task in display order. " +
			"Without --after the task goes to the front of its section. " +
			"With --section it changes section first.",
		Example: `
dayplan move a1b2c3d4 --after e5f6a7b8
dayplan move a1b2c3d4 --section work
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
			s := move.Move{
				Date:      date,
				ID:        io.ID,
				SectionID: to.Section,
				AfterID:   after,
				Service:   &plan.Service{Persistence: p},
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	cmd.Flags().StringVarP(&to.Section, "section", "s", "",
		"Move the task into this section.")
	cmd.Flags().StringVarP(&after, "after", "a", "",
		"Place the task after this task id.")

	topLevel.AddCommand(cmd)
}
