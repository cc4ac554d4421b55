package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the live day view",
		Example: `
dayplan ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			m := tui.New(context.Background(), &plan.Service{Persistence: p})
			return m.Run()
		},
	}

	topLevel.AddCommand(cmd)
}
