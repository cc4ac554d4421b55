package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/runner/sections"
	"tableflip.dev/dayplan/pkg/section"
	"tableflip.dev/dayplan/pkg/store"
)

func addSections(topLevel *cobra.Command) {
	add := &section.Section{}

	cmd := &cobra.Command{
		Use:   "sections [name]",
		Short: "List the day's sections, or declare a new one",
		Long: "Without arguments, prints the expanded day: declared " +
			"sections plus the gap intervals between them. With a name " +
			"and --from, declares a new section.",
		Example: `
dayplan sections
dayplan sections deep work --from 09:00 --to 12:00
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := sections.Sections{
				Persistence: p,
				Service:     &plan.Service{Persistence: p},
			}
			if len(args) > 0 {
				add.Name = strings.Join(args, " ")
				s.Add = add
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&add.StartTime, "from", "", "Section start, HH:MM.")
	cmd.Flags().StringVar(&add.EndTime, "to", "", "Section end, HH:MM. Empty runs until the next section.")
	cmd.Flags().StringVar(&add.ID, "id", "", "Section id. Generated when empty.")
	cmd.Flags().IntVar(&add.Order, "order", 0, "Tie-break order for sections sharing a start.")

	topLevel.AddCommand(cmd)
}
