package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dayplan/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dayplan",
		Short: base.Wrap80("Time-boxed daily task planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&output.JSON, "json", false,
		"Output errors as JSON.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addDay(topLevel)
	addStart(topLevel)
	addStop(topLevel)
	addDone(topLevel)
	addSkip(topLevel)
	addRm(topLevel)
	addMove(topLevel)
	addSections(topLevel)
	addRoutines(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}
