package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions captures the task shaping flags shared by add and edit
// commands.
type TaskOptions struct {
	Section  string
	Estimate string
	At       string
}

// AddTaskArgs wires section, estimate, and explicit start flags on the
// provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Section, "section", "s", "",
		"Specify the section. Defaults to the section the current time falls in.")
	cmd.Flags().StringVarP(&o.Estimate, "estimate", "e", "",
		"Estimated duration, like 45m or 1h30m. Defaults to 30m.")
	cmd.Flags().StringVar(&o.At, "at", "",
		"Pin the scheduled start, HH:MM.")
}
