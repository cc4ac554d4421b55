package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/runner/routines"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

var weekdayAliases = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

func addRoutines(topLevel *cobra.Command) {
	add := &routine.Routine{}
	days := make([]string, 0)
	estimate := ""
	deactivate := ""
	activate := ""

	cmd := &cobra.Command{
		Use:     "routines [title]",
		Aliases: []string{"routine"},
		Short:   "List recurring tasks, or declare a new one",
		Long: "Routines generate a task on every date they fire. " +
			"Declare one with a title and --every; without arguments, " +
			"lists the declared routines.",
		Example: `
dayplan routines
dayplan routines standup --every weekly --on mon,tue,wed,thu,fri --at 09:30 -e 15m
dayplan routines water plants --every 3d
dayplan routines --deactivate standup
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := routines.Routines{
				Deactivate:  deactivate,
				Activate:    activate,
				Persistence: p,
				Service:     &plan.Service{Persistence: p},
			}
			if len(args) > 0 {
				add.Title = strings.Join(args, " ")
				add.Active = true
				if add.StartDate == "" {
					add.StartDate = timeutil.DateKey(time.Now())
				}
				for _, d := range days {
					wd, ok := weekdayAliases[strings.ToLower(d)]
					if !ok {
						return errors.New("unknown weekday " + d)
					}
					add.DaysOfWeek = append(add.DaysOfWeek, wd)
				}
				if estimate != "" {
					if add.EstimatedMinutes, err = timeutil.ParseEstimate(estimate); err != nil {
						return err
					}
				}
				if err := parseFrequency(add); err != nil {
					return err
				}
				s.Add = add
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar((*string)(&add.Frequency), "every", "daily",
		"How often the routine fires: daily, weekly, monthly, or an interval like 3d.")
	cmd.Flags().StringSliceVar(&days, "on", nil,
		"Weekdays for weekly routines, like mon,wed,fri.")
	cmd.Flags().StringVar(&add.StartDate, "start", "",
		"First date the routine may fire, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVar(&add.StartTime, "at", "",
		"Pinned start time for generated tasks, HH:MM.")
	cmd.Flags().StringVarP(&add.SectionID, "section", "s", "",
		"Section for generated tasks.")
	cmd.Flags().StringVarP(&estimate, "estimate", "e", "",
		"Estimated duration for generated tasks, like 45m.")
	cmd.Flags().StringVar(&add.ID, "id", "",
		"Routine id. Generated from the title when empty.")
	cmd.Flags().StringVar(&deactivate, "deactivate", "",
		"Deactivate the routine with this id.")
	cmd.Flags().StringVar(&activate, "activate", "",
		"Reactivate the routine with this id.")

	topLevel.AddCommand(cmd)
}

// parseFrequency normalizes the --every value, turning interval forms
// like "3d" into a custom frequency.
func parseFrequency(r *routine.Routine) error {
	v := strings.ToLower(strings.TrimSpace(string(r.Frequency)))
	switch v {
	case "", "daily":
		r.Frequency = routine.Daily
	case "weekly":
		r.Frequency = routine.Weekly
	case "monthly":
		r.Frequency = routine.Monthly
	default:
		if !strings.HasSuffix(v, "d") {
			return errors.New("unknown frequency " + v)
		}
		n := 0
		for _, c := range strings.TrimSuffix(v, "d") {
			if c < '0' || c > '9' {
				return errors.New("unknown frequency " + v)
			}
			n = n*10 + int(c-'0')
		}
		if n < 1 {
			return errors.New("interval must be at least 1 day")
		}
		r.Frequency = routine.Custom
		r.Interval = n
	}
	return nil
}
