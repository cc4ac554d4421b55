// Package printers renders assembled day views for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/glyph"
	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("routine-0123456789ab-2026-03-10  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Day prints the full assembled view: each band header with its time
// range, then the band's tasks with their computed slots.
func (pp *PrettyPrint) Day(d *plan.Day) {
	for _, view := range d.Sections {
		if view.Display.Synthesized && len(view.Tasks) == 0 {
			continue
		}
		pp.SectionHeader(view)
		pp.Tasks(d.Slots, view.Tasks...)
	}
}

// SectionHeader prints one band title with its wall-clock range.
func (pp *PrettyPrint) SectionHeader(view *plan.SectionView) {
	t := color.New(color.Bold, color.Underline)
	f := color.New(color.Faint)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(view.Display.Name)
	_, _ = f.Printf("  %s - %s\n",
		timeutil.FormatClock(view.Display.StartMinute),
		timeutil.FormatClock(view.Display.EndMinute))
}

// Tasks prints task rows with slot times, status glyph, title, and
// estimate/actual minutes.
func (pp *PrettyPrint) Tasks(slots map[string]schedule.Slot, tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		window := ""
		if slot, ok := slots[t.ID]; ok {
			window = fmt.Sprintf("%s-%s",
				slot.Start.Format(timeutil.LayoutClock),
				slot.End.Format(timeutil.LayoutClock))
		}
		title := t.Title
		if t.Status == task.StatusDone {
			title = glyph.Strike(title)
		}
		row := []interface{}{window, glyph.ForStatus(t.Status).String(), title, minutesColumn(t)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(t.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func minutesColumn(t *task.Task) string {
	est := timeutil.FormatMinutes(t.EstimatedMinutes)
	if t.ActualMinutes > 0 {
		return fmt.Sprintf("%s/%s", timeutil.FormatMinutes(t.ActualMinutes), est)
	}
	return est
}
