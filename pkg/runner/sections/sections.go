// Package sections provides the runner logic for listing and editing
// the day's bands.
package sections

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/section"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Sections lists the declared bands, optionally saving a new one
// first.
type Sections struct {
	Add *section.Section

	Persistence store.Persistence
	Service     *plan.Service
}

// Do executes the section operation.
func (n *Sections) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list sections, no service")
	}

	if n.Add != nil {
		if n.Persistence == nil {
			return errors.New("can not add section, no persistence")
		}
		if n.Add.Name == "" {
			return errors.New("can not add section, no name")
		}
		if n.Add.ID == "" {
			n.Add.ID = fmt.Sprintf("s%06x", n.Add.StartMinute())
		}
		if err := n.Persistence.SaveSection(n.Add); err != nil {
			return err
		}
	}

	declared, err := n.Service.Sections(ctx)
	if err != nil {
		return err
	}

	t := color.New(color.Bold, color.Underline)
	fmt.Println("")
	_, _ = t.Println("Sections")

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range section.Generate(declared) {
		name := d.Name
		if d.Synthesized {
			name = color.New(color.Faint, color.Italic).Sprint(name)
		}
		tbl.AddRow(
			fmt.Sprintf("%s-%s", timeutil.FormatClock(d.StartMinute), timeutil.FormatClock(d.EndMinute)),
			name,
			d.SectionID,
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
