// Package tui is the live day view: a bubbletea program that rerenders
// the computed schedule on a minute tick and on store change events.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/dayplan/pkg/glyph"
	"tableflip.dev/dayplan/pkg/plan"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	bandStyle     = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	runningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

type changeMsg store.Event

type dayMsg struct {
	day *plan.Day
	err error
}

// Model drives the live view.
type Model struct {
	Service *plan.Service

	ctx    context.Context
	date   string
	day    *plan.Day
	events <-chan store.Event
	cursor int
	width  int
	err    error
}

// New builds the model for today's plan.
func New(ctx context.Context, service *plan.Service) *Model {
	return &Model{
		Service: service,
		ctx:     ctx,
		date:    timeutil.DateKey(time.Now()),
		width:   80,
	}
}

// Run starts the program and blocks until quit.
func (m *Model) Run() error {
	events, err := m.Service.Watch(m.ctx)
	if err != nil {
		return err
	}
	m.events = events
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick(), m.wait())
}

func (m *Model) load() tea.Cmd {
	ctx, date := m.ctx, m.date
	return func() tea.Msg {
		day, err := m.Service.Day(ctx, date)
		return dayMsg{day: day, err: err}
	}
}

// tick refreshes "now" about once a minute, aligned to the minute so
// displayed times roll over cleanly.
func (m *Model) tick() tea.Cmd {
	now := time.Now()
	next := now.Truncate(time.Minute).Add(time.Minute)
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) wait() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return changeMsg(ev)
	}
}

// visible returns the day's tasks flattened in display order.
func (m *Model) visible() []*task.Task {
	if m.day == nil {
		return nil
	}
	out := make([]*task.Task, 0)
	for _, view := range m.day.Sections {
		out = append(out, view.Tasks...)
	}
	return out
}

func (m *Model) selected() *task.Task {
	tasks := m.visible()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	return tasks[m.cursor]
}

func (m *Model) mutate(f func(ctx context.Context, date, id string) error) tea.Cmd {
	t := m.selected()
	if t == nil {
		return nil
	}
	ctx, date, id := m.ctx, m.date, t.ID
	return func() tea.Msg {
		if err := f(ctx, date, id); err != nil {
			return dayMsg{err: err}
		}
		return nil
	}
}

func (m *Model) shiftDate(days int) tea.Cmd {
	day, err := timeutil.ParseDate(m.date)
	if err != nil {
		day = time.Now()
	}
	m.date = timeutil.DateKey(day.AddDate(0, 0, days))
	m.cursor = 0
	return m.load()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.load(), m.tick())

	case changeMsg:
		// Only reload when the change concerns the visible date.
		if store.Event(msg).Type == store.EventTasksChanged && store.Event(msg).Date != m.date {
			return m, m.wait()
		}
		return m, tea.Batch(m.load(), m.wait())

	case dayMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if msg.day != nil {
			m.day = msg.day
			if max := len(m.visible()) - 1; m.cursor > max && max >= 0 {
				m.cursor = max
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "h", "left":
			return m, m.shiftDate(-1)
		case "l", "right":
			return m, m.shiftDate(1)
		case "t":
			m.date = timeutil.DateKey(time.Now())
			m.cursor = 0
			return m, m.load()
		case "s":
			return m, m.mutate(func(ctx context.Context, date, id string) error {
				_, err := m.Service.Start(ctx, date, id)
				return err
			})
		case "p":
			return m, m.mutate(func(ctx context.Context, date, id string) error {
				_, err := m.Service.Stop(ctx, date, id)
				return err
			})
		case "x":
			return m, m.mutate(func(ctx context.Context, date, id string) error {
				_, err := m.Service.Complete(ctx, date, id)
				return err
			})
		case "~":
			return m, m.mutate(func(ctx context.Context, date, id string) error {
				_, err := m.Service.Skip(ctx, date, id)
				return err
			})
		case "r":
			return m, m.load()
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.day == nil {
		return titleStyle.Render(m.date) + "\n\n loading...\n"
	}

	out := titleStyle.Render(m.date) + "\n\n"
	if m.err != nil {
		out += errStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n\n"
	}

	index := 0
	for _, view := range m.day.Sections {
		if view.Display.Synthesized && len(view.Tasks) == 0 {
			continue
		}
		header := sectionStyle.Render(view.Display.Name) + " " + bandStyle.Render(fmt.Sprintf("%s - %s",
			timeutil.FormatClock(view.Display.StartMinute),
			timeutil.FormatClock(view.Display.EndMinute)))
		out += header + "\n"

		if len(view.Tasks) == 0 {
			out += bandStyle.Render("   none") + "\n"
		}
		for _, t := range view.Tasks {
			line := m.taskLine(t)
			if index == m.cursor {
				line = selectedStyle.Render(line)
			}
			out += line + "\n"
			index++
		}
		out += "\n"
	}

	out += helpStyle.Render("j/k move · h/l day · t today · s start · p stop · x done · ~ skip · q quit")
	return out
}

func (m *Model) taskLine(t *task.Task) string {
	window := "           "
	if slot, ok := m.day.Slots[t.ID]; ok {
		window = fmt.Sprintf("%s-%s",
			slot.Start.Format(timeutil.LayoutClock),
			slot.End.Format(timeutil.LayoutClock))
	}
	line := fmt.Sprintf(" %s %s %s  %s",
		window,
		glyph.ForStatus(t.Status).String(),
		t.Title,
		timeutil.FormatMinutes(t.EstimatedMinutes))
	width := uint(m.width)
	if width > 2 {
		line = truncate.StringWithTail(line, width-1, "…")
	}
	switch t.Status {
	case task.StatusDone:
		return doneStyle.Render(line)
	case task.StatusInProgress:
		return runningStyle.Render(line)
	default:
		return line
	}
}
