// Package section defines the time-of-day bands a day is partitioned
// into and the display expansion that fills gaps between them.
package section

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/dayplan/pkg/timeutil"
)

// Section is a user-declared band of the day.
type Section struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	StartTime string `json:"startTime,omitempty"` // "HH:MM", empty means 00:00
	EndTime   string `json:"endTime,omitempty"`   // "HH:MM", empty means "until next"
	Order     int    `json:"order,omitempty"`
}

// Display is a band in the fully partitioned day view. Synthesized
// bands fill the gaps between declared sections so every minute of the
// day maps to exactly one Display.
type Display struct {
	ID          string
	Name        string
	SectionID   string // empty for synthesized intervals
	StartMinute int
	EndMinute   int
	Synthesized bool
}

// IntervalIDPrefix marks synthesized gap-filler bands. The suffix is
// the band's start time so repeated expansion is idempotent.
const IntervalIDPrefix = "interval-"

// IntervalName is the display name of synthesized bands.
const IntervalName = "Interval"

// StartMinute returns the effective start of a section; a missing
// start reads as midnight. Malformed values also degrade to midnight.
func (s *Section) StartMinute() int {
	if s.StartTime == "" {
		return 0
	}
	min, err := timeutil.ParseClock(s.StartTime)
	if err != nil {
		return 0
	}
	return min
}

// endMinute resolves a section's end: explicit end when valid and
// after the start, otherwise the next declared start, otherwise 24:00.
func endMinute(s *Section, nextStart int) int {
	if s.EndTime != "" {
		if min, err := timeutil.ParseClock(s.EndTime); err == nil && min > s.StartMinute() {
			return min
		}
	}
	return nextStart
}

// Sort orders sections ascending by effective start, then declared
// order, then id, in place.
func Sort(sections []*Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		a, b := sections[i], sections[j]
		if a.StartMinute() != b.StartMinute() {
			return a.StartMinute() < b.StartMinute()
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.ID < b.ID
	})
}

// Generate expands declared sections into the display partition of the
// day. The result is contiguous, non-overlapping, and covers exactly
// [00:00, 24:00). Declared sections that would start before the
// running cursor (overlaps) are clamped forward; a section squeezed to
// nothing is dropped from the view.
func Generate(sections []*Section) []*Display {
	ordered := make([]*Section, len(sections))
	copy(ordered, sections)
	Sort(ordered)

	display := make([]*Display, 0, len(ordered)*2+1)
	cursor := 0
	for i, s := range ordered {
		nextStart := timeutil.MinutesPerDay
		if i+1 < len(ordered) {
			nextStart = ordered[i+1].StartMinute()
		}

		start := s.StartMinute()
		if start > cursor {
			display = append(display, interval(cursor, start))
		}
		if start < cursor {
			start = cursor
		}
		end := endMinute(s, nextStart)
		if end > timeutil.MinutesPerDay {
			end = timeutil.MinutesPerDay
		}
		if end <= start {
			continue
		}
		display = append(display, &Display{
			ID:          s.ID,
			Name:        s.Name,
			SectionID:   s.ID,
			StartMinute: start,
			EndMinute:   end,
		})
		cursor = end
	}
	if cursor < timeutil.MinutesPerDay {
		display = append(display, interval(cursor, timeutil.MinutesPerDay))
	}
	return display
}

func interval(start, end int) *Display {
	return &Display{
		ID:          fmt.Sprintf("%s%s", IntervalIDPrefix, timeutil.FormatClock(start)),
		Name:        IntervalName,
		StartMinute: start,
		EndMinute:   end,
		Synthesized: true,
	}
}

// IsIntervalID reports whether an id names a synthesized band.
func IsIntervalID(id string) bool {
	return strings.HasPrefix(id, IntervalIDPrefix)
}

// ForMinute returns the id of the declared section whose [start, end)
// band contains the minute. The boundary minute belongs to the section
// starting there. Falls back to the first declared section when no
// band contains the minute, and to "" when there are no sections.
func ForMinute(sections []*Section, minute int) string {
	if len(sections) == 0 {
		return ""
	}
	ordered := make([]*Section, len(sections))
	copy(ordered, sections)
	Sort(ordered)

	for i, s := range ordered {
		nextStart := timeutil.MinutesPerDay
		if i+1 < len(ordered) {
			nextStart = ordered[i+1].StartMinute()
		}
		if minute >= s.StartMinute() && minute < endMinute(s, nextStart) {
			return s.ID
		}
	}
	return ordered[0].ID
}

// ForClock maps a wall-clock "HH:MM" string to its declared section.
func ForClock(sections []*Section, clock string) string {
	min, err := timeutil.ParseClock(clock)
	if err != nil {
		min = 0
	}
	return ForMinute(sections, min)
}

// ForTime maps an instant to its declared section.
func ForTime(sections []*Section, t time.Time) string {
	return ForMinute(sections, timeutil.MinuteOfDay(t))
}

// Defaults returns the bundled standard bands used when a user has no
// sections configured.
func Defaults() []*Section {
	return []*Section{
		{ID: "morning", Name: "Morning", StartTime: "06:00", EndTime: "09:00", Order: 1},
		{ID: "work", Name: "Work", StartTime: "09:00", EndTime: "17:00", Order: 2},
		{ID: "afternoon", Name: "Afternoon", StartTime: "17:00", EndTime: "20:00", Order: 3},
		{ID: "night", Name: "Night", StartTime: "20:00", Order: 4},
	}
}
