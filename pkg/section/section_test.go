package section

import (
	"testing"
	"time"

	"tableflip.dev/dayplan/pkg/timeutil"
)

func declared() []*Section {
	return []*Section{
		{ID: "work", Name: "Work", StartTime: "09:00", EndTime: "17:00", Order: 2},
		{ID: "morning", Name: "Morning", StartTime: "06:00", EndTime: "09:00", Order: 1},
		{ID: "night", Name: "Night", StartTime: "20:00", Order: 3},
	}
}

func assertPartition(t *testing.T, display []*Display) {
	t.Helper()
	if len(display) == 0 {
		t.Fatalf("expected at least one display section")
	}
	if display[0].StartMinute != 0 {
		t.Fatalf("expected day to start at 00:00, got %d", display[0].StartMinute)
	}
	for i, d := range display {
		if d.EndMinute <= d.StartMinute {
			t.Fatalf("empty or inverted band %s [%d,%d)", d.ID, d.StartMinute, d.EndMinute)
		}
		if i > 0 && d.StartMinute != display[i-1].EndMinute {
			t.Fatalf("gap or overlap between %s and %s", display[i-1].ID, d.ID)
		}
	}
	if last := display[len(display)-1]; last.EndMinute != timeutil.MinutesPerDay {
		t.Fatalf("expected day to end at 24:00, got %d", last.EndMinute)
	}
}

func TestGeneratePartitionsDay(t *testing.T) {
	display := Generate(declared())
	assertPartition(t, display)

	// 00:00-06:00 interval, morning, work, 17:00-20:00 interval, night.
	if len(display) != 5 {
		t.Fatalf("expected 5 display sections, got %d", len(display))
	}
	if !display[0].Synthesized || display[0].ID != "interval-00:00" {
		t.Fatalf("expected leading interval, got %+v", display[0])
	}
	if display[3].ID != "interval-17:00" {
		t.Fatalf("expected gap interval before night, got %+v", display[3])
	}
	if display[4].SectionID != "night" || display[4].EndMinute != timeutil.MinutesPerDay {
		t.Fatalf("expected night to run to 24:00, got %+v", display[4])
	}
}

func TestGeneratePartitionProperty(t *testing.T) {
	configs := [][]*Section{
		nil,
		{{ID: "a", Name: "All day"}},
		{{ID: "a", Name: "A", StartTime: "08:00"}},
		{{ID: "a", Name: "A", StartTime: "08:00", EndTime: "10:00"}, {ID: "b", Name: "B", StartTime: "14:00", EndTime: "15:00"}},
		{{ID: "a", Name: "A", StartTime: "08:00", EndTime: "12:00"}, {ID: "b", Name: "B", StartTime: "10:00", EndTime: "14:00"}}, // overlap
		{{ID: "a", Name: "A", EndTime: "23:00"}, {ID: "b", Name: "B", StartTime: "23:30"}},
		declared(),
	}
	for i, cfg := range configs {
		display := Generate(cfg)
		assertPartition(t, display)
		_ = i
	}
}

func TestGenerateIdempotentIntervalIDs(t *testing.T) {
	first := Generate(declared())
	second := Generate(declared())
	if len(first) != len(second) {
		t.Fatalf("expected stable expansion")
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("interval ids must be stable: %s vs %s", first[i].ID, second[i].ID)
		}
	}
	if !IsIntervalID(first[0].ID) {
		t.Fatalf("expected interval id to be recognizable")
	}
}

func TestForClockBoundaryBelongsToStartingSection(t *testing.T) {
	sections := declared()
	if got := ForClock(sections, "09:00"); got != "work" {
		t.Fatalf("expected 09:00 to fall in work, got %q", got)
	}
	if got := ForClock(sections, "08:59"); got != "morning" {
		t.Fatalf("expected 08:59 to fall in morning, got %q", got)
	}
}

func TestForClockOpenEndedTail(t *testing.T) {
	if got := ForClock(declared(), "23:30"); got != "night" {
		t.Fatalf("expected open-ended night band, got %q", got)
	}
}

func TestForClockFallsBackToFirstSection(t *testing.T) {
	// 03:00 is in a synthesized gap, not a declared band.
	if got := ForClock(declared(), "03:00"); got != "morning" {
		t.Fatalf("expected fallback to first section, got %q", got)
	}
}

func TestForClockNoSections(t *testing.T) {
	if got := ForClock(nil, "12:00"); got != "" {
		t.Fatalf("expected empty sentinel, got %q", got)
	}
}

func TestForTime(t *testing.T) {
	at := time.Date(2026, 3, 10, 10, 30, 0, 0, time.Local)
	if got := ForTime(declared(), at); got != "work" {
		t.Fatalf("expected work, got %q", got)
	}
}

func TestDefaultsPartition(t *testing.T) {
	assertPartition(t, Generate(Defaults()))
}
