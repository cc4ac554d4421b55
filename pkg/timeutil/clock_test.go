package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 9*60+45 {
		t.Fatalf("expected 585, got %d", min)
	}
}

func TestParseClockEndOfDay(t *testing.T) {
	min, err := ParseClock("24:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != MinutesPerDay {
		t.Fatalf("expected %d, got %d", MinutesPerDay, min)
	}
}

func TestParseClockInvalid(t *testing.T) {
	if _, err := ParseClock("9am"); err == nil {
		t.Fatalf("expected error for invalid clock")
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, v := range []string{"00:00", "06:30", "12:00", "23:59"} {
		min, err := ParseClock(v)
		if err != nil {
			t.Fatalf("parse %s: %v", v, err)
		}
		if got := FormatClock(min); got != v {
			t.Fatalf("expected %s, got %s", v, got)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDate("2026-03-10")
	b, _ := ParseDate("2026-03-17")
	if got := DaysBetween(a, b); got != 7 {
		t.Fatalf("expected 7 days, got %d", got)
	}
	if got := DaysBetween(b, a); got != -7 {
		t.Fatalf("expected -7 days, got %d", got)
	}
}

func TestLastDayOfMonth(t *testing.T) {
	feb, _ := ParseDate("2026-02-01")
	if got := LastDayOfMonth(feb); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
	leap, _ := ParseDate("2028-02-01")
	if got := LastDayOfMonth(leap); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
}

func TestAtMinute(t *testing.T) {
	day, _ := ParseDate("2026-03-10")
	at := AtMinute(day.Add(5*time.Hour), 9*60+30)
	if at.Hour() != 9 || at.Minute() != 30 || at.Day() != 10 {
		t.Fatalf("unexpected instant: %v", at)
	}
}

func TestParseEstimate(t *testing.T) {
	min, err := ParseEstimate("1h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 90 {
		t.Fatalf("expected 90, got %d", min)
	}
}

func TestParseEstimateBareNumber(t *testing.T) {
	min, err := ParseEstimate("45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 45 {
		t.Fatalf("expected 45, got %d", min)
	}
}

func TestParseEstimateDefault(t *testing.T) {
	min, err := ParseEstimate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != DefaultEstimateMinutes {
		t.Fatalf("expected default, got %d", min)
	}
}

func TestParseEstimateInvalid(t *testing.T) {
	if _, err := ParseEstimate("soon"); err == nil {
		t.Fatalf("expected error for invalid estimate")
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{0: "0m", 25: "25m", 60: "1h", 90: "1h30m"}
	for in, want := range cases {
		if got := FormatMinutes(in); got != want {
			t.Fatalf("FormatMinutes(%d): expected %s, got %s", in, want, got)
		}
	}
}
