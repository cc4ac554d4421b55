package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultEstimateMinutes is the fallback task estimate used when
	// none is provided.
	DefaultEstimateMinutes = 30
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)?`)
	unitMap        = map[string]time.Duration{
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
	}
)

// ParseEstimate parses a human-friendly duration string (for example
// "45", "45m", or "1h30m") into whole minutes. A bare number is read as
// minutes. An empty input yields the default estimate.
func ParseEstimate(input string) (int, error) {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		return DefaultEstimateMinutes, nil
	}

	remaining := trimmed
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 || matches[1] == "" {
			return 0, fmt.Errorf("timeutil: invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("timeutil: invalid duration value %q: %w", matches[1], err)
		}
		unit := matches[2]
		if unit == "" {
			// Bare trailing number reads as minutes.
			total += time.Duration(value) * time.Minute
			remaining = remaining[len(matches[0]):]
			continue
		}
		base, ok := unitMap[unit]
		if !ok {
			return 0, fmt.Errorf("timeutil: unsupported duration unit %q", unit)
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("timeutil: duration must be greater than zero")
	}
	return int(total / time.Minute), nil
}

// FormatMinutes renders whole minutes using hour/minute tokens.
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}
