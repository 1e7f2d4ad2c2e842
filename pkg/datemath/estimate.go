package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit patterns are matched anywhere in the string and their contributions
// summed, so "1 hour 30 minutes" parses as 90. The scan is order-independent.
var estimatePatterns = []struct {
	re         *regexp.Regexp
	multiplier float64
}{
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)\b`), minutesPerHour},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:minutes?|mins?|m)\b`), 1},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:days?|d)\b`), minutesPerDay},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:weeks?|w)\b`), minutesPerWeek},
}

var bareNumber = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// ParseEstimate converts a free-text time estimate to minutes.
// Handles "2 hours", "45 mins", "1 hour 30 minutes", "2 weeks".
// A bare number with no unit is read as hours. Unparseable input
// (including empty) yields DefaultEstimateMinutes.
func ParseEstimate(text string) int {
	str := strings.ToLower(strings.TrimSpace(text))
	if str == "" {
		return DefaultEstimateMinutes
	}

	total := 0.0
	for _, p := range estimatePatterns {
		for _, match := range p.re.FindAllStringSubmatch(str, -1) {
			n, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			total += n * p.multiplier
		}
	}

	if total == 0 {
		if match := bareNumber.FindStringSubmatch(str); match != nil {
			n, err := strconv.ParseFloat(match[1], 64)
			if err == nil {
				total = n * minutesPerHour
			}
		}
	}

	if total <= 0 {
		return DefaultEstimateMinutes
	}
	return int(total)
}

// EndDate computes start + durationMinutes.
// Returns false when start is zero or the duration is not positive.
func EndDate(start time.Time, durationMinutes int) (time.Time, bool) {
	if start.IsZero() || durationMinutes <= 0 {
		return time.Time{}, false
	}
	return start.Add(time.Duration(durationMinutes) * time.Minute), true
}

// FormatDuration renders minutes as a human-readable duration string.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0 minutes"
	}

	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%d %s", mins, plural("minute", mins))
	case mins == 0:
		return fmt.Sprintf("%d %s", hours, plural("hour", hours))
	default:
		return fmt.Sprintf("%d %s %d %s", hours, plural("hour", hours), mins, plural("minute", mins))
	}
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
