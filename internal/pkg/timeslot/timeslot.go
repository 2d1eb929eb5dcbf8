// Package timeslot provides same-day time span comparisons for schedule
// entries. Times are "HH:MM" strings in the local zone; spans never cross
// midnight.
package timeslot

import (
	"fmt"
	"strconv"
	"strings"
)

// Minutes converts an "HH:MM" string to minutes since midnight.
func Minutes(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", hhmm)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", hhmm)
	}

	return hours*60 + mins, nil
}

// Overlaps reports whether two same-day spans overlap. Spans on different
// dates never overlap. Intervals are half-open: a span ending at 11:00 does
// not overlap a span starting at 11:00. Unparseable times are treated as
// non-overlapping; callers validate times at the form boundary.
func Overlaps(dateA, startA, endA, dateB, startB, endB string) bool {
	if dateA != dateB {
		return false
	}

	sa, err := Minutes(startA)
	if err != nil {
		return false
	}
	ea, err := Minutes(endA)
	if err != nil {
		return false
	}
	sb, err := Minutes(startB)
	if err != nil {
		return false
	}
	eb, err := Minutes(endB)
	if err != nil {
		return false
	}

	return sa < eb && sb < ea
}
