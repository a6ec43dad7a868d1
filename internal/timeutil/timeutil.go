// Package timeutil holds the clock and calendar arithmetic behind shift
// logging. All functions are pure; "today" is always an explicit argument.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shiftbot/internal/models"
)

const minutesPerDay = 24 * 60

// parseClock converts a clock-time string to minutes since midnight. The
// hour separator may be ":" or "h" ("9h30" and "9:30" are equivalent).
func parseClock(text string) (int, error) {
	normalized := strings.ReplaceAll(strings.ToLower(text), "h", ":")
	parts := strings.Split(normalized, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidTimeFormat, text)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidTimeFormat, text)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidTimeFormat, text)
	}
	return hour*60 + minute, nil
}

// ComputeHours returns the elapsed hours between two clock times as a real
// value (30 minutes = 0.5). An end earlier than the start is treated as
// crossing midnight exactly once; shifts of 24h or more are not
// representable. Equal start and end yields 0 with no error; rejecting a
// zero duration is the caller's decision.
func ComputeHours(start, end string) (float64, error) {
	startMins, err := parseClock(start)
	if err != nil {
		return 0, err
	}
	endMins, err := parseClock(end)
	if err != nil {
		return 0, err
	}
	if endMins < startMins {
		endMins += minutesPerDay
	}
	return float64(endMins-startMins) / 60, nil
}

// splitDate tokenizes a DD-MM-YYYY string into its integer components.
func splitDate(text string) (day, month, year int, ok bool) {
	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if day, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if year, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

// IsValidPastOrPresentDate reports whether text is a real DD-MM-YYYY
// calendar date no later than ref. It fails closed: malformed input and
// impossible dates (31-02-2025) are simply not valid, never an error.
func IsValidPastOrPresentDate(text string, ref time.Time) bool {
	day, month, year, ok := splitDate(text)
	if !ok {
		return false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (31-02 becomes 03-03), so a changed
	// component means the original date never existed.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return false
	}
	return !d.After(DateOnly(ref))
}

// NormalizeDate converts a previously validated DD-MM-YYYY string to the
// zero-padded YYYY-MM-DD form used as the storage key. Input that does not
// split into three integers yields "", which matches no stored key.
func NormalizeDate(text string) string {
	day, month, year, ok := splitDate(text)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseDate parses a DD-MM-YYYY string into a calendar date, rejecting
// impossible component combinations.
func ParseDate(text string) (time.Time, error) {
	day, month, year, ok := splitDate(text)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q, want DD-MM-YYYY", text)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %q, want DD-MM-YYYY", text)
	}
	return d, nil
}

// DateOnly truncates t to midnight UTC so comparisons work at day precision.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t in the user-facing DD-MM-YYYY form.
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}

// FormatISO renders t as the canonical YYYY-MM-DD storage key.
func FormatISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatHours renders an hour count with the shortest representation that
// round-trips through strconv.ParseFloat, so saved values reload exactly.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'g', -1, 64)
}

// DisplayDate converts a canonical YYYY-MM-DD key back to the user-facing
// DD-MM-YYYY form, returning the input unchanged if it does not parse.
func DisplayDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return FormatDate(t)
}
