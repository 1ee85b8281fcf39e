// Package schedule holds the pure calendar rules of the reservation
// system: the wire date format, the weekly rest day and the booking
// lead time.  Nothing here touches storage or I/O.
package schedule

import "time"

// DateLayout is the only accepted date format, two-digit month and day
// with a four-digit year (e.g. "03-20-2024").
const DateLayout = "01-02-2006"

// MinimumLeadDays is the number of calendar days a reservation date
// must stay ahead of "now", both at creation and at cancellation.
const MinimumLeadDays = 2

// ParseDate parses text in DateLayout.  The second return value is
// false for any malformed input: wrong separators, out-of-range
// components or missing zero padding.  It never returns an error value;
// callers re-prompt or reject on false.
func ParseDate(text string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, false
	}
	// time.Parse accepts unpadded components; requiring a round trip
	// keeps the format strict.
	if t.Format(DateLayout) != text {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly truncates a timestamp to its civil date, anchored at UTC
// midnight so dates from ParseDate and dates derived from the clock
// compare directly.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsRestDay reports whether the date falls on the weekly rest day
// (Sunday).  No reservation may be created on a rest day.
func IsRestDay(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

// NextDayIfRestDay returns the following day when given a rest day and
// the input unchanged otherwise.  It is a display suggestion for the
// caller; the substitution is never applied silently.
func NextDayIfRestDay(t time.Time) time.Time {
	if IsRestDay(t) {
		return t.AddDate(0, 0, 1)
	}
	return t
}

// EarliestAllowedDate returns the first date open for new reservations
// given today's date.
func EarliestAllowedDate(today time.Time) time.Time {
	return DateOnly(today).AddDate(0, 0, MinimumLeadDays)
}
