package todo

import "time"

// dateLayout is the ISO calendar-day form used in string output.
const dateLayout = time.DateOnly

// Date returns the calendar day year-month-day as a deadline value.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the time of day from t, keeping the calendar day as seen in
// t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Today returns the current local calendar day.
func Today() time.Time {
	return DateOf(time.Now())
}
