package stats

import "time"

// Window is a date range used to filter flight records. Start is always
// inclusive. End is inclusive for rolling windows and exclusive for
// calendar-month windows; EndExclusive records which, so results can echo the
// literal boundary that was applied.
type Window struct {
	Start        time.Time
	End          time.Time
	EndExclusive bool
}

// Contains reports whether the given date falls inside the window.
func (w Window) Contains(d time.Time) bool {
	day := DateOnly(d)
	if day.Before(w.Start) {
		return false
	}
	if w.EndExclusive {
		return day.Before(w.End)
	}
	return !day.After(w.End)
}

// Last90Window is the FAA passenger-carrying recency window: the 90 days up to
// and including now. A flight exactly 90 days ago is inside; 91 days ago is
// outside.
func Last90Window(now time.Time) Window {
	today := DateOnly(now)
	return Window{
		Start: today.AddDate(0, 0, -90),
		End:   today,
	}
}

// PrecedingCalendarMonths is the instrument-currency window: the given number
// of full calendar months strictly before the current month. The current
// partial month is excluded, unlike the rolling 90-day window, because the
// two certification rules count recency differently.
func PrecedingCalendarMonths(now time.Time, months int) Window {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start:        firstOfMonth.AddDate(0, -months, 0),
		End:          firstOfMonth,
		EndExclusive: true,
	}
}

// DateOnly truncates a time to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
