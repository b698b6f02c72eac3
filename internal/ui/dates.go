package ui

import (
	"time"

	"cal365/internal/graph"
)

// Calendar dates are handled as civil dates: midnight UTC time.Time
// values carrying only year/month/day. Event wall-clock strings parse
// to UTC (the service's documented behavior), so comparing their date
// components against civil dates needs no zone juggling.

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func today() time.Time {
	return dateOf(time.Now())
}

// weekStart walks back from d to the given weekday (inclusive).
func weekStart(d time.Time, day time.Weekday) time.Time {
	offset := (int(d.Weekday()) - int(day) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

func firstOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthGridStart returns the Monday on or before the first of d's
// month, the top-left cell of the 6x7 month grid.
func monthGridStart(d time.Time) time.Time {
	return weekStart(firstOfMonth(d), time.Monday)
}

// viewDateRange returns the half-open UTC fetch window for a view mode
// anchored at the displayed date.
func viewDateRange(mode viewMode, d time.Time) (time.Time, time.Time) {
	switch mode {
	case modeWeek:
		start := weekStart(d, time.Sunday)
		return start, start.AddDate(0, 0, 7)
	case modeWorkWeek:
		start := weekStart(d, time.Monday)
		return start, start.AddDate(0, 0, 5)
	case modeDay:
		start := dateOf(d)
		return start, start.AddDate(0, 0, 1)
	default: // List and Month cover the whole month
		start := firstOfMonth(d)
		return start, start.AddDate(0, 1, 0)
	}
}

// eventSpan parses both endpoints of an event. ok is false when either
// string is malformed; callers skip such events per item.
func eventSpan(e graph.Event) (start, end time.Time, ok bool) {
	s, err := e.Start.Parsed()
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	en, err := e.End.Parsed()
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return s, en, true
}

// effectiveEndDate is the inclusive last day an event renders on. An
// end at exactly midnight on a later day is the exclusive-midnight
// representation of "through the previous day", so it collapses back.
func effectiveEndDate(start, end time.Time) time.Time {
	endDate := dateOf(end)
	if end.Equal(endDate) && endDate.After(dateOf(start)) {
		return endDate.AddDate(0, 0, -1)
	}
	return endDate
}

// occursOn reports whether the event renders on the given civil date.
func occursOn(e graph.Event, day time.Time) bool {
	start, end, ok := eventSpan(e)
	if !ok {
		return false
	}
	return !dateOf(start).After(day) && !effectiveEndDate(start, end).Before(day)
}

var monthNames = []string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func monthLabel(d time.Time) string {
	return monthNames[int(d.Month())] + " " + d.Format("2006")
}
