package ui

import (
	"testing"
	"time"

	"cal365/internal/graph"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stubEvent(id, start, end string) graph.Event {
	return graph.Event{
		ID:      id,
		Subject: id,
		Start:   graph.DateTimeTimeZone{DateTime: start, TimeZone: "UTC"},
		End:     graph.DateTimeTimeZone{DateTime: end, TimeZone: "UTC"},
	}
}

func TestViewDateRange(t *testing.T) {
	anchor := day(2025, time.March, 14) // a Friday

	tests := []struct {
		name  string
		mode  viewMode
		start time.Time
		end   time.Time
	}{
		{"list covers the month", modeList, day(2025, time.March, 1), day(2025, time.April, 1)},
		{"month covers the month", modeMonth, day(2025, time.March, 1), day(2025, time.April, 1)},
		{"week starts sunday", modeWeek, day(2025, time.March, 9), day(2025, time.March, 16)},
		{"work week starts monday", modeWorkWeek, day(2025, time.March, 10), day(2025, time.March, 15)},
		{"day is one day", modeDay, day(2025, time.March, 14), day(2025, time.March, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := viewDateRange(tt.mode, anchor)
			if !start.Equal(tt.start) || !end.Equal(tt.end) {
				t.Fatalf("viewDateRange(%v) = %v..%v, want %v..%v",
					tt.mode, start, end, tt.start, tt.end)
			}
			if start.Location() != time.UTC || end.Location() != time.UTC {
				t.Fatalf("range endpoints must be UTC")
			}
		})
	}
}

func TestViewDateRangeDecemberRollsOver(t *testing.T) {
	start, end := viewDateRange(modeList, day(2025, time.December, 20))
	if !start.Equal(day(2025, time.December, 1)) {
		t.Fatalf("start = %v, want 2025-12-01", start)
	}
	if !end.Equal(day(2026, time.January, 1)) {
		t.Fatalf("end = %v, want 2026-01-01", end)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		d    time.Time
		wd   time.Weekday
		want time.Time
	}{
		{"friday back to sunday", day(2025, time.March, 14), time.Sunday, day(2025, time.March, 9)},
		{"friday back to monday", day(2025, time.March, 14), time.Monday, day(2025, time.March, 10)},
		{"sunday stays put", day(2025, time.March, 9), time.Sunday, day(2025, time.March, 9)},
		{"monday stays put", day(2025, time.March, 10), time.Monday, day(2025, time.March, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekStart(tt.d, tt.wd); !got.Equal(tt.want) {
				t.Fatalf("weekStart(%v, %v) = %v, want %v", tt.d, tt.wd, got, tt.want)
			}
		})
	}
}

func TestMonthGridStart(t *testing.T) {
	// March 2025 starts on a Saturday; the grid opens on the prior
	// Monday, February 24.
	if got := monthGridStart(day(2025, time.March, 14)); !got.Equal(day(2025, time.February, 24)) {
		t.Fatalf("monthGridStart = %v, want 2025-02-24", got)
	}
	// September 2025 starts on a Monday, so the grid opens there.
	if got := monthGridStart(day(2025, time.September, 10)); !got.Equal(day(2025, time.September, 1)) {
		t.Fatalf("monthGridStart = %v, want 2025-09-01", got)
	}
}

func TestEffectiveEndDate(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  time.Time
	}{
		{
			"midnight end collapses to previous day",
			"2025-03-14T09:00:00", "2025-03-15T00:00:00",
			day(2025, time.March, 14),
		},
		{
			"same day keeps its date",
			"2025-03-14T09:00:00", "2025-03-14T10:00:00",
			day(2025, time.March, 14),
		},
		{
			"multi day keeps the real end",
			"2025-03-14T09:00:00", "2025-03-16T17:00:00",
			day(2025, time.March, 16),
		},
		{
			"midnight to midnight same day does not collapse",
			"2025-03-14T00:00:00", "2025-03-14T00:00:00",
			day(2025, time.March, 14),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := stubEvent("e", tt.start, tt.end)
			start, end, ok := eventSpan(e)
			if !ok {
				t.Fatalf("eventSpan failed for %q..%q", tt.start, tt.end)
			}
			if got := effectiveEndDate(start, end); !got.Equal(tt.want) {
				t.Fatalf("effectiveEndDate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOccursOn(t *testing.T) {
	multi := stubEvent("m", "2025-03-14T09:00:00", "2025-03-16T17:00:00")
	midnight := stubEvent("n", "2025-03-14T18:00:00", "2025-03-15T00:00:00")
	bad := stubEvent("b", "not-a-date", "2025-03-15T00:00:00")

	tests := []struct {
		name  string
		event graph.Event
		day   time.Time
		want  bool
	}{
		{"multi day start", multi, day(2025, time.March, 14), true},
		{"multi day middle", multi, day(2025, time.March, 15), true},
		{"multi day end", multi, day(2025, time.March, 16), true},
		{"multi day after", multi, day(2025, time.March, 17), false},
		{"multi day before", multi, day(2025, time.March, 13), false},
		{"midnight end renders on start day", midnight, day(2025, time.March, 14), true},
		{"midnight end skips the end date", midnight, day(2025, time.March, 15), false},
		{"unparsable never occurs", bad, day(2025, time.March, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := occursOn(tt.event, tt.day); got != tt.want {
				t.Fatalf("occursOn(%s, %v) = %v, want %v", tt.event.ID, tt.day, got, tt.want)
			}
		})
	}
}

func TestMonthLabel(t *testing.T) {
	if got := monthLabel(day(2025, time.March, 14)); got != "March 2025" {
		t.Fatalf("monthLabel = %q, want %q", got, "March 2025")
	}
	if got := monthLabel(day(2026, time.January, 1)); got != "January 2026" {
		t.Fatalf("monthLabel = %q, want %q", got, "January 2026")
	}
}

func TestEventSpanFractionalSeconds(t *testing.T) {
	e := stubEvent("f", "2025-03-14T09:00:00.0000000", "2025-03-14T10:00:00.0000000")
	start, end, ok := eventSpan(e)
	if !ok {
		t.Fatalf("eventSpan rejected fractional seconds")
	}
	if start.Hour() != 9 || end.Hour() != 10 {
		t.Fatalf("parsed %v..%v, want 09:00..10:00", start, end)
	}
}
