package store

import (
	"path/filepath"
	"testing"
	"time"

	"cal365/internal/graph"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cal.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	return s
}

func TestOpen_CreatesFileAndSchema(t *testing.T) {
	s := openTestStore(t)

	cals, err := s.Calendars()
	if err != nil {
		t.Fatalf("Calendars returned error: %v", err)
	}
	if len(cals) != 0 {
		t.Fatalf("Calendars = %#v, want empty", cals)
	}
}

func TestUpsertCalendars_ReplacesByID(t *testing.T) {
	s := openTestStore(t)

	if err := s.UpsertCalendars([]graph.Calendar{
		{ID: "a", Name: "Work", CanShare: true},
		{ID: "b", Name: "Personal"},
	}); err != nil {
		t.Fatalf("UpsertCalendars returned error: %v", err)
	}

	// Same id again with a new name must replace, not duplicate.
	if err := s.UpsertCalendars([]graph.Calendar{{ID: "a", Name: "Office", CanShare: true}}); err != nil {
		t.Fatalf("UpsertCalendars returned error: %v", err)
	}

	cals, err := s.Calendars()
	if err != nil {
		t.Fatalf("Calendars returned error: %v", err)
	}
	if len(cals) != 2 {
		t.Fatalf("Calendars = %#v, want 2 rows", cals)
	}
	byID := map[string]graph.Calendar{}
	for _, c := range cals {
		byID[c.ID] = c
	}
	if byID["a"].Name != "Office" || !byID["a"].CanShare {
		t.Fatalf("calendar a = %#v, want renamed Office", byID["a"])
	}
}

func testEvent(id, start, end string) graph.Event {
	return graph.Event{
		ID:      id,
		Subject: "Subject " + id,
		Start:   graph.DateTimeTimeZone{DateTime: start, TimeZone: "UTC"},
		End:     graph.DateTimeTimeZone{DateTime: end, TimeZone: "UTC"},
	}
}

func TestUpsertEventsForRange_PurgesStaleInWindowRows(t *testing.T) {
	s := openTestStore(t)
	if err := s.UpsertCalendars([]graph.Calendar{{ID: "cal", Name: "Work"}}); err != nil {
		t.Fatalf("UpsertCalendars returned error: %v", err)
	}

	marchStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	marchEnd := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	first := []graph.Event{
		testEvent("e1", "2025-03-10T09:00:00.0000000", "2025-03-10T10:00:00.0000000"),
		testEvent("e2", "2025-03-20T09:00:00.0000000", "2025-03-20T10:00:00.0000000"),
	}
	if err := s.UpsertEventsForRange("cal", marchStart, marchEnd, first); err != nil {
		t.Fatalf("UpsertEventsForRange returned error: %v", err)
	}

	// An April row must survive March refreshes.
	april := []graph.Event{
		testEvent("e3", "2025-04-05T09:00:00.0000000", "2025-04-05T10:00:00.0000000"),
	}
	aprilEnd := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	if err := s.UpsertEventsForRange("cal", marchEnd, aprilEnd, april); err != nil {
		t.Fatalf("UpsertEventsForRange returned error: %v", err)
	}

	// Refresh March with e2 gone and e1 renamed: e2 is purged, e1
	// updated, e3 untouched.
	renamed := testEvent("e1", "2025-03-10T09:00:00.0000000", "2025-03-10T10:00:00.0000000")
	renamed.Subject = "Moved meeting"
	if err := s.UpsertEventsForRange("cal", marchStart, marchEnd, []graph.Event{renamed}); err != nil {
		t.Fatalf("UpsertEventsForRange returned error: %v", err)
	}

	events, err := s.EventsFor("cal")
	if err != nil {
		t.Fatalf("EventsFor returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("EventsFor = %d events, want 2 (e1, e3)", len(events))
	}
	if events[0].ID != "e1" || events[0].Subject != "Moved meeting" {
		t.Fatalf("events[0] = %#v, want updated e1", events[0])
	}
	if events[1].ID != "e3" {
		t.Fatalf("events[1] = %#v, want e3", events[1])
	}
}

func TestUpsertEventsForRange_EmptySetClearsWindow(t *testing.T) {
	s := openTestStore(t)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	seed := []graph.Event{testEvent("e1", "2025-03-10T09:00:00", "2025-03-10T10:00:00")}
	if err := s.UpsertEventsForRange("cal", start, end, seed); err != nil {
		t.Fatalf("UpsertEventsForRange returned error: %v", err)
	}
	if err := s.UpsertEventsForRange("cal", start, end, nil); err != nil {
		t.Fatalf("UpsertEventsForRange(empty) returned error: %v", err)
	}

	events, err := s.EventsFor("cal")
	if err != nil {
		t.Fatalf("EventsFor returned error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("EventsFor = %#v, want window cleared", events)
	}
}

func TestEventsFor_RehydratesAttendeesAndBody(t *testing.T) {
	s := openTestStore(t)

	ev := testEvent("e1", "2025-03-14T10:00:00.0000000", "2025-03-14T11:00:00.0000000")
	ev.Body = &graph.ItemBody{ContentType: "html", Content: "<p>agenda</p>"}
	ev.Attendees = []graph.Attendee{
		{EmailAddress: &graph.EmailAddress{Name: "Ada", Address: "ada@example.com"}},
		{},
	}
	ev.Location = &graph.Location{DisplayName: "Room 1"}
	ev.Organizer = &graph.Recipient{EmailAddress: &graph.EmailAddress{Name: "Bob"}}

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	if err := s.UpsertEventsForRange("cal", start, end, []graph.Event{ev}); err != nil {
		t.Fatalf("UpsertEventsForRange returned error: %v", err)
	}

	events, err := s.EventsFor("cal")
	if err != nil {
		t.Fatalf("EventsFor returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("EventsFor = %d events, want 1", len(events))
	}
	got := events[0]
	if got.Start.DateTime != "2025-03-14T10:00:00.0000000" {
		t.Fatalf("start preserved verbatim? got %q", got.Start.DateTime)
	}
	if got.Body == nil || got.Body.Content != "<p>agenda</p>" {
		t.Fatalf("body = %#v, want agenda html", got.Body)
	}
	if len(got.Attendees) != 2 || got.Attendees[0].EmailAddress == nil ||
		got.Attendees[0].EmailAddress.Address != "ada@example.com" {
		t.Fatalf("attendees = %#v, want rehydrated pair", got.Attendees)
	}
	// Location and organizer are not persisted.
	if got.Location != nil || got.Organizer != nil {
		t.Fatalf("location/organizer = %#v/%#v, want absent", got.Location, got.Organizer)
	}
}
