package notify

import (
	"errors"
	"testing"
	"time"

	"cal365/internal/graph"
)

type recordingSender struct {
	sent []string
	err  error
}

func (r *recordingSender) Send(title, body string) error {
	r.sent = append(r.sent, title+"|"+body)
	return r.err
}

func testScheduler(enabled bool, leadMinutes int, now time.Time) (*Scheduler, *recordingSender) {
	rec := &recordingSender{}
	s := &Scheduler{
		alerted: make(map[string]struct{}),
		lead:    time.Duration(leadMinutes) * time.Minute,
		enabled: enabled,
		sender:  rec,
		now:     func() time.Time { return now },
	}
	return s, rec
}

func upcomingEvent(id, start string) graph.Event {
	return graph.Event{
		ID:      id,
		Subject: "Standup",
		Start:   graph.DateTimeTimeZone{DateTime: start, TimeZone: "UTC"},
	}
}

func TestCheck_AlertsOncePerEvent(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	s, rec := testScheduler(true, 15, now)

	events := []graph.Event{upcomingEvent("e1", "2025-03-14T09:10:00.0000000")}

	s.Check(events)
	s.Check(events)
	s.Check(events)

	if len(rec.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1: %v", len(rec.sent), rec.sent)
	}
	want := "Standup|Starting at " + time.Date(2025, 3, 14, 9, 10, 0, 0, time.UTC).In(time.Local).Format("15:04")
	if rec.sent[0] != want {
		t.Fatalf("notification = %q, want %q", rec.sent[0], want)
	}

	// Window has passed; still no second alert for the same id.
	s.now = func() time.Time { return time.Date(2025, 3, 14, 9, 11, 0, 0, time.UTC) }
	s.Check(events)
	if len(rec.sent) != 1 {
		t.Fatalf("sent %d notifications after window, want still 1", len(rec.sent))
	}
}

func TestCheck_WindowBounds(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start string
		want  int
	}{
		{"already_started", "2025-03-14T09:00:00", 0},
		{"in_window", "2025-03-14T09:01:00", 1},
		{"at_deadline", "2025-03-14T09:15:00", 1},
		{"past_deadline", "2025-03-14T09:16:00", 0},
		{"unparseable", "soonish", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, rec := testScheduler(true, 15, now)
			s.Check([]graph.Event{upcomingEvent("e1", tc.start)})
			if len(rec.sent) != tc.want {
				t.Fatalf("sent %d notifications, want %d", len(rec.sent), tc.want)
			}
		})
	}
}

func TestCheck_DisabledDoesNothing(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	s, rec := testScheduler(false, 15, now)

	s.Check([]graph.Event{upcomingEvent("e1", "2025-03-14T09:10:00")})
	if len(rec.sent) != 0 {
		t.Fatalf("sent %d notifications while disabled, want 0", len(rec.sent))
	}
}

func TestCheck_SendFailureIsNotRetried(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	s, rec := testScheduler(true, 15, now)
	rec.err = errors.New("dbus unavailable")

	events := []graph.Event{upcomingEvent("e1", "2025-03-14T09:10:00")}
	s.Check(events)
	s.Check(events)

	if len(rec.sent) != 1 {
		t.Fatalf("attempted %d sends, want 1 (no retry)", len(rec.sent))
	}
}
