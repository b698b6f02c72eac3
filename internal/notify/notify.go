// Package notify fires one desktop alert per upcoming event.
package notify

import (
	"fmt"
	"log"
	"time"

	"github.com/gen2brain/beeep"

	"cal365/internal/graph"
)

const appName = "365cal-tui"

// Sender delivers one desktop notification. The default is beeep;
// tests substitute a recorder.
type Sender interface {
	Send(title, body string) error
}

type beeepSender struct{}

func (beeepSender) Send(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Scheduler tracks which events have already been alerted and emits a
// single notification when an event enters the lead-time window.
// The alerted set lives for the process lifetime; a restart clears it.
type Scheduler struct {
	alerted map[string]struct{}
	lead    time.Duration
	enabled bool
	sender  Sender
	now     func() time.Time
}

// NewScheduler builds a Scheduler with the beeep sender.
func NewScheduler(enabled bool, leadMinutes int) *Scheduler {
	beeep.AppName = appName
	return &Scheduler{
		alerted: make(map[string]struct{}),
		lead:    time.Duration(leadMinutes) * time.Minute,
		enabled: enabled,
		sender:  beeepSender{},
		now:     time.Now,
	}
}

// Check scans events and alerts each one whose start falls inside
// (now, now+lead] and has not been alerted yet. Unparseable starts are
// skipped. Emit failures are logged and never retried.
func (s *Scheduler) Check(events []graph.Event) {
	if !s.enabled {
		return
	}

	now := s.now().UTC()
	deadline := now.Add(s.lead)

	for _, e := range events {
		start, err := e.Start.Parsed()
		if err != nil {
			log.Printf("notify: skipping %q, unparseable start %q: %v", e.Subject, e.Start.DateTime, err)
			continue
		}
		if !start.After(now) || start.After(deadline) {
			continue
		}
		if _, seen := s.alerted[e.ID]; seen {
			continue
		}

		body := fmt.Sprintf("Starting at %s", start.In(time.Local).Format("15:04"))
		if err := s.sender.Send(e.Subject, body); err != nil {
			log.Printf("notify: failed to send for %q: %v", e.Subject, err)
		}
		s.alerted[e.ID] = struct{}{}
	}
}
