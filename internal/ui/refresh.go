package ui

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"cal365/internal/graph"
	"cal365/internal/store"
)

// requestRefresh runs the refresh pipeline: serve cached rows first so
// the view updates instantly, then fan out remote fetches in the
// background. Late completions simply post EventsLoaded and win.
func (m *Model) requestRefresh() {
	cals := m.vm.scopeCalendars()
	if len(cals) == 0 {
		return
	}
	startUTC, endUTC := viewDateRange(m.vm.mode, m.vm.displayedDate)

	m.loadCachedEvents(cals)

	go fetchEvents(m.ctx, fetchJob{
		source:    m.source,
		store:     m.store,
		token:     m.token,
		calendars: cals,
		startUTC:  startUTC,
		endUTC:    endUTC,
		out:       m.events,
	})
}

// loadCachedEvents replaces the list with whatever the store holds for
// the scope. A store failure is non-fatal; the current list stands.
func (m *Model) loadCachedEvents(cals []colorCalendar) {
	if m.store == nil {
		return
	}
	var cached []colorEvent
	for _, c := range cals {
		events, err := m.store.EventsFor(c.cal.ID)
		if err != nil {
			log.Printf("ui: cached events for %s: %v", c.cal.ID, err)
			continue
		}
		for _, e := range events {
			cached = append(cached, colorEvent{event: e, color: c.color})
		}
	}
	if len(cached) == 0 {
		return
	}
	m.vm.setEvents(cached)
	if m.vm.eventSelection < 0 {
		m.vm.eventSelection = 0
	}
}

type fetchJob struct {
	source    graph.Source
	store     *store.Store
	token     string
	calendars []colorCalendar
	startUTC  time.Time
	endUTC    time.Time
	out       chan AppEvent
}

// fetchEvents queries every calendar in the scope concurrently,
// persists successful windows, and posts the outcome. On any expired
// token it posts TokenExpired without touching the event list.
func fetchEvents(ctx context.Context, job fetchJob) {
	type result struct {
		cal    colorCalendar
		events []graph.Event
		err    error
	}

	results := make([]result, len(job.calendars))
	var wg sync.WaitGroup
	for i, c := range job.calendars {
		wg.Add(1)
		go func(i int, c colorCalendar) {
			defer wg.Done()
			events, err := job.source.ListEvents(ctx, job.token, c.cal.ID, job.startUTC, job.endUTC)
			results[i] = result{cal: c, events: events, err: err}
		}(i, c)
	}
	wg.Wait()

	for _, r := range results {
		if errors.Is(r.err, graph.ErrAuthExpired) {
			log.Println("ui: fetch rejected, access token expired")
			post(ctx, job.out, AppEvent{kind: eventTokenExpired})
			return
		}
	}

	var collected []colorEvent
	for _, r := range results {
		if r.err != nil {
			log.Printf("ui: fetch events for %s: %v", r.cal.cal.ID, r.err)
			continue
		}
		if job.store != nil {
			if err := job.store.UpsertEventsForRange(r.cal.cal.ID, job.startUTC, job.endUTC, r.events); err != nil {
				log.Printf("ui: persist events for %s: %v", r.cal.cal.ID, err)
			}
		}
		collected = append(collected, withColor(r.events, r.cal.color)...)
	}

	post(ctx, job.out, AppEvent{kind: eventEventsLoaded, events: collected})
}

func withColor(events []graph.Event, color lipgloss.Color) []colorEvent {
	out := make([]colorEvent, len(events))
	for i, e := range events {
		out[i] = colorEvent{event: e, color: color}
	}
	return out
}

// post delivers an AppEvent unless the receiver is gone.
func post(ctx context.Context, ch chan AppEvent, ev AppEvent) {
	if ch == nil {
		return
	}
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}
