package app

import (
	"context"
	"time"

	"cal365/internal/ui"
)

const minRefreshInterval = time.Minute

// StartRefreshTimer launches a goroutine that posts a refresh nudge on
// a fixed cadence. It returns immediately. The UI ignores nudges that
// arrive while it is not showing events, so the timer never needs to
// know the application state.
func StartRefreshTimer(ctx context.Context, events chan<- ui.AppEvent, interval time.Duration) {
	if interval < minRefreshInterval {
		interval = minRefreshInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			postNudge(ctx, events)
		}
	}()
}

// postNudge delivers one refresh event without ever blocking the timer
// behind a full channel: an undelivered nudge is superseded by the
// next tick anyway.
func postNudge(ctx context.Context, events chan<- ui.AppEvent) bool {
	select {
	case events <- ui.RefreshEvent():
		return true
	case <-ctx.Done():
		return false
	default:
		return false
	}
}
