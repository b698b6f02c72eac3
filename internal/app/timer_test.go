package app

import (
	"context"
	"testing"

	"cal365/internal/ui"
)

func TestPostNudgeDelivers(t *testing.T) {
	events := make(chan ui.AppEvent, 1)
	if !postNudge(context.Background(), events) {
		t.Fatalf("postNudge failed on an empty channel")
	}
	select {
	case <-events:
	default:
		t.Fatalf("no event on the channel")
	}
}

func TestPostNudgeDropsWhenFull(t *testing.T) {
	events := make(chan ui.AppEvent, 1)
	events <- ui.RefreshEvent()

	if postNudge(context.Background(), events) {
		t.Fatalf("postNudge should drop on a full channel")
	}
	if len(events) != 1 {
		t.Fatalf("channel length = %d, want 1", len(events))
	}
}

func TestPostNudgeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A full channel plus a dead context must not block.
	events := make(chan ui.AppEvent)
	if postNudge(ctx, events) {
		t.Fatalf("postNudge delivered on an unbuffered channel with no reader")
	}
}
