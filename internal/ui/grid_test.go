package ui

import (
	"strings"
	"testing"
	"time"
)

func TestMonthViewOutsideDaysEmpty(t *testing.T) {
	m := testModel()
	m.vm.screen = screenEvents
	m.vm.mode = modeMonth
	m.vm.displayedDate = day(2025, time.March, 14)
	m.vm.setEvents([]colorEvent{
		stubColorEvent("offsite", "2025-02-25T09:00:00", "2025-02-25T10:00:00"),
		stubColorEvent("standup", "2025-03-14T09:00:00", "2025-03-14T09:15:00"),
	})

	lines := m.renderMonth(rect{x: 0, y: 3, w: 140, h: 26})
	plain := stripStyles(strings.Join(lines, "\n"))

	if strings.Contains(plain, "offsite") {
		t.Fatalf("out-of-month cell rendered its event:\n%s", plain)
	}
	// 20-wide month cells truncate the event line to "■ 09:00-09:15 standu",
	// so assert on a prefix that survives truncation.
	if !strings.Contains(plain, "standu") {
		t.Fatalf("in-month event missing:\n%s", plain)
	}
	// The first grid row starts with February days; their cells carry
	// no day numbers. With a 140-cell frame each column is 20 wide,
	// and Feb 24 occupies the first one.
	firstRow := stripStyles(lines[1])
	if cell := firstRow[:20]; strings.TrimSpace(cell) != "" {
		t.Fatalf("out-of-month cell not blank: %q", cell)
	}
}
