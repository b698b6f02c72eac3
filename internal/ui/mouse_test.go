package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func wheelDown(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
}

func monthTestModel() Model {
	m := testModel()
	m.width, m.height = 140, 30
	m.vm.screen = screenEvents
	m.vm.mode = modeMonth
	m.vm.displayedDate = day(2025, time.March, 14)
	return m
}

// The month grid for March 2025 starts on Monday, Feb 24. With a
// 140x30 frame the grid occupies y 4-28, rows are ~4 lines tall and
// columns 20 cells wide.
func TestMonthClickOutsideMonthIgnored(t *testing.T) {
	m := monthTestModel()
	m.vm.setEvents([]colorEvent{
		stubColorEvent("offsite", "2025-02-25T09:00:00", "2025-02-25T10:00:00"),
	})

	// Row 0, column 1: Feb 25, outside the displayed month. localY 1
	// would be its event line if the cell were drawn.
	res, _ := m.handleMouse(leftPress(25, 5))
	got := res.(Model)

	if got.vm.mode != modeMonth {
		t.Fatalf("mode = %v, want month view unchanged", got.vm.mode)
	}
	if got.vm.screen != screenEvents {
		t.Fatalf("screen = %v, want events", got.vm.screen)
	}
	if !got.vm.displayedDate.Equal(day(2025, time.March, 14)) {
		t.Fatalf("displayedDate moved to %v", got.vm.displayedDate)
	}
}

func TestMonthClickInMonthJumpsToList(t *testing.T) {
	m := monthTestModel()

	// Row 2, column 4: March 14. No events, so the click jumps to the
	// list for that date.
	res, _ := m.handleMouse(leftPress(85, 13))
	got := res.(Model)

	if got.vm.mode != modeList {
		t.Fatalf("mode = %v, want list", got.vm.mode)
	}
	if !got.vm.displayedDate.Equal(day(2025, time.March, 14)) {
		t.Fatalf("displayedDate = %v, want March 14", got.vm.displayedDate)
	}
}

func TestWheelKeepsPopupsOpen(t *testing.T) {
	m := monthTestModel()
	m.vm.showHelp = true

	res, _ := m.handleMouse(wheelDown(10, 10))
	got := res.(Model)
	if !got.vm.showHelp {
		t.Fatal("wheel dismissed the help popup")
	}

	got.vm.showHelp = false
	got.vm.showLegend = true
	res, _ = got.handleMouse(wheelDown(10, 10))
	got = res.(Model)
	if !got.vm.showLegend {
		t.Fatal("wheel dismissed the legend popup")
	}

	res, _ = got.handleMouse(leftPress(10, 10))
	got = res.(Model)
	if got.vm.showLegend {
		t.Fatal("button press did not dismiss the legend popup")
	}
}
