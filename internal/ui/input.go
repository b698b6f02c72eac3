package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Keys are swallowed while a view transition plays.
	if t := m.vm.transition; t != nil && t.progress(time.Now()) < 1 {
		return m, nil
	}

	if m.vm.showHelp {
		switch {
		case key.Matches(msg, m.keys.Back),
			key.Matches(msg, m.keys.Quit),
			key.Matches(msg, m.keys.Help),
			key.Matches(msg, m.keys.Open):
			m.vm.showHelp = false
		}
		return m, nil
	}
	if m.vm.showLegend {
		switch {
		case key.Matches(msg, m.keys.Back),
			key.Matches(msg, m.keys.Quit),
			key.Matches(msg, m.keys.Legend),
			key.Matches(msg, m.keys.Open):
			m.vm.showLegend = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.vm.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Legend):
		m.vm.showLegend = true
		return m, nil
	}

	switch m.vm.screen {
	case screenCalendars:
		return m.handleCalendarsKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleEventsKey(msg)
	}
}

func (m Model) handleCalendarsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.vm.previousItem()
	case key.Matches(msg, m.keys.Down):
		m.vm.nextItem()
	case key.Matches(msg, m.keys.Open):
		m.enterScope(m.vm.calendarSelection)
		return m, frameTickCmd()
	}
	return m, nil
}

// enterScope activates a calendar row and moves to the events screen.
func (m *Model) enterScope(row int) {
	m.vm.selectScope(row)
	m.vm.screen = screenEvents
	m.vm.startTransition(viewTransition)
	m.requestRefresh()
}

func (m Model) handleEventsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.vm.screen = screenCalendars
		m.vm.mode = modeList
		m.vm.displayedDate = today()
		m.vm.startTransition(viewTransition)
		return m, frameTickCmd()

	case key.Matches(msg, m.keys.Refresh):
		m.requestRefresh()

	case key.Matches(msg, m.keys.CycleView):
		m.vm.toggleEventView()
		m.requestRefresh()
		return m, frameTickCmd()

	case key.Matches(msg, m.keys.Open):
		m.openDetail()
		return m, frameTickCmd()

	case key.Matches(msg, m.keys.Up):
		m.vm.previousItem()
	case key.Matches(msg, m.keys.Down):
		m.vm.nextItem()

	case key.Matches(msg, m.keys.StepBack):
		m.vm.stepBack()
		m.requestRefresh()
	case key.Matches(msg, m.keys.StepForward):
		m.vm.stepForward()
		m.requestRefresh()

	case key.Matches(msg, m.keys.JumpPrev):
		m.vm.jumpToPreviousDay()
	case key.Matches(msg, m.keys.JumpNext):
		m.vm.jumpToNextDay()
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.closeDetail()
		return m, frameTickCmd()
	case key.Matches(msg, m.keys.Up):
		m.detail.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.detail.ScrollDown(1)
	}
	return m, nil
}
