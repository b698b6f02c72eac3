package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Recompute the frame geometry so hit-testing matches what was
	// last drawn.
	m.recordLayout()

	if m.vm.showHelp {
		if isButtonPress(msg) {
			m.vm.showHelp = false
		}
		return m, nil
	}
	if m.vm.showLegend {
		if isButtonPress(msg) {
			m.vm.showLegend = false
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.handleWheel(-1)
	case tea.MouseButtonWheelDown:
		return m.handleWheel(1)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	return m.handleLeftClick(msg.X, msg.Y)
}

// isButtonPress reports whether msg is an actual button-down, as
// opposed to a wheel event, which bubbletea also delivers with a
// press action.
func isButtonPress(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return false
	}
	return true
}

func (m Model) handleWheel(dir int) (tea.Model, tea.Cmd) {
	switch m.vm.screen {
	case screenCalendars:
		if dir < 0 {
			m.vm.previousItem()
		} else {
			m.vm.nextItem()
		}

	case screenDetail:
		if dir < 0 {
			m.detail.ScrollUp(1)
		} else {
			m.detail.ScrollDown(1)
		}

	default:
		switch m.vm.mode {
		case modeMonth:
			if dir < 0 {
				m.vm.previousMonth()
			} else {
				m.vm.nextMonth()
			}
			m.requestRefresh()
		case modeWeek, modeWorkWeek:
			if dir < 0 {
				m.vm.previousWeek()
			} else {
				m.vm.nextWeek()
			}
			m.requestRefresh()
		case modeDay:
			m.vm.displayedDate = m.vm.displayedDate.AddDate(0, 0, dir)
			m.requestRefresh()
		default:
			if dir < 0 {
				m.vm.previousItem()
			} else {
				m.vm.nextItem()
			}
		}
	}
	return m, nil
}

func (m Model) handleLeftClick(x, y int) (tea.Model, tea.Cmd) {
	if m.vm.screen == screenDetail {
		if !m.vm.detailArea.contains(x, y) {
			m.closeDetail()
			return m, frameTickCmd()
		}
		return m, nil
	}

	if m.vm.helpArea.contains(x, y) {
		m.vm.showHelp = true
		return m, nil
	}

	if m.vm.titleArea.contains(x, y) && m.vm.screen == screenEvents {
		prev, next := m.titleArrowHit(x)
		if prev {
			m.vm.stepBack()
			m.requestRefresh()
			return m, nil
		}
		if next {
			m.vm.stepForward()
			m.requestRefresh()
			return m, nil
		}
	}

	if m.vm.tabsArea.contains(x, y) {
		if tab, ok := m.tabAt(x); ok {
			if !tab.hasMode {
				m.vm.screen = screenCalendars
			} else {
				m.vm.screen = screenEvents
				m.vm.mode = tab.mode
				m.requestRefresh()
			}
		}
		return m, nil
	}

	switch m.vm.screen {
	case screenCalendars:
		return m.clickCalendars(x, y)
	default:
		switch m.vm.mode {
		case modeMonth:
			return m.clickMonth(x, y)
		case modeWeek:
			return m.clickColumns(x, y, time.Sunday, 7)
		case modeWorkWeek:
			return m.clickColumns(x, y, time.Monday, 5)
		case modeDay:
			return m.clickDay(x, y)
		default:
			return m.clickEventList(x, y)
		}
	}
}

func (m Model) clickCalendars(x, y int) (tea.Model, tea.Cmd) {
	area := m.vm.calendarArea
	if !area.contains(x, y) {
		return m, nil
	}
	row := y - area.y
	if row >= m.vm.calendarRowCount() {
		return m, nil
	}
	m.vm.calendarSelection = row
	m.enterScope(row)
	return m, frameTickCmd()
}

func (m Model) clickEventList(x, y int) (tea.Model, tea.Cmd) {
	area := m.vm.eventArea
	if !area.contains(x, y) {
		return m, nil
	}
	index := m.vm.eventListOffset + y - area.y
	if index >= len(m.vm.events) {
		return m, nil
	}
	m.vm.eventSelection = index
	m.openDetail()
	return m, frameTickCmd()
}

func (m Model) clickMonth(x, y int) (tea.Model, tea.Cmd) {
	area := m.vm.eventArea
	grid := rect{x: area.x, y: area.y + 1, w: area.w, h: area.h - 1}
	if !grid.contains(x, y) {
		return m, nil
	}

	rows := splitRows(grid, 6)
	for r, row := range rows {
		if !row.contains(x, y) {
			continue
		}
		cols := splitColumns(row, 7)
		for c, col := range cols {
			if !col.contains(x, y) {
				continue
			}
			date := monthGridStart(m.vm.displayedDate).AddDate(0, 0, r*7+c)

			// Cells outside the displayed month are drawn empty, so
			// they take no clicks either.
			if date.Month() != m.vm.displayedDate.Month() {
				return m, nil
			}

			// Line 0 of a cell is the day number; events follow.
			localY := y - row.y
			if localY >= 1 {
				indices := m.vm.eventsOn(date)
				if visual := localY - 1; visual < len(indices) {
					m.vm.eventSelection = indices[visual]
					m.openDetail()
					return m, frameTickCmd()
				}
			}

			// Header or empty space jumps to the list for that date.
			m.vm.displayedDate = date
			m.vm.mode = modeList
			m.vm.startTransition(viewTransition)
			m.requestRefresh()
			return m, frameTickCmd()
		}
	}
	return m, nil
}

func (m Model) clickColumns(x, y int, firstDay time.Weekday, n int) (tea.Model, tea.Cmd) {
	area := m.vm.eventArea
	if !area.contains(x, y) {
		return m, nil
	}

	cols := splitColumns(area, n)
	start := weekStart(m.vm.displayedDate, firstDay)
	for c, col := range cols {
		if !col.contains(x, y) {
			continue
		}
		date := start.AddDate(0, 0, c)

		localY := y - area.y
		if localY > 0 {
			contentY := localY - 1
			accumulated := 0
			for _, idx := range m.vm.eventsOn(date) {
				height := eventLineHeight(m.vm.events[idx], col.w)
				if contentY >= accumulated && contentY < accumulated+height {
					m.vm.eventSelection = idx
					m.openDetail()
					return m, frameTickCmd()
				}
				accumulated += height
			}
		}

		m.vm.displayedDate = date
		m.vm.mode = modeList
		m.vm.startTransition(viewTransition)
		m.requestRefresh()
		return m, frameTickCmd()
	}
	return m, nil
}

func (m Model) clickDay(x, y int) (tea.Model, tea.Cmd) {
	area := m.vm.eventArea
	if !area.contains(x, y) {
		return m, nil
	}

	contentY := y - area.y
	accumulated := 0
	for _, idx := range m.vm.eventsOn(m.vm.displayedDate) {
		height := eventLineHeight(m.vm.events[idx], area.w)
		if contentY >= accumulated && contentY < accumulated+height {
			m.vm.eventSelection = idx
			m.openDetail()
			return m, frameTickCmd()
		}
		accumulated += height
	}
	return m, nil
}
