package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	headerHeight = 3
	footerHeight = 1
	helpHintCols = 10
	clockCols    = 20
)

// recordLayout writes the frame's hit-test rectangles into the view
// model. Rendering and mouse dispatch both run through here, so the
// regions they see are always the same.
func (m *Model) recordLayout() {
	w, h := m.width, m.height
	m.vm.tabsArea = rect{x: 0, y: 0, w: w, h: headerHeight}

	footerY := h - footerHeight
	m.vm.helpArea = rect{x: 0, y: footerY, w: helpHintCols, h: 1}
	m.vm.titleArea = rect{x: helpHintCols, y: footerY, w: w - helpHintCols - clockCols, h: 1}
	m.vm.titleText = m.footerTitle()

	content := m.contentRect()
	switch m.vm.screen {
	case screenCalendars:
		// Title line on top, rows below it.
		m.vm.calendarArea = rect{x: content.x, y: content.y + 1, w: content.w, h: content.h - 1}
	default:
		if m.vm.mode == modeList {
			m.vm.eventArea = rect{x: content.x, y: content.y + 1, w: content.w, h: content.h - 1}
		} else {
			m.vm.eventArea = content
		}
	}

	m.vm.detailArea = centeredRect(80, 80, w, h)
	m.vm.eventListOffset = clampOffset(m.vm.eventListOffset, m.vm.eventSelection, m.vm.eventArea.h)
}

func (m Model) contentRect() rect {
	return rect{x: 0, y: headerHeight, w: m.width, h: m.height - headerHeight - footerHeight}
}

// clampOffset keeps the selected row inside the visible window.
func clampOffset(offset, selection, visible int) int {
	if selection < 0 || visible <= 0 {
		return 0
	}
	if selection < offset {
		return selection
	}
	if selection >= offset+visible {
		return selection - visible + 1
	}
	return offset
}

func (m Model) render() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.recordLayout()

	var lines []string
	switch {
	case m.vm.showHelp:
		lines = strings.Split(m.renderHelp(), "\n")
	case m.vm.showLegend:
		lines = strings.Split(m.renderLegend(), "\n")
	case m.vm.screen == screenDetail:
		lines = strings.Split(m.renderDetail(), "\n")
	default:
		lines = append(lines, m.renderTabs()...)
		lines = append(lines, m.renderContent()...)
		lines = append(lines, m.renderFooter())
	}

	if t := m.vm.transition; t != nil {
		if p := t.progress(time.Now()); p < 1 {
			lines = dissolve(lines, p)
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderContent() []string {
	content := m.contentRect()
	switch m.vm.screen {
	case screenCalendars:
		return m.renderCalendars(content)
	default:
		switch m.vm.mode {
		case modeWeek:
			return m.renderWeek(content)
		case modeWorkWeek:
			return m.renderWorkWeek(content)
		case modeDay:
			return m.renderDay(content)
		case modeMonth:
			return m.renderMonth(content)
		default:
			return m.renderEventList(content)
		}
	}
}

// fit truncates or pads a styled line to an exact cell width.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate.String(s, uint(width))
	if gap := width - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// fill returns lines padded with blanks up to the wanted height.
func fill(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := 0; i < height; i++ {
		if i < len(lines) {
			out[i] = fit(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return out
}

// joinColumns composes per-column cell lines into full-width rows.
func joinColumns(cols []rect, cells [][]string, height int) []string {
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for i, col := range cols {
			if y < len(cells[i]) {
				b.WriteString(fit(cells[i][y], col.w))
			} else {
				b.WriteString(strings.Repeat(" ", col.w))
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// centerText places s in the middle of the given width.
func centerText(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return fit(s, width)
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
