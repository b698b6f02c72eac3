package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// arrowHitBand is how many cells at each end of the footer title count
// as the previous/next arrows for mouse clicks.
const arrowHitBand = 4

// footerTitle is the navigable title shown at the right of the footer:
// the scope name plus the visible range, framed by arrow glyphs.
func (m Model) footerTitle() string {
	if m.vm.screen == screenCalendars {
		return ""
	}

	name := m.vm.scopeName()
	d := m.vm.displayedDate
	switch m.vm.mode {
	case modeWeek:
		start := weekStart(d, time.Sunday)
		end := start.AddDate(0, 0, 6)
		return fmt.Sprintf(" %s %s (%s to %s) %s ",
			m.symbols.LeftArrow, name, start.Format("02/01"), end.Format("02/01"), m.symbols.RightArrow)
	case modeWorkWeek:
		start := weekStart(d, time.Monday)
		end := start.AddDate(0, 0, 4)
		return fmt.Sprintf(" %s %s (%s to %s) %s ",
			m.symbols.LeftArrow, name, start.Format("02/01"), end.Format("02/01"), m.symbols.RightArrow)
	case modeDay:
		return fmt.Sprintf(" %s %s (%s) %s ",
			m.symbols.LeftArrow, name, d.Format("Mon, 02 Jan 2006"), m.symbols.RightArrow)
	case modeMonth:
		return fmt.Sprintf(" %s %s - %s %s ",
			m.symbols.LeftArrow, name, monthLabel(d), m.symbols.RightArrow)
	default:
		return fmt.Sprintf(" %s %s %s ", m.symbols.LeftArrow, name, m.symbols.RightArrow)
	}
}

// renderFooter draws the single footer line: help hint, right-aligned
// title, clock.
func (m Model) renderFooter() string {
	hintStyle := lipgloss.NewStyle().Foreground(m.theme.Blue)
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Mauve).Bold(true)
	clockStyle := lipgloss.NewStyle().Foreground(m.theme.Foreground)

	hint := fit(hintStyle.Render(fmt.Sprintf(" %s Help", m.symbols.Help)), helpHintCols)

	title := m.vm.titleText
	titleW := m.vm.titleArea.w
	pad := titleW - lipgloss.Width(title)
	if pad < 0 {
		pad = 0
	}
	titleCell := strings.Repeat(" ", pad) + titleStyle.Render(title)
	titleCell = fit(titleCell, titleW)

	clock := fit(clockStyle.Render(m.clock.Format(" 02/01/2006 15:04:05")), clockCols)

	return fit(hint+titleCell+clock, m.width)
}

// titleArrowHit reports whether a click at x lands on the previous or
// next arrow of the right-aligned footer title.
func (m Model) titleArrowHit(x int) (previous, next bool) {
	w := lipgloss.Width(m.vm.titleText)
	if w == 0 {
		return false, false
	}
	end := m.vm.titleArea.x + m.vm.titleArea.w
	start := end - w
	if x < start || x >= end {
		return false, false
	}
	if x < start+arrowHitBand {
		return true, false
	}
	if x >= end-arrowHitBand {
		return false, true
	}
	return false, false
}
