package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"cal365/internal/graph"
)

// renderEventList draws the agenda view for the current month. Rows
// scroll by eventListOffset so the selection always stays visible.
func (m Model) renderEventList(content rect) []string {
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Mauve).Bold(true)
	title := fmt.Sprintf("  Event List for '%s' - %s",
		m.vm.scopeName(), monthLabel(m.vm.displayedDate))

	lines := make([]string, 0, content.h)
	lines = append(lines, titleStyle.Render(title))

	visible := content.h - 1
	if visible < 0 {
		visible = 0
	}
	offset := m.vm.eventListOffset
	for i := offset; i < len(m.vm.events) && i-offset < visible; i++ {
		lines = append(lines, m.listRow(m.vm.events[i], i == m.vm.eventSelection))
	}

	return fill(lines, content.w, content.h)
}

func (m Model) listRow(e colorEvent, selected bool) string {
	text := listRowText(e.event)
	if selected {
		style := lipgloss.NewStyle().Foreground(m.theme.Yellow).Bold(true)
		return style.Render("❯ " + text)
	}
	return "  " + lipgloss.NewStyle().Foreground(m.theme.Foreground).Render(text)
}

// listRowText formats an agenda row in local time. Events with
// unparsable timestamps still render with their subject so the user
// can spot bad data.
func listRowText(e graph.Event) string {
	start, end, ok := eventSpan(e)
	if !ok {
		return fmt.Sprintf("[Invalid Date] | %s", e.Subject)
	}
	ls, le := start.In(time.Local), end.In(time.Local)
	return fmt.Sprintf("%s | %s - %s | %s",
		ls.Format("02/01"), ls.Format("15:04"), le.Format("15:04"), e.Subject)
}
