package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderCalendars draws the calendar list: the two aggregate rows, then
// one row per calendar with its color square.
func (m Model) renderCalendars(content rect) []string {
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Mauve).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(m.theme.Foreground)
	boldRow := rowStyle.Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(m.theme.Blue).Bold(true)

	lines := make([]string, 0, content.h)
	lines = append(lines, titleStyle.Render("  My Calendars"))

	rows := make([]string, 0, m.vm.calendarRowCount())
	rows = append(rows, boldRow.Render("✨ All Calendars"))
	rows = append(rows, boldRow.Render("👤 My Calendars"))
	for _, c := range m.vm.calendars {
		square := lipgloss.NewStyle().Foreground(c.color).Render("■ ")
		rows = append(rows, square+rowStyle.Render(c.cal.Name))
	}

	for i, row := range rows {
		prefix := "  "
		if i == m.vm.calendarSelection {
			prefix = selStyle.Render("❯ ")
			row = selStyle.Render(stripStyles(row))
		}
		lines = append(lines, prefix+row)
	}

	return fill(lines, content.w, content.h)
}

// stripStyles drops ANSI sequences so a row can be restyled whole.
func stripStyles(s string) string {
	var out []rune
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 0x40 && r <= 0x7e) && r != '[' {
				inEscape = false
			}
		case r == 0x1b:
			inEscape = true
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// eventLine renders the compact "■ HH:MM-HH:MM subject" form used by
// the day and week columns. Shared with mouse dispatch for height
// accounting.
func (m Model) eventLine(e colorEvent, selected bool) string {
	text := eventLineText(e)
	if selected {
		style := lipgloss.NewStyle().
			Foreground(m.theme.Background).
			Background(m.theme.Blue).
			Bold(true)
		return style.Render(text)
	}
	square := lipgloss.NewStyle().Foreground(e.color).Render("■ ")
	return square + lipgloss.NewStyle().Foreground(m.theme.Foreground).Render(text[len("■ "):])
}

// eventLineText is the unstyled cell text; hit-testing wraps this.
func eventLineText(e colorEvent) string {
	start, end, ok := eventSpan(e.event)
	if !ok {
		return fmt.Sprintf("■ [Invalid Date] %s", e.event.Subject)
	}
	return fmt.Sprintf("■ %s-%s %s",
		start.In(time.Local).Format("15:04"),
		end.In(time.Local).Format("15:04"),
		e.event.Subject)
}
