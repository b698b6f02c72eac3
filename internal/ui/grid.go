package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// wrappedEventLines wraps the compact event text to a column width and
// styles every resulting line. Mouse dispatch relies on the same wrap
// to translate a click row back into an event, so wrapping happens on
// the unstyled text.
func (m Model) wrappedEventLines(e colorEvent, width int, selected bool) []string {
	raw := wrappedEventText(e, width)
	out := make([]string, 0, len(raw))
	for i, line := range raw {
		if selected {
			style := lipgloss.NewStyle().
				Foreground(m.theme.Background).
				Background(m.theme.Blue).
				Bold(true)
			out = append(out, style.Render(line))
			continue
		}
		if i == 0 && strings.HasPrefix(line, "■ ") {
			square := lipgloss.NewStyle().Foreground(e.color).Render("■ ")
			rest := lipgloss.NewStyle().Foreground(m.theme.Foreground).Render(line[len("■ "):])
			out = append(out, square+rest)
			continue
		}
		out = append(out, lipgloss.NewStyle().Foreground(m.theme.Foreground).Render(line))
	}
	return out
}

func wrappedEventText(e colorEvent, width int) []string {
	if width <= 0 {
		return nil
	}
	return strings.Split(wordwrap.String(eventLineText(e), width), "\n")
}

// eventLineHeight is the number of rows the event occupies at a given
// column width.
func eventLineHeight(e colorEvent, width int) int {
	return len(wrappedEventText(e, width))
}

// renderDay lays out the events of the displayed date as a single
// full-width column.
func (m Model) renderDay(content rect) []string {
	indices := m.vm.eventsOn(m.vm.displayedDate)
	if len(indices) == 0 {
		lines := make([]string, 0, content.h)
		for i := 0; i < content.h/2; i++ {
			lines = append(lines, "")
		}
		lines = append(lines, centerText("No events for this day", content.w))
		return fill(lines, content.w, content.h)
	}

	lines := make([]string, 0, content.h)
	for _, idx := range indices {
		e := m.vm.events[idx]
		lines = append(lines, m.wrappedEventLines(e, content.w, idx == m.vm.eventSelection)...)
	}
	return fill(lines, content.w, content.h)
}

func (m Model) renderWeek(content rect) []string {
	start := weekStart(m.vm.displayedDate, time.Sunday)
	return m.renderColumns(content, start, 7)
}

func (m Model) renderWorkWeek(content rect) []string {
	start := weekStart(m.vm.displayedDate, time.Monday)
	return m.renderColumns(content, start, 5)
}

// renderColumns draws n day columns starting at start: a header row
// with the weekday and day number, then each day's wrapped events.
func (m Model) renderColumns(content rect, start time.Time, n int) []string {
	cols := splitColumns(content, n)
	cells := make([][]string, n)
	now := today()

	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Mauve).Bold(true)
	todayStyle := lipgloss.NewStyle().
		Foreground(m.theme.Background).
		Background(m.theme.Blue).
		Bold(true)

	for i := 0; i < n; i++ {
		day := start.AddDate(0, 0, i)
		header := fmt.Sprintf(" %s %d", day.Format("Mon"), day.Day())
		style := headerStyle
		if day.Equal(now) {
			style = todayStyle
		}
		lines := []string{style.Render(header)}
		for _, idx := range m.vm.eventsOn(day) {
			e := m.vm.events[idx]
			lines = append(lines, m.wrappedEventLines(e, cols[i].w, idx == m.vm.eventSelection)...)
		}
		cells[i] = lines
	}

	return joinColumns(cols, cells, content.h)
}

// renderMonth draws a Monday-first 6x7 grid below a weekday header
// line. Day cells belonging to other months keep their events but
// drop the day number.
func (m Model) renderMonth(content rect) []string {
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Mauve).Bold(true)
	todayStyle := lipgloss.NewStyle().
		Foreground(m.theme.Background).
		Background(m.theme.Blue).
		Bold(true)
	dayStyle := lipgloss.NewStyle().Foreground(m.theme.Yellow).Bold(true)

	grid := rect{x: content.x, y: content.y + 1, w: content.w, h: content.h - 1}
	rows := splitRows(grid, 6)
	start := monthGridStart(m.vm.displayedDate)
	now := today()
	month := m.vm.displayedDate.Month()

	headerCols := splitColumns(rect{x: content.x, y: content.y, w: content.w, h: 1}, 7)
	var header strings.Builder
	for i, col := range headerCols {
		day := start.AddDate(0, 0, i)
		header.WriteString(fit(headerStyle.Render(" "+day.Format("Mon")), col.w))
	}

	out := make([]string, 0, content.h)
	out = append(out, header.String())

	for r, row := range rows {
		cols := splitColumns(row, 7)
		cells := make([][]string, 7)
		for c := 0; c < 7; c++ {
			day := start.AddDate(0, 0, r*7+c)
			if day.Month() != month {
				cells[c] = []string{""}
				continue
			}
			var lines []string
			if day.Equal(now) {
				lines = append(lines, todayStyle.Render(fmt.Sprintf(" %d ", day.Day())))
			} else {
				lines = append(lines, dayStyle.Render(fmt.Sprintf(" %d", day.Day())))
			}
			for _, idx := range m.vm.eventsOn(day) {
				lines = append(lines, m.eventLine(m.vm.events[idx], idx == m.vm.eventSelection))
			}
			cells[c] = lines
		}
		out = append(out, joinColumns(cols, cells, row.h)...)
	}

	return fill(out, content.w, content.h)
}
