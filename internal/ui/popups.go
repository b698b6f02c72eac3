package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpRow struct {
	key    string
	action string
}

func (m Model) helpRows() []helpRow {
	row := func(b key.Binding) helpRow {
		h := b.Help()
		return helpRow{key: h.Key, action: h.Desc}
	}
	return []helpRow{
		row(m.keys.Help),
		row(m.keys.Quit),
		row(m.keys.Refresh),
		row(m.keys.Back),
		row(m.keys.Open),
		row(m.keys.CycleView),
		{fmt.Sprintf("%s/%s", m.symbols.UpArrow, m.symbols.DownArrow), "Move selection"},
		{"a/d", "Previous / next period"},
	}
}

// renderHelp draws the keyboard shortcut popup as a full centered
// frame, with the calendar legend below the key table.
func (m Model) renderHelp() string {
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Mauve).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(m.theme.Yellow).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(m.theme.Foreground)

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Keyboard Shortcuts "))
	b.WriteString("\n\n")
	for _, row := range m.helpRows() {
		pad := 8 - lipgloss.Width(row.key)
		if pad < 1 {
			pad = 1
		}
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(row.key))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(textStyle.Render(row.action))
		b.WriteString("\n")
	}

	if len(m.vm.calendars) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(" Legend "))
		b.WriteString("\n\n")
		b.WriteString(m.legendLines())
	}

	return m.popupFrame(b.String())
}

// renderLegend shows just the calendar color key.
func (m Model) renderLegend() string {
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Mauve).Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("  Legend "))
	b.WriteString("\n\n")
	b.WriteString(m.legendLines())

	return m.popupFrame(b.String())
}

func (m Model) legendLines() string {
	textStyle := lipgloss.NewStyle().Foreground(m.theme.Foreground)
	var b strings.Builder
	for _, c := range m.vm.calendars {
		square := lipgloss.NewStyle().Foreground(c.color).Render("■ ")
		b.WriteString("  ")
		b.WriteString(square)
		b.WriteString(textStyle.Render(c.cal.Name))
		b.WriteString("\n")
	}
	return b.String()
}

// popupFrame centers a bordered box over a blank frame.
func (m Model) popupFrame(content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Mauve).
		Padding(0, 1).
		Render(content)
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center, box)
}
