package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tabDivider = "│"

// tabEntry is one clickable tab in the header bar.
type tabEntry struct {
	label   string
	screen  screen
	mode    viewMode
	hasMode bool
}

func (m Model) tabEntries() []tabEntry {
	return []tabEntry{
		{label: fmt.Sprintf(" %s Cals ", m.symbols.Calendar), screen: screenCalendars},
		{label: "  List ", screen: screenEvents, mode: modeList, hasMode: true},
		{label: fmt.Sprintf(" %s Week ", m.symbols.Clock), screen: screenEvents, mode: modeWeek, hasMode: true},
		{label: "  Work ", screen: screenEvents, mode: modeWorkWeek, hasMode: true},
		{label: "  Day ", screen: screenEvents, mode: modeDay, hasMode: true},
		{label: "  Month ", screen: screenEvents, mode: modeMonth, hasMode: true},
	}
}

func (m Model) tabActive(t tabEntry) bool {
	if t.screen == screenCalendars {
		return m.vm.screen == screenCalendars
	}
	onEvents := m.vm.screen == screenEvents || m.vm.screen == screenDetail
	return onEvents && m.vm.mode == t.mode
}

// renderTabs produces the three header lines: spacer, tab bar, rule.
func (m Model) renderTabs() []string {
	activeStyle := lipgloss.NewStyle().
		Foreground(m.theme.Background).
		Background(m.theme.Blue).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(m.theme.Foreground)
	dividerStyle := lipgloss.NewStyle().Foreground(m.theme.Mauve)

	parts := make([]string, 0, len(m.tabEntries()))
	for _, t := range m.tabEntries() {
		if m.tabActive(t) {
			parts = append(parts, activeStyle.Render(t.label))
		} else {
			parts = append(parts, inactiveStyle.Render(t.label))
		}
	}
	bar := " " + strings.Join(parts, dividerStyle.Render(tabDivider))

	rule := dividerStyle.Render(strings.Repeat("─", m.width))
	return []string{
		strings.Repeat(" ", m.width),
		fit(bar, m.width),
		rule,
	}
}

// tabAt resolves a click inside the tab bar to a tab. The leading pad
// is one cell and each divider one cell, mirroring renderTabs.
func (m Model) tabAt(x int) (tabEntry, bool) {
	pos := 1
	for _, t := range m.tabEntries() {
		w := lipgloss.Width(t.label)
		if x >= pos && x < pos+w {
			return t, true
		}
		pos += w + 1
	}
	return tabEntry{}, false
}
