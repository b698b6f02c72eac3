package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/jaytaylor/html2text"
	"github.com/muesli/reflow/wordwrap"

	"cal365/internal/graph"
)

// resizeDetail keeps the detail viewport sized to the centered popup
// area, minus the border and padding cells.
func (m *Model) resizeDetail() {
	area := centeredRect(80, 80, m.width, m.height)
	w, h := area.w-4, area.h-2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m.detail = viewport.New(w, h)
	if ev := m.vm.selectedEvent(); ev != nil && m.vm.screen == screenDetail {
		m.detail.SetContent(m.detailContent(*ev, w))
		m.detail.GotoTop()
	}
}

// openDetail switches to the detail screen for the selected event.
func (m *Model) openDetail() {
	ev := m.vm.selectedEvent()
	if ev == nil {
		return
	}
	m.vm.screen = screenDetail
	m.resizeDetail()
	m.vm.startTransition(viewTransition)
}

func (m *Model) closeDetail() {
	m.vm.screen = screenEvents
	m.vm.startTransition(viewTransition)
}

// detailContent builds the scrollable body: the colored subject, the
// local-time span, then organizer, location, attendees and the
// plain-text description.
func (m Model) detailContent(ev colorEvent, width int) string {
	subjStyle := lipgloss.NewStyle().Foreground(ev.color).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Mauve).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(m.theme.Foreground)

	var b strings.Builder
	b.WriteString(subjStyle.Render("■ " + ev.event.Subject))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("When: "))
	if start, end, ok := eventSpan(ev.event); ok {
		ls, le := start.In(time.Local), end.In(time.Local)
		b.WriteString(textStyle.Render(fmt.Sprintf("%s from %s to %s",
			ls.Format("02/01/2006"), ls.Format("15:04"), le.Format("15:04"))))
	} else {
		b.WriteString(textStyle.Render("[Invalid Date]"))
	}
	b.WriteString("\n")

	if org := ev.event.Organizer; org != nil && org.EmailAddress != nil && org.EmailAddress.Name != "" {
		b.WriteString(labelStyle.Render("Organizer: "))
		b.WriteString(textStyle.Render(org.EmailAddress.Name))
		b.WriteString("\n")
	}
	if loc := ev.event.Location; loc != nil && loc.DisplayName != "" {
		b.WriteString(labelStyle.Render("Location: "))
		b.WriteString(textStyle.Render(loc.DisplayName))
		b.WriteString("\n")
	}

	if len(ev.event.Attendees) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Attendees:"))
		b.WriteString("\n")
		for _, a := range ev.event.Attendees {
			if a.EmailAddress == nil {
				continue
			}
			b.WriteString(textStyle.Render(fmt.Sprintf("  - %s <%s>",
				a.EmailAddress.Name, a.EmailAddress.Address)))
			b.WriteString("\n")
		}
	}

	if body := eventDescription(ev.event); body != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Description:"))
		b.WriteString("\n")
		b.WriteString(textStyle.Render(wordwrap.String(body, width)))
		b.WriteString("\n")
	}

	return b.String()
}

// eventDescription converts the HTML body to plain text, falling back
// to the raw content when conversion fails.
func eventDescription(e graph.Event) string {
	if e.Body == nil || strings.TrimSpace(e.Body.Content) == "" {
		return ""
	}
	text, err := html2text.FromString(e.Body.Content, html2text.Options{TextOnly: true})
	if err != nil {
		log.Printf("html2text: %v", err)
		return strings.TrimSpace(e.Body.Content)
	}
	return strings.TrimSpace(text)
}

// renderDetail draws the bordered popup as a full frame, centered in
// the window.
func (m Model) renderDetail() string {
	area := centeredRect(80, 80, m.width, m.height)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Mauve).
		Padding(0, 1).
		Width(area.w - 2).
		Height(area.h - 2)
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box.Render(m.detail.View()))
}
