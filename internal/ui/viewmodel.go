package ui

import (
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"cal365/internal/graph"
)

// myCalendarsID is the synthetic scope id for the user's shareable
// calendars, distinct from any real calendar id.
const myCalendarsID = "MY_CALENDARS"

// screen is the major application screen.
type screen int

const (
	screenCalendars screen = iota
	screenEvents
	screenDetail
)

// viewMode is the active events layout. Tab cycles them in this order.
type viewMode int

const (
	modeList viewMode = iota
	modeWeek
	modeWorkWeek
	modeDay
	modeMonth
)

func (m viewMode) next() viewMode {
	switch m {
	case modeList:
		return modeWeek
	case modeWeek:
		return modeWorkWeek
	case modeWorkWeek:
		return modeDay
	case modeDay:
		return modeMonth
	default:
		return modeList
	}
}

// transition suppresses key input and drives the dissolve overlay
// until its deadline.
type transition struct {
	start    time.Time
	duration time.Duration
}

func (t transition) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(now.Sub(t.start)) / float64(t.duration)
}

// colorCalendar pairs a calendar with its stable display color.
type colorCalendar struct {
	cal   graph.Calendar
	color lipgloss.Color
}

// colorEvent pairs an event with its owning calendar's color.
type colorEvent struct {
	event graph.Event
	color lipgloss.Color
}

// viewModel holds the navigable state: scope, mode, anchor date,
// selections, and the hit-test rectangles the renderer records each
// frame.
type viewModel struct {
	calendars []colorCalendar
	events    []colorEvent

	screen            screen
	mode              viewMode
	currentCalendarID string // "" = all, myCalendarsID = shareable subset
	displayedDate     time.Time

	calendarSelection int
	eventSelection    int // -1 when nothing is selected
	eventListOffset   int

	transition *transition

	showHelp   bool
	showLegend bool

	// Recorded by the renderer, read by mouse dispatch.
	tabsArea     rect
	helpArea     rect
	titleArea    rect
	titleText    string
	calendarArea rect
	eventArea    rect
	detailArea   rect
}

func newViewModel() viewModel {
	return viewModel{
		screen:         screenCalendars,
		mode:           modeList,
		displayedDate:  today(),
		eventSelection: -1,
	}
}

// calendarRowCount is the logical calendar list length: every calendar
// plus the ALL and MY_SHAREABLE rows at the top.
func (vm *viewModel) calendarRowCount() int {
	return len(vm.calendars) + 2
}

// nextItem advances the selection in the active list with wraparound.
func (vm *viewModel) nextItem() {
	switch vm.screen {
	case screenCalendars:
		n := vm.calendarRowCount()
		vm.calendarSelection = (vm.calendarSelection + 1) % n
	case screenEvents:
		if len(vm.events) == 0 {
			return
		}
		if vm.eventSelection < 0 {
			vm.eventSelection = 0
			return
		}
		vm.eventSelection = (vm.eventSelection + 1) % len(vm.events)
	}
}

func (vm *viewModel) previousItem() {
	switch vm.screen {
	case screenCalendars:
		n := vm.calendarRowCount()
		vm.calendarSelection = (vm.calendarSelection + n - 1) % n
	case screenEvents:
		n := len(vm.events)
		if n == 0 {
			return
		}
		if vm.eventSelection < 0 {
			vm.eventSelection = n - 1
			return
		}
		vm.eventSelection = (vm.eventSelection + n - 1) % n
	}
}

// selectScope applies a calendar-list row choice: row 0 is ALL, row 1
// the shareable subset, anything later a single calendar.
func (vm *viewModel) selectScope(row int) {
	switch {
	case row == 0:
		vm.currentCalendarID = ""
	case row == 1:
		vm.currentCalendarID = myCalendarsID
	case row-2 < len(vm.calendars):
		vm.currentCalendarID = vm.calendars[row-2].cal.ID
	}
}

// scopeCalendars resolves the current scope into concrete calendars.
func (vm *viewModel) scopeCalendars() []colorCalendar {
	switch vm.currentCalendarID {
	case "":
		return vm.calendars
	case myCalendarsID:
		var out []colorCalendar
		for _, c := range vm.calendars {
			if c.cal.CanShare {
				out = append(out, c)
			}
		}
		return out
	default:
		for _, c := range vm.calendars {
			if c.cal.ID == vm.currentCalendarID {
				return []colorCalendar{c}
			}
		}
		return nil
	}
}

// scopeName is the display name for the footer title.
func (vm *viewModel) scopeName() string {
	switch vm.currentCalendarID {
	case "":
		return "All Calendars"
	case myCalendarsID:
		return "My Calendars"
	default:
		for _, c := range vm.calendars {
			if c.cal.ID == vm.currentCalendarID {
				return c.cal.Name
			}
		}
		return "All Calendars"
	}
}

func (vm *viewModel) selectedEvent() *colorEvent {
	if vm.eventSelection < 0 || vm.eventSelection >= len(vm.events) {
		return nil
	}
	return &vm.events[vm.eventSelection]
}

// jumpToNextDay selects the first event whose date is strictly after
// the selected event's date. The list is sorted, so a forward scan
// finds it.
func (vm *viewModel) jumpToNextDay() {
	cur := vm.selectedEvent()
	if cur == nil {
		return
	}
	start, err := cur.event.Start.Parsed()
	if err != nil {
		return
	}
	curDate := dateOf(start)
	for i, e := range vm.events {
		s, err := e.event.Start.Parsed()
		if err != nil {
			continue
		}
		if dateOf(s).After(curDate) {
			vm.eventSelection = i
			return
		}
	}
}

// jumpToPreviousDay selects the first event of the nearest earlier
// day that has one.
func (vm *viewModel) jumpToPreviousDay() {
	cur := vm.selectedEvent()
	if cur == nil {
		return
	}
	start, err := cur.event.Start.Parsed()
	if err != nil {
		return
	}
	curDate := dateOf(start)
	for i := vm.eventSelection - 1; i >= 0; i-- {
		s, err := vm.events[i].event.Start.Parsed()
		if err != nil {
			continue
		}
		if dateOf(s).Before(curDate) {
			target := dateOf(s)
			for j, e := range vm.events {
				es, err := e.event.Start.Parsed()
				if err != nil {
					continue
				}
				if dateOf(es).Equal(target) {
					vm.eventSelection = j
					return
				}
			}
			return
		}
	}
}

// selectNearestEvent picks the event whose start is closest to now and
// anchors the displayed date on it.
func (vm *viewModel) selectNearestEvent(now time.Time) {
	if len(vm.events) == 0 {
		vm.eventSelection = -1
		return
	}

	nearest := 0
	minDiff := time.Duration(1<<63 - 1)
	for i, e := range vm.events {
		start, err := e.event.Start.Parsed()
		if err != nil {
			continue
		}
		diff := start.Sub(now)
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			nearest = i
		}
	}
	vm.eventSelection = nearest

	if start, err := vm.events[nearest].event.Start.Parsed(); err == nil {
		vm.displayedDate = dateOf(start)
	}
}

func (vm *viewModel) nextMonth() {
	vm.displayedDate = firstOfMonth(vm.displayedDate).AddDate(0, 1, 0)
}

func (vm *viewModel) previousMonth() {
	vm.displayedDate = firstOfMonth(vm.displayedDate).AddDate(0, -1, 0)
}

func (vm *viewModel) nextWeek() {
	vm.displayedDate = vm.displayedDate.AddDate(0, 0, 7)
}

func (vm *viewModel) previousWeek() {
	vm.displayedDate = vm.displayedDate.AddDate(0, 0, -7)
}

// stepForward advances the displayed date by one view-sized step.
func (vm *viewModel) stepForward() {
	switch vm.mode {
	case modeWeek, modeWorkWeek:
		vm.nextWeek()
	case modeDay:
		vm.displayedDate = vm.displayedDate.AddDate(0, 0, 1)
	default:
		vm.nextMonth()
	}
}

func (vm *viewModel) stepBack() {
	switch vm.mode {
	case modeWeek, modeWorkWeek:
		vm.previousWeek()
	case modeDay:
		vm.displayedDate = vm.displayedDate.AddDate(0, 0, -1)
	default:
		vm.previousMonth()
	}
}

// toggleEventView rotates the mode cycle and arms the view animation.
func (vm *viewModel) toggleEventView() {
	vm.mode = vm.mode.next()
	vm.startTransition(300 * time.Millisecond)
}

func (vm *viewModel) startTransition(d time.Duration) {
	vm.transition = &transition{start: time.Now(), duration: d}
}

func (vm *viewModel) transitionActive() bool {
	return vm.transition != nil
}

// setEvents replaces the event list, keeping it sorted by the raw
// start string. The remote's ISO-8601 format makes the lexicographic
// order chronological.
func (vm *viewModel) setEvents(events []colorEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].event.Start.DateTime < events[j].event.Start.DateTime
	})
	vm.events = events
	if vm.eventSelection >= len(vm.events) {
		vm.eventSelection = len(vm.events) - 1
	}
}

// eventsOn lists the indices of events rendering on the given date, in
// list order. Shared by the grid renderers and mouse dispatch.
func (vm *viewModel) eventsOn(day time.Time) []int {
	var out []int
	for i, e := range vm.events {
		if occursOn(e.event, day) {
			out = append(out, i)
		}
	}
	return out
}

func (vm *viewModel) plainEvents() []graph.Event {
	out := make([]graph.Event, len(vm.events))
	for i, e := range vm.events {
		out[i] = e.event
	}
	return out
}
