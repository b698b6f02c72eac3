package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cal365/internal/config"
	"cal365/internal/graph"
	"cal365/internal/notify"
	"cal365/internal/store"
)

const (
	frameInterval = 16 * time.Millisecond
	clockInterval = 250 * time.Millisecond
	notifyScan    = time.Minute

	bootTransition = 500 * time.Millisecond
	viewTransition = 300 * time.Millisecond
)

type eventKind int

const (
	eventRefresh eventKind = iota
	eventEventsLoaded
	eventTokenExpired
)

// AppEvent is a message from a background task to the update loop.
// External callers (the refresh timer) construct it with RefreshEvent.
type AppEvent struct {
	kind   eventKind
	events []colorEvent
}

// RefreshEvent asks the loop to re-run the refresh pipeline the next
// time it is looking at events.
func RefreshEvent() AppEvent {
	return AppEvent{kind: eventRefresh}
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *store.Store
	Source    graph.Source
	Settings  *config.Settings
	Notifier  *notify.Scheduler
	Calendars []graph.Calendar
	Token     string

	// RefreshToken swaps the access token after an in-band expiry.
	RefreshToken func(ctx context.Context) (string, error)

	// Events carries AppEvents from background tasks into the loop.
	// Capacity should be small; senders block briefly or drop.
	Events chan AppEvent
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx          context.Context
	store        *store.Store
	source       graph.Source
	settings     *config.Settings
	notifier     *notify.Scheduler
	refreshToken func(ctx context.Context) (string, error)
	events       chan AppEvent

	token string

	theme   Theme
	symbols Symbols
	keys    keyMap
	vm      viewModel

	width  int
	height int
	ready  bool

	clock          time.Time
	lastNotifyScan time.Time

	detail viewport.Model
}

// New creates the root model. Calendars get their palette colors here,
// honoring any per-calendar color from the calendar_overrides table.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	settings := opts.Settings
	if settings == nil {
		settings = &config.Settings{}
	}

	m := Model{
		ctx:          ctx,
		store:        opts.Store,
		source:       opts.Source,
		settings:     settings,
		notifier:     opts.Notifier,
		refreshToken: opts.RefreshToken,
		events:       opts.Events,
		token:        opts.Token,
		theme:        GetTheme(settings.Theme, settings.CustomThemes),
		symbols:      LoadSymbols(settings),
		keys:         defaultKeyMap(),
		vm:           newViewModel(),
		clock:        time.Now(),
		lastNotifyScan: time.Now(),
	}

	m.vm.calendars = make([]colorCalendar, len(opts.Calendars))
	for i, cal := range opts.Calendars {
		color := calendarColor(i)
		if hex, ok := settings.CalendarOverrides[cal.Name]; ok && hex != "" {
			color = lipgloss.Color(hex)
		}
		m.vm.calendars[i] = colorCalendar{cal: cal, color: color}
	}

	m.vm.startTransition(bootTransition)
	return m
}

// Messages

type appEventMsg AppEvent

type frameTickMsg time.Time

type clockTickMsg time.Time

type tokenMsg struct {
	token string
	err   error
}

// Commands

func frameTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// waitForEvent delivers one AppEvent per invocation; Update re-arms it
// after each delivery so at most one event is drained per cycle.
func waitForEvent(ctx context.Context, ch chan AppEvent) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-ch:
			return appEventMsg(ev)
		case <-ctx.Done():
			return nil
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{clockTickCmd(), frameTickCmd()}
	if m.events != nil {
		cmds = append(cmds, waitForEvent(m.ctx, m.events))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		first := !m.ready
		m.ready = true
		m.resizeDetail()
		if first && len(m.vm.calendars) > 0 {
			m.requestRefresh()
		}
		return m, nil

	case frameTickMsg:
		if m.vm.transition == nil {
			return m, nil
		}
		if m.vm.transition.progress(time.Time(msg)) >= 1 {
			m.vm.transition = nil
			return m, nil
		}
		return m, frameTickCmd()

	case clockTickMsg:
		m.clock = time.Time(msg)
		if m.notifier != nil && m.clock.Sub(m.lastNotifyScan) >= notifyScan {
			m.notifier.Check(m.vm.plainEvents())
			m.lastNotifyScan = m.clock
		}
		return m, clockTickCmd()

	case appEventMsg:
		return m.handleAppEvent(AppEvent(msg))

	case tokenMsg:
		if msg.err != nil {
			log.Printf("ui: token refresh failed: %v", msg.err)
			return m, nil
		}
		m.token = msg.token
		m.requestRefresh()
		return m, nil
	}

	return m, nil
}

// handleAppEvent applies one drained message and re-arms the wait.
func (m Model) handleAppEvent(ev AppEvent) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{waitForEvent(m.ctx, m.events)}

	switch ev.kind {
	case eventRefresh:
		// Timer refreshes only matter while looking at events.
		if m.vm.screen == screenEvents {
			m.requestRefresh()
		}

	case eventEventsLoaded:
		m.vm.setEvents(ev.events)
		if m.notifier != nil {
			m.notifier.Check(m.vm.plainEvents())
			m.lastNotifyScan = time.Now()
		}
		if len(m.vm.events) > 0 {
			m.vm.selectNearestEvent(time.Now().UTC())
		} else {
			m.vm.eventSelection = -1
		}

	case eventTokenExpired:
		log.Println("ui: access token expired, refreshing")
		if m.refreshToken != nil {
			refresh := m.refreshToken
			ctx := m.ctx
			cmds = append(cmds, func() tea.Msg {
				token, err := refresh(ctx)
				return tokenMsg{token: token, err: err}
			})
		}
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.render()
}

// Run starts the Bubble Tea program with the terminal in alt screen
// and mouse capture on.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
