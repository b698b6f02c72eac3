package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"cal365/internal/auth"
	"cal365/internal/config"
	"cal365/internal/graph"
	"cal365/internal/notify"
	"cal365/internal/store"
	"cal365/internal/ui"
)

const debugLogFileName = "debug.log"

// Options configure the application.
type Options struct {
	ConfigPath string // empty uses the default settings path
	DebugLog   bool   // force debug logging on regardless of settings
}

// Run boots the calendar TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(settings.EnableDebugLog || opts.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	token, err := auth.Authenticate(ctx, settings.ClientID)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	dbPath, err := config.DatabasePath()
	if err != nil {
		return err
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open event store: %w", err)
	}

	source := graph.NewClient()

	calendars, err := loadCalendars(ctx, db, source, token)
	if err != nil {
		return fmt.Errorf("load calendars: %w", err)
	}
	log.Printf("app: %d calendars in scope", len(calendars))

	events := make(chan ui.AppEvent, 1)
	StartRefreshTimer(ctx, events, settings.RefreshInterval())

	clientID := settings.ClientID
	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     db,
		Source:    source,
		Settings:  &settings,
		Notifier:  notify.NewScheduler(settings.NotificationsEnabled(), settings.NotificationMinutesBefore),
		Calendars: calendars,
		Token:     token,
		RefreshToken: func(ctx context.Context) (string, error) {
			return auth.Refresh(ctx, clientID)
		},
		Events: events,
	})
}

// loadCalendars prefers the cached calendar list so the UI starts
// without a network round trip. An empty cache falls through to the
// remote and persists the answer.
func loadCalendars(ctx context.Context, db *store.Store, source graph.Source, token string) ([]graph.Calendar, error) {
	cached, err := db.Calendars()
	if err != nil {
		log.Printf("app: reading cached calendars: %v", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	remote, err := source.ListCalendars(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := db.UpsertCalendars(remote); err != nil {
		log.Printf("app: caching calendars: %v", err)
	}
	return remote, nil
}

// setupLogging routes the standard logger to a file in the config
// directory, or to nowhere. The TUI owns the terminal, so stderr is
// never an option.
func setupLogging(debug bool) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, debugLogFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}
