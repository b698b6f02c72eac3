// Package config loads the 365cal-tui settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	appDirName       = "365cal-tui"
	settingsFileName = "Settings.toml"
	databaseFileName = "365cal.db"

	defaultTheme            = "catppuccin"
	defaultRefreshMinutes   = 5
	defaultNotificationLead = 15
)

// ErrClientIDMissing reports a settings file without the required
// client_id. Startup treats it as fatal and points at the file.
var ErrClientIDMissing = errors.New("client_id is not set")

// ThemeColors is a user-supplied palette from [custom_themes.<name>].
type ThemeColors struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Yellow     string `toml:"yellow"`
	Blue       string `toml:"blue"`
	Mauve      string `toml:"mauve"`
}

// Glyphs is a user-supplied symbol set from [custom_fonts.<name>] or
// the [symbols] override table. Empty fields mean "keep the default".
type Glyphs struct {
	Calendar   string `toml:"calendar"`
	Clock      string `toml:"clock"`
	Help       string `toml:"help"`
	LeftArrow  string `toml:"left_arrow"`
	RightArrow string `toml:"right_arrow"`
	UpArrow    string `toml:"up_arrow"`
	DownArrow  string `toml:"down_arrow"`
}

// Settings mirrors Settings.toml. Presentation maps are passed through
// to the UI untouched.
type Settings struct {
	ClientID                  string                 `toml:"client_id"`
	RefreshIntervalMinutes    int                    `toml:"refresh_interval_minutes"`
	EnableDebugLog            bool                   `toml:"enable_debug_log"`
	Theme                     string                 `toml:"theme"`
	Font                      string                 `toml:"font"`
	UseNerdFont               *bool                  `toml:"use_nerd_font"` // deprecated, superseded by font
	EnableNotifications       *bool                  `toml:"enable_notifications"`
	NotificationMinutesBefore int                    `toml:"notification_minutes_before"`
	CustomThemes              map[string]ThemeColors `toml:"custom_themes"`
	CustomFonts               map[string]Glyphs      `toml:"custom_fonts"`
	Symbols                   *Glyphs                `toml:"symbols"`
	CalendarOverrides         map[string]string      `toml:"calendar_overrides"`
}

// Dir returns the per-user application directory, creating it when
// missing.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

// DefaultPath returns the default settings file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}

// DatabasePath returns the event store file path.
func DatabasePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseFileName), nil
}

// Load reads the settings file, writing a commented default file first
// when none exists. A file without client_id loads but returns
// ErrClientIDMissing so main can print a remediation line.
func Load(path string) (Settings, error) {
	if strings.TrimSpace(path) == "" {
		resolved, err := DefaultPath()
		if err != nil {
			return Settings{}, err
		}
		path = resolved
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if werr := writeDefault(path); werr != nil {
			return Settings{}, werr
		}
		return applyDefaults(Settings{}), fmt.Errorf("%s: %w", path, ErrClientIDMissing)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	var s Settings
	if err := toml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	s = applyDefaults(s)
	if strings.TrimSpace(s.ClientID) == "" {
		return s, fmt.Errorf("%s: %w", path, ErrClientIDMissing)
	}
	return s, nil
}

func applyDefaults(s Settings) Settings {
	if s.RefreshIntervalMinutes < 1 {
		s.RefreshIntervalMinutes = defaultRefreshMinutes
	}
	if s.NotificationMinutesBefore <= 0 {
		s.NotificationMinutesBefore = defaultNotificationLead
	}
	if strings.TrimSpace(s.Theme) == "" {
		s.Theme = defaultTheme
	}
	return s
}

// RefreshInterval converts the configured minutes to a duration.
func (s Settings) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshIntervalMinutes) * time.Minute
}

// NotificationsEnabled defaults to true when the key is absent.
func (s Settings) NotificationsEnabled() bool {
	if s.EnableNotifications == nil {
		return true
	}
	return *s.EnableNotifications
}

// NerdFont reports whether nerd-font glyphs should be used when no
// explicit font is configured. The deprecated key defaults to true.
func (s Settings) NerdFont() bool {
	if s.UseNerdFont == nil {
		return true
	}
	return *s.UseNerdFont
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	content := `# 365cal-tui settings.
# client_id is the Azure application (client) ID used for sign-in.
client_id = ""

refresh_interval_minutes = 5
enable_debug_log = false
theme = "catppuccin"

enable_notifications = true
notification_minutes_before = 15
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write default settings: %w", err)
	}
	return nil
}
