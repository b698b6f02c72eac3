package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cal365/internal/config"
)

// Theme is the five-color palette every view draws with.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Yellow     lipgloss.Color
	Blue       lipgloss.Color
	Mauve      lipgloss.Color
}

var themes = map[string]Theme{
	"catppuccin": catppuccinTheme(),
}

func catppuccinTheme() Theme {
	// Catppuccin Mocha: https://github.com/catppuccin/catppuccin
	return Theme{
		Name:       "catppuccin",
		Background: lipgloss.Color("#1e1e2e"),
		Foreground: lipgloss.Color("#cdd6f4"),
		Yellow:     lipgloss.Color("#f9e2af"),
		Blue:       lipgloss.Color("#89b4fa"),
		Mauve:      lipgloss.Color("#cba6f7"),
	}
}

// GetTheme resolves a theme by name, consulting user-defined palettes
// before the built-ins. Unknown names fall back to catppuccin.
func GetTheme(name string, custom map[string]config.ThemeColors) Theme {
	if colors, ok := custom[name]; ok {
		return themeFromColors(name, colors)
	}
	if t, ok := themes[strings.ToLower(name)]; ok {
		return t
	}
	return catppuccinTheme()
}

func themeFromColors(name string, c config.ThemeColors) Theme {
	t := catppuccinTheme()
	t.Name = name
	if c.Background != "" {
		t.Background = lipgloss.Color(c.Background)
	}
	if c.Foreground != "" {
		t.Foreground = lipgloss.Color(c.Foreground)
	}
	if c.Yellow != "" {
		t.Yellow = lipgloss.Color(c.Yellow)
	}
	if c.Blue != "" {
		t.Blue = lipgloss.Color(c.Blue)
	}
	if c.Mauve != "" {
		t.Mauve = lipgloss.Color(c.Mauve)
	}
	return t
}

// calendarPalette assigns each calendar a stable display color by
// index. Twelve entries, cycling.
var calendarPalette = []lipgloss.Color{
	lipgloss.Color("#cba6f7"),
	lipgloss.Color("#f5c2e7"),
	lipgloss.Color("#eba0ac"),
	lipgloss.Color("#f38ba8"),
	lipgloss.Color("#fab387"),
	lipgloss.Color("#f9e2af"),
	lipgloss.Color("#a6e3a1"),
	lipgloss.Color("#94e2d5"),
	lipgloss.Color("#89dceb"),
	lipgloss.Color("#74c7ec"),
	lipgloss.Color("#89b4fa"),
	lipgloss.Color("#b4befe"),
}

func calendarColor(index int) lipgloss.Color {
	return calendarPalette[index%len(calendarPalette)]
}
