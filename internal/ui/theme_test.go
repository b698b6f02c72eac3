package ui

import (
	"testing"

	"cal365/internal/config"
)

func TestGetThemeFallsBack(t *testing.T) {
	def := GetTheme("", nil)
	if def.Name != "catppuccin" {
		t.Fatalf("default theme = %q, want catppuccin", def.Name)
	}
	if got := GetTheme("no-such-theme", nil); got != def {
		t.Fatalf("unknown theme should fall back to catppuccin")
	}
	if got := GetTheme("Catppuccin", nil); got != def {
		t.Fatalf("theme lookup should be case insensitive")
	}
}

func TestGetThemeCustomWins(t *testing.T) {
	custom := map[string]config.ThemeColors{
		"dusk": {Background: "#000000", Yellow: "#ffff00"},
	}

	got := GetTheme("dusk", custom)
	if got.Name != "dusk" {
		t.Fatalf("name = %q, want dusk", got.Name)
	}
	if string(got.Background) != "#000000" || string(got.Yellow) != "#ffff00" {
		t.Fatalf("overridden colors not applied: %+v", got)
	}
	// Unset fields keep the catppuccin defaults.
	if got.Blue != catppuccinTheme().Blue {
		t.Fatalf("blue = %q, want catppuccin default", got.Blue)
	}
}

func TestCalendarColorCycles(t *testing.T) {
	n := len(calendarPalette)
	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		seen[string(calendarColor(i))] = true
	}
	if len(seen) != n {
		t.Fatalf("palette has %d distinct colors, want %d", len(seen), n)
	}
	if calendarColor(n) != calendarColor(0) || calendarColor(n+3) != calendarColor(3) {
		t.Fatalf("palette does not cycle at %d", n)
	}
}
