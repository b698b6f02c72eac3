package ui

import "cal365/internal/config"

// Symbols is the glyph set used by the tab bar and footer. Nerd-font
// glyphs look best but plain unicode works on any terminal.
type Symbols struct {
	Calendar   string
	Clock      string
	Help       string
	LeftArrow  string
	RightArrow string
	UpArrow    string
	DownArrow  string
}

func nerdFontSymbols() Symbols {
	return Symbols{
		Calendar:   "",
		Clock:      "",
		Help:       "",
		LeftArrow:  "",
		RightArrow: "",
		UpArrow:    "",
		DownArrow:  "",
	}
}

func unicodeSymbols() Symbols {
	return Symbols{
		Calendar:   "◆",
		Clock:      "◷",
		Help:       "?",
		LeftArrow:  "‹",
		RightArrow: "›",
		UpArrow:    "↑",
		DownArrow:  "↓",
	}
}

// LoadSymbols resolves the glyph set from settings: an explicit font
// name wins (built-in or from custom_fonts), then the deprecated
// use_nerd_font flag, then the nerd-font default. The [symbols] table
// overrides individual glyphs last.
func LoadSymbols(s *config.Settings) Symbols {
	var sym Symbols
	switch {
	case s.Font != "":
		sym = symbolsByName(s.Font, s.CustomFonts)
	case !s.NerdFont():
		sym = unicodeSymbols()
	default:
		sym = nerdFontSymbols()
	}
	if s.Symbols != nil {
		sym.apply(*s.Symbols)
	}
	return sym
}

func symbolsByName(name string, custom map[string]config.Glyphs) Symbols {
	if g, ok := custom[name]; ok {
		sym := nerdFontSymbols()
		sym.apply(g)
		return sym
	}
	switch name {
	case "unicode":
		return unicodeSymbols()
	default:
		return nerdFontSymbols()
	}
}

// apply copies non-empty glyphs over the current set.
func (s *Symbols) apply(g config.Glyphs) {
	if g.Calendar != "" {
		s.Calendar = g.Calendar
	}
	if g.Clock != "" {
		s.Clock = g.Clock
	}
	if g.Help != "" {
		s.Help = g.Help
	}
	if g.LeftArrow != "" {
		s.LeftArrow = g.LeftArrow
	}
	if g.RightArrow != "" {
		s.RightArrow = g.RightArrow
	}
	if g.UpArrow != "" {
		s.UpArrow = g.UpArrow
	}
	if g.DownArrow != "" {
		s.DownArrow = g.DownArrow
	}
}
