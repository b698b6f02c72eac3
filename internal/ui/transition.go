package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// dissolveGlyphs grades a cell from fully covered to clear.
var dissolveGlyphs = []rune{'█', '▇', '▆', '▅', '▄', '▃', '▂', ' '}

// cellHash gives each screen cell a stable pseudo-random threshold in
// [0,1), so the dissolve uncovers cells in a fixed scatter order.
func cellHash(x, y int) float64 {
	return float64(((x*31)^(y*17))%100) / 100
}

// dissolve overlays block glyphs on cells whose threshold the
// transition has not reached yet. ANSI escape sequences pass through
// untouched so colors survive the effect; wide runes are replaced by
// two single-width glyphs to keep columns aligned.
func dissolve(lines []string, progress float64) []string {
	out := make([]string, len(lines))
	for y, line := range lines {
		out[y] = dissolveLine(line, y, progress)
	}
	return out
}

func dissolveLine(line string, y int, progress float64) string {
	var b strings.Builder
	b.Grow(len(line))
	x := 0
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == 0x1b {
			// Copy the escape sequence verbatim.
			b.WriteRune(r)
			for i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
				if runes[i] != '[' && runes[i] >= 0x40 && runes[i] <= 0x7e {
					break
				}
			}
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			b.WriteRune(r)
			continue
		}
		covered := true
		for c := 0; c < w; c++ {
			if cellHash(x+c, y) <= progress {
				covered = false
			}
		}
		if covered {
			for c := 0; c < w; c++ {
				b.WriteRune(coverGlyph(cellHash(x+c, y), progress))
			}
		} else {
			b.WriteRune(r)
		}
		x += w
	}
	return b.String()
}

// coverGlyph picks the block height for a still-covered cell; cells
// close to their reveal threshold render thinner.
func coverGlyph(hash, progress float64) rune {
	idx := int((hash - progress) * 8)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(dissolveGlyphs) {
		idx = len(dissolveGlyphs) - 1
	}
	return dissolveGlyphs[idx]
}
