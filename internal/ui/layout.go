package ui

// rect is a hit-testable screen region in cell coordinates.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) empty() bool { return r.w <= 0 || r.h <= 0 }

// centeredRect returns a region covering the given percentages of the
// screen, centered. Used for the detail, help, and legend popups.
func centeredRect(percentX, percentY, width, height int) rect {
	w := width * percentX / 100
	h := height * percentY / 100
	return rect{
		x: (width - w) / 2,
		y: (height - h) / 2,
		w: w,
		h: h,
	}
}

// splitColumns divides r into n equal-ratio columns. Renderer and
// mouse dispatch both use this, so cell boundaries always agree.
func splitColumns(r rect, n int) []rect {
	cols := make([]rect, n)
	for i := 0; i < n; i++ {
		left := r.x + i*r.w/n
		right := r.x + (i+1)*r.w/n
		cols[i] = rect{x: left, y: r.y, w: right - left, h: r.h}
	}
	return cols
}

// splitRows divides r into n equal-ratio rows.
func splitRows(r rect, n int) []rect {
	rows := make([]rect, n)
	for i := 0; i < n; i++ {
		top := r.y + i*r.h/n
		bottom := r.y + (i+1)*r.h/n
		rows[i] = rect{x: r.x, y: top, w: r.w, h: bottom - top}
	}
	return rows
}
