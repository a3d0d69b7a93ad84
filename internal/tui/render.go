package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderCanvas(w, h int) string {
	// Plain background (no grid)
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = strings.Repeat(" ", w)
	}
	if m.session == nil {
		msg := "open a drawing: Tab, then Enter"
		y := h / 2
		x := max(0, (w-len(msg))/2)
		if x+len(msg) <= w {
			lines[y] = strings.Repeat(" ", x) + msg + strings.Repeat(" ", w-x-len(msg))
		}
		return strings.Join(lines, "\n")
	}

	// High-resolution braille buffer for crisp outlines
	br := newBrailleBuf(w, h)

	// Draw lot outlines (fill then edges)
	for _, lot := range m.session.Lots() {
		var mic [][2]int
		for _, p := range lot.Ring {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			mic = append(mic, [2]int{mx, my})
		}
		if len(mic) < 3 {
			continue
		}
		// fill using even-odd rule per scanline on the outline (microgrid)
		hMic := h * 4
		for yMic := 0; yMic < hMic; yMic++ {
			var xs []int
			for i := 0; i < len(mic); i++ {
				a := mic[i]
				b := mic[(i+1)%len(mic)]
				if a[1] == b[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], b[1]
				x0, x1 := a[0], b[0]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
				}
			}
			if len(xs) >= 2 {
				sort.Ints(xs)
				for i := 0; i+1 < len(xs); i += 2 {
					xstart, xend := xs[i], xs[i+1]
					if xstart > xend {
						xstart, xend = xend, xstart
					}
					for xMic := max(0, xstart); xMic <= xend; xMic++ {
						br.setPixel(xMic, yMic)
					}
				}
			}
		}
		// draw edges (high-res)
		for i := 0; i < len(mic); i++ {
			a := mic[i]
			b := mic[(i+1)%len(mic)]
			br.drawLineMicro(a[0], a[1], b[0], b[1])
		}
	}

	// Draw marker dots
	for _, u := range m.session.Units() {
		x, y := u.Center()
		mx, my, ok := m.screenXYMicro(x, y, w, h)
		if !ok {
			continue
		}
		br.setPixel(mx, my)
	}

	// Composite braille overlay onto base lines
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		if len(braLines[y]) == 0 {
			continue
		}
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	// Cursor highlight: draw an orange circle at the cursor marker's cell
	if units := m.session.Units(); m.cursor < len(units) {
		x, y := units[m.cursor].Center()
		if mx, my, ok := m.screenXYMicro(x, y, w, h); ok {
			cx := mx / 2
			cy := my / 4
			if cy >= 0 && cy < len(lines) {
				r := []rune(lines[cy])
				if cx >= 0 && cx < len(r) {
					circle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("◯")
					lines[cy] = string(r[:cx]) + circle + string(r[cx+1:])
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps drawing coordinates into a 2x4 microgrid per cell for
// braille rendering. Drawing Y grows downward, so no vertical flip.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !m.bounds.valid() {
		return 0, 0, false
	}
	nx := (x - m.bounds.minX) / (m.bounds.maxX - m.bounds.minX)
	ny := (y - m.bounds.minY) / (m.bounds.maxY - m.bounds.minY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int(zy*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}
