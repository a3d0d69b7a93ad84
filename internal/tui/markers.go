package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshMarkerTable rebuilds the marker table from the open session. The
// cursor row tracks m.cursor and selected rows get a * tag.
func (m *Model) refreshMarkerTable() {
	if m.session == nil || len(m.session.Units()) == 0 {
		m.showMarkers = false
		m.status = "no markers in current drawing"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "sel", Width: 4},
		{Title: "lot", Width: 14},
		{Title: "class", Width: 12},
		{Title: "label", Width: 8},
		{Title: "x", Width: 9},
		{Title: "y", Width: 9},
	}
	units := m.session.Units()
	rows := make([]table.Row, 0, len(units))
	for i, u := range units {
		sel := ""
		if m.selected[i] {
			sel = "*"
		}
		x, y := u.Center()
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			sel,
			u.Lot.ID,
			u.Class,
			u.Label(),
			fmt.Sprintf("%.1f", x),
			fmt.Sprintf("%.1f", y),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	if m.cursor < len(rows) {
		m.tbl.SetCursor(m.cursor)
	}
}

// selectedIndexes returns the selected marker indexes in order.
func (m *Model) selectedIndexes() []int {
	var idx []int
	for i := range m.session.Units() {
		if m.selected[i] {
			idx = append(idx, i)
		}
	}
	return idx
}
