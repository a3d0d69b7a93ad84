package tui

import (
	"errors"
	"fmt"
	"path/filepath"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kstackpole/platmap-pro/internal/editor"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "m":
			m.showMarkers = !m.showMarkers
			if m.showMarkers {
				m.refreshMarkerTable()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "j", "down":
			if m.showMarkers {
				m.moveCursor(1)
			} else {
				m.offsetY += 1
			}
		case "k", "up":
			if m.showMarkers {
				m.moveCursor(-1)
			} else {
				m.offsetY -= 1
			}
		case "left":
			if !m.showMarkers {
				m.offsetX -= 2
			}
		case "right":
			if !m.showMarkers {
				m.offsetX += 2
			}
		case " ":
			m.toggleSelection()
		case "shift+up":
			m.nudge(0, -moveStep)
		case "shift+down":
			m.nudge(0, moveStep)
		case "shift+left":
			m.nudge(-moveStep, 0)
		case "shift+right":
			m.nudge(moveStep, 0)
		case "x":
			m.swapSelected()
		case "r":
			m.autoArrange()
		case "ctrl+s":
			m.save()
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.session == nil {
		return
	}
	n := len(m.session.Units())
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
	m.tbl.SetCursor(m.cursor)
}

func (m *Model) toggleSelection() {
	if m.session == nil || m.cursor >= len(m.session.Units()) {
		return
	}
	if m.selected[m.cursor] {
		delete(m.selected, m.cursor)
	} else {
		m.selected[m.cursor] = true
	}
	m.status = fmt.Sprintf("selected: %d", len(m.selected))
	if m.showMarkers {
		m.refreshMarkerTable()
	}
}

// nudge moves the marker under the cursor by one step in drawing units.
func (m *Model) nudge(dx, dy float64) {
	if m.session == nil || m.cursor >= len(m.session.Units()) {
		return
	}
	u := m.session.Units()[m.cursor]
	if err := u.MoveBy(dx, dy); err != nil {
		m.status = "move error: " + err.Error()
		return
	}
	m.dirty = true
	x, y := u.Center()
	m.status = fmt.Sprintf("%s %s at %.1f,%.1f", u.Lot.ID, u.Class, x, y)
	if m.showMarkers {
		m.refreshMarkerTable()
	}
}

func (m *Model) swapSelected() {
	if m.session == nil {
		return
	}
	idx := m.selectedIndexes()
	units := make([]*editor.MarkerUnit, 0, len(idx))
	for _, i := range idx {
		units = append(units, m.session.Units()[i])
	}
	if err := m.session.Swap(units); err != nil {
		if errors.Is(err, editor.ErrSelection) {
			m.status = err.Error()
		} else {
			m.status = "swap error: " + err.Error()
		}
		return
	}
	m.dirty = true
	m.status = fmt.Sprintf("swapped %s and %s", units[0].Class, units[1].Class)
	m.selected = map[int]bool{}
	if m.showMarkers {
		m.refreshMarkerTable()
	}
}

func (m *Model) autoArrange() {
	if m.session == nil {
		return
	}
	if err := m.session.AutoArrange(); err != nil {
		m.status = "arrange error: " + err.Error()
		return
	}
	m.dirty = true
	m.status = "markers arranged"
	if m.showMarkers {
		m.refreshMarkerTable()
	}
}

func (m *Model) save() {
	if m.session == nil {
		return
	}
	if err := m.session.Save(m.selPath); err != nil {
		m.status = "save error: " + err.Error()
		return
	}
	m.dirty = false
	m.status = "saved: " + filepath.Base(m.selPath)
}
