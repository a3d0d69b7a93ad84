package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"github.com/kstackpole/platmap-pro/internal/editor"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(name)) != ".svg" {
			continue
		}
		items = append(items, fileItem{title: name, desc: ".svg", path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no drawings in current directory"
	}
}

// loadPath opens a generated drawing for editing.
func (m *Model) loadPath(p string) {
	s, err := editor.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.session = s
	m.selPath = p
	m.bounds = sessionBounds(s)
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.cursor = 0
	m.selected = map[int]bool{}
	m.dirty = false
	m.status = fmt.Sprintf("loaded: %s  lots=%d markers=%d",
		filepath.Base(p), len(s.Lots()), len(s.Units()))
	if m.showMarkers {
		m.refreshMarkerTable()
	}
}

// sessionBounds unions the lot outlines and marker positions into one
// drawing-space box.
func sessionBounds(s *editor.Session) viewBounds {
	b := viewBounds{}
	first := true
	grow := func(x, y float64) {
		if first {
			b = viewBounds{minX: x, minY: y, maxX: x, maxY: y}
			first = false
			return
		}
		if x < b.minX {
			b.minX = x
		}
		if x > b.maxX {
			b.maxX = x
		}
		if y < b.minY {
			b.minY = y
		}
		if y > b.maxY {
			b.maxY = y
		}
	}
	for _, lot := range s.Lots() {
		for _, p := range lot.Ring {
			grow(p[0], p[1])
		}
	}
	for _, u := range s.Units() {
		x, y := u.Center()
		grow(x, y)
	}
	return b
}
