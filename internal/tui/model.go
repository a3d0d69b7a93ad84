package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kstackpole/platmap-pro/internal/editor"
)

// moveStep is how far one nudge moves a marker, in drawing units.
const moveStep = 1.0

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Open drawing
	session *editor.Session
	bounds  viewBounds
	dirty   bool

	// last rendered map size
	mapW int
	mapH int

	// marker table
	showMarkers bool
	tbl         table.Model
	cursor      int
	selected    map[int]bool
}

// viewBounds is the drawing-space box the viewport maps onto the screen.
// Y grows downward, matching the drawing coordinates.
type viewBounds struct {
	minX, minY, maxX, maxY float64
}

func (b viewBounds) valid() bool {
	return b.maxX > b.minX && b.maxY > b.minY
}

func New() Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "platmap editor ready",
		selected:    map[int]bool{},
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Drawings"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// marker table setup (rows filled per drawing)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath opens a drawing at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
