package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const drawingFixture = `<?xml version="1.0" encoding="UTF-8"?>
<svg version="1.0" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 300" class="tsPlotmap">
  <g id="lots">
    <g id="A-lots">
      <g id="A-12" class="notavailable">
        <path d="M 0,0 100,0 100,100 0,100 Z" fill="#DBCDAE" stroke="black" stroke-width="1"/>
        <g>
          <g class="constStatus">
            <circle fill="#444445" cx="55" cy="50" r="4"/>
            <text transform="matrix(1 0 0 1 52.5 51.25)" fill="#FFFFFF" font-family="'ArialMT'" font-size="4px">350</text>
          </g>
          <g class="soldStatus">
            <circle fill="#FFFFFF" cx="45" cy="50" r="4"/>
            <g>
              <path d="M42.5,50l2.5-2l2.5,2z" fill="#000000"/>
            </g>
          </g>
        </g>
      </g>
    </g>
  </g>
</svg>
`

func fixturePath(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "map_print.svg")
	require.NoError(t, os.WriteFile(p, []byte(drawingFixture), 0o644))
	return p
}

func TestLoadPathIndexesDrawing(t *testing.T) {
	m := New()
	m.loadPath(fixturePath(t))

	require.NotNil(t, m.session)
	assert.Len(t, m.session.Lots(), 1)
	assert.Len(t, m.session.Units(), 2)
	assert.True(t, m.bounds.valid())
	assert.False(t, m.dirty)
	assert.Contains(t, m.status, "lots=1")
}

func TestLoadPathBadFile(t *testing.T) {
	m := New()
	m.loadPath(filepath.Join(t.TempDir(), "missing.svg"))
	assert.Nil(t, m.session)
	assert.Contains(t, m.status, "load error")
}

func TestNudgeMovesCursorMarker(t *testing.T) {
	m := New()
	m.loadPath(fixturePath(t))

	m.nudge(moveStep, 0)
	x, _ := m.session.Units()[0].Center()
	assert.Equal(t, 55.0+moveStep, x)
	assert.True(t, m.dirty)
}

func TestSwapNeedsTwoSelected(t *testing.T) {
	m := New()
	m.loadPath(fixturePath(t))

	m.selected = map[int]bool{0: true}
	m.swapSelected()
	assert.Equal(t, "select exactly two markers to swap", m.status)

	m.selected = map[int]bool{0: true, 1: true}
	m.swapSelected()
	assert.False(t, m.selected[0])
	x, _ := m.session.Units()[0].Center()
	assert.Equal(t, 45.0, x)
}

func TestSessionBounds(t *testing.T) {
	m := New()
	m.loadPath(fixturePath(t))

	b := m.bounds
	assert.Equal(t, 0.0, b.minX)
	assert.Equal(t, 100.0, b.maxX)
	assert.Equal(t, 0.0, b.minY)
	assert.Equal(t, 100.0, b.maxY)
}
