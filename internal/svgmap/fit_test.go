package svgmap

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kstackpole/platmap-pro/internal/geom"
)

func rectLayer(role geom.Role, minX, minY, maxX, maxY float64, attrs geom.Attributes) geom.Layer {
	poly := orb.Polygon{orb.Ring{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}}
	return geom.Layer{Role: role, Records: []geom.Record{{Geometry: poly, Attrs: attrs}}}
}

func TestFitContain(t *testing.T) {
	canvas := Canvas{Width: 200, Height: 200}
	layer := rectLayer(geom.RoleLots, 0, 0, 100, 50, geom.Attributes{})

	tr, err := Fit(canvas, layer)
	require.NoError(t, err)

	// width-driven scale wins: 200/100 < 200/50
	assert.Equal(t, 2.0, tr.Scale)
	assert.Equal(t, 0.0, tr.XPad)
	assert.Equal(t, 50.0, tr.YPad)
}

func TestFitUnionsLayers(t *testing.T) {
	canvas := Canvas{Width: 100, Height: 100}
	a := rectLayer(geom.RoleLots, 0, 0, 10, 10, geom.Attributes{})
	b := rectLayer(geom.RoleRoad, 10, 0, 50, 10, geom.Attributes{})

	tr, err := Fit(canvas, a, b)
	require.NoError(t, err)

	assert.Equal(t, 0.0, tr.MinX)
	assert.Equal(t, 2.0, tr.Scale) // 100/50
}

func TestFitEmptyInput(t *testing.T) {
	_, err := Fit(DefaultCanvas, geom.Layer{Role: geom.RoleLots})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestProjectFlipsY(t *testing.T) {
	canvas := Canvas{Width: 200, Height: 200}
	tr, err := Fit(canvas, rectLayer(geom.RoleLots, 0, 0, 100, 50, geom.Attributes{}))
	require.NoError(t, err)

	// geographic top-left lands at the padded canvas top-left
	px, py := tr.Project(orb.Point{0, 50})
	assert.Equal(t, 0.0, px)
	assert.Equal(t, 50.0, py)

	// geographic bottom-left lands below it on screen
	px, py = tr.Project(orb.Point{0, 0})
	assert.Equal(t, 0.0, px)
	assert.Equal(t, 150.0, py)
}

func TestPaddingCentersShortAxis(t *testing.T) {
	canvas := Canvas{Width: 100, Height: 40}
	tr, err := Fit(canvas, rectLayer(geom.RoleLots, 0, 0, 100, 50, geom.Attributes{}))
	require.NoError(t, err)

	// height-driven scale: 40/50, the leftover width splits evenly
	assert.Equal(t, 0.8, tr.Scale)
	assert.Equal(t, 10.0, tr.XPad)
	assert.Equal(t, 0.0, tr.YPad)
}

func TestOnCanvasBoundsInclusive(t *testing.T) {
	tr := Transform{Canvas: Canvas{Width: 100, Height: 50}}
	assert.True(t, tr.OnCanvas(0, 0))
	assert.True(t, tr.OnCanvas(100, 50))
	assert.False(t, tr.OnCanvas(-0.1, 10))
	assert.False(t, tr.OnCanvas(10, 50.1))
}
