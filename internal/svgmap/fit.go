package svgmap

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/kstackpole/platmap-pro/internal/geom"
)

// ErrEmptyInput means no usable geometry was found across all layers. The
// pipeline aborts before writing anything.
var ErrEmptyInput = errors.New("no valid geometries found in the input files")

// Canvas is the fixed output coordinate space in pixels.
type Canvas struct {
	Width  float64
	Height float64
}

// DefaultCanvas matches the print template the maps are laid out for.
var DefaultCanvas = Canvas{Width: 1440, Height: 840}

// Transform maps EPSG:3857 coordinates into canvas pixels: uniform scale,
// centering offsets, Y-axis flip. Computed once per run and shared read-only
// by every rendering step.
type Transform struct {
	MinX  float64
	MinY  float64
	MaxY  float64
	Scale float64
	XPad  float64
	YPad  float64

	Canvas Canvas
}

// Fit computes the contain-fit transform for the union bounding box of all
// non-empty layers. The smaller of the width- and height-driven scales wins,
// so geometry is never cropped; padding centers each axis and may go
// negative when the aspect ratios are incompatible.
func Fit(canvas Canvas, layers ...geom.Layer) (Transform, error) {
	var bound orb.Bound
	found := false
	for _, l := range layers {
		for _, r := range l.Records {
			b := r.Geometry.Bound()
			if !found {
				bound = b
				found = true
			} else {
				bound = bound.Union(b)
			}
		}
	}
	if !found {
		return Transform{}, ErrEmptyInput
	}

	geomW := bound.Max[0] - bound.Min[0]
	geomH := bound.Max[1] - bound.Min[1]
	scale := min(canvas.Width/geomW, canvas.Height/geomH)

	return Transform{
		MinX:   bound.Min[0],
		MinY:   bound.Min[1],
		MaxY:   bound.Max[1],
		Scale:  scale,
		XPad:   (canvas.Width - geomW*scale) / 2,
		YPad:   (canvas.Height - geomH*scale) / 2,
		Canvas: canvas,
	}, nil
}

// Project maps a planar coordinate to canvas pixels. The Y axis flips
// because geographic Y grows northward while canvas Y grows downward.
func (t Transform) Project(p orb.Point) (float64, float64) {
	px := (p[0]-t.MinX)*t.Scale + t.XPad
	py := (t.MaxY-p[1])*t.Scale + t.YPad
	return px, py
}

// OnCanvas reports whether a projected point lies within the canvas bounds.
func (t Transform) OnCanvas(px, py float64) bool {
	return px >= 0 && px <= t.Canvas.Width && py >= 0 && py <= t.Canvas.Height
}
