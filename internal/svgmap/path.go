package svgmap

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// simplifyTolerance is in map units (EPSG:3857 meters).
const simplifyTolerance = 0.2

const strokeWidth = "1"

// appendGeometry simplifies a polygonal geometry and emits one closed path
// per polygon into parent. Multi-polygons are decomposed into independent
// polygons first. Interior rings are not emitted. A nil or empty geometry is
// a no-op.
func appendGeometry(parent *etree.Element, g orb.Geometry, t Transform, fill string) {
	if g == nil {
		return
	}
	ds := simplify.DouglasPeucker(simplifyTolerance)
	switch geo := g.(type) {
	case orb.Polygon:
		appendPolygon(parent, ds.Polygon(geo.Clone()), t, fill)
	case orb.MultiPolygon:
		for _, poly := range geo {
			appendPolygon(parent, ds.Polygon(poly.Clone()), t, fill)
		}
	}
}

func appendPolygon(parent *etree.Element, poly orb.Polygon, t Transform, fill string) {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return
	}
	exterior := poly[0]
	coords := make([]string, 0, len(exterior))
	for _, p := range exterior {
		px, py := t.Project(p)
		coords = append(coords, ftoa(px)+","+ftoa(py))
	}
	path := parent.CreateElement("path")
	path.CreateAttr("d", "M "+strings.Join(coords, " ")+" Z")
	path.CreateAttr("fill", fill)
	path.CreateAttr("stroke", "black")
	path.CreateAttr("stroke-width", strokeWidth)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
