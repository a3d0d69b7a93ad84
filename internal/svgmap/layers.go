package svgmap

import (
	"github.com/beevik/etree"

	"github.com/kstackpole/platmap-pro/internal/geom"
)

// Layers bundles the four input collections of one run.
type Layers struct {
	Lots  geom.Layer
	Grass geom.Layer
	Water geom.Layer
	Road  geom.Layer
}

func (l Layers) all() []geom.Layer {
	return []geom.Layer{l.Lots, l.Grass, l.Water, l.Road}
}

// Background layer styling, in back-to-front draw order: road at the bottom,
// water on top of the background stack (still under lots).
var backgroundLayers = []struct {
	id    string
	class string
	fill  string
}{
	{id: "road", class: "road", fill: "#DBCDAE"},
	{id: "grass", class: "grass", fill: "#808057"},
	{id: "lakes", class: "lakes", fill: "#73B0CC"},
}

// appendBackground emits the open_roads container with one styled group per
// non-empty background layer.
func appendBackground(svg *etree.Element, layers Layers, t Transform) {
	openRoads := svg.CreateElement("g")
	openRoads.CreateAttr("id", "open_roads")

	for i, src := range []geom.Layer{layers.Road, layers.Grass, layers.Water} {
		if src.Empty() {
			continue
		}
		style := backgroundLayers[i]
		group := openRoads.CreateElement("g")
		group.CreateAttr("id", style.id)
		group.CreateAttr("class", style.class)
		for _, rec := range src.Records {
			appendGeometry(group, rec.Geometry, t, style.fill)
		}
	}
}
