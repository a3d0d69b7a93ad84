package svgmap

import (
	"github.com/beevik/etree"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/kstackpole/platmap-pro/internal/geom"
)

// Status marker classes, offsets and radii relative to the lot anchor point.
const (
	classConstStatus = "constStatus"
	classLotPremium  = "lotPremium"
	classSoldStatus  = "soldStatus"

	markerOffset = 5.0
	dotRadius    = "4"
	starRadius   = "3.8"

	fallbackConstLabel   = "300"
	fallbackPremiumLabel = "10k"
)

// appendLots runs the lot annotation pass: one iteration over the lot
// records in input order, grouping by community on first sight, resolving
// plan colors, emitting paths, markers and labels, then the unused bucket
// and the compass rose.
func appendLots(svg *etree.Element, lots geom.Layer, t Transform, colorize, markers bool) {
	lotsGroup := svg.CreateElement("g")
	lotsGroup.CreateAttr("id", "lots")
	textGroup := svg.CreateElement("g")
	textGroup.CreateAttr("id", "text")

	communityLots := map[string]*etree.Element{}
	communityText := map[string]*etree.Element{}
	colors := newPlanColors()
	var unused []orb.Geometry

	for _, rec := range lots.Records {
		a := rec.Attrs
		if !isDigits(a.LotJob) {
			unused = append(unused, rec.Geometry)
			continue
		}

		if _, ok := communityLots[a.Community]; !ok {
			cg := lotsGroup.CreateElement("g")
			cg.CreateAttr("id", a.Community+"-lots")
			communityLots[a.Community] = cg

			tg := textGroup.CreateElement("g")
			tg.CreateAttr("id", a.Community+"-text")
			communityText[a.Community] = tg
		}

		fill := defaultFill
		if colorize {
			fill = colors.fill(a.Plan)
		}

		lotGroup := communityLots[a.Community].CreateElement("g")
		lotID := a.Community + "-" + a.LotJob
		lotGroup.CreateAttr("id", lotID)
		lotGroup.CreateAttr("class", "notavailable")
		appendGeometry(lotGroup, rec.Geometry, t, fill)

		centroid, _ := planar.CentroidArea(rec.Geometry)
		cx, cy := t.Project(centroid)

		if markers {
			appendStatusMarkers(lotGroup, cx, cy, a)
		}

		// Labels for anchors outside the canvas are dropped; the lot path
		// and markers above are still emitted.
		if t.OnCanvas(cx, cy) {
			appendLabel(communityText[a.Community], cx, cy, lotID, a.LegalLot, colorize)
		}
	}

	if len(unused) > 0 {
		unusedGroup := lotsGroup.CreateElement("g")
		unusedGroup.CreateAttr("id", "unused")
		unusedGroup.CreateAttr("class", "notavailable")
		for _, g := range unused {
			appendGeometry(unusedGroup, g, t, unusedFill)
		}
	}

	// Decorative compass rose goes after the last community text sub-group.
	textGroup.AddChild(compassElement())
}

// isDigits is the lot validity gate: the lot-job attribute must be a
// non-empty string of decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// appendStatusMarkers bakes the three status indicators at fixed offsets
// from the anchor: construction-status dot right, premium star above,
// sold-status dot with house glyph left.
func appendStatusMarkers(lotGroup *etree.Element, cx, cy float64, a geom.Attributes) {
	constLabel := a.ConstStatus
	if constLabel == "" {
		constLabel = fallbackConstLabel
	}
	premiumLabel := a.LotPremium
	if premiumLabel == "" {
		premiumLabel = fallbackPremiumLabel
	}

	data := lotGroup.CreateElement("g")

	constGroup := data.CreateElement("g")
	constGroup.CreateAttr("class", classConstStatus)
	constCircle := constGroup.CreateElement("circle")
	constCircle.CreateAttr("fill", "#444445")
	constCircle.CreateAttr("cx", ftoa(cx+markerOffset))
	constCircle.CreateAttr("cy", ftoa(cy))
	constCircle.CreateAttr("r", dotRadius)
	constText := constGroup.CreateElement("text")
	constText.CreateAttr("transform", matrixTransform(cx+2.6, cy+1.2))
	constText.CreateAttr("fill", "#FFFFFF")
	constText.CreateAttr("font-family", "'ArialMT'")
	constText.CreateAttr("font-size", "4px")
	constText.SetText(constLabel)

	premiumGroup := data.CreateElement("g")
	premiumGroup.CreateAttr("class", classLotPremium)
	premiumCircle := premiumGroup.CreateElement("circle")
	premiumCircle.CreateAttr("fill", "#FFFFFF")
	premiumCircle.CreateAttr("cx", ftoa(cx))
	premiumCircle.CreateAttr("cy", ftoa(cy-markerOffset))
	premiumCircle.CreateAttr("r", starRadius)
	star := premiumGroup.CreateElement("polygon")
	star.CreateAttr("points", starPoints(cx, cy))
	premiumText := premiumGroup.CreateElement("text")
	premiumText.CreateAttr("transform", matrixTransform(cx-1.9, cy-3.8))
	premiumText.CreateAttr("fill", "#FFFFFF")
	premiumText.CreateAttr("font-family", "'ArialMT'")
	premiumText.CreateAttr("font-size", "2.3px")
	premiumText.SetText(premiumLabel)

	soldGroup := data.CreateElement("g")
	soldGroup.CreateAttr("class", classSoldStatus)
	soldCircle := soldGroup.CreateElement("circle")
	soldCircle.CreateAttr("fill", "#FFFFFF")
	soldCircle.CreateAttr("cx", ftoa(cx-markerOffset))
	soldCircle.CreateAttr("cy", ftoa(cy))
	soldCircle.CreateAttr("r", dotRadius)
	housePath := soldGroup.CreateElement("g").CreateElement("path")
	housePath.CreateAttr("d", houseGlyph(cx, cy))
	housePath.CreateAttr("fill", "#000000")
}

func appendLabel(communityText *etree.Element, cx, cy float64, lotID, legalLot string, colorize bool) {
	label := communityText.CreateElement("text")
	if colorize {
		label.CreateAttr("transform", matrixTransform(cx, cy+4))
		label.CreateAttr("font-size", "12px")
		label.CreateAttr("text-anchor", "middle")
		label.CreateAttr("fill", "#000000")
		label.CreateAttr("font-family", "Futura PT Book, sans-serif")
	} else {
		label.CreateAttr("transform", matrixTransform(cx-6, cy+4))
		label.CreateAttr("class", "commMapTxt")
	}
	label.CreateAttr("data-lot-id", lotID)
	if legalLot == "" {
		legalLot = "N/A"
	}
	label.SetText(legalLot)
}

func matrixTransform(x, y float64) string {
	return "matrix(1 0 0 1 " + ftoa(x) + " " + ftoa(y) + ")"
}

// starPoints builds the 10-vertex premium star centered above the anchor.
func starPoints(cx, cy float64) string {
	pts := [][2]float64{
		{cx + 1.2, cy - 6.7}, {cx + 4, cy - 6.3}, {cx + 2, cy - 4.3},
		{cx + 2.5, cy - 1.6}, {cx, cy - 2.9}, {cx - 2.4, cy - 1.6},
		{cx - 2, cy - 4.3}, {cx - 3.9, cy - 6.2}, {cx - 1.2, cy - 6.6},
		{cx, cy - 9.1},
	}
	out := ""
	for i, p := range pts {
		if i > 0 {
			out += " "
		}
		out += ftoa(p[0]) + "," + ftoa(p[1])
	}
	return out
}

// houseGlyph is the small house icon embedded in the sold-status dot,
// positioned relative to the anchor.
func houseGlyph(cx, cy float64) string {
	return "M" + ftoa(cx-7.5) + "," + ftoa(cy) +
		"l2.5-2.2l2.5,2.2c0,0,0.1,0,0.1,0c0,0,0.1,0,0.1-0.1c0.1-0.1,0.1-0.2,0-0.2l-2.6-2.3c-0.1-0.1-0.2-0.1-0.2,0 " +
		"l-0.9,0.8v-0.3c0-0.2-0.2-0.3-0.3-0.3c-0.2,0-0.3,0.2-0.3,0.3v0.9l-1,0.9c-0.1,0.1-0.1,0.2,0,0.2 " +
		"C" + ftoa(cx-7.7) + "," + ftoa(cy+0.1) + "," + ftoa(cx-7.6) + "," + ftoa(cy+0.1) + "," + ftoa(cx-7.5) + "," + ftoa(cy) +
		"z M" + ftoa(cx-5.7) + "," + ftoa(cy+0.8) + "h1.4v1.7h1c0.2,0,0.3-0.2,0.3-0.3V" + ftoa(cy+0.5) + " " +
		"c0-0.1,0-0.2-0.1-0.3l-1.7-1.4c-0.1-0.1-0.1-0.1-0.2-0.1s-0.2,0-0.2,0.1l-1.7,1.4c-0.1,0.1-0.1,0.2-0.1,0.3v1.7 " +
		"c0,0.2,0.2,0.3,0.3,0.3h1V" + ftoa(cy+0.8) + "z"
}
