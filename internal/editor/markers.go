package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Marker classes as they appear in generated drawings.
const (
	ClassConstStatus = "constStatus"
	ClassLotPremium  = "lotPremium"
	ClassSoldStatus  = "soldStatus"
)

// MarkerUnit is one status marker treated as a rigid unit: the dot circle
// plus whatever label text, star polygon or icon path the class carries.
// Moving the unit applies one delta to every linked element so the pieces
// never drift apart.
type MarkerUnit struct {
	Lot   *LotShape
	Class string

	group  *etree.Element
	circle *etree.Element
	texts  []*etree.Element
	star   *etree.Element
	icon   *etree.Element

	cx, cy float64
}

// newMarkerUnit indexes the editable elements under one marker group.
// Units without a parseable circle position are not editable.
func newMarkerUnit(lot *LotShape, class string, group *etree.Element) (*MarkerUnit, bool) {
	u := &MarkerUnit{Lot: lot, Class: class, group: group}
	u.circle = group.SelectElement("circle")
	if u.circle == nil {
		return nil, false
	}
	cx, errX := strconv.ParseFloat(u.circle.SelectAttrValue("cx", ""), 64)
	cy, errY := strconv.ParseFloat(u.circle.SelectAttrValue("cy", ""), 64)
	if errX != nil || errY != nil {
		return nil, false
	}
	u.cx, u.cy = cx, cy
	u.texts = group.FindElements(".//text")
	u.star = group.SelectElement("polygon")
	u.icon = group.FindElement(".//path")
	return u, true
}

// Center returns the marker dot position.
func (u *MarkerUnit) Center() (float64, float64) { return u.cx, u.cy }

// Label returns the first label text of the unit, or "" for icon-only
// markers.
func (u *MarkerUnit) Label() string {
	if len(u.texts) == 0 {
		return ""
	}
	return u.texts[0].Text()
}

// MoveTo places the marker dot at an absolute position, dragging the
// linked elements along.
func (u *MarkerUnit) MoveTo(x, y float64) error {
	return u.MoveBy(x-u.cx, y-u.cy)
}

// MoveBy translates the whole unit by one delta. The circle, each text
// transform, the star points and the icon path all shift together.
func (u *MarkerUnit) MoveBy(dx, dy float64) error {
	u.cx += dx
	u.cy += dy
	u.circle.CreateAttr("cx", num(u.cx))
	u.circle.CreateAttr("cy", num(u.cy))

	for _, text := range u.texts {
		tx, ty, err := parseMatrix(text.SelectAttrValue("transform", ""))
		if err != nil {
			return fmt.Errorf("%s marker text: %w", u.Class, err)
		}
		text.CreateAttr("transform", formatMatrix(tx+dx, ty+dy))
	}

	if u.star != nil {
		pts, err := parsePoints(u.star.SelectAttrValue("points", ""))
		if err != nil {
			return fmt.Errorf("%s marker star: %w", u.Class, err)
		}
		for i := range pts {
			pts[i][0] += dx
			pts[i][1] += dy
		}
		u.star.CreateAttr("points", formatPoints(pts))
	}

	if u.icon != nil {
		segs, err := ParsePath(u.icon.SelectAttrValue("d", ""))
		if err != nil {
			return fmt.Errorf("%s marker icon: %w", u.Class, err)
		}
		u.icon.CreateAttr("d", FormatPath(Translate(segs, dx, dy)))
	}
	return nil
}

// parseMatrix extracts the translation column of a
// "matrix(1 0 0 1 x y)" transform.
func parseMatrix(s string) (float64, float64, error) {
	inner := strings.TrimSpace(s)
	if !strings.HasPrefix(inner, "matrix(") || !strings.HasSuffix(inner, ")") {
		return 0, 0, fmt.Errorf("not a matrix transform: %q", s)
	}
	inner = strings.TrimSuffix(strings.TrimPrefix(inner, "matrix("), ")")
	fields := strings.FieldsFunc(inner, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 6 {
		return 0, 0, fmt.Errorf("matrix transform needs 6 values, got %d: %q", len(fields), s)
	}
	x, errX := strconv.ParseFloat(fields[4], 64)
	y, errY := strconv.ParseFloat(fields[5], 64)
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("bad matrix translation in %q", s)
	}
	return x, y, nil
}

func formatMatrix(x, y float64) string {
	return "matrix(1 0 0 1 " + num(x) + " " + num(y) + ")"
}

func parsePoints(s string) ([][2]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n' || r == '\t'
	})
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("odd coordinate count in points %q", s)
	}
	pts := make([][2]float64, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("bad coordinate pair %q,%q", fields[i], fields[i+1])
		}
		pts = append(pts, [2]float64{x, y})
	}
	return pts, nil
}

func formatPoints(pts [][2]float64) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(p[0]))
		b.WriteByte(',')
		b.WriteString(num(p[1]))
	}
	return b.String()
}
