package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
)

// ErrUnsupportedFormat is returned for input files whose extension is not a
// known geometry format.
var ErrUnsupportedFormat = errors.New("unsupported geometry format")

// LoadLayer reads every path into one layer, concatenating features in file
// order. Supported formats: .geojson/.json and .shp. Geometries are
// reprojected to EPSG:3857; a file without a declared CRS is assumed to be
// EPSG:4326. Non-area geometries are skipped.
func LoadLayer(role Role, paths []string) (Layer, error) {
	layer := Layer{Role: role}
	for _, p := range paths {
		var (
			recs []Record
			err  error
		)
		switch strings.ToLower(filepath.Ext(p)) {
		case ".geojson", ".json":
			recs, err = loadGeoJSON(p)
		case ".shp":
			recs, err = loadShapefile(p)
		default:
			err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(p))
		}
		if err != nil {
			return Layer{}, fmt.Errorf("read %s: %w", p, err)
		}
		layer.Records = append(layer.Records, recs...)
	}
	return layer, nil
}

func loadGeoJSON(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	needsReproject := !declaresWebMercator(data)
	var recs []Record
	for _, f := range fc.Features {
		g := f.Geometry
		switch g.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			continue
		}
		if needsReproject {
			g = project.Geometry(orb.Clone(g), project.WGS84.ToMercator)
		}
		recs = append(recs, Record{
			Geometry: g,
			Attrs:    attrsFromProperties(f.Properties),
		})
	}
	return recs, nil
}

// declaresWebMercator checks the (legacy) top-level "crs" member for an
// EPSG:3857 declaration. GeoJSON without one is treated as EPSG:4326.
func declaresWebMercator(data []byte) bool {
	var doc struct {
		CRS struct {
			Properties struct {
				Name string `json:"name"`
			} `json:"properties"`
		} `json:"crs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	name := doc.CRS.Properties.Name
	return strings.Contains(name, "3857") || strings.Contains(name, "900913")
}

func loadShapefile(path string) ([]Record, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fields := r.Fields()
	var recs []Record
	for r.Next() {
		row, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		g := shpToGeometry(poly)
		if g == nil {
			continue
		}
		attrs := Attributes{}
		for i, f := range fields {
			setAttr(&attrs, f.String(), r.ReadAttribute(row, i))
		}
		g = project.Geometry(g, project.WGS84.ToMercator)
		recs = append(recs, Record{Geometry: g, Attrs: attrs})
	}
	return recs, nil
}

// shpToGeometry regroups shapefile parts into polygons. Shapefile exterior
// rings wind clockwise; counter-clockwise parts are holes of the polygon
// opened by the preceding exterior.
func shpToGeometry(p *shp.Polygon) orb.Geometry {
	var polys orb.MultiPolygon
	for i, start := range p.Parts {
		end := len(p.Points)
		if i+1 < len(p.Parts) {
			end = int(p.Parts[i+1])
		}
		ring := make(orb.Ring, 0, end-int(start))
		for _, pt := range p.Points[start:end] {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
		if len(ring) < 4 {
			continue
		}
		if signedArea(ring) <= 0 || len(polys) == 0 {
			polys = append(polys, orb.Polygon{ring})
		} else {
			polys[len(polys)-1] = append(polys[len(polys)-1], ring)
		}
	}
	switch len(polys) {
	case 0:
		return nil
	case 1:
		return polys[0]
	default:
		return polys
	}
}

func signedArea(r orb.Ring) float64 {
	total := 0.0
	for i := 0; i+1 < len(r); i++ {
		total += r[i][0]*r[i+1][1] - r[i+1][0]*r[i][1]
	}
	if math.Abs(total) < 1e-12 {
		return 0
	}
	return total / 2
}

// attrsFromProperties pulls the known columns out of a property bag. Column
// names may carry the spreadsheet-join prefix "excel_" and vary in spacing.
func attrsFromProperties(props geojson.Properties) Attributes {
	attrs := Attributes{}
	for k, v := range props {
		setAttr(&attrs, k, propString(v))
	}
	return attrs
}

func setAttr(attrs *Attributes, key, value string) {
	value = strings.TrimSpace(value)
	switch normalizeKey(key) {
	case "community":
		attrs.Community = value
	case "lotjob":
		attrs.LotJob = value
	case "legallot":
		attrs.LegalLot = value
	case "plan":
		attrs.Plan = value
	case "lotpremium":
		attrs.LotPremium = value
	case "soldstatus":
		attrs.SoldStatus = value
	case "conststatus":
		attrs.ConstStatus = value
	}
}

func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.TrimPrefix(k, "excel_")
	k = strings.ReplaceAll(k, " ", "")
	k = strings.ReplaceAll(k, "_", "")
	return k
}

func propString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
