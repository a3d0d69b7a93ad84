package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const lotsGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "excel_Community": "Aspen",
        "Lot Job": "12",
        "Legal Lot": "Lot 12",
        "PLAN": "P1",
        "lot_premium": "15k",
        "Const Status": "350"
      },
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-105.0, 39.0], [-104.9, 39.0], [-104.9, 39.1], [-105.0, 39.1], [-105.0, 39.0]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"Community": "Aspen", "Lot Job": "7"},
      "geometry": {
        "type": "Point",
        "coordinates": [-105.0, 39.0]
      }
    }
  ]
}`

func TestLoadLayerGeoJSON(t *testing.T) {
	p := writeFile(t, "lots.geojson", lotsGeoJSON)

	layer, err := LoadLayer(RoleLots, []string{p})
	require.NoError(t, err)
	assert.Equal(t, RoleLots, layer.Role)
	// the point feature is skipped
	require.Len(t, layer.Records, 1)

	rec := layer.Records[0]
	assert.Equal(t, "Aspen", rec.Attrs.Community)
	assert.Equal(t, "12", rec.Attrs.LotJob)
	assert.Equal(t, "Lot 12", rec.Attrs.LegalLot)
	assert.Equal(t, "P1", rec.Attrs.Plan)
	assert.Equal(t, "15k", rec.Attrs.LotPremium)
	assert.Equal(t, "350", rec.Attrs.ConstStatus)

	// reprojected out of degree range into web mercator meters
	b := rec.Geometry.Bound()
	assert.Less(t, b.Min[0], -1.0e7)
	assert.Greater(t, b.Min[1], 4.0e6)
}

func TestLoadLayerKeepsDeclaredMercator(t *testing.T) {
	content := `{
  "type": "FeatureCollection",
  "crs": {"type": "name", "properties": {"name": "urn:ogc:def:crs:EPSG::3857"}},
  "features": [
    {
      "type": "Feature",
      "properties": {},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[100, 200], [300, 200], [300, 400], [100, 400], [100, 200]]]
      }
    }
  ]
}`
	p := writeFile(t, "road.json", content)

	layer, err := LoadLayer(RoleRoad, []string{p})
	require.NoError(t, err)
	require.Len(t, layer.Records, 1)

	b := layer.Records[0].Geometry.Bound()
	assert.Equal(t, 100.0, b.Min[0])
	assert.Equal(t, 400.0, b.Max[1])
}

func TestLoadLayerMultipleFilesConcatenate(t *testing.T) {
	a := writeFile(t, "a.geojson", lotsGeoJSON)
	b := writeFile(t, "b.geojson", lotsGeoJSON)

	layer, err := LoadLayer(RoleLots, []string{a, b})
	require.NoError(t, err)
	assert.Len(t, layer.Records, 2)
}

func TestLoadLayerEmptyPaths(t *testing.T) {
	layer, err := LoadLayer(RoleGrass, nil)
	require.NoError(t, err)
	assert.True(t, layer.Empty())
}

func TestLoadLayerUnsupportedFormat(t *testing.T) {
	p := writeFile(t, "lots.gpkg", "not a geometry file")

	_, err := LoadLayer(RoleLots, []string{p})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "lots.gpkg")
}

func TestLoadLayerMissingFile(t *testing.T) {
	_, err := LoadLayer(RoleLots, []string{filepath.Join(t.TempDir(), "nope.geojson")})
	require.Error(t, err)
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"excel_Community": "community",
		"Lot Job":         "lotjob",
		"legal_lot":       "legallot",
		"PLAN":            "plan",
		" Sold Status ":   "soldstatus",
		"const_status":    "conststatus",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeKey(in), in)
	}
}

func TestPropString(t *testing.T) {
	assert.Equal(t, "12", propString(12.0))
	assert.Equal(t, "12.5", propString(12.5))
	assert.Equal(t, "abc", propString("abc"))
	assert.Equal(t, "true", propString(true))
	assert.Equal(t, "", propString(nil))
}
