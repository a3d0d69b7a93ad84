package editor

import (
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kstackpole/platmap-pro/internal/geom"
	"github.com/kstackpole/platmap-pro/internal/svgmap"
)

// The editor must open what the generator writes: full round trip through
// the file system.
func TestOpensGeneratedDrawing(t *testing.T) {
	lots := geom.Layer{Role: geom.RoleLots, Records: []geom.Record{
		{
			Geometry: orb.Polygon{orb.Ring{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}},
			Attrs: geom.Attributes{
				Community: "A", LotJob: "12", LegalLot: "Lot 12", Plan: "P1",
			},
		},
	}}
	base := filepath.Join(t.TempDir(), "community")
	printPath, _, err := svgmap.WriteFiles(
		svgmap.Layers{Lots: lots}, svgmap.Canvas{Width: 300, Height: 300}, base)
	require.NoError(t, err)

	s, err := Load(printPath)
	require.NoError(t, err)

	require.Len(t, s.Lots(), 1)
	assert.Equal(t, "A-12", s.Lots()[0].ID)
	require.Len(t, s.Units(), 3)

	// every generated marker stays editable
	for _, u := range s.Units() {
		require.NoError(t, u.MoveBy(1, 1))
	}
	require.NoError(t, s.AutoArrange())
	require.NoError(t, s.Save(printPath))

	again, err := Load(printPath)
	require.NoError(t, err)
	assert.Len(t, again.Units(), 3)
}
