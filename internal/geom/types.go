package geom

import "github.com/paulmach/orb"

// Role names the visual role a layer plays in the generated map.
type Role string

const (
	RoleLots  Role = "lots"
	RoleGrass Role = "grass"
	RoleWater Role = "water"
	RoleRoad  Role = "road"
)

// Attributes is the fixed tabular schema attached to each feature. Values
// are kept as trimmed strings; missing source columns stay empty.
type Attributes struct {
	Community   string
	LotJob      string
	LegalLot    string
	Plan        string
	LotPremium  string
	SoldStatus  string
	ConstStatus string
}

// Record is one input feature: a planar polygon or multi-polygon plus its
// attributes. Records are immutable after loading.
type Record struct {
	Geometry orb.Geometry // orb.Polygon or orb.MultiPolygon, EPSG:3857
	Attrs    Attributes
}

// Layer is a named set of records sharing one visual role. An empty layer is
// valid and simply produces no output group.
type Layer struct {
	Role    Role
	Records []Record
}

// Empty reports whether the layer holds no records.
func (l Layer) Empty() bool { return len(l.Records) == 0 }
