package schema

import (
	"github.com/paulmach/orb"
)

// BorderFeature - one already-parsed polygon feature handed to the border
// store. Geometry must be areal (Polygon or MultiPolygon); features that
// carry no hierarchy use consts.DefaultHierarchyID.
type BorderFeature struct {
	Name        string
	Geometry    orb.Geometry
	HierarchyID int64
}
