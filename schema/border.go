package schema

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// CountryPolygon - the boundary geometry of a single country together with
// its precomputed bounding box. Immutable after construction; owned by
// exactly one Hierarchy.
type CountryPolygon struct {
	Name        string
	HierarchyID int64
	Boundary    orb.MultiPolygon
	BBox        orb.Bound
}

// NewCountryPolygon - build a country polygon and precompute its bounding box
func NewCountryPolygon(name string, boundary orb.MultiPolygon, hierarchyID int64) *CountryPolygon {
	return &CountryPolygon{
		Name:        name,
		HierarchyID: hierarchyID,
		Boundary:    boundary,
		BBox:        boundary.Bound(),
	}
}

// InBBox - cheap axis-aligned rectangle test
func (c *CountryPolygon) InBBox(p orb.Point) bool {
	return c.BBox.Contains(p)
}

// Contains - precise point-in-polygon test, boundary inclusive
func (c *CountryPolygon) Contains(p orb.Point) bool {
	return planar.MultiPolygonContains(c.Boundary, p)
}

// Hierarchy - coarse grouping of country polygons sharing a bounding region.
// Purely a query accelerator; it carries no domain meaning of its own.
type Hierarchy struct {
	ID       int64
	Polygons []*CountryPolygon
	BBox     orb.Bound
}

// NewHierarchy - create an empty hierarchy
func NewHierarchy(id int64) *Hierarchy {
	return &Hierarchy{ID: id}
}

// Add - append a polygon and grow the hierarchy bounding box to enclose it
func (h *Hierarchy) Add(c *CountryPolygon) {
	if len(h.Polygons) == 0 {
		h.BBox = c.BBox
	} else {
		h.BBox = h.BBox.Union(c.BBox)
	}
	h.Polygons = append(h.Polygons, c)
}

// InBBox - cheap axis-aligned rectangle test against the union box
func (h *Hierarchy) InBBox(p orb.Point) bool {
	if len(h.Polygons) == 0 {
		return false
	}
	return h.BBox.Contains(p)
}

// CountryInfo - identifiers for a country read from the ids table
type CountryInfo struct {
	ID      string
	Name    string
	NameEng string
}
