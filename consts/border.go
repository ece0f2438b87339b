package consts

// InternationalName / InternationalID represent the synthetic pseudo-country
// for area outside every registered polygon, e.g. open water. It is never
// stored in the country index and is resolved as a special case.
const (
	InternationalName = "INTERNATIONAL"
	InternationalID   = "-1"
)

// DefaultHierarchyID is assigned to polygons whose source feature declares no
// hierarchy. All such polygons share one default hierarchy.
const DefaultHierarchyID int64 = -1
