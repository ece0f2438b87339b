package store

import (
	"github.com/paulmach/orb"

	"github.com/routemark/borders-api/schema"
)

// CountryQuery - containment queries against loaded border geometries.
//
// Country polygons for the whole planet number in the low hundreds while the
// routing-graph builder issues tens of millions of queries during
// preprocessing, so both operations walk hierarchy bounding boxes before
// touching any member polygon. The precise test runs on the handful of
// polygons surviving both rectangle filters.
type CountryQuery interface {
	ContainingCountries(p orb.Point) []*schema.CountryPolygon
	CandidateCountries(p orb.Point) []*schema.CountryPolygon
}

// ContainingCountries - every country whose boundary contains the point.
// More than one match is possible where territorial claims overlap, so the
// traversal never short-circuits on the first hit. An empty result means the
// point is outside every registered polygon.
func (s *snapshot) ContainingCountries(p orb.Point) []*schema.CountryPolygon {
	var countries []*schema.CountryPolygon
	for _, id := range s.hierarchyOrder {
		h := s.hierarchies[id]
		if !h.InBBox(p) {
			continue
		}
		for _, c := range h.Polygons {
			if c.InBBox(p) && c.Contains(p) {
				countries = append(countries, c)
			}
		}
	}
	return countries
}

// CandidateCountries - every country whose bounding box contains the point.
// This may over-report since it skips the precise polygon test; callers use
// it as a cheap admission check before a more expensive precise pass.
func (s *snapshot) CandidateCountries(p orb.Point) []*schema.CountryPolygon {
	var countries []*schema.CountryPolygon
	for _, id := range s.hierarchyOrder {
		h := s.hierarchies[id]
		if !h.InBBox(p) {
			continue
		}
		for _, c := range h.Polygons {
			if c.InBBox(p) {
				countries = append(countries, c)
			}
		}
	}
	return countries
}
