package store_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/suite"

	"github.com/routemark/borders-api/schema"
	"github.com/routemark/borders-api/store"
)

func square(minLon, minLat, maxLon, maxLat float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minLon, minLat},
		{maxLon, minLat},
		{maxLon, maxLat},
		{minLon, maxLat},
		{minLon, minLat},
	}}
}

// holedSquare - a square with a rectangular hole punched out of its middle
func holedSquare(minLon, minLat, maxLon, maxLat float64) orb.Polygon {
	outer := square(minLon, minLat, maxLon, maxLat)
	hole := orb.Ring{
		{minLon + 3, minLat + 3},
		{maxLon - 3, minLat + 3},
		{maxLon - 3, maxLat - 3},
		{minLon + 3, maxLat - 3},
		{minLon + 3, minLat + 3},
	}
	return orb.Polygon{outer[0], hole}
}

var BorderFeatureTestData = []schema.BorderFeature{
	{Name: "Germany", Geometry: square(6, 47, 15, 55), HierarchyID: 1},
	{Name: "France", Geometry: square(-5, 42, 5, 51), HierarchyID: 1},
	{Name: "Condominia", Geometry: square(10, 50, 20, 56), HierarchyID: 2},
	{Name: "Enclavia", Geometry: holedSquare(30, 10, 40, 20), HierarchyID: 3},
}

type BordersQueryTestSuite struct {
	suite.Suite
	store store.BordersStore
}

func (s *BordersQueryTestSuite) SetupSuite() {
	builder := store.NewBordersBuilder()

	counts := builder.AddFeatures(BorderFeatureTestData)
	if counts.Failed > 0 {
		s.T().Fatal("test fixtures did not load cleanly")
	}

	s.store = builder.Build()
}

func (s *BordersQueryTestSuite) TestContainingCountriesSingleMatch() {
	// Frankfurt is strictly inside Germany and outside every other polygon
	countries := s.store.ContainingCountries(orb.Point{8.7, 50.1})

	s.Len(countries, 1)
	s.Equal("Germany", countries[0].Name)

	countries = s.store.ContainingCountries(orb.Point{2.35, 48.85})

	s.Len(countries, 1)
	s.Equal("France", countries[0].Name)
}

func (s *BordersQueryTestSuite) TestContainingCountriesOverlappingClaims() {
	// Berlin lies inside both Germany and the overlapping Condominia claim,
	// which live in different hierarchies
	countries := s.store.ContainingCountries(orb.Point{13.4, 52.5})

	s.Len(countries, 2)
	names := []string{countries[0].Name, countries[1].Name}
	s.Contains(names, "Germany")
	s.Contains(names, "Condominia")
}

func (s *BordersQueryTestSuite) TestContainingCountriesOpenWater() {
	countries := s.store.ContainingCountries(orb.Point{-30, 40})

	s.Len(countries, 0)
}

func (s *BordersQueryTestSuite) TestHoleIsCandidateButNotContained() {
	// inside Enclavia's bounding box but within the hole in its boundary
	inHole := orb.Point{35, 15}

	s.Len(s.store.ContainingCountries(inHole), 0)

	candidates := s.store.CandidateCountries(inHole)
	s.Len(candidates, 1)
	s.Equal("Enclavia", candidates[0].Name)

	// on solid ground the precise test agrees with the candidate test
	onLand := orb.Point{31, 11}
	s.Len(s.store.ContainingCountries(onLand), 1)
}

func (s *BordersQueryTestSuite) TestCandidatesAreSupersetOfContaining() {
	points := []orb.Point{
		{8.7, 50.1},
		{2.35, 48.85},
		{13.4, 52.5},
		{-30, 40},
		{35, 15},
		{31, 11},
		{4.9, 50.5},
	}

	for _, p := range points {
		candidates := s.store.CandidateCountries(p)
		candidateNames := make(map[string]bool)
		for _, c := range candidates {
			candidateNames[c.Name] = true
		}

		for _, c := range s.store.ContainingCountries(p) {
			s.Truef(candidateNames[c.Name], "%s contains %v but is not a candidate", c.Name, p)
		}
	}
}

func TestBordersQueryTestSuite(t *testing.T) {
	suite.Run(t, new(BordersQueryTestSuite))
}
