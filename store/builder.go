package store

import (
	"fmt"

	"github.com/paulmach/orb"
	log "github.com/sirupsen/logrus"

	"github.com/routemark/borders-api/schema"
)

var (
	ErrFeatureNoName     = fmt.Errorf("feature has no name")
	ErrFeatureNoGeometry = fmt.Errorf("feature has no areal geometry")
)

// BordersBuilder - accumulates border features and identifier tables during
// the load phase and emits one immutable snapshot. Not safe for concurrent
// use and must not be touched after Build.
type BordersBuilder struct {
	hierarchies    map[int64]*schema.Hierarchy
	hierarchyOrder []int64
	countries      map[string]schema.CountryInfo
	openBorders    map[string]map[string]struct{}
}

// NewBordersBuilder - return an empty builder
func NewBordersBuilder() *BordersBuilder {
	return &BordersBuilder{
		hierarchies: make(map[int64]*schema.Hierarchy),
		countries:   make(map[string]schema.CountryInfo),
		openBorders: make(map[string]map[string]struct{}),
	}
}

// FeatureCounts - diagnostics reported by AddFeatures
type FeatureCounts struct {
	Polygons    int
	Hierarchies int
	Failed      int
}

// AddFeatures - insert every well-formed feature into its hierarchy. A
// malformed feature is skipped and counted; it never aborts the load.
func (b *BordersBuilder) AddFeatures(features []schema.BorderFeature) FeatureCounts {
	var counts FeatureCounts
	for _, f := range features {
		if err := b.addFeature(f); err != nil {
			counts.Failed++
			continue
		}
		counts.Polygons++
	}
	counts.Hierarchies = len(b.hierarchies)

	if counts.Failed > 0 {
		log.WithFields(log.Fields{
			"prefix": bordersLogPrefix,
			"failed": counts.Failed,
		}).Warn("skipped malformed border features")
	}

	return counts
}

func (b *BordersBuilder) addFeature(f schema.BorderFeature) error {
	if f.Name == "" {
		return ErrFeatureNoName
	}

	boundary, err := arealGeometry(f.Geometry)
	if err != nil {
		return err
	}

	c := schema.NewCountryPolygon(f.Name, boundary, f.HierarchyID)

	h, ok := b.hierarchies[f.HierarchyID]
	if !ok {
		h = schema.NewHierarchy(f.HierarchyID)
		b.hierarchies[f.HierarchyID] = h
		b.hierarchyOrder = append(b.hierarchyOrder, f.HierarchyID)
	}
	h.Add(c)

	return nil
}

func arealGeometry(g orb.Geometry) (orb.MultiPolygon, error) {
	switch geom := g.(type) {
	case orb.Polygon:
		if len(geom) == 0 {
			return nil, ErrFeatureNoGeometry
		}
		return orb.MultiPolygon{geom}, nil
	case orb.MultiPolygon:
		if len(geom) == 0 {
			return nil, ErrFeatureNoGeometry
		}
		return geom, nil
	default:
		return nil, ErrFeatureNoGeometry
	}
}

// AddCountryRows - register identifier rows of (id, local name, english
// name). Rows with any other arity are skipped.
func (b *BordersBuilder) AddCountryRows(rows [][]string) {
	for _, row := range rows {
		if len(row) != 3 {
			continue
		}
		b.AddCountry(row[0], row[1], row[2])
	}
}

// AddCountry - the first registration of a local name wins; a later row with
// the same local name is ignored, never overwrites
func (b *BordersBuilder) AddCountry(id, localName, englishName string) {
	if _, ok := b.countries[localName]; ok {
		return
	}
	b.countries[localName] = schema.CountryInfo{
		ID:      id,
		Name:    localName,
		NameEng: englishName,
	}
}

// AddOpenBorderRows - register open border rows of (country, country).
// Rows with any other arity are skipped.
func (b *BordersBuilder) AddOpenBorderRows(rows [][]string) {
	for _, row := range rows {
		if len(row) != 2 {
			continue
		}
		b.AddOpenBorder(row[0], row[1])
	}
}

// AddOpenBorder - record an open border between two countries in both
// directions at once, so the relation is symmetric at all times. Idempotent.
func (b *BordersBuilder) AddOpenBorder(country1, country2 string) {
	b.insertOpen(country1, country2)
	b.insertOpen(country2, country1)
}

func (b *BordersBuilder) insertOpen(from, to string) {
	set, ok := b.openBorders[from]
	if !ok {
		set = make(map[string]struct{})
		b.openBorders[from] = set
	}
	set[to] = struct{}{}
}

// Build - emit the immutable snapshot backed by the accumulated state
func (b *BordersBuilder) Build() BordersStore {
	return &snapshot{
		hierarchies:    b.hierarchies,
		hierarchyOrder: b.hierarchyOrder,
		countries:      b.countries,
		openBorders:    b.openBorders,
	}
}
