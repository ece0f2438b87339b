package geojson

import (
	orbjson "github.com/paulmach/orb/geojson"

	"github.com/routemark/borders-api/consts"
	"github.com/routemark/borders-api/schema"
)

// Property keys read from each border feature. A feature without the
// hierarchy property falls into the default hierarchy.
const (
	NameProperty      = "name"
	HierarchyProperty = "hierarchy"
)

// ExtractBorderFeatures - decode a GeoJSON feature collection into border
// features. A feature with a missing or mistyped property is passed along
// with its zero value; deciding whether that makes the feature unusable is
// the border store's call, so the per-feature failure count stays in one
// place.
func ExtractBorderFeatures(data []byte) ([]schema.BorderFeature, error) {
	collection, err := orbjson.UnmarshalFeatureCollection(data)
	if nil != err {
		return nil, err
	}

	features := make([]schema.BorderFeature, 0, len(collection.Features))
	for _, f := range collection.Features {
		feature := schema.BorderFeature{
			Geometry:    f.Geometry,
			HierarchyID: consts.DefaultHierarchyID,
		}

		if name, ok := f.Properties[NameProperty].(string); ok {
			feature.Name = name
		}
		// encoding/json decodes GeoJSON numbers as float64
		if id, ok := f.Properties[HierarchyProperty].(float64); ok {
			feature.HierarchyID = int64(id)
		}

		features = append(features, feature)
	}

	return features, nil
}
