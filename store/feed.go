package store

import (
	"fmt"
	"io/ioutil"

	"github.com/routemark/borders-api/schema"
	"github.com/routemark/borders-api/share/geojson"
	"github.com/routemark/borders-api/utils"
)

// GeometryFeed - source of parsed border features and identifier tables. An
// error from any method is fatal to the load; per-record problems are left
// in the returned data for the builder to skip and count.
type GeometryFeed interface {
	BorderFeatures() ([]schema.BorderFeature, error)
	CountryRows() ([][]string, error)
	OpenBorderRows() ([][]string, error)
}

// FileFeed - reads border polygons from a GeoJSON file and the ids and open
// border tables from CSV files
type FileFeed struct {
	BordersPath string
	IDsPath     string
	OpenPath    string
}

// BorderFeatures - decode the borders GeoJSON file
func (f FileFeed) BorderFeatures() ([]schema.BorderFeature, error) {
	data, err := ioutil.ReadFile(f.BordersPath)
	if nil != err {
		return nil, fmt.Errorf("read borders file %s: %s", f.BordersPath, err)
	}

	features, err := geojson.ExtractBorderFeatures(data)
	if nil != err {
		return nil, fmt.Errorf("decode borders file %s: %s", f.BordersPath, err)
	}
	return features, nil
}

// CountryRows - read the (id, local name, english name) table
func (f FileFeed) CountryRows() ([][]string, error) {
	rows, err := utils.ReadCSVRows(f.IDsPath)
	if nil != err {
		return nil, fmt.Errorf("read country ids file %s: %s", f.IDsPath, err)
	}
	return rows, nil
}

// OpenBorderRows - read the (country, country) open border table
func (f FileFeed) OpenBorderRows() ([][]string, error) {
	rows, err := utils.ReadCSVRows(f.OpenPath)
	if nil != err {
		return nil, fmt.Errorf("read open borders file %s: %s", f.OpenPath, err)
	}
	return rows, nil
}
