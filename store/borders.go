package store

import (
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/routemark/borders-api/schema"
)

const bordersLogPrefix = "borders"

var (
	ErrNilFeed  = fmt.Errorf("geometry feed is not configured")
	ErrNotReady = fmt.Errorf("border index has not been loaded")
)

// BordersStore - read-only border classification index. A store returned by
// NewBordersStore is fully loaded and immutable; concurrent reads need no
// synchronization.
type BordersStore interface {
	CountryQuery
	CountryIndex
	OpenBorders
}

// snapshot - the immutable index emitted by BordersBuilder.Build
type snapshot struct {
	hierarchies    map[int64]*schema.Hierarchy
	hierarchyOrder []int64
	countries      map[string]schema.CountryInfo
	openBorders    map[string]map[string]struct{}
}

// NewBordersStore - build a ready-to-query border index from the feed. Any
// feed error aborts construction; a partially built index is never returned.
// Malformed features and rows are skipped and counted, never fatal.
func NewBordersStore(feed GeometryFeed) (BordersStore, error) {
	if feed == nil {
		return nil, ErrNilFeed
	}

	builder := NewBordersBuilder()

	features, err := feed.BorderFeatures()
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": bordersLogPrefix,
			"error":  err,
		}).Error("read border geometries")
		return nil, err
	}
	counts := builder.AddFeatures(features)
	log.WithFields(log.Fields{
		"prefix":      bordersLogPrefix,
		"countries":   counts.Polygons,
		"hierarchies": counts.Hierarchies,
	}).Info("border geometries read")

	rows, err := feed.CountryRows()
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": bordersLogPrefix,
			"error":  err,
		}).Error("read border ids")
		return nil, err
	}
	builder.AddCountryRows(rows)
	log.WithField("prefix", bordersLogPrefix).Info("border ids read")

	openRows, err := feed.OpenBorderRows()
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": bordersLogPrefix,
			"error":  err,
		}).Error("read border openness")
		return nil, err
	}
	builder.AddOpenBorderRows(openRows)
	log.WithField("prefix", bordersLogPrefix).Info("border openness read")

	return builder.Build(), nil
}

// Holder - keeps the currently visible snapshot and rebuilds it on demand.
// A reload builds a complete new snapshot before swapping the visible
// reference, so a reader holding the old snapshot keeps a consistent view
// and a failed reload leaves the previous snapshot serving.
type Holder struct {
	feed    GeometryFeed
	current atomic.Value
}

// NewHolder - create an empty holder; call Reload before querying
func NewHolder(feed GeometryFeed) *Holder {
	return &Holder{feed: feed}
}

// Reload - build a fresh snapshot from the feed and swap it in
func (h *Holder) Reload() error {
	s, err := NewBordersStore(h.feed)
	if err != nil {
		return err
	}
	h.current.Store(s.(*snapshot))
	return nil
}

// Current - the visible snapshot, or an error if Reload never succeeded
func (h *Holder) Current() (BordersStore, error) {
	s, ok := h.current.Load().(*snapshot)
	if !ok {
		return nil, ErrNotReady
	}
	return s, nil
}
