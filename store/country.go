package store

import (
	"github.com/routemark/borders-api/consts"
)

// CountryIndex - local name to identifier resolution. An unknown name is not
// an error; coastline and boundary ambiguity makes unmatched names an
// expected outcome, so both operations return an empty string for them.
type CountryIndex interface {
	ID(localName string) string
	EnglishName(localName string) string
}

// ID - the numeric identifier registered for the local name
func (s *snapshot) ID(localName string) string {
	if localName == consts.InternationalName {
		return consts.InternationalID
	}

	if info, ok := s.countries[localName]; ok {
		return info.ID
	}
	return ""
}

// EnglishName - the English name registered for the local name
func (s *snapshot) EnglishName(localName string) string {
	if localName == consts.InternationalName {
		return consts.InternationalName
	}

	if info, ok := s.countries[localName]; ok {
		return info.NameEng
	}
	return ""
}
