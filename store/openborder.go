package store

// OpenBorders - the open border relation between countries. The underlying
// data records open borders only, so false covers both "no data for this
// pair" and "explicitly closed"; the two cannot be told apart.
type OpenBorders interface {
	IsOpen(country1, country2 string) bool
}

// IsOpen - whether the border between the two countries is recorded as open.
// Symmetric by construction of the adjacency sets.
func (s *snapshot) IsOpen(country1, country2 string) bool {
	if set, ok := s.openBorders[country1]; ok {
		if _, open := set[country2]; open {
			return true
		}
	}
	if set, ok := s.openBorders[country2]; ok {
		if _, open := set[country1]; open {
			return true
		}
	}
	return false
}
