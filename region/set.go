package region

import (
	"sort"

	"github.com/katalvlaran/gardenplot/grid"
)

// CoordinateSet is an unordered set of coordinates.
// The zero value is not usable; create sets with NewCoordinateSet.
type CoordinateSet struct {
	m map[grid.Coordinate]struct{}
}

// NewCoordinateSet returns a set holding the given coordinates.
func NewCoordinateSet(coords ...grid.Coordinate) *CoordinateSet {
	s := &CoordinateSet{m: make(map[grid.Coordinate]struct{}, len(coords))}
	for _, c := range coords {
		s.m[c] = struct{}{}
	}
	return s
}

// Add inserts c.
func (s *CoordinateSet) Add(c grid.Coordinate) {
	s.m[c] = struct{}{}
}

// Contains reports whether c is in the set.
func (s *CoordinateSet) Contains(c grid.Coordinate) bool {
	_, ok := s.m[c]
	return ok
}

// Len returns the number of coordinates in the set.
func (s *CoordinateSet) Len() int {
	return len(s.m)
}

// Slice returns the members sorted row-major.
func (s *CoordinateSet) Slice() []grid.Coordinate {
	out := make([]grid.Coordinate, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Transpose returns a new set with Row and Col swapped for every member.
func (s *CoordinateSet) Transpose() *CoordinateSet {
	t := &CoordinateSet{m: make(map[grid.Coordinate]struct{}, len(s.m))}
	for c := range s.m {
		t.m[c.Transpose()] = struct{}{}
	}
	return t
}

// Equal reports whether s and o hold exactly the same coordinates.
func (s *CoordinateSet) Equal(o *CoordinateSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for c := range s.m {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}
