// Package perimeter counts the unit grid edges on a region's boundary.
//
// For every cell and every orthogonal direction, the edge between the cell
// and its neighbor is a boundary edge when the neighbor lies outside the
// grid or holds a different symbol. Hole boundaries are counted like the
// outer boundary; no shape information beyond adjacency is needed.
//
// Complexity: O(area) per region.
package perimeter

import (
	"github.com/katalvlaran/gardenplot/grid"
	"github.com/katalvlaran/gardenplot/region"
)

// Count returns the perimeter of r within g.
// Every cell of r must lie in g; r is expected to come from region.Segment(g).
func Count(r *region.Region, g *grid.Grid) int {
	n := 0
	for _, c := range r.Coordinates() {
		for _, d := range grid.Directions {
			if !g.SameSymbol(c, c.Step(d)) {
				n++
			}
		}
	}
	return n
}

// CountSet returns the perimeter of an arbitrary coordinate set, treating
// every coordinate outside the set as foreign. For a region produced by
// Segment this equals Count, since regions are maximal.
func CountSet(s *region.CoordinateSet) int {
	n := 0
	for _, c := range s.Slice() {
		for _, d := range grid.Directions {
			if !s.Contains(c.Step(d)) {
				n++
			}
		}
	}
	return n
}
