package region

import (
	"fmt"

	"github.com/katalvlaran/gardenplot/grid"
)

// Region is a maximal 4-connected set of cells sharing one symbol.
// coords is sorted row-major; set mirrors it for O(1) membership tests.
type Region struct {
	// ID is the enumeration index assigned by Segment.
	ID int
	// Symbol is the byte shared by every cell of the region.
	Symbol byte

	coords []grid.Coordinate
	set    *CoordinateSet
}

// Rect is an inclusive bounding box.
type Rect struct {
	Min, Max grid.Coordinate
}

// Rows returns the number of rows spanned by r.
func (r Rect) Rows() int { return r.Max.Row - r.Min.Row + 1 }

// Cols returns the number of columns spanned by r.
func (r Rect) Cols() int { return r.Max.Col - r.Min.Col + 1 }

// newRegion builds a Region from a non-empty list of coordinates.
func newRegion(id int, symbol byte, coords []grid.Coordinate) *Region {
	set := NewCoordinateSet(coords...)
	return &Region{ID: id, Symbol: symbol, coords: set.Slice(), set: set}
}

// Area returns the number of cells in the region.
func (r *Region) Area() int { return len(r.coords) }

// Contains reports whether c belongs to the region.
func (r *Region) Contains(c grid.Coordinate) bool { return r.set.Contains(c) }

// Set exposes the region's coordinate set for read-only use.
func (r *Region) Set() *CoordinateSet { return r.set }

// Coordinates returns a copy of the region's cells, sorted row-major.
func (r *Region) Coordinates() []grid.Coordinate {
	out := make([]grid.Coordinate, len(r.coords))
	copy(out, r.coords)
	return out
}

// Seed returns the first cell of the region in row-major order.
func (r *Region) Seed() grid.Coordinate { return r.coords[0] }

// Bounds returns the smallest rectangle covering the region.
func (r *Region) Bounds() Rect {
	b := Rect{Min: r.coords[0], Max: r.coords[0]}
	for _, c := range r.coords[1:] {
		b.Min.Row = min(b.Min.Row, c.Row)
		b.Min.Col = min(b.Min.Col, c.Col)
		b.Max.Row = max(b.Max.Row, c.Row)
		b.Max.Col = max(b.Max.Col, c.Col)
	}
	return b
}

func (r *Region) String() string {
	return fmt.Sprintf("region %d %q area=%d seed=%v", r.ID, r.Symbol, r.Area(), r.Seed())
}
