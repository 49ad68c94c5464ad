package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gardenplot/grid"
	"github.com/katalvlaran/gardenplot/internal/fixture"
	"github.com/katalvlaran/gardenplot/region"
)

func mustGrid(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)
	return g
}

// TestSegment_Partition checks that regions are disjoint, cover every cell,
// are monochromatic and carry IDs equal to their index.
func TestSegment_Partition(t *testing.T) {
	for _, m := range fixture.All {
		t.Run(m.Name, func(t *testing.T) {
			g := mustGrid(t, m.Rows...)
			regions := region.Segment(g)

			owner := make(map[grid.Coordinate]int, g.Size())
			total := 0
			for i, r := range regions {
				assert.Equal(t, i, r.ID)
				for _, c := range r.Coordinates() {
					prev, dup := owner[c]
					assert.False(t, dup, "cell %v in regions %d and %d", c, prev, r.ID)
					owner[c] = r.ID
					assert.Equal(t, r.Symbol, g.MustSymbolAt(c))
				}
				total += r.Area()
			}
			assert.Equal(t, g.Size(), total)
			assert.Len(t, owner, g.Size())
		})
	}
}

// TestSegment_Connectivity verifies every region is 4-connected and maximal:
// no cell outside a region shares a symbol with an adjacent member.
func TestSegment_Connectivity(t *testing.T) {
	g := mustGrid(t, fixture.Larger.Rows...)
	for _, r := range region.Segment(g) {
		reached := region.NewCoordinateSet(r.Seed())
		queue := []grid.Coordinate{r.Seed()}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.Neighbors(u) {
				if r.Contains(v) && !reached.Contains(v) {
					reached.Add(v)
					queue = append(queue, v)
				}
				if !r.Contains(v) {
					assert.NotEqual(t, r.Symbol, g.MustSymbolAt(v), "region %d not maximal at %v", r.ID, v)
				}
			}
		}
		assert.Equal(t, r.Area(), reached.Len(), "region %d not connected", r.ID)
	}
}

// TestSegment_SeparateSameSymbol ensures same-symbol areas split by another
// symbol stay distinct regions.
func TestSegment_SeparateSameSymbol(t *testing.T) {
	g := mustGrid(t, fixture.Enclaves.Rows...)
	regions := region.Segment(g)
	require.Len(t, regions, 5)

	assert.Equal(t, byte('O'), regions[0].Symbol)
	assert.Equal(t, 21, regions[0].Area())
	for _, r := range regions[1:] {
		assert.Equal(t, byte('X'), r.Symbol)
		assert.Equal(t, 1, r.Area())
	}
}

// TestSegment_Order checks the row-major seed order on the small map.
func TestSegment_Order(t *testing.T) {
	g := mustGrid(t, fixture.Small.Rows...)
	regions := region.Segment(g)
	require.Len(t, regions, 5)

	want := []struct {
		sym  byte
		area int
		seed grid.Coordinate
	}{
		{'A', 4, grid.Coordinate{Row: 0, Col: 0}},
		{'B', 4, grid.Coordinate{Row: 1, Col: 0}},
		{'C', 4, grid.Coordinate{Row: 1, Col: 2}},
		{'D', 1, grid.Coordinate{Row: 1, Col: 3}},
		{'E', 3, grid.Coordinate{Row: 3, Col: 0}},
	}
	for i, w := range want {
		assert.Equal(t, w.sym, regions[i].Symbol, "region %d", i)
		assert.Equal(t, w.area, regions[i].Area(), "region %d", i)
		assert.Equal(t, w.seed, regions[i].Seed(), "region %d", i)
	}
}

// TestSegment_Idempotent runs segmentation twice and compares coordinate sets.
func TestSegment_Idempotent(t *testing.T) {
	g := mustGrid(t, fixture.Larger.Rows...)
	first := region.Segment(g)
	second := region.Segment(g)
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Set().Equal(second[i].Set()), "region %d differs", i)
		assert.Equal(t, first[i].Coordinates(), second[i].Coordinates())
	}
}

// TestSegment_SingleSymbol covers the all-one-region case.
func TestSegment_SingleSymbol(t *testing.T) {
	g := mustGrid(t, "ZZZ", "ZZZ")
	regions := region.Segment(g)
	require.Len(t, regions, 1)
	assert.Equal(t, 6, regions[0].Area())
	assert.Equal(t, region.Rect{Max: grid.Coordinate{Row: 1, Col: 2}}, regions[0].Bounds())
}

func TestRegion_Bounds(t *testing.T) {
	g := mustGrid(t, fixture.Small.Rows...)
	regions := region.Segment(g)
	c := regions[2]
	b := c.Bounds()
	assert.Equal(t, grid.Coordinate{Row: 1, Col: 2}, b.Min)
	assert.Equal(t, grid.Coordinate{Row: 3, Col: 3}, b.Max)
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 2, b.Cols())
}

func TestRegion_CoordinatesIsCopy(t *testing.T) {
	g := mustGrid(t, "AB")
	r := region.Segment(g)[0]
	cs := r.Coordinates()
	cs[0] = grid.Coordinate{Row: 9, Col: 9}
	assert.Equal(t, grid.Coordinate{}, r.Seed())
}

func TestLookup(t *testing.T) {
	g := mustGrid(t, fixture.Small.Rows...)
	ids := region.Lookup(region.Segment(g), g.Rows(), g.Cols())
	assert.Equal(t, [][]int{
		{0, 0, 0, 0},
		{1, 1, 2, 3},
		{1, 1, 2, 2},
		{4, 4, 4, 2},
	}, ids)

	partial := region.Lookup(nil, 1, 2)
	assert.Equal(t, [][]int{{-1, -1}}, partial)
}
