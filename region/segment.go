package region

import (
	"github.com/boljen/go-bitmap"

	"github.com/katalvlaran/gardenplot/grid"
)

// Segment partitions g into its maximal 4-connected same-symbol regions.
// Regions are returned in order of their seed cell (row-major) and carry
// IDs matching their slice index.
//
// Time:   O(rows×cols).
// Memory: O(rows×cols) bits for the visited set plus the output.
func Segment(g *grid.Grid) []*Region {
	seen := bitmap.New(g.Size())
	var regions []*Region

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			seed := grid.Coordinate{Row: y, Col: x}
			i0 := g.Index(seed)
			if seen.Get(i0) {
				continue
			}
			sym := g.MustSymbolAt(seed)

			// BFS to collect the region
			queue := []grid.Coordinate{seed}
			seen.Set(i0, true)
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, v := range g.Neighbors(u) {
					vi := g.Index(v)
					if seen.Get(vi) || g.MustSymbolAt(v) != sym {
						continue
					}
					seen.Set(vi, true)
					queue = append(queue, v)
				}
			}
			regions = append(regions, newRegion(len(regions), sym, queue))
		}
	}
	return regions
}

// Lookup returns a rows×cols matrix mapping each cell to the ID of the
// region containing it. Cells not covered by any region hold -1.
func Lookup(regions []*Region, rows, cols int) [][]int {
	ids := make([][]int, rows)
	for y := range ids {
		ids[y] = make([]int, cols)
		for x := range ids[y] {
			ids[y][x] = -1
		}
	}
	for _, r := range regions {
		for _, c := range r.coords {
			if c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols {
				ids[c.Row][c.Col] = r.ID
			}
		}
	}
	return ids
}
