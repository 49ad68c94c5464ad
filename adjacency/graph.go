// File: graph.go
// Role: Construction from a segmented grid, mutation and read-only queries.
// Determinism:
//   - Vertices() and Neighbors() return IDs sorted ascending (Outside first).

package adjacency

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gardenplot/grid"
	"github.com/katalvlaran/gardenplot/region"
)

// Build constructs the adjacency graph of regions over g. regions must
// partition g, as returned by region.Segment(g).
//
// Every unit edge is visited once: border edges connect to Outside, and
// interior edges are taken from the Down and Right side of each cell.
//
// Complexity: O(rows×cols) time, O(V+E) memory.
func Build(g *grid.Grid, regions []*region.Region) (*Graph, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	ids := region.Lookup(regions, g.Rows(), g.Cols())
	out := New()
	for _, r := range regions {
		out.AddVertex(r.ID, r)
	}

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			c := grid.Coordinate{Row: y, Col: x}
			u := ids[y][x]
			if u < 0 {
				return nil, fmt.Errorf("%w: cell %v", ErrUncovered, c)
			}
			for _, d := range grid.Directions {
				n := c.Step(d)
				switch {
				case !g.InBounds(n):
					_ = out.AddWeight(u, Outside, 1)
				case d == grid.Down || d == grid.Right:
					if v := ids[n.Row][n.Col]; v != u && v >= 0 {
						_ = out.AddWeight(u, v, 1)
					}
				}
			}
		}
	}
	return out, nil
}

// AddVertex registers vertex id carrying region r. Re-adding an existing
// id replaces its region and keeps its edges.
func (g *Graph) AddVertex(id int, r *region.Region) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.regions[id] = r
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]int)
	}
}

// AddWeight adds w shared unit edges between a and b, creating the edge
// if needed.
func (g *Graph) AddWeight(a, b, w int) error {
	if a == b {
		return ErrLoopNotAllowed
	}
	if w <= 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[a]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, a)
	}
	if _, ok := g.adj[b]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, b)
	}
	g.adj[a][b] += w
	g.adj[b][a] += w
	return nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]
	return ok
}

// Order returns the number of vertices, Outside included.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Vertices returns all vertex IDs sorted ascending; Outside comes first.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Region returns the region carried by id. Outside carries nil.
func (g *Graph) Region(id int) (*region.Region, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r, ok := g.regions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	return r, nil
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
//
// Complexity: O(d log d) for d neighbors.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]int, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}

// Weight returns the number of unit edges shared by a and b; 0 when they
// are not adjacent.
func (g *Graph) Weight(a, b int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[a]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, a)
	}
	if _, ok := g.adj[b]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, b)
	}
	return nbrs[b], nil
}

// BoundaryLength returns the total weight incident to id. For a region
// vertex this is the region's perimeter; for Outside it is the grid's
// outer perimeter.
func (g *Graph) BoundaryLength(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	total := 0
	for _, w := range nbrs {
		total += w
	}
	return total, nil
}

// TouchesBorder reports whether region id shares an edge with Outside.
func (g *Graph) TouchesBorder(id int) (bool, error) {
	w, err := g.Weight(id, Outside)
	return w > 0, err
}
