package enclosure

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gardenplot/adjacency"
)

// EnclosedBy returns the innermost region enclosing region id.
// ok is false when id reaches the border without crossing a single region,
// including when id itself touches the border or is adjacency.Outside.
func EnclosedBy(g *adjacency.Graph, id int, opts ...Option) (encloser int, ok bool, err error) {
	o, err := prepare(g, opts)
	if err != nil {
		return 0, false, err
	}
	if !g.HasVertex(id) {
		return 0, false, fmt.Errorf("%w: %d", ErrRegionNotFound, id)
	}
	return enclosedBy(g, id, o)
}

// Holes maps each enclosing region to the regions it directly (innermost)
// encloses, each list sorted ascending. Regions enclosing nothing are absent.
func Holes(g *adjacency.Graph, opts ...Option) (map[int][]int, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	holes := make(map[int][]int)
	for _, id := range g.Vertices() {
		if id == adjacency.Outside {
			continue
		}
		s, ok, err := enclosedBy(g, id, o)
		if err != nil {
			return nil, err
		}
		if ok {
			holes[s] = append(holes[s], id)
		}
	}
	for _, inner := range holes {
		sort.Ints(inner)
	}
	return holes, nil
}

func prepare(g *adjacency.Graph, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, nil
}

// enclosedBy tests the interior vertices of one BFS path from id to
// Outside, nearest first. The first one whose removal cuts id off from
// Outside is the innermost encloser.
func enclosedBy(g *adjacency.Graph, id int, o Options) (int, bool, error) {
	if id == adjacency.Outside {
		return 0, false, nil
	}
	res, err := walk(g, id, id, o)
	if err != nil {
		return 0, false, err
	}
	path := res.pathTo(adjacency.Outside)
	if len(path) <= 2 {
		// touches the border, or is cut off by the caller's filter
		return 0, false, nil
	}

	for _, s := range path[1 : len(path)-1] {
		cut, err := walk(g, id, s, o)
		if err != nil {
			return 0, false, err
		}
		if _, reached := cut.depth[adjacency.Outside]; !reached {
			return s, true, nil
		}
	}
	return 0, false, nil
}
