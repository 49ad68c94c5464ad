package enclosure

import (
	"context"

	"github.com/katalvlaran/gardenplot/adjacency"
)

// result is the outcome of one breadth-first walk.
type result struct {
	depth  map[int]int
	parent map[int]int
}

// pathTo reconstructs start→dest, or nil when dest was not reached.
func (r *result) pathTo(dest int) []int {
	if _, ok := r.depth[dest]; !ok {
		return nil
	}
	var path []int
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// walker encapsulates mutable BFS state for one walk.
type walker struct {
	graph   *adjacency.Graph
	opts    Options
	ctx     context.Context
	blocked int
	queue   []int
	res     *result
}

// walk runs breadth-first search from start, never entering blocked.
// Passing start as blocked walks the whole graph.
func walk(g *adjacency.Graph, start, blocked int, o Options) (*result, error) {
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		blocked: blocked,
		res: &result{
			depth:  map[int]int{start: 0},
			parent: make(map[int]int),
		},
	}
	w.queue = append(w.queue, start)
	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.depth[u]
		if err := w.opts.OnVisit(u, d); err != nil {
			return err
		}
		// Outside is a sink: paths through the border do not count.
		if u == adjacency.Outside {
			continue
		}

		nbrs, err := w.graph.Neighbors(u)
		if err != nil {
			return err
		}
		for _, v := range nbrs {
			if v == w.blocked {
				continue
			}
			if _, seen := w.res.depth[v]; seen || !w.opts.FilterNeighbor(u, v) {
				continue
			}
			w.res.depth[v] = d + 1
			w.res.parent[v] = u
			w.queue = append(w.queue, v)
		}
	}
	return nil
}
