// Package enclosure finds holes and enclaves: regions completely
// surrounded by another region.
//
// Region S encloses region R when every path from R to the grid border
// (the adjacency.Outside vertex) passes through S. Equivalently, R cannot
// reach Outside in the region graph once S is removed. Regions touching the
// border are never enclosed.
//
// A region may be enclosed by several nested regions; EnclosedBy reports
// the innermost one, i.e. the encloser nearest to R. All enclosers lie on
// any path from R to Outside, so the walk only tests the vertices of one
// breadth-first path, nearest first.
//
// The search is a breadth-first walk over adjacency.Graph with hooks,
// neighbor filtering and context cancellation checked once per dequeue.
//
// Complexity: O(L·(V+E)) per region, L being the BFS path length to Outside.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrRegionNotFound: the region ID is not a vertex of the graph.
//   - ctx.Err() or any error returned by an OnVisit hook.
package enclosure
