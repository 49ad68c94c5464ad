// Package adjacency builds the region adjacency graph of a segmented grid.
//
// Vertices are region IDs plus the Outside sentinel (-1), the virtual
// region beyond the grid border. An undirected edge joins two vertices
// whenever their regions share at least one unit edge; the edge weight is
// the number of shared unit edges.
//
// Invariant: the weights incident to a region sum to its perimeter, since
// every boundary edge of a region is shared with exactly one other region
// or with Outside.
//
// Concurrency:
//
//	Graph guards its maps with a sync.RWMutex; reads may run concurrently
//	with each other and with AddVertex/AddWeight.
//
// Errors:
//
//	ErrGridNil        - nil grid passed to Build.
//	ErrUncovered      - the regions do not cover every grid cell.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - an edge from a vertex to itself was requested.
//	ErrBadWeight      - a non-positive weight was added.
package adjacency
