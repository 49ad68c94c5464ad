// Package gardenplot segments a garden map into plant regions and prices
// the fences around them.
//
// A garden map is a rectangular grid of plant symbols. Orthogonally
// adjacent cells with the same symbol belong to the same region. Each region
// is priced two ways: area×perimeter, and area×sides, where a side is a
// maximal straight stretch of fence. Holes and enclaves add their own
// perimeter and sides to the region around them.
//
// Packages, leaf first:
//
//	grid/      — immutable symbol matrix, Coordinate, Direction, neighbor queries
//	region/    — flood-fill segmentation into disjoint regions
//	perimeter/ — unit boundary edges per region
//	sides/     — straight sides per region by directional run-length projection
//	pricing/   — per-region Plot annotation and the two price totals
//	adjacency/ — region adjacency graph with an Outside vertex
//	enclosure/ — holes and enclaves via breadth-first reachability
//	gridio/    — text input
//	render/    — PNG output
//
// Quick example:
//
//	AAAA
//	BBCD     5 regions; C has 4 cells and 8 sides
//	BBCC     price by perimeter: 140
//	EEEC     price by sides:      80
//
// The gardenplot command (cmd/gardenplot) wraps the packages:
//
//	go run ./cmd/gardenplot price input.txt
package gardenplot
