// Package region partitions a grid.Grid into maximal 4-connected regions
// of equal symbols.
//
// Segment scans cells row-major; every unvisited cell seeds a breadth-first
// flood fill that follows only orthogonal neighbors holding the seed's
// symbol. Each fill yields one Region. Two same-symbol areas separated by
// other symbols stay distinct regions.
//
// Invariants:
//
//   - Regions are pairwise disjoint and cover every grid cell.
//   - Region IDs are 0..n-1 in order of their seed cell (row-major), so the
//     enumeration is reproducible across runs.
//   - A Region is never mutated after Segment returns.
//
// The visited set is a bitmap owned by a single Segment call, which keeps
// segmentation reentrant. The fill uses an explicit queue, never recursion.
//
// Complexity: O(rows×cols) time, O(rows×cols) memory.
package region
