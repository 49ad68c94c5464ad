// Package grid provides the immutable symbol matrix that every other
// gardenplot package works on.
//
// What:
//
//   - Grid wraps a rectangular rows×cols matrix of byte symbols.
//   - Coordinate is a signed (Row, Col) pair; neighbor arithmetic may leave
//     the grid without underflowing.
//   - Neighbors enumerates the up-to-4 orthogonal in-bounds neighbors.
//
// Why:
//
//   - Segmentation, perimeter and side counting all need the same bounds
//     and symbol queries; keeping them here keeps the algorithms pure.
//
// Complexity:
//
//   - New / FromBytes: O(rows×cols) time and memory (deep copy).
//   - SymbolAt, InBounds, Index: O(1).
//   - Neighbors: O(1), at most 4 results.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (malformed grid).
//   - ErrOutOfBounds: a coordinate outside [0,rows)×[0,cols) was queried.
package grid
