// Package sides counts the straight sides of a region's outline.
//
// A side is a maximal straight run of boundary edges that all face the
// same direction. A filled rectangle has 4 sides; a square with a square
// hole has 8; every hole or enclave adds the sides of its own outline.
//
// Algorithm (directional run-length projection):
//
//  1. For a facing direction, say Up, mark each region cell whose Up
//     neighbor is not in the region. The neighbor may be off the grid or
//     belong to any other region.
//  2. Group the marked cells by row and sort each row by column.
//  3. Every maximal run of consecutive columns is one side.
//
// Down works the same way with the row+1 neighbor. Left and Right transpose
// the coordinate set and reuse the row grouping with the Up and Down test.
// The total is the sum over all four directions.
//
// Hole sides need no special handling: a cell on a hole boundary is just a
// region cell whose neighbor in that direction is missing from the set.
// Regions that touch themselves at a single corner are handled the same way,
// since the two diagonal cells never form one consecutive run.
//
// Complexity: O(area·log(area)) per region for sorting.
package sides
