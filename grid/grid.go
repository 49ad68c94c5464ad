package grid

import (
	"fmt"
	"strings"
)

// New builds a Grid from one string per row. Each byte is one symbol.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular (wrapped with the offending row) if lengths differ.
// Complexity: O(rows×cols) time and memory.
func New(rows []string) (*Grid, error) {
	raw := make([][]byte, len(rows))
	for i, r := range rows {
		raw[i] = []byte(r)
	}
	return FromBytes(raw)
}

// FromBytes builds a Grid from a byte matrix. The input is deep-copied,
// so later changes to values do not affect the Grid.
func FromBytes(values [][]byte) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]byte, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]byte, w)
		copy(cells[y], values[y])
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within [0,rows)×[0,cols).
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// SymbolAt returns the symbol stored at c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) SymbolAt(c Coordinate) (byte, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.cells[c.Row][c.Col], nil
}

// MustSymbolAt is SymbolAt for coordinates the caller has already validated.
// An out-of-bounds query is a programming error and panics.
func (g *Grid) MustSymbolAt(c Coordinate) byte {
	s, err := g.SymbolAt(c)
	if err != nil {
		panic(err)
	}
	return s
}

// SameSymbol reports whether a and b are both in bounds and hold equal symbols.
func (g *Grid) SameSymbol(a, b Coordinate) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	return g.cells[a.Row][a.Col] == g.cells[b.Row][b.Col]
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the order
// Up, Down, Left, Right. Directions that would leave the grid are omitted.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(Directions))
	for _, d := range Directions {
		n := c.Step(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Index maps c to a row-major index: Row*cols + Col.
// c must be in bounds.
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []byte {
	out := make([]byte, g.cols)
	copy(out, g.cells[r])
	return out
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}
