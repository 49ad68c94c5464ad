package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid was queried.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Coordinate addresses one cell. Values are signed so that neighbor
// arithmetic on edge rows and columns stays representable.
type Coordinate struct {
	Row, Col int
}

// Translate returns c shifted by dr rows and dc columns.
func (c Coordinate) Translate(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// Step returns the coordinate one cell away in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	dr, dc := d.Offset()
	return c.Translate(dr, dc)
}

// Transpose swaps Row and Col.
func (c Coordinate) Transpose() Coordinate {
	return Coordinate{Row: c.Col, Col: c.Row}
}

// Less orders coordinates row-major: by Row, then by Col.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// String renders the coordinate as "(row, col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Direction is one of the four orthogonal directions.
type Direction int

const (
	// Up points to row-1.
	Up Direction = iota
	// Down points to row+1.
	Down
	// Left points to col-1.
	Left
	// Right points to col+1.
	Right
)

// Directions lists the four orthogonal directions in canonical order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Offset returns the (row, col) delta of d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Vertical reports whether d moves between rows (Up or Down).
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Grid is an immutable rows×cols matrix of byte symbols.
// cells holds a private deep copy of the input; no method mutates it.
type Grid struct {
	rows, cols int
	cells      [][]byte
}
