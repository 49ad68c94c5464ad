package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gardenplot/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyRows", []string{}, grid.ErrEmptyGrid},
		{"EmptyCols", []string{""}, grid.ErrEmptyGrid},
		{"NonRectangular", []string{"AB", "C"}, grid.ErrNonRectangular},
		{"NonRectangularLater", []string{"AB", "CD", "EFG"}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

// TestFromBytes_DeepCopy ensures mutation of the input does not leak into the Grid.
func TestFromBytes_DeepCopy(t *testing.T) {
	raw := [][]byte{[]byte("AB"), []byte("CD")}
	g, err := grid.FromBytes(raw)
	require.NoError(t, err)

	raw[0][0] = 'Z'
	assert.Equal(t, byte('A'), g.MustSymbolAt(grid.Coordinate{Row: 0, Col: 0}))

	row := g.Row(1)
	row[0] = 'Z'
	assert.Equal(t, byte('C'), g.MustSymbolAt(grid.Coordinate{Row: 1, Col: 0}))
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// TestSymbolAt checks in-bounds reads and the OutOfBounds error on a 2×3 grid.
func TestSymbolAt(t *testing.T) {
	g, err := grid.New([]string{"ABC", "DEF"})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 6, g.Size())

	s, err := g.SymbolAt(grid.Coordinate{Row: 1, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, byte('F'), s)

	for _, c := range []grid.Coordinate{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 2, Col: 0}, {Row: 0, Col: 3}} {
		_, err := g.SymbolAt(c)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds, "coordinate %v", c)
		assert.False(t, g.InBounds(c))
	}
}

// TestMustSymbolAt_Panics confirms out-of-bounds access is treated as a programming error.
func TestMustSymbolAt_Panics(t *testing.T) {
	g, err := grid.New([]string{"A"})
	require.NoError(t, err)
	assert.Panics(t, func() { g.MustSymbolAt(grid.Coordinate{Row: 0, Col: 1}) })
}

// TestNeighbors checks corner, edge and interior cells of a 3×3 grid.
func TestNeighbors(t *testing.T) {
	g, err := grid.New([]string{"ABC", "DEF", "GHI"})
	require.NoError(t, err)

	cases := []struct {
		name string
		at   grid.Coordinate
		want []grid.Coordinate
	}{
		{"TopLeft", grid.Coordinate{Row: 0, Col: 0}, []grid.Coordinate{{Row: 1, Col: 0}, {Row: 0, Col: 1}}},
		{"TopEdge", grid.Coordinate{Row: 0, Col: 1}, []grid.Coordinate{{Row: 1, Col: 1}, {Row: 0, Col: 0}, {Row: 0, Col: 2}}},
		{"Center", grid.Coordinate{Row: 1, Col: 1}, []grid.Coordinate{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}},
		{"BottomRight", grid.Coordinate{Row: 2, Col: 2}, []grid.Coordinate{{Row: 1, Col: 2}, {Row: 2, Col: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Neighbors(tc.at))
		})
	}
}

// TestSameSymbol covers equal, different and out-of-bounds pairs.
func TestSameSymbol(t *testing.T) {
	g, err := grid.New([]string{"AAB"})
	require.NoError(t, err)
	assert.True(t, g.SameSymbol(grid.Coordinate{Col: 0}, grid.Coordinate{Col: 1}))
	assert.False(t, g.SameSymbol(grid.Coordinate{Col: 1}, grid.Coordinate{Col: 2}))
	assert.False(t, g.SameSymbol(grid.Coordinate{Col: 2}, grid.Coordinate{Col: 3}))
}

// TestIndexRoundTrip checks Index and Coordinate are inverse on every cell.
func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.New([]string{"ABCD", "EFGH", "IJKL"})
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	assert.Equal(t, grid.Coordinate{Row: 2, Col: 1}, g.Coordinate(9))
}

func TestString(t *testing.T) {
	g, err := grid.New([]string{"AB", "CD"})
	require.NoError(t, err)
	assert.Equal(t, "AB\nCD", g.String())
}

//----------------------------------------------------------------------------//
// Coordinate and Direction
//----------------------------------------------------------------------------//

func TestCoordinate(t *testing.T) {
	c := grid.Coordinate{Row: 0, Col: 0}
	assert.Equal(t, grid.Coordinate{Row: -1, Col: 0}, c.Step(grid.Up))
	assert.Equal(t, grid.Coordinate{Row: 0, Col: -1}, c.Step(grid.Left))
	assert.Equal(t, grid.Coordinate{Row: 3, Col: 2}, grid.Coordinate{Row: 2, Col: 3}.Transpose())
	assert.True(t, grid.Coordinate{Row: 0, Col: 5}.Less(grid.Coordinate{Row: 1, Col: 0}))
	assert.True(t, grid.Coordinate{Row: 1, Col: 0}.Less(grid.Coordinate{Row: 1, Col: 1}))
	assert.False(t, c.Less(c))
	assert.Equal(t, "(2, -1)", grid.Coordinate{Row: 2, Col: -1}.String())
}

func TestDirection(t *testing.T) {
	for _, d := range grid.Directions {
		dr, dc := d.Offset()
		or, oc := d.Opposite().Offset()
		assert.Equal(t, -dr, or, d.String())
		assert.Equal(t, -dc, oc, d.String())
	}
	assert.True(t, grid.Up.Vertical())
	assert.False(t, grid.Right.Vertical())
	assert.Equal(t, "left", grid.Left.String())
}
