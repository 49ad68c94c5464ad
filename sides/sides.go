package sides

import (
	"sort"

	"github.com/katalvlaran/gardenplot/grid"
	"github.com/katalvlaran/gardenplot/region"
)

// Run is one straight side of a region outline.
//
// For Up and Down sides Line is the row of the boundary cells and From..To
// the inclusive column span. For Left and Right sides Line is the column and
// From..To the inclusive row span.
type Run struct {
	Facing   grid.Direction
	Line     int
	From, To int
}

// Len returns the number of unit edges in the run.
func (r Run) Len() int { return r.To - r.From + 1 }

// Count returns the number of sides of r: the top, bottom, left and right
// facing runs added together.
func Count(r *region.Region) int {
	return CountSet(r.Set())
}

// CountSet is Count for a bare coordinate set.
func CountSet(s *region.CoordinateSet) int {
	n := 0
	for _, d := range grid.Directions {
		n += CountFacing(s, d)
	}
	return n
}

// CountFacing returns the number of sides of s facing direction d.
func CountFacing(s *region.CoordinateSet, d grid.Direction) int {
	return len(Runs(s, d))
}

// Runs returns the sides of s facing d, ordered by Line then From.
func Runs(s *region.CoordinateSet, d grid.Direction) []Run {
	if d.Vertical() {
		return project(s, d)
	}

	// Left/Right on s are Up/Down on the transpose.
	facing := grid.Up
	if d == grid.Right {
		facing = grid.Down
	}
	runs := project(s.Transpose(), facing)
	for i := range runs {
		runs[i].Facing = d
	}
	return runs
}

// AllRuns returns the sides of s in all four directions, in the order of
// grid.Directions.
func AllRuns(s *region.CoordinateSet) []Run {
	var out []Run
	for _, d := range grid.Directions {
		out = append(out, Runs(s, d)...)
	}
	return out
}

// project counts row runs of the cells of s whose neighbor in the vertical
// direction facing is absent from s.
func project(s *region.CoordinateSet, facing grid.Direction) []Run {
	byRow := make(map[int][]int)
	// Slice is row-major, so each row's columns arrive sorted.
	for _, c := range s.Slice() {
		if s.Contains(c.Step(facing)) {
			continue
		}
		byRow[c.Row] = append(byRow[c.Row], c.Col)
	}

	rows := make([]int, 0, len(byRow))
	for row := range byRow {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	var runs []Run
	for _, row := range rows {
		cols := byRow[row]
		cur := Run{Facing: facing, Line: row, From: cols[0], To: cols[0]}
		for _, col := range cols[1:] {
			if col != cur.To+1 {
				runs = append(runs, cur)
				cur = Run{Facing: facing, Line: row, From: col, To: col}
				continue
			}
			cur.To = col
		}
		runs = append(runs, cur)
	}
	return runs
}
