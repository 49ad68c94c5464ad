package sides_test

import (
	"testing"

	"github.com/katalvlaran/gardenplot/grid"
	"github.com/katalvlaran/gardenplot/region"
	"github.com/katalvlaran/gardenplot/sides"
)

// BenchmarkCount_Checkerboard measures side counting on one large region
// riddled with single-cell holes, the costliest shape per cell.
func BenchmarkCount_Checkerboard(b *testing.B) {
	const n = 101
	rows := make([]string, n)
	for y := range rows {
		row := make([]byte, n)
		for x := range row {
			row[x] = 'A'
			if y%2 == 1 && x%2 == 1 {
				row[x] = 'B'
			}
		}
		rows[y] = string(row)
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	outer := region.Segment(g)[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sides.Count(outer)
	}
}
