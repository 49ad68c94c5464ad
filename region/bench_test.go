package region_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gardenplot/grid"
	"github.com/katalvlaran/gardenplot/region"
)

// BenchmarkSegment measures Segment on a deterministic random 140×140 grid
// with four symbols, roughly the size of a real puzzle input.
// Complexity: O(rows×cols)
func BenchmarkSegment(b *testing.B) {
	const n = 140
	r := rand.New(rand.NewSource(42))
	rows := make([]string, n)
	for y := range rows {
		row := make([]byte, n)
		for x := range row {
			row[x] = byte('A' + r.Intn(4))
		}
		rows[y] = string(row)
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = region.Segment(g)
	}
}
