package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/jumppoint/grid"
)

// randomGrid builds an n×n diagonal grid where each cell is an obstacle with
// probability pct/100. The generator is seeded for reproducibility.
func randomGrid(b *testing.B, n, pct int) *grid.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	var obstacles []grid.Coord
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if r.Intn(100) < pct {
				obstacles = append(obstacles, grid.C(x, y))
			}
		}
	}
	g, err := grid.New(n, n, obstacles)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	return g
}

// BenchmarkNeighbors measures memoized neighbor lookups on a 100×100 grid.
func BenchmarkNeighbors(b *testing.B) {
	g := randomGrid(b, 100, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(g.Coordinate(i % (100 * 100)))
	}
}

// BenchmarkComponents measures a full labelling, which is redone after every
// insertion. Complexity: O(W×H×d).
func BenchmarkComponents(b *testing.B) {
	g := randomGrid(b, 200, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot().Components()
		g.InsertObstacle(g.Coordinate(i % (200 * 200)))
	}
}
